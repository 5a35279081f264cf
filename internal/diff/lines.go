package diff

import "strings"

// SplitLines splits text into lines, each keeping its trailing newline.
// A final fragment without a newline is returned as-is, so joining the
// result reproduces the input byte for byte.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	var lines []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, text[start:i+1])
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

// CountLines counts the lines in text; a trailing fragment without a
// newline counts as one line.
func CountLines(text string) int {
	if text == "" {
		return 0
	}
	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}
