package diff

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// IsBinaryData reports whether content cannot be treated as text: it
// contains a NUL byte or is not valid UTF-8.
func IsBinaryData(content []byte) bool {
	if len(content) == 0 {
		return false
	}
	return bytes.IndexByte(content, 0) >= 0 || !utf8.Valid(content)
}

// Truncate clips content to at most maxLines lines and maxBytes bytes,
// in that order. Zero disables the respective limit; the line limit
// cuts on line boundaries and the byte limit on rune boundaries. The
// second return reports whether anything was dropped.
func Truncate(content string, maxBytes, maxLines int) (string, bool) {
	truncated := false
	result := content

	if maxLines > 0 {
		var limited strings.Builder
		count := 0
		for _, line := range SplitLines(result) {
			if count >= maxLines {
				truncated = true
				break
			}
			limited.WriteString(line)
			count++
		}
		if truncated {
			result = limited.String()
		}
	}

	if maxBytes > 0 && len(result) > maxBytes {
		end := maxBytes
		for end > 0 && !utf8.RuneStart(result[end]) {
			end--
		}
		result = result[:end]
		truncated = true
	}

	return result, truncated
}
