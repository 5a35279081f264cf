package spec

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// StdinSentinel selects standard input as the spec source.
const StdinSentinel = "-"

// ReadInput resolves the raw spec document from a file path, an inline
// string, or stdin when inline is the sentinel. Exactly one source must
// be provided.
func ReadInput(inline, file string) (string, error) {
	if file != "" {
		if inline != "" {
			return "", &ParseError{Msg: "provide either an inline spec or --spec-file, not both"}
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read spec file %s: %w", file, err)
		}
		return string(data), nil
	}

	if inline == StdinSentinel {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read spec from stdin: %w", err)
		}
		if strings.TrimSpace(string(data)) == "" {
			return "", &ParseError{Msg: "spec from stdin is empty"}
		}
		return string(data), nil
	}

	if inline == "" {
		return "", &ParseError{Msg: "spec required (inline, '-' for stdin, or --spec-file)"}
	}
	return inline, nil
}
