package changes

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// NormalizePatterns splits comma-separated pattern lists and drops
// blanks, so "-i 'a/**,b/**' -i c" yields three patterns.
func NormalizePatterns(patterns []string) []string {
	var out []string
	for _, pattern := range patterns {
		for _, part := range strings.Split(pattern, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Included applies include and exclude globs to the set of paths a file
// touches: at least one path must match the includes (when given), and
// none may match the excludes.
func Included(paths, include, exclude []string) bool {
	if len(include) > 0 && !anyMatch(include, paths) {
		return false
	}
	if len(exclude) > 0 && anyMatch(exclude, paths) {
		return false
	}
	return true
}

func anyMatch(patterns, paths []string) bool {
	for _, pattern := range patterns {
		for _, p := range paths {
			if globMatch(pattern, p) {
				return true
			}
		}
	}
	return false
}

func globMatch(pattern, p string) bool {
	pattern = strings.TrimPrefix(pattern, "./")
	p = strings.TrimPrefix(p, "./")
	ok, err := doublestar.Match(pattern, p)
	return err == nil && ok
}
