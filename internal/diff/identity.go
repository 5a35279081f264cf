package diff

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/zeebo/xxh3"
)

// HunkIDPrefix prefixes every content-addressed hunk identifier.
const HunkIDPrefix = "hunk-"

// hunkID derives the stable identifier of a hunk from its path, kind,
// both text sides, and both line ranges. Any field change produces a
// different id; repeated diffs of the same inputs reproduce it exactly.
func hunkID(path string, kind Kind, removed, added string, before, after LineRange) string {
	h := sha256.New()
	io.WriteString(h, "path\x00"+path)
	io.WriteString(h, "\x00kind\x00"+string(kind))
	io.WriteString(h, "\x00removed\x00"+removed)
	io.WriteString(h, "\x00added\x00"+added)
	fmt.Fprintf(h, "\x00before\x00%d:%d", before.Start, before.Lines)
	fmt.Fprintf(h, "\x00after\x00%d:%d", after.Start, after.Lines)
	return HunkIDPrefix + hex.EncodeToString(h.Sum(nil))
}

// NormalizeID canonicalizes a user-supplied hunk id. Accepted forms are
// the canonical "hunk-<hex>", the shorthand prefixes "id:", "sha:" and
// "sha256:", or a bare hex digest. Returns false for anything else.
func NormalizeID(value string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", false
	}

	hexPart := trimmed
	for _, prefix := range []string{HunkIDPrefix, "id:", "sha:", "sha256:"} {
		if rest, ok := strings.CutPrefix(trimmed, prefix); ok {
			hexPart = rest
			break
		}
	}

	if hexPart == "" || !isHex(hexPart) {
		return "", false
	}
	return HunkIDPrefix + strings.ToLower(hexPart), true
}

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// contentEqual reports whether two contents are identical, compared by
// xxh3-128 fingerprint.
func contentEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return xxh3.Hash128(a) == xxh3.Hash128(b)
}
