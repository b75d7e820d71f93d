// Package sanitize renders arbitrary input base names safe for use in
// file names and tool arguments.
package sanitize

import "strings"

// Name converts a base name into a token containing only [A-Za-z0-9_-].
// Dots become underscores, any other disallowed character becomes an
// underscore, runs of underscores collapse to one, and a single leading or
// trailing underscore is stripped. The result is deterministic for any
// input and the transform is idempotent. An input consisting entirely of
// disallowed characters collapses to the empty string.
func Name(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	prevUnderscore := false
	for _, r := range name {
		c := r
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			// keep
		default:
			c = '_'
		}
		if c == '_' {
			if prevUnderscore {
				continue
			}
			prevUnderscore = true
		} else {
			prevUnderscore = false
		}
		b.WriteRune(c)
	}

	s := b.String()
	s = strings.TrimPrefix(s, "_")
	s = strings.TrimSuffix(s, "_")
	return s
}
