package corpus

import (
	"io"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// printable matches C's isprint in the "C" locale.
func printable(r rune) bool {
	return r >= 0x20 && r <= 0x7e
}

// nonPrintableToSpace maps everything outside printable ASCII to a space.
// Invalid UTF-8 reaches the mapping as utf8.RuneError and is replaced too.
func nonPrintableToSpace() transform.Transformer {
	return runes.Map(func(r rune) rune {
		if printable(r) {
			return r
		}
		return ' '
	})
}

// Sanitize returns a reader that yields r's content with every non-printable
// character replaced by a space. It streams; r is not read ahead.
func Sanitize(r io.Reader) io.Reader {
	return transform.NewReader(r, nonPrintableToSpace())
}

// SanitizeString is Sanitize for in-memory text.
func SanitizeString(s string) string {
	out, _, err := transform.String(nonPrintableToSpace(), s)
	if err != nil {
		// runes.Map never fails on complete input.
		return s
	}
	return out
}
