package buffer

import "strings"

// Option configures a Buffer.
type Option func(*Buffer)

// WithLineEnding sets the sequence Text uses between lines.
func WithLineEnding(le LineEnding) Option {
	return func(b *Buffer) {
		b.lineEnding = le
	}
}

// DetectLineEnding returns the most frequent line ending of text, or
// LineEndingLF when text has none. Ties prefer CRLF, then CR.
func DetectLineEnding(text string) LineEnding {
	crlf := strings.Count(text, "\r\n")
	cr := strings.Count(text, "\r") - crlf
	lf := strings.Count(text, "\n") - crlf

	switch {
	case crlf > 0 && crlf >= lf && crlf >= cr:
		return LineEndingCRLF
	case cr > 0 && cr >= lf:
		return LineEndingCR
	default:
		return LineEndingLF
	}
}
