package textdecode

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// utf8Override tries to decode as UTF-8 first, and uses Fallback if the input is not valid UTF-8.
type utf8Override struct {
	Fallback decoder
}

func (u utf8Override) Bytes(b []byte) ([]byte, error) {
	if utf8.Valid(b) {
		return unicode.UTF8.NewDecoder().Bytes(b)
	}
	return u.Fallback.Bytes(b)
}
