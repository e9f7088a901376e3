// Package textdecode decodes output of external commands that may not be UTF-8.
package textdecode

import (
	"strings"
)

type decoder interface {
	Bytes(b []byte) ([]byte, error)
}

// Bytes decodes []byte to string.
//
// The BOM takes priority. Otherwise the text decoded as UTF-8, or as the code page of the system locale on Windows.
// CRLF and CR are replaced to LF.
func Bytes(b []byte) (string, error) {
	b, dec := bomOverride(b, localeDecoder())
	s, err := dec.Bytes(b)
	if err != nil {
		return "", err
	}
	return normalizeNewline(string(s)), nil
}

func normalizeNewline(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", "\n"), "\r", "\n")
}
