//go:build windows

package textdecode

import (
	"golang.org/x/sys/windows"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

var localeEncoding encoding.Encoding

func init() {
	enc, ok := map[uint32]encoding.Encoding{
		1250: charmap.Windows1250,
		1251: charmap.Windows1251,
		1252: charmap.Windows1252,
		1253: charmap.Windows1253,
		1254: charmap.Windows1254,
		1255: charmap.Windows1255,
		1256: charmap.Windows1256,
		1257: charmap.Windows1257,
		1258: charmap.Windows1258,

		932:   japanese.ShiftJIS,
		20932: japanese.EUCJP,

		949: korean.EUCKR,
		936: simplifiedchinese.GBK,

		950:   traditionalchinese.Big5,
		54936: simplifiedchinese.GB18030,
	}[windows.GetACP()]
	if !ok {
		enc = unicode.UTF8
	}

	localeEncoding = enc
}

// localeDecoder in Windows decodes UTF-8, or the ANSI code page of the system if the text is not UTF-8.
func localeDecoder() decoder {
	return utf8Override{localeEncoding.NewDecoder()}
}
