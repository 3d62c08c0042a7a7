package source

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding is a character encoding the loader can decode
type Encoding struct {
	Name    string            // Display name
	ID      string            // Internal identifier
	Decoder encoding.Encoding // x/text codec (nil for UTF-8)
	Aliases []string          // Names chardet may report
	BOM     []byte            // Byte order mark stripped before decoding
}

// Encodings lists the encodings the loader understands
var Encodings = []*Encoding{
	{Name: "UTF-8", ID: "utf-8", Aliases: []string{"UTF-8", "utf8"}},
	{Name: "UTF-8 BOM", ID: "utf-8-bom", BOM: []byte{0xEF, 0xBB, 0xBF}},
	{
		Name:    "UTF-16 LE",
		ID:      "utf-16-le",
		Decoder: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
		Aliases: []string{"UTF-16LE"},
		BOM:     []byte{0xFF, 0xFE},
	},
	{
		Name:    "UTF-16 BE",
		ID:      "utf-16-be",
		Decoder: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
		Aliases: []string{"UTF-16BE"},
		BOM:     []byte{0xFE, 0xFF},
	},
	{Name: "ISO-8859-1", ID: "iso-8859-1", Decoder: charmap.ISO8859_1, Aliases: []string{"ISO-8859-1", "latin1"}},
	{Name: "Windows-1252", ID: "windows-1252", Decoder: charmap.Windows1252, Aliases: []string{"windows-1252", "CP1252"}},
	{Name: "ISO-8859-15", ID: "iso-8859-15", Decoder: charmap.ISO8859_15, Aliases: []string{"ISO-8859-15", "latin9"}},
	{Name: "Shift-JIS", ID: "shift-jis", Decoder: japanese.ShiftJIS, Aliases: []string{"Shift_JIS", "SJIS"}},
	{Name: "EUC-JP", ID: "euc-jp", Decoder: japanese.EUCJP, Aliases: []string{"EUC-JP"}},
	{Name: "GBK", ID: "gbk", Decoder: simplifiedchinese.GBK, Aliases: []string{"GBK", "GB2312"}},
	{Name: "GB18030", ID: "gb18030", Decoder: simplifiedchinese.GB18030, Aliases: []string{"GB18030"}},
	{Name: "EUC-KR", ID: "euc-kr", Decoder: korean.EUCKR, Aliases: []string{"EUC-KR"}},
}

// EncodingByID returns the encoding with the given ID, or nil
func EncodingByID(id string) *Encoding {
	for _, enc := range Encodings {
		if strings.EqualFold(enc.ID, id) {
			return enc
		}
	}
	return nil
}

// EncodingByName returns an encoding by display name, ID or alias, or nil
func EncodingByName(name string) *Encoding {
	for _, enc := range Encodings {
		if strings.EqualFold(enc.Name, name) || strings.EqualFold(enc.ID, name) {
			return enc
		}
		for _, alias := range enc.Aliases {
			if strings.EqualFold(alias, name) {
				return enc
			}
		}
	}
	return nil
}

// Detect guesses the encoding of data. BOMs win, then UTF-8 validity, then
// chardet. Anything chardet can't name falls back to Latin-1, which decodes
// every byte sequence.
func Detect(data []byte) *Encoding {
	for _, id := range []string{"utf-8-bom", "utf-16-be", "utf-16-le"} {
		enc := EncodingByID(id)
		if bytes.HasPrefix(data, enc.BOM) {
			return enc
		}
	}

	if utf8.Valid(data) {
		return EncodingByID("utf-8")
	}

	detected, err := chardet.NewTextDetector().DetectBest(data)
	if err == nil && detected != nil {
		if enc := EncodingByName(detected.Charset); enc != nil {
			return enc
		}
	}
	return EncodingByID("iso-8859-1")
}

// Decode converts data in enc to UTF-8, dropping any byte order mark
func Decode(data []byte, enc *Encoding) ([]byte, error) {
	if enc == nil {
		return data, nil
	}
	data = bytes.TrimPrefix(data, enc.BOM)
	if enc.Decoder == nil {
		return data, nil
	}
	return io.ReadAll(transform.NewReader(bytes.NewReader(data), enc.Decoder.NewDecoder()))
}
