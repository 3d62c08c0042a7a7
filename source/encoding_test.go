package source

import (
	"testing"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
)

func TestEncodingByID(t *testing.T) {
	tests := []struct {
		id       string
		wantName string
		wantNil  bool
	}{
		{"utf-8", "UTF-8", false},
		{"UTF-8", "UTF-8", false},
		{"utf-8-bom", "UTF-8 BOM", false},
		{"utf-16-le", "UTF-16 LE", false},
		{"shift-jis", "Shift-JIS", false},
		{"nonexistent", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			enc := EncodingByID(tt.id)
			if tt.wantNil {
				if enc != nil {
					t.Errorf("EncodingByID(%q) = %v, want nil", tt.id, enc)
				}
				return
			}
			if enc == nil || enc.Name != tt.wantName {
				t.Errorf("EncodingByID(%q) = %v, want %q", tt.id, enc, tt.wantName)
			}
		})
	}
}

func TestEncodingByName(t *testing.T) {
	tests := []struct {
		name    string
		wantID  string
		wantNil bool
	}{
		{"UTF-8", "utf-8", false},
		{"utf8", "utf-8", false},
		{"Shift_JIS", "shift-jis", false},
		{"GB2312", "gbk", false},
		{"latin1", "iso-8859-1", false},
		{"CP1252", "windows-1252", false},
		{"nonexistent", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := EncodingByName(tt.name)
			if tt.wantNil {
				if enc != nil {
					t.Errorf("EncodingByName(%q) = %v, want nil", tt.name, enc)
				}
				return
			}
			if enc == nil || enc.ID != tt.wantID {
				t.Errorf("EncodingByName(%q) = %v, want ID %q", tt.name, enc, tt.wantID)
			}
		})
	}
}

func TestDetectBOMs(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"utf-8 bom", []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}, "utf-8-bom"},
		{"utf-16 le bom", []byte{0xFF, 0xFE, 'h', 0}, "utf-16-le"},
		{"utf-16 be bom", []byte{0xFE, 0xFF, 0, 'h'}, "utf-16-be"},
		{"plain ascii", []byte("hello"), "utf-8"},
		{"utf-8 text", []byte("日本語"), "utf-8"},
		{"empty", nil, "utf-8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.data); got.ID != tt.want {
				t.Errorf("Detect() = %q, want %q", got.ID, tt.want)
			}
		})
	}
}

func TestDetectNonUTF8(t *testing.T) {
	data, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte("Café crème brûlée, naïve façade"))
	if err != nil {
		t.Fatal(err)
	}
	enc := Detect(data)
	if enc.ID == "utf-8" {
		t.Fatal("Latin-1 bytes should not detect as UTF-8")
	}
	if enc.Decoder == nil {
		t.Errorf("Detect() = %q, want an encoding with a decoder", enc.ID)
	}
}

func TestDecode(t *testing.T) {
	sjis, err := japanese.ShiftJIS.NewEncoder().Bytes([]byte("こんにちは"))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		data []byte
		enc  string
		want string
	}{
		{"utf-8", []byte("hello"), "utf-8", "hello"},
		{"utf-8 bom stripped", []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}, "utf-8-bom", "hi"},
		{"utf-16 le", []byte{0xFF, 0xFE, 'h', 0, 'i', 0}, "utf-16-le", "hi"},
		{"utf-16 be", []byte{0xFE, 0xFF, 0, 'h', 0, 'i'}, "utf-16-be", "hi"},
		{"latin-1", []byte{'c', 'a', 'f', 0xE9}, "iso-8859-1", "café"},
		{"shift-jis", sjis, "shift-jis", "こんにちは"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.data, EncodingByID(tt.enc))
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Decode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeNilEncoding(t *testing.T) {
	got, err := Decode([]byte("as is"), nil)
	if err != nil || string(got) != "as is" {
		t.Errorf("Decode(nil enc) = %q, %v", got, err)
	}
}
