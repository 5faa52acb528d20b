package codec

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// Encoding selects the text framing for JSON payloads. It has no effect on
// MessagePack, which is binary.
type Encoding int

const (
	// EncodingUTF8 frames JSON as UTF-8, the default. No charset parameter
	// is appended to the media type.
	EncodingUTF8 Encoding = iota
	// EncodingUTF16LE frames JSON as little-endian UTF-16.
	EncodingUTF16LE
	// EncodingUTF16BE frames JSON as big-endian UTF-16.
	EncodingUTF16BE
)

// Charset returns the MIME charset token, or "" for UTF-8 so the wire
// Content-Type stays the bare media type.
func (e Encoding) Charset() string {
	switch e {
	case EncodingUTF16LE:
		return "utf-16le"
	case EncodingUTF16BE:
		return "utf-16be"
	default:
		return ""
	}
}

// String returns the encoding name.
func (e Encoding) String() string {
	switch e {
	case EncodingUTF16LE:
		return "utf-16le"
	case EncodingUTF16BE:
		return "utf-16be"
	default:
		return "utf-8"
	}
}

// Encode transforms UTF-8 text into the framing encoding. UTF-8 is the
// identity and returns the input unchanged.
func (e Encoding) Encode(text []byte) ([]byte, error) {
	enc := e.unicodeEncoding()
	if enc == nil {
		return text, nil
	}
	return enc.NewEncoder().Bytes(text)
}

// Decode transforms framed text back into UTF-8.
func (e Encoding) Decode(text []byte) ([]byte, error) {
	enc := e.unicodeEncoding()
	if enc == nil {
		return text, nil
	}
	return enc.NewDecoder().Bytes(text)
}

func (e Encoding) unicodeEncoding() encoding.Encoding {
	switch e {
	case EncodingUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case EncodingUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	default:
		return nil
	}
}
