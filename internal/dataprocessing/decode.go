package dataprocessing

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/transform"
)

// DefaultEncodings is the encoding order the exports are tried with: TWSE
// tools produce either UTF-8 or Big5 files.
var DefaultEncodings = []string{"utf-8", "big5"}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeText decodes raw source bytes by trying the named encodings in order;
// the first success short-circuits. With no names given DefaultEncodings is
// used. Pure function over the byte slice, so the fallback is testable
// without a file system.
func DecodeText(raw []byte, encodings ...string) (string, error) {
	if len(encodings) == 0 {
		encodings = DefaultEncodings
	}

	var lastErr error
	for _, name := range encodings {
		decoder, ok := decoders[name]
		if !ok {
			return "", fmt.Errorf("unknown encoding %q", name)
		}
		text, err := decoder(raw)
		if err == nil {
			return text, nil
		}
		lastErr = err
	}
	return "", fmt.Errorf("decode failed for all encodings %v: %w", encodings, lastErr)
}

var decoders = map[string]func([]byte) (string, error){
	"utf-8": decodeUTF8,
	"big5":  decodeBig5,
}

func decodeUTF8(raw []byte) (string, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("input is not valid UTF-8")
	}
	return string(raw), nil
}

func decodeBig5(raw []byte) (string, error) {
	decoded, _, err := transform.Bytes(traditionalchinese.Big5.NewDecoder(), raw)
	if err != nil {
		return "", fmt.Errorf("big5 decode: %w", err)
	}
	return string(decoded), nil
}
