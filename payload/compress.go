package payload

import (
	"encoding/base64"
	"unicode/utf8"

	"github.com/klauspost/compress/zstd"
)

var (
	zstdEnc, _ = zstd.NewWriter(nil)
	zstdDec, _ = zstd.NewReader(nil)
)

// Compress shrinks text with zstd and renders it as base64, for long
// repetitive messages that would not otherwise fit a carrier. Short
// texts can come out larger than they went in.
func Compress(text string) (string, error) {
	if text == "" {
		return "", ErrEmptyPlaintext
	}
	return base64.StdEncoding.EncodeToString(zstdEnc.EncodeAll([]byte(text), nil)), nil
}

// Decompress reverses Compress. Malformed input reports as
// ErrIntegrity.
func Decompress(encoded string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || len(raw) == 0 {
		return "", ErrIntegrity
	}
	plain, err := zstdDec.DecodeAll(raw, nil)
	if err != nil || !utf8.Valid(plain) {
		return "", ErrIntegrity
	}
	return string(plain), nil
}
