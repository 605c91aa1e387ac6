package payload

import (
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"unicode/utf8"
)

// Obfuscate scrambles plaintext by XOR against a repeating keystream
// derived from key and renders the result as base64. The transform is
// its own inverse and carries no authentication: it hides content
// from casual inspection only. Use Protect for confidentiality.
func Obfuscate(plaintext, key string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPlaintext
	}
	if strings.TrimSpace(key) == "" {
		return "", ErrEmptyPassword
	}
	return base64.StdEncoding.EncodeToString(xorStream([]byte(plaintext), key)), nil
}

// Deobfuscate reverses Obfuscate. Malformed input reports as
// ErrIntegrity; a wrong key yields garbage that is only detected when
// it breaks UTF-8.
func Deobfuscate(encoded, key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", ErrEmptyPassword
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || len(raw) == 0 {
		return "", ErrIntegrity
	}
	plain := xorStream(raw, key)
	if !utf8.Valid(plain) {
		return "", ErrIntegrity
	}
	return string(plain), nil
}

func xorStream(data []byte, key string) []byte {
	stream := sha256.Sum256([]byte(key))
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ stream[i%len(stream)]
	}
	return out
}
