// Package payload prepares messages for embedding: password
// protection with AES-256-CBC, a lightweight XOR obfuscation mode,
// and optional compression. Every transform renders to plain ASCII
// so the result travels the text embedding channel unchanged.
package payload

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/pbkdf2"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	saltSize   = 32
	ivSize     = 16
	keySize    = 32
	iterations = 100000
)

var (
	// ErrIntegrity covers every Unprotect failure. Which check
	// failed is deliberately not revealed.
	ErrIntegrity = errors.New("wrong password or corrupted data")
	// ErrEmptyPlaintext reports an empty input message.
	ErrEmptyPlaintext = errors.New("plaintext is empty")
	// ErrEmptyPassword reports an empty or whitespace-only password.
	ErrEmptyPassword = errors.New("password is empty")
	// ErrWeakPassword reports a password below the blocking rules.
	ErrWeakPassword = errors.New("password is too weak")
)

func deriveKey(password string, salt []byte) ([]byte, error) {
	return pbkdf2.Key(sha256.New, password, salt, iterations, keySize)
}

// Protect encrypts plaintext under a password-derived key and returns
// base64(salt || iv || ciphertext). Salt and IV are fresh random
// bytes on every call, so protecting the same message twice yields
// different blobs.
func Protect(plaintext, password string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPlaintext
	}
	if strings.TrimSpace(password) == "" {
		return "", ErrEmptyPassword
	}
	if utf8.RuneCountInString(password) < MinPasswordLen {
		return "", fmt.Errorf("%w: shorter than %d characters", ErrWeakPassword, MinPasswordLen)
	}

	buf := make([]byte, saltSize+ivSize)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	salt, iv := buf[:saltSize], buf[saltSize:]

	key, err := deriveKey(password, salt)
	if err != nil {
		return "", err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	ct := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ct, padded)
	return base64.StdEncoding.EncodeToString(append(buf, ct...)), nil
}

// Unprotect reverses Protect. Any failure, from malformed base64 to
// bad padding to non-UTF-8 plaintext, reports as ErrIntegrity.
func Unprotect(encoded, password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", ErrEmptyPassword
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", ErrIntegrity
	}
	if len(raw) < saltSize+ivSize+aes.BlockSize {
		return "", ErrIntegrity
	}
	salt, iv, ct := raw[:saltSize], raw[saltSize:saltSize+ivSize], raw[saltSize+ivSize:]
	if len(ct)%aes.BlockSize != 0 {
		return "", ErrIntegrity
	}

	key, err := deriveKey(password, salt)
	if err != nil {
		return "", ErrIntegrity
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", ErrIntegrity
	}

	padded := make([]byte, len(ct))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ct)
	plain, ok := pkcs7Unpad(padded, aes.BlockSize)
	if !ok || !utf8.Valid(plain) {
		return "", ErrIntegrity
	}
	return string(plain), nil
}

func pkcs7Pad(data []byte, size int) []byte {
	n := size - len(data)%size
	out := make([]byte, len(data)+n)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(n)
	}
	return out
}

// pkcs7Unpad checks every padding byte against the padding length.
func pkcs7Unpad(data []byte, size int) ([]byte, bool) {
	if len(data) == 0 || len(data)%size != 0 {
		return nil, false
	}
	n := int(data[len(data)-1])
	if n == 0 || n > size {
		return nil, false
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, false
		}
	}
	return data[:len(data)-n], true
}
