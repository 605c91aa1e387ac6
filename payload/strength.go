package payload

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MinPasswordLen is the blocking minimum password length for Protect.
const MinPasswordLen = 8

const symbolSet = "!@#$%^&*()_+-=[]{}|;:,.<>?"

// Strength is the advisory character-class breakdown of a password.
type Strength struct {
	Length int
	Upper  bool
	Lower  bool
	Digit  bool
	Symbol bool
}

// Score counts the satisfied character classes, 0 through 4.
func (s Strength) Score() int {
	n := 0
	for _, ok := range []bool{s.Upper, s.Lower, s.Digit, s.Symbol} {
		if ok {
			n++
		}
	}
	return n
}

// Strong reports whether the password meets the blocking length and
// at least three character classes.
func (s Strength) Strong() bool {
	return s.Length >= MinPasswordLen && s.Score() >= 3
}

// CheckStrength scores a password without rejecting it. Protect
// itself blocks only on length; callers wanting the class rules use
// this or RequireStrong.
func CheckStrength(password string) Strength {
	s := Strength{Length: utf8.RuneCountInString(password)}
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			s.Upper = true
		case unicode.IsLower(r):
			s.Lower = true
		case unicode.IsDigit(r):
			s.Digit = true
		case strings.ContainsRune(symbolSet, r):
			s.Symbol = true
		}
	}
	return s
}

// RequireStrong is the strict variant of CheckStrength for callers
// that refuse class-weak passwords outright.
func RequireStrong(password string) error {
	s := CheckStrength(password)
	if s.Length < MinPasswordLen {
		return fmt.Errorf("%w: shorter than %d characters", ErrWeakPassword, MinPasswordLen)
	}
	if s.Score() < 3 {
		return fmt.Errorf("%w: use at least three of upper, lower, digit, symbol", ErrWeakPassword)
	}
	return nil
}
