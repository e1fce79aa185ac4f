package identity

import (
	"errors"
	"strings"
	"unicode"
)

// PasswordMinLength is the shortest password SignUp accepts.
const PasswordMinLength = 8

var (
	ErrPasswordTooShort        = errors.New("this password is too short, it must contain at least 8 characters")
	ErrPasswordEntirelyNumeric = errors.New("this password is entirely numeric")
	ErrPasswordTooCommon       = errors.New("this password is too common")
)

var commonPasswords = map[string]struct{}{
	"password":    {},
	"password1":   {},
	"qwerty123":   {},
	"iloveyou":    {},
	"admin123":    {},
	"welcome1":    {},
	"pharmacy":    {},
	"pharmacygo":  {},
	"12345678":    {},
	"abcdefgh":    {},
	"letmein123":  {},
	"qwertyuiop":  {},
	"password123": {},
}

// ValidatePassword applies the sign-up password policy and returns every
// violated rule joined together.
func ValidatePassword(password string) error {
	var result []error
	if len([]rune(password)) < PasswordMinLength {
		result = append(result, ErrPasswordTooShort)
	}
	if password != "" && isNumeric(password) {
		result = append(result, ErrPasswordEntirelyNumeric)
	}
	if _, ok := commonPasswords[strings.ToLower(password)]; ok {
		result = append(result, ErrPasswordTooCommon)
	}
	return errors.Join(result...)
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
