package order

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"

	"pharmacygo/internal/pkg/errs"
)

const (
	CodePrefix    = "#PG-"
	codeAlphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeRandomLen = 4
	MaxCodeLength = 20
)

var codePattern = regexp.MustCompile(`^#?[A-Za-z0-9][A-Za-z0-9-]*$`)

// NewCode returns a fresh customer-facing code such as "#PG-7QX2".
func NewCode() string {
	var b strings.Builder
	b.WriteString(CodePrefix)
	for range codeRandomLen {
		b.WriteByte(codeAlphabet[rand.IntN(len(codeAlphabet))])
	}
	return b.String()
}

// ValidateCode checks a user-supplied or generated order code.
func ValidateCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	if len(code) > MaxCodeLength {
		return errs.NewValueIsOutOfRangeError("code length", len(code), 1, MaxCodeLength)
	}
	if !codePattern.MatchString(code) {
		return errs.NewValueIsInvalidErrorWithCause("code", fmt.Errorf("%q has unexpected characters", code))
	}
	return nil
}
