package commands

import (
	"sort"
	"strings"

	"pharmacygo/internal/pkg/errs"
)

// FormField is the key under which errors not tied to one input are kept.
const FormField = "__all__"

// FieldErrors collects user-facing validation messages per form field so a
// form can show all of them at once. It matches errs.ErrValueIsInvalid.
type FieldErrors map[string][]string

func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

// Messages returns the messages for one field.
func (f FieldErrors) Messages(field string) []string {
	return f[field]
}

// OrNil returns nil when nothing was collected.
func (f FieldErrors) OrNil() error {
	if len(f) == 0 {
		return nil
	}
	return f
}

func (f FieldErrors) Error() string {
	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(f[field], " "))
	}
	return errs.ErrValueIsInvalid.Error() + ": " + strings.Join(parts, "; ")
}

func (f FieldErrors) Is(target error) bool {
	return target == errs.ErrValueIsInvalid
}
