package web

import (
	"errors"
	"strings"

	"pharmacygo/internal/core/application/usecases/commands"

	"github.com/go-playground/validator/v10"
)

// Validator plugs go-playground/validator into echo.Context.Validate.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}

type loginForm struct {
	Identifier string `form:"username"  validate:"required,max=254"`
	Password   string `form:"password"  validate:"required,max=128"`
	RoleHint   string `form:"role_hint" validate:"required"`
}

func (f loginForm) values() map[string]string {
	return map[string]string{"username": f.Identifier, "role_hint": f.RoleHint}
}

// signUpForm only bounds the input; the sign-up command owns the rules and
// their messages.
type signUpForm struct {
	Role         string `form:"role"         validate:"max=32"`
	FullName     string `form:"full_name"    validate:"max=150"`
	Email        string `form:"email"        validate:"omitempty,email,max=254"`
	Phone        string `form:"phone"        validate:"max=32"`
	Organization string `form:"organization" validate:"max=255"`
	Password1    string `form:"password1"    validate:"max=128"`
	Password2    string `form:"password2"    validate:"max=128"`
}

func (f signUpForm) values() map[string]string {
	return map[string]string{
		"role":         f.Role,
		"full_name":    f.FullName,
		"email":        f.Email,
		"phone":        f.Phone,
		"organization": f.Organization,
	}
}

type createOrderForm struct {
	PharmacyID string `form:"pharmacy"   validate:"required"`
	Items      string `form:"items"      validate:"max=500"`
	OrderCode  string `form:"order_code" validate:"max=16"`
}

type applicationForm struct {
	PharmacyName string `form:"pharmacy_name" validate:"required,max=150"`
	Documents    string `form:"documents"     validate:"required,max=255"`
}

type statusEntryForm struct {
	Status string `form:"status" validate:"required,max=100"`
}

const msgInvalidDetails = "The submitted details are not valid."

// FormView is what a template needs to redraw a submitted form.
type FormView struct {
	Values map[string]string
	Errors commands.FieldErrors
}

// NonFieldErrors are messages not tied to one input.
func (f FormView) NonFieldErrors() []string {
	return f.Errors.Messages(commands.FormField)
}

func (f FormView) FieldErrors(field string) []string {
	return f.Errors.Messages(field)
}

func (f FormView) Value(field string) string {
	return f.Values[field]
}

func emptyForm() FormView {
	return FormView{Values: map[string]string{}, Errors: commands.FieldErrors{}}
}

// fieldErrorsFrom turns validator and command errors into form messages.
// It reports false when err is not a validation problem.
func fieldErrorsFrom(err error, names map[string]string) (commands.FieldErrors, bool) {
	var fieldErrs commands.FieldErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs, true
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		if IsValidation(err) {
			return commands.FieldErrors{commands.FormField: {msgInvalidDetails}}, true
		}
		return nil, false
	}

	out := commands.FieldErrors{}
	for _, fe := range validationErrs {
		field := names[fe.StructField()]
		if field == "" {
			field = commands.FormField
		}
		out.Add(field, validationMessage(fe))
	}
	return out, true
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "max":
		return "Ensure this value has at most " + fe.Param() + " characters."
	case "oneof":
		return "Select a valid choice."
	default:
		return "Enter a valid value."
	}
}

var (
	loginFieldNames = map[string]string{
		"Identifier": "username",
		"Password":   "password",
		"RoleHint":   "role_hint",
	}
	signUpFieldNames = map[string]string{
		"Role":         "role",
		"FullName":     "full_name",
		"Email":        "email",
		"Phone":        "phone",
		"Organization": "organization",
		"Password1":    "password1",
		"Password2":    "password2",
	}
)

// joinMessages flattens field errors for a flash message.
func joinMessages(fieldErrs commands.FieldErrors) string {
	var parts []string
	for _, messages := range fieldErrs {
		parts = append(parts, messages...)
	}
	return strings.Join(parts, " ")
}
