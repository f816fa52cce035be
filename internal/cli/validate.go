package cli

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

type ownerCommand struct {
	Owner string `validate:"required,owner"`
}

type amountCommand struct {
	Owner  string `validate:"required,owner"`
	Amount string `validate:"required,numeric"`
}

type transferCommand struct {
	From   string `validate:"required,owner"`
	To     string `validate:"required,owner"`
	Amount string `validate:"required,numeric"`
}

// newValidator registers the "owner" tag: printable text of at most
// maxLength characters.
func newValidator(maxLength int) *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("owner", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if utf8.RuneCountInString(s) > maxLength {
			return false
		}
		return v.Var(s, "printascii") == nil
	})
	return v
}

// describe turns validator errors into a short message naming each field.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", strings.ToLower(fe.Field())))
		case "numeric":
			parts = append(parts, fmt.Sprintf("%s must be a decimal number, got %q", strings.ToLower(fe.Field()), fe.Value()))
		default:
			parts = append(parts, fmt.Sprintf("%s %q is not a valid %s", strings.ToLower(fe.Field()), fe.Value(), fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}
