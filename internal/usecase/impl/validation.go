package impl

import (
	"strings"

	domainerrors "restaurant/internal/domain/errors"
	"restaurant/internal/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateInput checks struct tags and reports every failing field in one ErrValidationFailed.
func validateInput(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages = append(messages, validationMessage(fieldErr))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(messages, "; "))
}

func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fieldErr.Namespace() + " is required"
	case "gt":
		return fieldErr.Namespace() + " must be greater than " + fieldErr.Param()
	case "gte":
		return fieldErr.Namespace() + " must be at least " + fieldErr.Param()
	default:
		return fieldErr.Namespace() + " is invalid"
	}
}
