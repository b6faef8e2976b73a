package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"hoteltec/internal/shared/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateStruct runs validator tags on a command/DTO struct and converts
// failures into a single validation AppError listing the offending fields.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.NewValidationError("invalid input")
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}

	return errors.NewMissingFieldsError(fields)
}

// IsValidEmail reports whether the string passes the validator email check.
func IsValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}
