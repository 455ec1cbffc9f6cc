package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mrshoofer/mrshoofer/internal/pkg/apperrors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("iran_mobile", validateIranMobile)
}

// ValidateStruct checks validate tags on s. Failures come back as an
// INVALID_PAYLOAD error naming the offending fields.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.InvalidPayload("Invalid request payload", err)
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return apperrors.InvalidPayload("Invalid fields: "+strings.Join(fields, ", "), nil)
}

func validateIranMobile(fl validator.FieldLevel) bool {
	_, ok := NormalizeIranianMobile(fl.Field().String())
	return ok
}
