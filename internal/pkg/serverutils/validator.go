package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"askaprilai-be/internal/pkg/apperror"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation and converts failures into a
// ValidationError listing the offending fields.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.Validation(err.Error())
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fieldName(fe))
	}

	return apperror.Validation(
		fmt.Sprintf("Missing or invalid fields: %s", strings.Join(fields, ", ")),
		fields...,
	)
}

func fieldName(fe validator.FieldError) string {
	// Report the field in lowerCamel to match the JSON body keys.
	name := fe.Field()
	if name == "" {
		return fe.StructField()
	}
	return strings.ToLower(name[:1]) + name[1:]
}
