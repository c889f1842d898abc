package config

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/ledgerlens/backend/internal/benchmark"
	"github.com/ledgerlens/backend/internal/categorizer"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// Validator returns the validator with the custom rules registered.
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		if err := RegisterValidations(validate); err != nil {
			panic(err)
		}
	})
	return validate
}

// RegisterValidations adds the "bracket" and "sign" rules to v.
func RegisterValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("bracket", validateBracket); err != nil {
		return err
	}
	return v.RegisterValidation("sign", validateSign)
}

func validateBracket(fl validator.FieldLevel) bool {
	_, err := benchmark.ParseBracket(fl.Field().String())
	return err == nil
}

func validateSign(fl validator.FieldLevel) bool {
	return categorizer.Sign(fl.Field().String()).Valid()
}

func ValidationErrorToText(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "required_if":
		return fmt.Sprintf("%s is required", e.Namespace())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", e.Namespace(), e.Param())
	case "bracket":
		return fmt.Sprintf("%s must be one of %v", e.Namespace(), benchmark.Brackets())
	case "sign":
		return fmt.Sprintf("%s must be one of any, expense, income", e.Namespace())
	case "file":
		return fmt.Sprintf("%s must be an existing file", e.Namespace())
	}
	return fmt.Sprintf("%s is not valid", e.Namespace())
}
