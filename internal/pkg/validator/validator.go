package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("pipediameter", validatePipeDiameter)
	_ = validate.RegisterValidation("pressure", validatePressure)
}

// Validate validates a struct against its `validate` tags.
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator returns the shared validator instance for custom
// registration outside this package.
func GetValidator() *validator.Validate {
	return validate
}

// validatePipeDiameter enforces the 100-2000mm pipe diameter range.
func validatePipeDiameter(fl validator.FieldLevel) bool {
	v := fl.Field().Float()
	return v >= 100 && v <= 2000
}

// validatePressure enforces the 1-100 atm max pressure range.
func validatePressure(fl validator.FieldLevel) bool {
	v := fl.Field().Float()
	return v >= 1 && v <= 100
}
