package validation

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var stepIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// RegisterBindingValidators adds the custom tags used by request DTOs to gin's validator
func RegisterBindingValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return Register(v)
}

// Register adds the custom tags to a validator instance
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation("stepid", validateStepID); err != nil {
		return err
	}
	if err := v.RegisterValidation("selectiontype", validateSelectionType); err != nil {
		return err
	}
	return v.RegisterValidation("pricesource", validatePriceSource)
}

// validateStepID accepts lowercase slug ids such as "rear-glass-wall"
func validateStepID(fl validator.FieldLevel) bool {
	return stepIDPattern.MatchString(fl.Field().String())
}

func validateSelectionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "single", "multi":
		return true
	}
	return false
}

func validatePriceSource(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "manual", "pipedrive":
		return true
	}
	return false
}

// IsStepID reports whether s is a well-formed step or product id
func IsStepID(s string) bool {
	return stepIDPattern.MatchString(s)
}
