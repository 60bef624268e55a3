package config

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/vovakirdan/citywalk/internal/core"
)

var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

// getValidator returns the process-wide validator with the "color" tag
// registered.
func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
		//nolint:errcheck // Registration only fails for an empty tag name.
		validatorInst.RegisterValidation("color", isNamedColor)
	})
	return validatorInst
}

// isNamedColor accepts any core.Color that has a config name.
func isNamedColor(fl validator.FieldLevel) bool {
	c, ok := fl.Field().Interface().(core.Color)
	return ok && c.String() != "unknown"
}

func validateStruct(v any) error {
	return getValidator().Struct(v)
}
