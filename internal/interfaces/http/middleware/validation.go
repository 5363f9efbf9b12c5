package middleware

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs custom binding rules on gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("selector", validSelector)
}

// validSelector accepts the report selector convention: empty, or
// "category:<name>", or "product:<id>" with a non-empty remainder.
func validSelector(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	for _, prefix := range []string{"category:", "product:"} {
		if strings.HasPrefix(value, prefix) {
			return strings.TrimPrefix(value, prefix) != ""
		}
	}
	return false
}
