package validation

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var bloodTypeRe = regexp.MustCompile(`^(A|B|AB|O)[+-]$`)

// Register wires the custom binding rules into gin's validator. Safe to call
// more than once.
func Register() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("bloodtype", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		return bloodTypeRe.MatchString(value)
	})
}
