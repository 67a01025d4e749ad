package dto

import (
	"fmt"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// monthTokenRe matches month tokens in YYYY-MM form with a valid month part.
var monthTokenRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// RegisterValidations installs custom binding validators on gin's
// validator engine. Must be called once before routes are served.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine type")
	}
	return v.RegisterValidation("month", func(fl validator.FieldLevel) bool {
		return monthTokenRe.MatchString(fl.Field().String())
	})
}
