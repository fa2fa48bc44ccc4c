package validate

import (
	"unicode"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	v := validator.New()
	// letters and spaces only, non-empty once spaces are stripped
	_ = v.RegisterValidation("alphaspace", alphaSpace)
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func alphaSpace(fl validator.FieldLevel) bool {
	var letters int
	for _, r := range fl.Field().String() {
		if r == ' ' {
			continue
		}
		if !unicode.IsLetter(r) {
			return false
		}
		letters++
	}
	return letters > 0
}
