package utils

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// InitValidator registers custom validation rules with gin's binding engine.
func InitValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("notecolor", ValidateNoteColorRule)
	}
}

// ValidateNoteColorRule accepts any hex color string. Palette membership is
// deliberately not enforced; the model falls back to the default color for
// blank values.
func ValidateNoteColorRule(fl validator.FieldLevel) bool {
	return ValidateNoteColor(fl.Field().String())
}

func ValidateNoteColor(color string) bool {
	if color == "" {
		return true
	}
	return hexColorPattern.MatchString(color)
}
