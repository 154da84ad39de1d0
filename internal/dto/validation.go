package dto

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the custom binding tags used by the request DTOs.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("profile_mode", validateProfileMode)
}

func validateProfileMode(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case ModeSingle, ModeList:
		return true
	}
	return false
}
