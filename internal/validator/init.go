package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	// Initialize validation
	validate = validator.New(validator.WithRequiredStructEnabled())

	// playermark accepts an empty cell, X or O.
	if err := validate.RegisterValidation("playermark", validatePlayerMark); err != nil {
		panic(err)
	}
}

func validatePlayerMark(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "X", "O":
		return true
	}
	return false
}

func GetValidator() *validator.Validate {
	return validate
}
