// Package validators holds custom go-playground validator functions shared by request DTOs.
package validators

import (
	"github.com/MGTheTrain/cipher-lab/internal/domain/algorithms"

	"github.com/go-playground/validator/v10"
)

// Tag names under which the validators are registered
const (
	AlgorithmTag = "algorithm"
	KeyLengthTag = "keyLength"
)

// AlgorithmValidation accepts names of catalog algorithms.
func AlgorithmValidation(fl validator.FieldLevel) bool {
	_, err := algorithms.Lookup(fl.Field().String())
	return err == nil
}

// KeyLengthValidation checks that the key carries at least as many bits as the
// algorithm named by the sibling Algorithm field requires.
func KeyLengthValidation(fl validator.FieldLevel) bool {
	algorithm, err := algorithms.Lookup(fl.Parent().FieldByName("Algorithm").String())
	if err != nil {
		return false
	}
	return algorithm.ValidateKey(fl.Field().String()) == nil
}

// Register registers all custom validators on validate.
func Register(validate *validator.Validate) error {
	if err := validate.RegisterValidation(AlgorithmTag, AlgorithmValidation); err != nil {
		return err
	}
	return validate.RegisterValidation(KeyLengthTag, KeyLengthValidation)
}
