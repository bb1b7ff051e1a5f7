// Package validator wraps go-playground/validator with the card-payment
// rules, reporting the first failing field by its JSON name.
package validator

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	global *validator.Validate

	cardNumberRegex = regexp.MustCompile(`^\d{13,19}$`)
	expiryRegex     = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvRegex        = regexp.MustCompile(`^\d{3,4}$`)
)

func init() {
	SetValidator(New())
}

// New builds a Validate with the payment tags registered. Field names in
// errors come from json tags, matching the substrate's field naming.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("cardnumber", validateCardNumber)
	_ = v.RegisterValidation("expiry", validateExpiry)
	_ = v.RegisterValidation("cvv", validateCVV)
	return v
}

func SetValidator(v *validator.Validate) {
	global = v
}

func Validator() *validator.Validate {
	return global
}

// validateCardNumber accepts 13 to 19 digits, ignoring grouping spaces.
func validateCardNumber(fl validator.FieldLevel) bool {
	cleaned := strings.ReplaceAll(fl.Field().String(), " ", "")
	return cardNumberRegex.MatchString(cleaned)
}

// validateExpiry accepts MM/YY with a month between 01 and 12. Whether the
// date is in the past is the caller's check: it needs the reference clock.
func validateExpiry(fl validator.FieldLevel) bool {
	return expiryRegex.MatchString(fl.Field().String())
}

func validateCVV(fl validator.FieldLevel) bool {
	return cvvRegex.MatchString(fl.Field().String())
}

// FieldError names the first field that failed validation.
type FieldError struct {
	Field string
	Tag   string
}

func (e *FieldError) Error() string {
	return "invalid field: " + e.Field
}

// Validate checks the structure and returns a *FieldError for the first
// failure, in struct field order.
func Validate(structure any) error {
	err := Validator().Struct(structure)
	if err == nil {
		return nil
	}
	vErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(vErrors) == 0 {
		return err
	}
	ve := vErrors[0]
	return &FieldError{Field: ve.Field(), Tag: ve.Tag()}
}
