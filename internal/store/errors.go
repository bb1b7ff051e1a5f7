package store

import (
	"errors"
	"fmt"
)

// Sentinel errors for the store's failure taxonomy. Every failed operation
// leaves all collections unchanged.
var (
	// ErrValidation is matched by ValidationError via errors.Is.
	ErrValidation = errors.New("validation failed")

	// ErrWeakCredential is returned when a signup password is under 6 characters.
	ErrWeakCredential = errors.New("password must be at least 6 characters")

	// ErrDuplicateUser is returned when an email is already registered.
	ErrDuplicateUser = errors.New("user with this email already exists")

	// ErrInvalidCredentials is returned when no user matches email and password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInsufficientAvailability is returned when a purchase exceeds the
	// event's remaining capacity (a sold-out event has zero remaining).
	ErrInsufficientAvailability = errors.New("not enough tickets available")

	// ErrInvalidPayment is matched by PaymentError via errors.Is.
	ErrInvalidPayment = errors.New("invalid payment details")

	// ErrInsufficientBalance is returned when a withdrawal exceeds the
	// user's balance.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrNotLoggedIn is returned by operations that need a current user.
	ErrNotLoggedIn = errors.New("no user is logged in")
)

// ValidationError reports the first missing or malformed input field.
type ValidationError struct {
	Field  string
	Reason string // defaults to "is required"
}

func (e *ValidationError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "is required"
	}
	return fmt.Sprintf("validation failed: %s %s", e.Field, reason)
}

// Is makes errors.Is(err, ErrValidation) hold for any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// PaymentError reports which payment field failed validation: one of
// cardholderName, cardNumber, expiry, cvv.
type PaymentError struct {
	Field string
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("invalid payment details: %s", e.Field)
}

// Is makes errors.Is(err, ErrInvalidPayment) hold for any PaymentError.
func (e *PaymentError) Is(target error) bool {
	return target == ErrInvalidPayment
}
