package errs

import (
	"errors"
)

var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrOverReturn        = errors.New("movement exceeds borrowed quantity")
	ErrInvalidLineItem   = errors.New("line item does not belong to loan")

	ErrUnauthorized = errors.New("invalid credentials")
	ErrInactive     = errors.New("teacher is inactive")
	ErrConflict     = errors.New("already exists")

	// ErrStockInvariant means a release would push available above total.
	ErrStockInvariant = errors.New("stock invariant violated")
	// ErrStatusRegression means a derived status went backwards.
	ErrStatusRegression = errors.New("loan status regression")
)

type ErrorResponse struct {
	Message string `json:"message"`
}
