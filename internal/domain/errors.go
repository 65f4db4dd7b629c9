package domain

import "errors"

var (
	ErrNotFound          = errors.New("entity not found")
	ErrInvalidQuantity   = errors.New("quantity must be a positive integer")
	ErrInactiveMerchant  = errors.New("merchant is deactivated")
	ErrInactiveProduct   = errors.New("product is deactivated")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrConflict          = errors.New("entity already exists")
	ErrValidation        = errors.New("invalid argument")
)
