package domain

import "errors"

// Domain errors as sentinel values
var (
	// Validation errors
	ErrEmptyName            = errors.New("name cannot be empty")
	ErrEmptyCategory        = errors.New("category cannot be empty")
	ErrEmptyEmail           = errors.New("email cannot be empty")
	ErrEmptyPhone           = errors.New("phone cannot be empty")
	ErrInvalidPrice         = errors.New("price must be non-negative")
	ErrInvalidQuantity      = errors.New("quantity must be non-negative")
	ErrInvalidLineQuantity  = errors.New("line quantity must be at least 1")
	ErrInvalidPaymentMethod = errors.New("payment method must be Cash, Card or Mobile Money")

	// Lookup errors
	ErrProductNotFound  = errors.New("product not found")
	ErrCustomerNotFound = errors.New("customer not found")

	// Stock errors
	ErrInsufficientStock = errors.New("requested quantity exceeds available stock")
	ErrInvalidAdjustment = errors.New("adjustment would drive stock negative")

	// Cart errors
	ErrLineIndexOutOfRange = errors.New("cart line index out of range")
	ErrEmptyCart           = errors.New("cart has no items")
	ErrNoCustomer          = errors.New("sale requires a customer")
)
