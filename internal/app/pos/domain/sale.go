package domain

import "time"

// PaymentMethod enumerates the accepted payment methods.
type PaymentMethod string

const (
	PaymentCash        PaymentMethod = "Cash"
	PaymentCard        PaymentMethod = "Card"
	PaymentMobileMoney PaymentMethod = "Mobile Money"
)

// ParsePaymentMethod validates a raw payment method string.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentCash, PaymentCard, PaymentMobileMoney:
		return PaymentMethod(s), nil
	}
	return "", ErrInvalidPaymentMethod
}

// Valid reports whether the method is one of the enumerated values.
func (pm PaymentMethod) Valid() bool {
	switch pm {
	case PaymentCash, PaymentCard, PaymentMobileMoney:
		return true
	}
	return false
}

// SaleLine is one (product, quantity) pair of a sale or cart.
type SaleLine struct {
	ProductID int64
	Quantity  int64
}

// Sale is one committed transaction. It is immutable after creation: the
// total is a snapshot of prices at commit time and later price edits never
// change it. Line items may reference products that have since been
// deleted; resolving those is the reader's problem.
type Sale struct {
	id         int64
	customerID int64
	date       time.Time
	lines      []SaleLine
	total      *Money
	payment    PaymentMethod
}

// NewSale creates a committed Sale.
func NewSale(id, customerID int64, date time.Time, lines []SaleLine, total *Money, payment PaymentMethod) (*Sale, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	if customerID == 0 {
		return nil, ErrNoCustomer
	}
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, ErrInvalidLineQuantity
		}
	}
	if total == nil || total.IsNegative() {
		return nil, ErrInvalidPrice
	}
	if !payment.Valid() {
		return nil, ErrInvalidPaymentMethod
	}

	copied := make([]SaleLine, len(lines))
	copy(copied, lines)

	return &Sale{
		id:         id,
		customerID: customerID,
		date:       date,
		lines:      copied,
		total:      total.Copy(),
		payment:    payment,
	}, nil
}

// Getters
func (s *Sale) ID() int64                     { return s.id }
func (s *Sale) CustomerID() int64             { return s.customerID }
func (s *Sale) Date() time.Time               { return s.date }
func (s *Sale) Total() *Money                 { return s.total.Copy() }
func (s *Sale) PaymentMethod() PaymentMethod  { return s.payment }

// Lines returns a copy of the line items in order.
func (s *Sale) Lines() []SaleLine {
	lines := make([]SaleLine, len(s.lines))
	copy(lines, s.lines)
	return lines
}

// UnitsOf returns the quantity of the given product in this sale, zero if
// the product does not appear.
func (s *Sale) UnitsOf(productID int64) int64 {
	var units int64
	for _, line := range s.lines {
		if line.ProductID == productID {
			units += line.Quantity
		}
	}
	return units
}
