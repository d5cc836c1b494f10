package domain

// Cart is the transient in-progress sale being assembled before commit.
// It is pure state: stock validation against the catalog happens in the
// checkout service, not here.
type Cart struct {
	customerID int64 // 0 until a customer is selected
	lines      []SaleLine
	payment    PaymentMethod
}

// NewCart creates an empty cart with the default payment method.
func NewCart() *Cart {
	return &Cart{payment: PaymentCash}
}

// AddLine adds a (product, quantity) line. If the product is already in
// the cart the quantities are merged.
func (c *Cart) AddLine(productID, quantity int64) error {
	if quantity < 1 {
		return ErrInvalidLineQuantity
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity += quantity
			return nil
		}
	}
	c.lines = append(c.lines, SaleLine{ProductID: productID, Quantity: quantity})
	return nil
}

// RemoveLine removes the line at the given position.
func (c *Cart) RemoveLine(index int) error {
	if index < 0 || index >= len(c.lines) {
		return ErrLineIndexOutOfRange
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
	return nil
}

// SetCustomer selects the customer the sale will be attributed to.
func (c *Cart) SetCustomer(customerID int64) {
	c.customerID = customerID
}

// SetPaymentMethod sets the payment method; only the enumerated values are
// accepted.
func (c *Cart) SetPaymentMethod(pm PaymentMethod) error {
	if !pm.Valid() {
		return ErrInvalidPaymentMethod
	}
	c.payment = pm
	return nil
}

// CustomerID returns the selected customer id, zero if none.
func (c *Cart) CustomerID() int64 { return c.customerID }

// PaymentMethod returns the selected payment method.
func (c *Cart) PaymentMethod() PaymentMethod { return c.payment }

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

// Lines returns a copy of the cart lines in order.
func (c *Cart) Lines() []SaleLine {
	lines := make([]SaleLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Reset discards all state and returns the cart to empty with the default
// payment method.
func (c *Cart) Reset() {
	c.customerID = 0
	c.lines = nil
	c.payment = PaymentCash
}
