package domain

// Customer is the aggregate for ledger customers. Loyalty points start at
// zero and are never changed by any core operation; they are managed by an
// external process.
type Customer struct {
	id            int64
	name          string
	email         string
	phone         string
	loyaltyPoints int64
}

// NewCustomer creates a new Customer aggregate with zero loyalty points.
func NewCustomer(id int64, name, email, phone string) (*Customer, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if email == "" {
		return nil, ErrEmptyEmail
	}
	if phone == "" {
		return nil, ErrEmptyPhone
	}

	return &Customer{
		id:    id,
		name:  name,
		email: email,
		phone: phone,
	}, nil
}

// ReconstructCustomer rebuilds a Customer from known-good values, loyalty
// points included. Used when loading fixtures.
func ReconstructCustomer(id int64, name, email, phone string, loyaltyPoints int64) *Customer {
	return &Customer{
		id:            id,
		name:          name,
		email:         email,
		phone:         phone,
		loyaltyPoints: loyaltyPoints,
	}
}

// Getters
func (c *Customer) ID() int64            { return c.id }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) Email() string        { return c.email }
func (c *Customer) Phone() string        { return c.phone }
func (c *Customer) LoyaltyPoints() int64 { return c.loyaltyPoints }

// Update replaces the contact fields. Loyalty points are preserved.
func (c *Customer) Update(name, email, phone string) error {
	if name == "" {
		return ErrEmptyName
	}
	if email == "" {
		return ErrEmptyEmail
	}
	if phone == "" {
		return ErrEmptyPhone
	}

	c.name = name
	c.email = email
	c.phone = phone
	return nil
}

// Clone returns an independent copy.
func (c *Customer) Clone() *Customer {
	clone := *c
	return &clone
}
