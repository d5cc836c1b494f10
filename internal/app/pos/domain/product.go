package domain

// LowStockThreshold is the quantity below which a product counts as low
// stock. It is a single fixed threshold, not configurable per product.
const LowStockThreshold = 10

// Product is the aggregate for catalog entries. Quantity is the only field
// touched by sales; everything else changes only through explicit edits.
type Product struct {
	id          int64
	name        string
	description string
	category    string
	price       *Money
	quantity    int64
}

// NewProduct creates a new Product aggregate.
func NewProduct(id int64, name, description, category string, price *Money, quantity int64) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if category == "" {
		return nil, ErrEmptyCategory
	}
	if price == nil || price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}

	return &Product{
		id:          id,
		name:        name,
		description: description,
		category:    category,
		price:       price.Copy(),
		quantity:    quantity,
	}, nil
}

// Getters
func (p *Product) ID() int64           { return p.id }
func (p *Product) Name() string        { return p.name }
func (p *Product) Description() string { return p.description }
func (p *Product) Category() string    { return p.category }
func (p *Product) Price() *Money       { return p.price.Copy() }
func (p *Product) Quantity() int64     { return p.quantity }

// LowStock reports whether the current quantity is below the threshold.
func (p *Product) LowStock() bool {
	return p.quantity < LowStockThreshold
}

// InventoryValue returns price multiplied by quantity on hand.
func (p *Product) InventoryValue() *Money {
	return p.price.MultiplyInt(p.quantity)
}

// Update replaces all mutable fields, applying the same validation as
// creation. The id never changes.
func (p *Product) Update(name, description, category string, price *Money, quantity int64) error {
	if name == "" {
		return ErrEmptyName
	}
	if category == "" {
		return ErrEmptyCategory
	}
	if price == nil || price.IsNegative() {
		return ErrInvalidPrice
	}
	if quantity < 0 {
		return ErrInvalidQuantity
	}

	p.name = name
	p.description = description
	p.category = category
	p.price = price.Copy()
	p.quantity = quantity
	return nil
}

// AdjustQuantity applies a signed delta to the stock level. A delta that
// would drive the quantity negative is rejected with no side effect.
func (p *Product) AdjustQuantity(delta int64) error {
	newQuantity := p.quantity + delta
	if newQuantity < 0 {
		return ErrInvalidAdjustment
	}
	p.quantity = newQuantity
	return nil
}

// Clone returns an independent copy. Stores hand out clones so callers can
// never mutate catalog state behind the store's back.
func (p *Product) Clone() *Product {
	return &Product{
		id:          p.id,
		name:        p.name,
		description: p.description,
		category:    p.category,
		price:       p.price.Copy(),
		quantity:    p.quantity,
	}
}
