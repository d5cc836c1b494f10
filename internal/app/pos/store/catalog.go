// Package store implements the three session-scoped stores: the product
// catalog, the customer register and the sale ledger. Each store owns its
// collection outright; callers only ever see clones, and every write is
// staged as a mutation and applied through the shared committer.
package store

import (
	"fmt"

	"github.com/light-bringer/pos-service/internal/app/pos/domain"
	"github.com/light-bringer/pos-service/internal/app/pos/events"
	"github.com/light-bringer/pos-service/internal/pkg/committer"
)

// Catalog owns the set of products and their stock levels. Products keep
// their insertion order, which is the display and tie-break order used by
// every report.
type Catalog struct {
	comm  *committer.Committer
	bus   *events.Bus
	byID  map[int64]*domain.Product
	order []int64
}

// NewCatalog creates an empty Catalog bound to the shared committer.
func NewCatalog(comm *committer.Committer, bus *events.Bus) *Catalog {
	return &Catalog{
		comm: comm,
		bus:  bus,
		byID: make(map[int64]*domain.Product),
	}
}

// AddProduct validates the fields, assigns the next id (max existing + 1,
// or 1 for an empty catalog) and appends the product. Returns a clone of
// the stored product.
func (c *Catalog) AddProduct(name, description, category string, price *domain.Money, quantity int64) (*domain.Product, error) {
	var product *domain.Product

	plan := committer.NewPlan()
	plan.Add(committer.Mutation{
		Validate: func() error {
			p, err := domain.NewProduct(c.nextID(), name, description, category, price, quantity)
			if err != nil {
				return err
			}
			product = p
			return nil
		},
		Apply: func() {
			c.byID[product.ID()] = product
			c.order = append(c.order, product.ID())
		},
	})

	if err := c.comm.Apply(plan); err != nil {
		return nil, err
	}

	c.bus.Publish(&domain.ProductAddedEvent{
		ProductID: product.ID(),
		Name:      product.Name(),
		Category:  product.Category(),
		Quantity:  product.Quantity(),
		LowStock:  product.LowStock(),
	})
	return product.Clone(), nil
}

// UpdateProduct replaces the mutable fields of an existing product.
func (c *Catalog) UpdateProduct(id int64, name, description, category string, price *domain.Money, quantity int64) error {
	var updated *domain.Product

	plan := committer.NewPlan()
	plan.Add(committer.Mutation{
		Validate: func() error {
			p, ok := c.byID[id]
			if !ok {
				return fmt.Errorf("update product %d: %w", id, domain.ErrProductNotFound)
			}
			// Validate against a scratch copy so a rejected edit leaves
			// the stored product untouched.
			scratch := p.Clone()
			if err := scratch.Update(name, description, category, price, quantity); err != nil {
				return err
			}
			updated = scratch
			return nil
		},
		Apply: func() {
			c.byID[id] = updated
		},
	})

	if err := c.comm.Apply(plan); err != nil {
		return err
	}

	c.bus.Publish(&domain.ProductUpdatedEvent{
		ProductID: id,
		Name:      updated.Name(),
		LowStock:  updated.LowStock(),
	})
	return nil
}

// DeleteProduct removes a product. Historical sales keep referencing the
// id; readers resolve it to unknown.
func (c *Catalog) DeleteProduct(id int64) error {
	plan := committer.NewPlan()
	plan.Add(committer.Mutation{
		Validate: func() error {
			if _, ok := c.byID[id]; !ok {
				return fmt.Errorf("delete product %d: %w", id, domain.ErrProductNotFound)
			}
			return nil
		},
		Apply: func() {
			delete(c.byID, id)
			for i, pid := range c.order {
				if pid == id {
					c.order = append(c.order[:i], c.order[i+1:]...)
					break
				}
			}
		},
	})

	if err := c.comm.Apply(plan); err != nil {
		return err
	}

	c.bus.Publish(&domain.ProductDeletedEvent{ProductID: id})
	return nil
}

// AdjustQuantity applies a signed stock delta. An adjustment that would
// drive the quantity negative is rejected with no side effect. The reason
// is carried on the published event only.
func (c *Catalog) AdjustQuantity(id, delta int64, reason string) error {
	var adjusted *domain.Product

	plan := committer.NewPlan()
	plan.Add(committer.Mutation{
		Validate: func() error {
			p, ok := c.byID[id]
			if !ok {
				return fmt.Errorf("adjust product %d: %w", id, domain.ErrProductNotFound)
			}
			scratch := p.Clone()
			if err := scratch.AdjustQuantity(delta); err != nil {
				return err
			}
			adjusted = scratch
			return nil
		},
		Apply: func() {
			c.byID[id] = adjusted
		},
	})

	if err := c.comm.Apply(plan); err != nil {
		return err
	}

	c.bus.Publish(&domain.StockAdjustedEvent{
		ProductID:   id,
		Delta:       delta,
		NewQuantity: adjusted.Quantity(),
		Reason:      reason,
		LowStock:    adjusted.LowStock(),
	})
	return nil
}

// CommitSaleMut stages the stock side of a sale commit: it validates every
// line against current stock, snapshots the total at current prices into
// draft, and on apply decrements each product's quantity. Cart lines are
// unique per product, so each decrement hits a distinct product.
func (c *Catalog) CommitSaleMut(lines []domain.SaleLine, draft *SaleDraft) committer.Mutation {
	return committer.Mutation{
		Validate: func() error {
			total := domain.ZeroMoney()
			for _, line := range lines {
				p, ok := c.byID[line.ProductID]
				if !ok {
					return fmt.Errorf("sale line product %d: %w", line.ProductID, domain.ErrProductNotFound)
				}
				if p.Quantity() < line.Quantity {
					return fmt.Errorf("product %d has %d in stock, %d requested: %w",
						line.ProductID, p.Quantity(), line.Quantity, domain.ErrInsufficientStock)
				}
				total = total.Add(p.Price().MultiplyInt(line.Quantity))
			}
			draft.Total = total
			return nil
		},
		Apply: func() {
			for _, line := range lines {
				// Cannot fail: validated against the same locked state.
				_ = c.byID[line.ProductID].AdjustQuantity(-line.Quantity)
			}
		},
	}
}

// Get returns a clone of the product, or false if the id is unknown.
func (c *Catalog) Get(id int64) (*domain.Product, bool) {
	var p *domain.Product
	c.comm.Read(func() {
		if found, ok := c.byID[id]; ok {
			p = found.Clone()
		}
	})
	if p == nil {
		return nil, false
	}
	return p, true
}

// List returns clones of all products in catalog order.
func (c *Catalog) List() []*domain.Product {
	var out []*domain.Product
	c.comm.Read(func() {
		out = c.listLocked()
	})
	return out
}

// InStock returns clones of all products with at least one unit on hand,
// in catalog order.
func (c *Catalog) InStock() []*domain.Product {
	var out []*domain.Product
	c.comm.Read(func() {
		for _, id := range c.order {
			if p := c.byID[id]; p.Quantity() > 0 {
				out = append(out, p.Clone())
			}
		}
	})
	return out
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	var n int
	c.comm.Read(func() {
		n = len(c.byID)
	})
	return n
}

// Restore inserts a product with its existing id, bypassing id allocation
// and event publication. Used when loading fixtures.
func (c *Catalog) Restore(p *domain.Product) error {
	plan := committer.NewPlan()
	plan.Add(committer.Mutation{
		Validate: func() error {
			if _, ok := c.byID[p.ID()]; ok {
				return fmt.Errorf("restore product %d: id already present", p.ID())
			}
			return nil
		},
		Apply: func() {
			c.byID[p.ID()] = p.Clone()
			c.order = append(c.order, p.ID())
		},
	})
	return c.comm.Apply(plan)
}

func (c *Catalog) listLocked() []*domain.Product {
	out := make([]*domain.Product, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id].Clone())
	}
	return out
}

func (c *Catalog) nextID() int64 {
	var max int64
	for id := range c.byID {
		if id > max {
			max = id
		}
	}
	return max + 1
}
