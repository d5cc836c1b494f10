package store

import (
	"fmt"

	"github.com/light-bringer/pos-service/internal/app/pos/domain"
	"github.com/light-bringer/pos-service/internal/app/pos/events"
	"github.com/light-bringer/pos-service/internal/pkg/committer"
)

// Customers owns the customer register. Ids follow the same max+1
// allocation as the catalog and customers keep their insertion order.
type Customers struct {
	comm  *committer.Committer
	bus   *events.Bus
	byID  map[int64]*domain.Customer
	order []int64
}

// NewCustomers creates an empty customer register bound to the shared
// committer.
func NewCustomers(comm *committer.Committer, bus *events.Bus) *Customers {
	return &Customers{
		comm: comm,
		bus:  bus,
		byID: make(map[int64]*domain.Customer),
	}
}

// AddCustomer validates the fields, assigns the next id and appends the
// customer with zero loyalty points. Returns a clone of the stored
// customer.
func (s *Customers) AddCustomer(name, email, phone string) (*domain.Customer, error) {
	var customer *domain.Customer

	plan := committer.NewPlan()
	plan.Add(committer.Mutation{
		Validate: func() error {
			c, err := domain.NewCustomer(s.nextID(), name, email, phone)
			if err != nil {
				return err
			}
			customer = c
			return nil
		},
		Apply: func() {
			s.byID[customer.ID()] = customer
			s.order = append(s.order, customer.ID())
		},
	})

	if err := s.comm.Apply(plan); err != nil {
		return nil, err
	}

	s.bus.Publish(&domain.CustomerAddedEvent{CustomerID: customer.ID(), Name: customer.Name()})
	return customer.Clone(), nil
}

// UpdateCustomer replaces the contact fields of an existing customer.
// Loyalty points are untouched.
func (s *Customers) UpdateCustomer(id int64, name, email, phone string) error {
	var updated *domain.Customer

	plan := committer.NewPlan()
	plan.Add(committer.Mutation{
		Validate: func() error {
			c, ok := s.byID[id]
			if !ok {
				return fmt.Errorf("update customer %d: %w", id, domain.ErrCustomerNotFound)
			}
			scratch := c.Clone()
			if err := scratch.Update(name, email, phone); err != nil {
				return err
			}
			updated = scratch
			return nil
		},
		Apply: func() {
			s.byID[id] = updated
		},
	})

	if err := s.comm.Apply(plan); err != nil {
		return err
	}

	s.bus.Publish(&domain.CustomerUpdatedEvent{CustomerID: id, Name: updated.Name()})
	return nil
}

// DeleteCustomer removes a customer. Historical sales keep referencing the
// id; readers resolve it to unknown.
func (s *Customers) DeleteCustomer(id int64) error {
	plan := committer.NewPlan()
	plan.Add(committer.Mutation{
		Validate: func() error {
			if _, ok := s.byID[id]; !ok {
				return fmt.Errorf("delete customer %d: %w", id, domain.ErrCustomerNotFound)
			}
			return nil
		},
		Apply: func() {
			delete(s.byID, id)
			for i, cid := range s.order {
				if cid == id {
					s.order = append(s.order[:i], s.order[i+1:]...)
					break
				}
			}
		},
	})

	if err := s.comm.Apply(plan); err != nil {
		return err
	}

	s.bus.Publish(&domain.CustomerDeletedEvent{CustomerID: id})
	return nil
}

// Get returns a clone of the customer, or false if the id is unknown.
func (s *Customers) Get(id int64) (*domain.Customer, bool) {
	var c *domain.Customer
	s.comm.Read(func() {
		if found, ok := s.byID[id]; ok {
			c = found.Clone()
		}
	})
	if c == nil {
		return nil, false
	}
	return c, true
}

// List returns clones of all customers in insertion order.
func (s *Customers) List() []*domain.Customer {
	var out []*domain.Customer
	s.comm.Read(func() {
		out = make([]*domain.Customer, 0, len(s.order))
		for _, id := range s.order {
			out = append(out, s.byID[id].Clone())
		}
	})
	return out
}

// Restore inserts a customer with its existing id, bypassing id
// allocation and event publication. Used when loading fixtures.
func (s *Customers) Restore(c *domain.Customer) error {
	plan := committer.NewPlan()
	plan.Add(committer.Mutation{
		Validate: func() error {
			if _, ok := s.byID[c.ID()]; ok {
				return fmt.Errorf("restore customer %d: id already present", c.ID())
			}
			return nil
		},
		Apply: func() {
			s.byID[c.ID()] = c.Clone()
			s.order = append(s.order, c.ID())
		},
	})
	return s.comm.Apply(plan)
}

func (s *Customers) nextID() int64 {
	var max int64
	for id := range s.byID {
		if id > max {
			max = id
		}
	}
	return max + 1
}
