// Package checkout implements the transaction engine: cart assembly and
// the atomic commit that turns a cart into a ledger entry while
// decrementing stock.
package checkout

import (
	"fmt"
	"sync"

	"github.com/light-bringer/pos-service/internal/app/pos/domain"
	"github.com/light-bringer/pos-service/internal/app/pos/events"
	"github.com/light-bringer/pos-service/internal/app/pos/store"
	"github.com/light-bringer/pos-service/internal/pkg/clock"
	"github.com/light-bringer/pos-service/internal/pkg/committer"
)

// Service holds the single active cart and orchestrates commits. Cart
// operations are serialized on the service's own mutex; the commit itself
// is staged as one mutation plan, so the ledger append and every stock
// decrement land atomically or not at all.
type Service struct {
	mu      sync.Mutex
	cart    *domain.Cart
	catalog *store.Catalog
	ledger  *store.Ledger
	comm    *committer.Committer
	bus     *events.Bus
	clock   clock.Clock
}

// NewService creates a Service with a fresh empty cart.
func NewService(catalog *store.Catalog, ledger *store.Ledger, comm *committer.Committer, bus *events.Bus, clk clock.Clock) *Service {
	return &Service{
		cart:    domain.NewCart(),
		catalog: catalog,
		ledger:  ledger,
		comm:    comm,
		bus:     bus,
		clock:   clk,
	}
}

// AddItem adds quantity units of a product to the cart after checking the
// catalog's current stock. A product already in the cart is merged by
// summing quantities; the merged total is not re-checked here, only at
// commit.
func (s *Service) AddItem(productID, quantity int64) error {
	if quantity < 1 {
		return domain.ErrInvalidLineQuantity
	}

	product, ok := s.catalog.Get(productID)
	if !ok {
		return fmt.Errorf("add item %d: %w", productID, domain.ErrProductNotFound)
	}
	if product.Quantity() < quantity {
		return fmt.Errorf("product %d has %d in stock, %d requested: %w",
			productID, product.Quantity(), quantity, domain.ErrInsufficientStock)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.AddLine(productID, quantity)
}

// RemoveItem removes the cart line at the given position.
func (s *Service) RemoveItem(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.RemoveLine(index)
}

// SetCustomer selects the customer for the pending sale.
func (s *Service) SetCustomer(customerID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.SetCustomer(customerID)
}

// SetPaymentMethod selects the payment method for the pending sale.
func (s *Service) SetPaymentMethod(pm domain.PaymentMethod) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.SetPaymentMethod(pm)
}

// Lines returns a copy of the current cart lines.
func (s *Service) Lines() []domain.SaleLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

// IsEmpty reports whether the cart has no lines.
func (s *Service) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.IsEmpty()
}

// Reset discards the cart without committing.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Reset()
}

// Total prices the cart at current catalog prices. A line referencing a
// deleted product contributes zero. Only the committed sale's total is
// frozen; this one moves with price edits.
func (s *Service) Total() *domain.Money {
	s.mu.Lock()
	lines := s.cart.Lines()
	s.mu.Unlock()

	total := domain.ZeroMoney()
	for _, line := range lines {
		if product, ok := s.catalog.Get(line.ProductID); ok {
			total = total.Add(product.Price().MultiplyInt(line.Quantity))
		}
	}
	return total
}

// Commit turns the cart into a committed sale: every line is re-validated
// against current stock, the total is computed from current prices, the
// sale is appended to the ledger and each product's quantity decremented,
// all in one plan. On any validation failure nothing changes and the cart
// is kept. On success the cart is reset to empty.
func (s *Service) Commit() (*domain.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}
	if s.cart.CustomerID() == 0 {
		return nil, domain.ErrNoCustomer
	}

	lines := s.cart.Lines()
	date := clock.Date(s.clock.Now())
	draft := &store.SaleDraft{}

	plan := committer.NewPlan()
	plan.Add(s.catalog.CommitSaleMut(lines, draft))
	plan.Add(s.ledger.AppendSaleMut(s.cart.CustomerID(), s.cart.PaymentMethod(), lines, date, draft))

	if err := s.comm.Apply(plan); err != nil {
		return nil, err
	}

	sale := draft.Sale
	s.cart.Reset()

	var units int64
	for _, line := range sale.Lines() {
		units += line.Quantity
	}
	s.bus.Publish(&domain.SaleCommittedEvent{
		SaleID:        sale.ID(),
		CustomerID:    sale.CustomerID(),
		Lines:         sale.Lines(),
		Units:         units,
		Total:         sale.Total(),
		PaymentMethod: sale.PaymentMethod(),
	})

	return sale, nil
}
