package domain

// Event is the base interface for all domain events. Stores publish an
// event after every successful mutation so derived views and observers can
// recompute without polling.
type Event interface {
	EventType() string
	AggregateID() int64
}

// ProductAddedEvent is emitted when a product is added to the catalog.
type ProductAddedEvent struct {
	ProductID int64
	Name      string
	Category  string
	Quantity  int64
	LowStock  bool
}

func (e *ProductAddedEvent) EventType() string  { return "product.added" }
func (e *ProductAddedEvent) AggregateID() int64 { return e.ProductID }

// ProductUpdatedEvent is emitted when product fields are edited.
type ProductUpdatedEvent struct {
	ProductID int64
	Name      string
	LowStock  bool
}

func (e *ProductUpdatedEvent) EventType() string  { return "product.updated" }
func (e *ProductUpdatedEvent) AggregateID() int64 { return e.ProductID }

// ProductDeletedEvent is emitted when a product is removed from the
// catalog. Historical sales keep referencing the id.
type ProductDeletedEvent struct {
	ProductID int64
}

func (e *ProductDeletedEvent) EventType() string  { return "product.deleted" }
func (e *ProductDeletedEvent) AggregateID() int64 { return e.ProductID }

// StockAdjustedEvent is emitted on a manual stock adjustment. Reason is an
// audit breadcrumb only; it never affects quantity math.
type StockAdjustedEvent struct {
	ProductID   int64
	Delta       int64
	NewQuantity int64
	Reason      string
	LowStock    bool
}

func (e *StockAdjustedEvent) EventType() string  { return "stock.adjusted" }
func (e *StockAdjustedEvent) AggregateID() int64 { return e.ProductID }

// CustomerAddedEvent is emitted when a customer is created.
type CustomerAddedEvent struct {
	CustomerID int64
	Name       string
}

func (e *CustomerAddedEvent) EventType() string  { return "customer.added" }
func (e *CustomerAddedEvent) AggregateID() int64 { return e.CustomerID }

// CustomerUpdatedEvent is emitted when customer contact fields are edited.
type CustomerUpdatedEvent struct {
	CustomerID int64
	Name       string
}

func (e *CustomerUpdatedEvent) EventType() string  { return "customer.updated" }
func (e *CustomerUpdatedEvent) AggregateID() int64 { return e.CustomerID }

// CustomerDeletedEvent is emitted when a customer is removed. Historical
// sales keep referencing the id.
type CustomerDeletedEvent struct {
	CustomerID int64
}

func (e *CustomerDeletedEvent) EventType() string  { return "customer.deleted" }
func (e *CustomerDeletedEvent) AggregateID() int64 { return e.CustomerID }

// SaleCommittedEvent is emitted once per committed sale, after the ledger
// append and all stock decrements have been applied.
type SaleCommittedEvent struct {
	SaleID        int64
	CustomerID    int64
	Lines         []SaleLine
	Units         int64
	Total         *Money
	PaymentMethod PaymentMethod
}

func (e *SaleCommittedEvent) EventType() string  { return "sale.committed" }
func (e *SaleCommittedEvent) AggregateID() int64 { return e.SaleID }
