package services

import (
	"github.com/light-bringer/pos-service/internal/app/pos/checkout"
	"github.com/light-bringer/pos-service/internal/app/pos/domain"
	"github.com/light-bringer/pos-service/internal/app/pos/events"
	"github.com/light-bringer/pos-service/internal/app/pos/reports"
	"github.com/light-bringer/pos-service/internal/app/pos/store"
	"github.com/light-bringer/pos-service/internal/pkg/clock"
	"github.com/light-bringer/pos-service/internal/pkg/committer"
	"github.com/light-bringer/pos-service/internal/pkg/logger"
	"github.com/light-bringer/pos-service/internal/pkg/metrics"
)

// ServiceOptions holds the wired application: the three stores, the
// checkout engine, the report views and the shared infrastructure.
type ServiceOptions struct {
	Catalog   *store.Catalog
	Customers *store.Customers
	Ledger    *store.Ledger
	Checkout  *checkout.Service
	Reports   *reports.Reports
	Bus       *events.Bus
	Metrics   *metrics.Registry
	Clock     clock.Clock
	Log       *logger.Logger
}

// NewServiceOptions wires up the application with the given clock and
// logger. Stores share one committer, so commits and stock adjustments are
// serialized and reads never see a half-applied sale. The event bus feeds
// the log and metrics subscribers.
func NewServiceOptions(clk clock.Clock, log *logger.Logger) *ServiceOptions {
	comm := committer.NewCommitter()
	bus := events.NewBus(clk)

	catalog := store.NewCatalog(comm, bus)
	customers := store.NewCustomers(comm, bus)
	ledger := store.NewLedger(comm)

	checkoutSvc := checkout.NewService(catalog, ledger, comm, bus, clk)
	reportsView := reports.New(catalog, customers, ledger)

	reg := metrics.NewRegistry()
	bus.Subscribe(logSubscriber(log))
	bus.Subscribe(metricsSubscriber(reg, reportsView))

	return &ServiceOptions{
		Catalog:   catalog,
		Customers: customers,
		Ledger:    ledger,
		Checkout:  checkoutSvc,
		Reports:   reportsView,
		Bus:       bus,
		Metrics:   reg,
		Clock:     clk,
		Log:       log,
	}
}

// logSubscriber logs every store change with its envelope id.
func logSubscriber(log *logger.Logger) events.Handler {
	return func(env events.Envelope) {
		l := log.With("event_id", env.EventID, "event", env.Event.EventType(), "aggregate_id", env.Event.AggregateID())
		switch e := env.Event.(type) {
		case *domain.SaleCommittedEvent:
			l.Info("sale committed", "customer_id", e.CustomerID, "units", e.Units, "total", e.Total.String(), "payment", string(e.PaymentMethod))
		case *domain.StockAdjustedEvent:
			l.Info("stock adjusted", "delta", e.Delta, "new_quantity", e.NewQuantity, "reason", e.Reason, "low_stock", e.LowStock)
		default:
			l.Info("store changed")
		}
	}
}

// metricsSubscriber keeps the prometheus collectors in step with the
// stores. Gauges are recomputed from the report views, which read under
// the shared lock.
func metricsSubscriber(reg *metrics.Registry, r *reports.Reports) events.Handler {
	return func(env events.Envelope) {
		switch e := env.Event.(type) {
		case *domain.SaleCommittedEvent:
			reg.SalesCommitted.Inc()
			reg.UnitsSold.Add(float64(e.Units))
		case *domain.StockAdjustedEvent:
			reg.StockAdjusted.Inc()
		}
		summary := r.DashboardSummary()
		reg.LowStockProducts.Set(float64(summary.LowStockCount))
		reg.CatalogSize.Set(float64(summary.TotalProducts))
	}
}
