package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles the POS counters and gauges on a private prometheus
// registry so tests can create isolated instances.
type Registry struct {
	reg *prometheus.Registry

	SalesCommitted   prometheus.Counter
	UnitsSold        prometheus.Counter
	StockAdjusted    prometheus.Counter
	LowStockProducts prometheus.Gauge
	CatalogSize      prometheus.Gauge
}

// NewRegistry creates a Registry with all collectors registered.
func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	salesCommitted := prometheus.NewCounter(prometheus.CounterOpts{Name: "pos_sales_committed_total"})
	unitsSold := prometheus.NewCounter(prometheus.CounterOpts{Name: "pos_units_sold_total"})
	stockAdjusted := prometheus.NewCounter(prometheus.CounterOpts{Name: "pos_stock_adjustments_total"})
	lowStock := prometheus.NewGauge(prometheus.GaugeOpts{Name: "pos_low_stock_products"})
	catalogSize := prometheus.NewGauge(prometheus.GaugeOpts{Name: "pos_catalog_products"})

	r.MustRegister(salesCommitted, unitsSold, stockAdjusted, lowStock, catalogSize)

	return &Registry{
		reg:              r,
		SalesCommitted:   salesCommitted,
		UnitsSold:        unitsSold,
		StockAdjusted:    stockAdjusted,
		LowStockProducts: lowStock,
		CatalogSize:      catalogSize,
	}
}

// Handler exposes the registry in prometheus text format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
