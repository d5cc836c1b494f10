// Command posdemo wires the POS core, loads the Wings Cafe sample data,
// runs a short scripted session and prints the dashboards. It stands in
// for the presentation layer the core is designed to sit under.
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/light-bringer/pos-service/internal/app/pos/domain"
	"github.com/light-bringer/pos-service/internal/pkg/clock"
	"github.com/light-bringer/pos-service/internal/pkg/logger"
	"github.com/light-bringer/pos-service/internal/services"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("posdemo: %v", err)
	}
}

func run() error {
	config := loadConfig()

	lg, err := logger.New(config.LogMode)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer lg.Sync()

	opts := services.NewServiceOptions(clock.NewRealClock(), lg)

	if err := seed(opts); err != nil {
		return fmt.Errorf("failed to seed sample data: %w", err)
	}
	lg.Info("sample data loaded",
		"products", opts.Catalog.Len(),
		"customers", len(opts.Customers.List()),
		"sales", opts.Ledger.Len(),
	)

	if err := scriptedSession(opts); err != nil {
		return err
	}
	printDashboards(opts)

	// Optionally keep running to expose the prometheus endpoint.
	if config.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", opts.Metrics.Handler())
		server := &http.Server{Addr: config.MetricsAddr, Handler: mux}

		go func() {
			lg.Info("metrics listening", "addr", config.MetricsAddr)
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				lg.Error("metrics server error", "err", err)
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		<-sigCh
		return server.Close()
	}

	return nil
}

// scriptedSession exercises the core the way the sales screen would: build
// a cart, commit it, then demonstrate a rejected stock adjustment.
func scriptedSession(opts *services.ServiceOptions) error {
	co := opts.Checkout

	if err := co.AddItem(1, 2); err != nil {
		return fmt.Errorf("add item: %w", err)
	}
	if err := co.AddItem(5, 1); err != nil {
		return fmt.Errorf("add item: %w", err)
	}
	co.SetCustomer(2)
	if err := co.SetPaymentMethod(domain.PaymentMobileMoney); err != nil {
		return err
	}

	fmt.Printf("cart total before commit: %s\n", formatCurrency(co.Total()))

	sale, err := co.Commit()
	if err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	fmt.Printf("committed sale #%d for %s (%s)\n\n", sale.ID(), formatCurrency(sale.Total()), sale.PaymentMethod())

	// A damage write-off larger than the stock on hand is refused.
	if err := opts.Catalog.AdjustQuantity(3, -100, "damage"); err != nil {
		fmt.Printf("adjustment refused as expected: %v\n\n", err)
	}

	return nil
}

func printDashboards(opts *services.ServiceOptions) {
	r := opts.Reports

	summary := r.DashboardSummary()
	fmt.Println("=== Dashboard ===")
	fmt.Printf("products: %d  inventory value: %s  low stock: %d  total sales: %s\n\n",
		summary.TotalProducts, formatCurrency(summary.InventoryValue),
		summary.LowStockCount, formatCurrency(summary.TotalSalesValue))

	fmt.Println("=== Low Stock Alert ===")
	for _, p := range r.LowStockProducts() {
		fmt.Printf("%-36s stock %2d  value %s\n", p.Name(), p.Quantity(), formatCurrency(p.InventoryValue()))
	}
	fmt.Println()

	fmt.Println("=== Top Selling Products ===")
	for _, row := range r.TopSellingProducts(5) {
		fmt.Printf("%-36s sold %3d  revenue %s\n", row.Product.Name(), row.UnitsSold, formatCurrency(row.Revenue))
	}
	fmt.Println()

	fmt.Println("=== Sales by Category ===")
	for _, row := range r.SalesByCategory() {
		fmt.Printf("%-12s products %d  units %3d  revenue %s\n", row.Category, row.Products, row.UnitsSold, formatCurrency(row.Revenue))
	}
	fmt.Println()

	fmt.Println("=== Sales by Day ===")
	for _, row := range r.SalesByDay() {
		fmt.Printf("%s  %s\n", row.Date, formatCurrency(row.Revenue))
	}
	fmt.Println()

	fmt.Println("=== Recent Transactions ===")
	for _, sale := range opts.Ledger.MostRecent(5) {
		name := "Unknown"
		if customer, ok := opts.Customers.Get(sale.CustomerID()); ok {
			name = customer.Name()
		}
		fmt.Printf("%s  %-24s %-12s %s\n", sale.Date().Format("2006-01-02"), name, sale.PaymentMethod(), formatCurrency(sale.Total()))
	}
	fmt.Println()

	fmt.Println("=== Customers ===")
	for _, customer := range opts.Customers.List() {
		stats := r.CustomerStats(customer.ID())
		fmt.Printf("%-24s orders %d  spent %s  avg %s  loyalty %d\n",
			customer.Name(), stats.OrderCount, formatCurrency(stats.TotalSpent),
			formatCurrency(stats.AvgOrderValue), customer.LoyaltyPoints())
	}
}

// formatCurrency renders an amount as Maloti with two decimals. Currency
// symbols exist only at this presentation boundary; the core keeps plain
// numbers.
func formatCurrency(m *domain.Money) string {
	return "M" + m.String()
}

// Config holds demo configuration.
type Config struct {
	LogMode     string
	MetricsAddr string
}

// loadConfig loads configuration from environment variables with defaults.
func loadConfig() Config {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "dev"
	}

	return Config{
		LogMode:     logMode,
		MetricsAddr: os.Getenv("METRICS_ADDR"),
	}
}
