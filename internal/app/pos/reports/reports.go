// Package reports computes the derived views: stock alerts, valuations,
// sales rollups and customer statistics. Every function is a pure read
// over the stores' current state; nothing here mutates anything.
package reports

import (
	"sort"

	"github.com/light-bringer/pos-service/internal/app/pos/domain"
	"github.com/light-bringer/pos-service/internal/app/pos/store"
)

// ProductSales is one row of the top-selling products report. Revenue is
// units sold times the product's current price, which is how the category
// report prices revenue as well; it can disagree with summed sale totals
// after a price edit.
type ProductSales struct {
	Product   *domain.Product
	UnitsSold int64
	Revenue   *domain.Money
}

// CategorySales is one row of the sales-by-category report.
type CategorySales struct {
	Category  string
	Products  int
	UnitsSold int64
	Revenue   *domain.Money
}

// CategoryValue is one row of the inventory breakdown by category.
type CategoryValue struct {
	Category string
	Products int
	Value    *domain.Money
}

// CustomerStats summarizes a customer's purchase history.
type CustomerStats struct {
	TotalSpent    *domain.Money
	OrderCount    int
	AvgOrderValue *domain.Money
}

// Summary is the dashboard headline block.
type Summary struct {
	TotalProducts   int
	InventoryValue  *domain.Money
	LowStockCount   int
	TotalSalesValue *domain.Money
}

// DailyRevenue is one row of the sales-by-day report.
type DailyRevenue struct {
	Date    string // ISO 8601 calendar date
	Revenue *domain.Money
}

// Reports reads the three stores. It holds no state of its own, so values
// always reflect the stores at call time.
type Reports struct {
	catalog   *store.Catalog
	customers *store.Customers
	ledger    *store.Ledger
}

// New creates a Reports view over the given stores.
func New(catalog *store.Catalog, customers *store.Customers, ledger *store.Ledger) *Reports {
	return &Reports{catalog: catalog, customers: customers, ledger: ledger}
}

// LowStockProducts returns the products below the low-stock threshold, in
// catalog order.
func (r *Reports) LowStockProducts() []*domain.Product {
	var out []*domain.Product
	for _, p := range r.catalog.List() {
		if p.LowStock() {
			out = append(out, p)
		}
	}
	return out
}

// LowStockCount returns the number of products below the threshold.
func (r *Reports) LowStockCount() int {
	return len(r.LowStockProducts())
}

// InventoryValue returns the sum of price times quantity over the catalog.
func (r *Reports) InventoryValue() *domain.Money {
	total := domain.ZeroMoney()
	for _, p := range r.catalog.List() {
		total = total.Add(p.InventoryValue())
	}
	return total
}

// TotalSalesValue returns the sum of all committed sale totals.
func (r *Reports) TotalSalesValue() *domain.Money {
	total := domain.ZeroMoney()
	for _, sale := range r.ledger.All() {
		total = total.Add(sale.Total())
	}
	return total
}

// UnitsSoldByProduct returns the total units of the product across all
// sale lines, deleted products included.
func (r *Reports) UnitsSoldByProduct(productID int64) int64 {
	return unitsSold(r.ledger.All(), productID)
}

// TopSellingProducts ranks catalog products by units sold, descending,
// ties broken by catalog order, truncated to n.
func (r *Reports) TopSellingProducts(n int) []ProductSales {
	sales := r.ledger.All()

	rows := make([]ProductSales, 0)
	for _, p := range r.catalog.List() {
		units := unitsSold(sales, p.ID())
		rows = append(rows, ProductSales{
			Product:   p,
			UnitsSold: units,
			Revenue:   p.Price().MultiplyInt(units),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].UnitsSold > rows[j].UnitsSold
	})

	if n < len(rows) {
		rows = rows[:n]
	}
	return rows
}

// SalesByCategory groups catalog products by category and sums product
// count, units sold and revenue. Revenue uses current prices, not the
// prices frozen in sale totals. Categories appear in catalog order of
// their first product.
func (r *Reports) SalesByCategory() []CategorySales {
	sales := r.ledger.All()

	index := make(map[string]int)
	var rows []CategorySales
	for _, p := range r.catalog.List() {
		units := unitsSold(sales, p.ID())
		revenue := p.Price().MultiplyInt(units)

		i, ok := index[p.Category()]
		if !ok {
			index[p.Category()] = len(rows)
			rows = append(rows, CategorySales{
				Category:  p.Category(),
				Products:  1,
				UnitsSold: units,
				Revenue:   revenue,
			})
			continue
		}
		rows[i].Products++
		rows[i].UnitsSold += units
		rows[i].Revenue = rows[i].Revenue.Add(revenue)
	}
	return rows
}

// CategoryBreakdown groups catalog products by category and sums product
// count and inventory value at current prices.
func (r *Reports) CategoryBreakdown() []CategoryValue {
	index := make(map[string]int)
	var rows []CategoryValue
	for _, p := range r.catalog.List() {
		i, ok := index[p.Category()]
		if !ok {
			index[p.Category()] = len(rows)
			rows = append(rows, CategoryValue{
				Category: p.Category(),
				Products: 1,
				Value:    p.InventoryValue(),
			})
			continue
		}
		rows[i].Products++
		rows[i].Value = rows[i].Value.Add(p.InventoryValue())
	}
	return rows
}

// CustomerStats sums the customer's sale totals and order count. A
// customer with no sales gets zero values, not an error; the customer id
// does not need to exist in the register.
func (r *Reports) CustomerStats(customerID int64) CustomerStats {
	stats := CustomerStats{
		TotalSpent:    domain.ZeroMoney(),
		AvgOrderValue: domain.ZeroMoney(),
	}
	for _, sale := range r.ledger.ByCustomer(customerID) {
		stats.TotalSpent = stats.TotalSpent.Add(sale.Total())
		stats.OrderCount++
	}
	if stats.OrderCount > 0 {
		avg, _ := stats.TotalSpent.DivideInt(int64(stats.OrderCount))
		stats.AvgOrderValue = avg
	}
	return stats
}

// SalesByDay sums sale totals per calendar date, dates ascending.
func (r *Reports) SalesByDay() []DailyRevenue {
	byDate := make(map[string]*domain.Money)
	for _, sale := range r.ledger.All() {
		key := sale.Date().Format("2006-01-02")
		if existing, ok := byDate[key]; ok {
			byDate[key] = existing.Add(sale.Total())
		} else {
			byDate[key] = sale.Total()
		}
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	rows := make([]DailyRevenue, 0, len(dates))
	for _, date := range dates {
		rows = append(rows, DailyRevenue{Date: date, Revenue: byDate[date]})
	}
	return rows
}

// DashboardSummary returns the headline numbers for the dashboard view.
func (r *Reports) DashboardSummary() Summary {
	return Summary{
		TotalProducts:   r.catalog.Len(),
		InventoryValue:  r.InventoryValue(),
		LowStockCount:   r.LowStockCount(),
		TotalSalesValue: r.TotalSalesValue(),
	}
}

func unitsSold(sales []*domain.Sale, productID int64) int64 {
	var units int64
	for _, sale := range sales {
		units += sale.UnitsOf(productID)
	}
	return units
}
