package main

import (
	"fmt"
	"time"

	"github.com/light-bringer/pos-service/internal/app/pos/domain"
	"github.com/light-bringer/pos-service/internal/services"
)

// Wings Cafe sample data. Sale totals are historical price snapshots and
// are restored verbatim, not recomputed from current prices.

type seedProduct struct {
	id          int64
	name        string
	description string
	category    string
	price       int64 // whole currency units
	quantity    int64
}

type seedCustomer struct {
	id            int64
	name          string
	email         string
	phone         string
	loyaltyPoints int64
}

type seedSale struct {
	id         int64
	customerID int64
	date       string
	lines      []domain.SaleLine
	total      int64
	payment    domain.PaymentMethod
}

var seedProducts = []seedProduct{
	{1, "Coffee", "Strong black coffee", "Beverages", 50, 15},
	{2, "Cappuccino", "Coffee,dark chocolate with milk", "Beverages", 55, 8},
	{3, "Muffin", "Fresh baked muffin", "Pastries", 25, 5},
	{4, "Pap,chicken stew, vegetables", "Pap,chicken stew,vegetables and soft", "Food", 60, 5},
	{5, "Tsoeu koto", "Tsoeu koto", "Drinks", 600, 12},
}

var seedCustomers = []seedCustomer{
	{5, "Raterekeke Mokhoamphiri", "rtrekere@pham.co.za", "+27 722334466", 25},
	{4, "Joala Makhampopo", "joalaboholo@gov.co.ls", "22334466", 10},
	{1, "John Ntiri", "ntiri@hotmail.com", "58120001", 120},
	{2, "Jane Seoete", "seoete@outlook.com", "59123401", 75},
	{3, "Mike Joele", "mike@yahoo.com", "57120056", 200},
}

var seedSales = []seedSale{
	{1, 1, "2025-08-15", []domain.SaleLine{{ProductID: 1, Quantity: 2}, {ProductID: 3, Quantity: 1}}, 125, domain.PaymentCash},
	{2, 2, "2025-08-16", []domain.SaleLine{{ProductID: 2, Quantity: 1}, {ProductID: 4, Quantity: 2}}, 185, domain.PaymentCard},
	{3, 3, "2025-08-17", []domain.SaleLine{{ProductID: 1, Quantity: 3}}, 150, domain.PaymentCash},
}

// seed loads the sample fixtures into the stores.
func seed(opts *services.ServiceOptions) error {
	for _, sp := range seedProducts {
		product, err := domain.NewProduct(sp.id, sp.name, sp.description, sp.category, domain.NewMoneyFromUnits(sp.price), sp.quantity)
		if err != nil {
			return fmt.Errorf("seed product %d: %w", sp.id, err)
		}
		if err := opts.Catalog.Restore(product); err != nil {
			return err
		}
	}

	for _, sc := range seedCustomers {
		customer := domain.ReconstructCustomer(sc.id, sc.name, sc.email, sc.phone, sc.loyaltyPoints)
		if err := opts.Customers.Restore(customer); err != nil {
			return err
		}
	}

	for _, ss := range seedSales {
		date, err := time.ParseInLocation("2006-01-02", ss.date, time.Local)
		if err != nil {
			return fmt.Errorf("seed sale %d: %w", ss.id, err)
		}
		sale, err := domain.NewSale(ss.id, ss.customerID, date, ss.lines, domain.NewMoneyFromUnits(ss.total), ss.payment)
		if err != nil {
			return fmt.Errorf("seed sale %d: %w", ss.id, err)
		}
		if err := opts.Ledger.Restore(sale); err != nil {
			return err
		}
	}

	return nil
}
