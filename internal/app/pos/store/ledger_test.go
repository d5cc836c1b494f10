package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/pos-service/internal/app/pos/domain"
)

func restoreSale(t *testing.T, l *Ledger, id, customerID int64, day int, total int64) *domain.Sale {
	t.Helper()
	date := time.Date(2025, 8, day, 0, 0, 0, 0, time.Local)
	sale, err := domain.NewSale(id, customerID, date,
		[]domain.SaleLine{{ProductID: 1, Quantity: 1}},
		domain.NewMoneyFromUnits(total), domain.PaymentCash)
	require.NoError(t, err)
	require.NoError(t, l.Restore(sale))
	return sale
}

func TestLedger_All(t *testing.T) {
	_, _, ledger, _ := newTestStores(t)
	restoreSale(t, ledger, 1, 1, 15, 125)
	restoreSale(t, ledger, 2, 2, 16, 185)
	restoreSale(t, ledger, 3, 3, 17, 150)

	all := ledger.All()
	require.Len(t, all, 3)
	assert.Equal(t, int64(1), all[0].ID())
	assert.Equal(t, int64(3), all[2].ID())
	assert.Equal(t, 3, ledger.Len())
}

func TestLedger_ByCustomer(t *testing.T) {
	_, _, ledger, _ := newTestStores(t)
	restoreSale(t, ledger, 1, 1, 15, 125)
	restoreSale(t, ledger, 2, 2, 16, 185)
	restoreSale(t, ledger, 3, 1, 17, 150)

	mine := ledger.ByCustomer(1)
	require.Len(t, mine, 2)
	assert.Equal(t, int64(1), mine[0].ID())
	assert.Equal(t, int64(3), mine[1].ID())

	assert.Empty(t, ledger.ByCustomer(42))
}

func TestLedger_MostRecent(t *testing.T) {
	_, _, ledger, _ := newTestStores(t)
	restoreSale(t, ledger, 1, 1, 15, 125)
	restoreSale(t, ledger, 2, 2, 16, 185)
	restoreSale(t, ledger, 3, 3, 17, 150)

	t.Run("newest first", func(t *testing.T) {
		recent := ledger.MostRecent(2)
		require.Len(t, recent, 2)
		assert.Equal(t, int64(3), recent[0].ID())
		assert.Equal(t, int64(2), recent[1].ID())
	})

	t.Run("n larger than ledger", func(t *testing.T) {
		assert.Len(t, ledger.MostRecent(10), 3)
	})
}

func TestLedger_RestoreRejectsOutOfOrderIDs(t *testing.T) {
	_, _, ledger, _ := newTestStores(t)
	restoreSale(t, ledger, 5, 1, 15, 125)

	date := time.Date(2025, 8, 16, 0, 0, 0, 0, time.Local)
	stale, err := domain.NewSale(2, 1, date,
		[]domain.SaleLine{{ProductID: 1, Quantity: 1}},
		domain.NewMoneyFromUnits(50), domain.PaymentCash)
	require.NoError(t, err)

	assert.Error(t, ledger.Restore(stale))
	assert.Equal(t, 1, ledger.Len())
}
