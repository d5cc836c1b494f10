package store

import (
	"fmt"
	"time"

	"github.com/light-bringer/pos-service/internal/app/pos/domain"
	"github.com/light-bringer/pos-service/internal/pkg/committer"
)

// SaleDraft carries values computed during plan validation between the
// mutations of a single commit: the catalog mutation fills in the total at
// current prices, the ledger mutation builds the sale from it.
type SaleDraft struct {
	Total *domain.Money
	Sale  *domain.Sale
}

// Ledger is the append-only log of committed sales, ordered by commit.
// Sale ids are allocated max+1, so id order matches append order. There is
// no mutation or deletion: history is permanent for the session.
type Ledger struct {
	comm  *committer.Committer
	sales []*domain.Sale
}

// NewLedger creates an empty Ledger bound to the shared committer.
func NewLedger(comm *committer.Committer) *Ledger {
	return &Ledger{comm: comm}
}

// AppendSaleMut stages the ledger side of a sale commit. It must be added
// to the plan after the catalog's CommitSaleMut, which fills draft.Total
// during validation. On success draft.Sale holds the appended sale.
func (l *Ledger) AppendSaleMut(customerID int64, payment domain.PaymentMethod, lines []domain.SaleLine, date time.Time, draft *SaleDraft) committer.Mutation {
	return committer.Mutation{
		Validate: func() error {
			if draft.Total == nil {
				return fmt.Errorf("sale total not computed")
			}
			sale, err := domain.NewSale(l.nextID(), customerID, date, lines, draft.Total, payment)
			if err != nil {
				return err
			}
			draft.Sale = sale
			return nil
		},
		Apply: func() {
			l.sales = append(l.sales, draft.Sale)
		},
	}
}

// All returns the sales in commit order.
func (l *Ledger) All() []*domain.Sale {
	var out []*domain.Sale
	l.comm.Read(func() {
		out = make([]*domain.Sale, len(l.sales))
		copy(out, l.sales)
	})
	return out
}

// ByCustomer returns the sales attributed to the given customer, in commit
// order.
func (l *Ledger) ByCustomer(customerID int64) []*domain.Sale {
	var out []*domain.Sale
	l.comm.Read(func() {
		for _, sale := range l.sales {
			if sale.CustomerID() == customerID {
				out = append(out, sale)
			}
		}
	})
	return out
}

// MostRecent returns up to n sales, newest first.
func (l *Ledger) MostRecent(n int) []*domain.Sale {
	var out []*domain.Sale
	l.comm.Read(func() {
		for i := len(l.sales) - 1; i >= 0 && len(out) < n; i-- {
			out = append(out, l.sales[i])
		}
	})
	return out
}

// Len returns the number of committed sales.
func (l *Ledger) Len() int {
	var n int
	l.comm.Read(func() {
		n = len(l.sales)
	})
	return n
}

// Restore appends a historical sale with its existing id. Used when
// loading fixtures; the id must be greater than any already present so
// append order keeps matching id order.
func (l *Ledger) Restore(sale *domain.Sale) error {
	plan := committer.NewPlan()
	plan.Add(committer.Mutation{
		Validate: func() error {
			if sale.ID() < l.nextID() {
				return fmt.Errorf("restore sale %d: id out of order", sale.ID())
			}
			return nil
		},
		Apply: func() {
			l.sales = append(l.sales, sale)
		},
	})
	return l.comm.Apply(plan)
}

func (l *Ledger) nextID() int64 {
	if len(l.sales) == 0 {
		return 1
	}
	return l.sales[len(l.sales)-1].ID() + 1
}
