// Package schedule decides which installment month of a lot is payable and
// how much the console may charge for it online.
package schedule

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"memorial-park-svc/internal/models"
)

// Quote is the chargeable view of the next due month
type Quote struct {
	Month         models.MonthEntry `json:"month"`
	Label         string            `json:"label"`
	Overdue       bool              `json:"overdue"`
	OnlineAllowed bool              `json:"online_allowed"`
	Charge        decimal.Decimal   `json:"charge" swaggertype:"number"`

	// Set only for overdue months, shown so the customer knows what the office will collect
	NormalAmount *decimal.Decimal `json:"normal_amount,omitempty" swaggertype:"number"`
	Penalty      *decimal.Decimal `json:"penalty,omitempty" swaggertype:"number"`
	Total        *decimal.Decimal `json:"total,omitempty" swaggertype:"number"`
	Notice       string           `json:"notice,omitempty"`
}

// OverdueNotice is shown instead of the pay action for overdue months
const OverdueNotice = "This month is overdue. Please pay at the office; a 3% penalty applies."

// NextDue returns the first unpaid month in sequence
func NextDue(months []models.MonthEntry) (models.MonthEntry, bool) {
	for _, m := range months {
		if !m.Paid {
			return m, true
		}
	}
	return models.MonthEntry{}, false
}

// QuoteFor computes the charge policy for one month
func QuoteFor(m models.MonthEntry) Quote {
	q := Quote{
		Month:   m,
		Label:   FormatMonth(m),
		Overdue: m.Overdue,
	}

	if !m.Overdue {
		q.OnlineAllowed = true
		q.Charge = m.Amount
		if m.AmountWithPenalty != nil && m.AmountWithPenalty.IsPositive() {
			q.Charge = *m.AmountWithPenalty
		}
		return q
	}

	penalty := decimal.Zero
	if m.AmountWithPenalty != nil {
		penalty = decimal.Max(m.AmountWithPenalty.Sub(m.Amount), decimal.Zero)
	}
	total := m.Amount.Add(penalty)
	normal := m.Amount

	q.OnlineAllowed = false
	q.Charge = m.Amount
	q.NormalAmount = &normal
	q.Penalty = &penalty
	q.Total = &total
	q.Notice = OverdueNotice
	return q
}

// IsFullyPaid reports whether a lot has nothing left to pay
func IsFullyPaid(lot models.LotMonthlyStatus) bool {
	if len(lot.Months) == 0 {
		return true
	}
	if lot.Plan != nil && lot.Plan.PaymentTermMonths == 0 {
		return true
	}
	_, ok := NextDue(lot.Months)
	return !ok
}

// Selection is the single month auto-selected when a lot is picked
type Selection struct {
	LotID     uint   `json:"lot_id"`
	LotLabel  string `json:"lot_label"`
	FullyPaid bool   `json:"fully_paid"`
	Next      *Quote `json:"next,omitempty"`
}

// Select picks exactly one month, the next unpaid one
func Select(lot models.LotMonthlyStatus) Selection {
	sel := Selection{LotID: lot.LotID, LotLabel: lot.LotLabel}
	if IsFullyPaid(lot) {
		sel.FullyPaid = true
		return sel
	}
	next, _ := NextDue(lot.Months)
	q := QuoteFor(next)
	sel.Next = &q
	return sel
}

// PayableLots keeps the lots that still have a month to pay, in input order
func PayableLots(lots []models.LotMonthlyStatus) []Selection {
	out := make([]Selection, 0, len(lots))
	for _, lot := range lots {
		if IsFullyPaid(lot) {
			continue
		}
		out = append(out, Select(lot))
	}
	return out
}

// GenericMonthLabel is used when a month carries no date information
const GenericMonthLabel = "Monthly payment"

// FormatMonth renders the due date of a month for display
func FormatMonth(m models.MonthEntry) string {
	if m.DueDate != "" {
		if d, err := parseDate(m.DueDate); err == nil {
			return d.Format("Jan 02, 2006")
		}
	}
	if m.YearMonth != "" {
		ym, err := time.Parse("2006-01", m.YearMonth)
		if err == nil {
			if m.DueDay > 0 {
				return fmt.Sprintf("%s %02d, %d", ym.Format("Jan"), m.DueDay, ym.Year())
			}
			return ym.Format("Jan 2006")
		}
	}
	return GenericMonthLabel
}

func parseDate(s string) (time.Time, error) {
	if d, err := time.Parse("2006-01-02", s); err == nil {
		return d, nil
	}
	return time.Parse(time.RFC3339, s)
}
