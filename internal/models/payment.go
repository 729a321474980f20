package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthEntry is one month of a lot's installment schedule as computed by the remote API
type MonthEntry struct {
	YearMonth         string           `json:"year_month" example:"2025-03"`
	DueDate           string           `json:"due_date,omitempty" example:"2025-03-15"`
	DueDay            int              `json:"due_day,omitempty" example:"15"`
	Amount            decimal.Decimal  `json:"amount" swaggertype:"number" example:"5000"`
	AmountWithPenalty *decimal.Decimal `json:"amount_with_penalty,omitempty" swaggertype:"number" example:"5150"`
	Paid              bool             `json:"paid" example:"false"`
	Overdue           bool             `json:"overdue" example:"false"`
	ReceiptURL        string           `json:"receipt_url,omitempty"`
}

// LotMonthlyStatus groups the ordered months of one lot
type LotMonthlyStatus struct {
	LotID    uint         `json:"lot_id" example:"301"`
	LotLabel string       `json:"lot_label" example:"Garden of Peace, Sector B, Block 12, Lot 7"`
	Months   []MonthEntry `json:"months"`
	Plan     *PaymentPlan `json:"plan,omitempty"`
}

// PaymentPlan is the installment plan of a lot
type PaymentPlan struct {
	ID                uint            `json:"id"`
	LotID             uint            `json:"lot_id"`
	TotalAmount       decimal.Decimal `json:"total_amount" swaggertype:"number"`
	DownPayment       decimal.Decimal `json:"down_payment" swaggertype:"number"`
	PaymentTermMonths int             `json:"payment_term_months"`
	MonthlyAmount     decimal.Decimal `json:"monthly_amount" swaggertype:"number"`
	Schedule          []PlanItem      `json:"schedule,omitempty"`
}

// PlanItem is a derived schedule row of a payment plan
type PlanItem struct {
	Month     int             `json:"month"`
	AmountDue decimal.Decimal `json:"amount_due" swaggertype:"number"`
	Status    string          `json:"status"`
}

// CheckoutRequest asks the remote API to open a hosted checkout for one month
type CheckoutRequest struct {
	LotID       uint            `json:"lot_id"`
	YearMonth   string          `json:"year_month"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// CheckoutSession is the remote API's hosted checkout
type CheckoutSession struct {
	SessionID   string `json:"checkout_session_id"`
	CheckoutURL string `json:"checkout_url"`
}

// Checkout status values reported by the remote API
const (
	CheckoutPending   = "pending"
	CheckoutPaid      = "paid"
	CheckoutFailed    = "failed"
	CheckoutExpired   = "expired"
	CheckoutCancelled = "cancelled"
)

// CheckoutStatus is the remote status-check answer
type CheckoutStatus struct {
	SessionID string `json:"checkout_session_id"`
	Status    string `json:"status"`
}

// OfficePayment is a payment taken at the office (cash, check, ...). Overdue
// months are paid this way with the penalty applied.
type OfficePayment struct {
	LotID       uint            `json:"lot_id" binding:"required"`
	YearMonth   string          `json:"year_month" binding:"required"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"number" binding:"required"`
	Method      string          `json:"method" binding:"required"`
	ReferenceNo string          `json:"reference_no,omitempty"`
}

// PaymentRecord is a payment history row
type PaymentRecord struct {
	ID          uint            `json:"id"`
	LotID       uint            `json:"lot_id"`
	YearMonth   string          `json:"year_month"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"number"`
	Method      string          `json:"method"`
	ReferenceNo string          `json:"reference_no,omitempty"`
	ReceiptURL  string          `json:"receipt_url,omitempty"`
	PaidAt      *time.Time      `json:"paid_at,omitempty"`
	ReceivedBy  string          `json:"received_by,omitempty"`
}
