package models

import "time"

// PaymentAction describes one legal payment step for a booking in its
// current status, as computed by the payment calculator.
type PaymentAction struct {
	Type   string  `json:"type"`   // "deposit" or "final_payment"
	Label  string  `json:"label"`  // Display label, e.g. "Pay Deposit"
	Amount float64 `json:"amount"` // Amount due for this step
}

// --- PaymentRequest & Invoice ---
type PaymentRequest struct {
	BookingID   string
	UserID      string
	Amount      float64
	Type        string // "deposit" or "final_payment"
	Method      string // "cash" or "card"
	Currency    string
	Idempotency string
	Metadata    map[string]string
	Description string
}

type Invoice struct {
	InvoiceID string
	BookingID string
	UserID    string
	Amount    float64
	Currency  string
	Status    string
	Method    string
	Type      string
	CreatedAt time.Time
	UpdatedAt time.Time
	PaymentID string
	Error     string
}
