package booking

import (
	"context"
	"time"

	"nestcare/models"
)

// PaymentInput carries a payment attempt from the transport layer.
type PaymentInput struct {
	BookingID   string
	UserID      string
	PaymentType string // "deposit" or "final_payment"
	Method      string // "card" or "cash"
	Idempotency string
}

// ReminderScheduler enqueues a final-payment reminder for later delivery.
type ReminderScheduler interface {
	ScheduleFinalPaymentReminder(ctx context.Context, payload models.ReminderPayload, delay time.Duration) error
}

// BookingService is the orchestration surface over the booking pipeline:
// repository fetch, normalization, caregiver enrichment, and the
// payment-driven lifecycle mutations.
type BookingService interface {
	ListBookings(ctx context.Context, userID string) ([]models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	CreateBooking(ctx context.Context, doc map[string]any) (*models.Booking, error)
	PaymentActions(ctx context.Context, id string) ([]models.PaymentAction, error)
	RecordPayment(ctx context.Context, input PaymentInput) (*models.Invoice, *models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error)
	CancelBooking(ctx context.Context, id string) (*models.Booking, error)
	AttachPaymentProof(ctx context.Context, id, proofRef string) error
}
