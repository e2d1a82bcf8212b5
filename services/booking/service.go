package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	bookingRepo "nestcare/database/repository/booking"
	"nestcare/models"
	"nestcare/services/feed"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultEnrichmentWorkers = 8

// finalPaymentReminderDelay is how long after completion the final-payment
// reminder fires.
const finalPaymentReminderDelay = 24 * time.Hour

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo      bookingRepo.Repository
	Featured  feed.FeaturedService
	Payments  PaymentHandler
	Reminders ReminderScheduler // optional; nil disables reminders
	Workers   int               // enrichment pool size; <=0 uses the default
	Logger    *zap.Logger
}

// ListBookings returns the user's bookings, normalized and enriched, most
// recent first.
func (s *DefaultBookingService) ListBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	raws, err := s.Repo.ListRawByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return s.pipeline(ctx, raws), nil
}

// GetBooking returns one booking, normalized and enriched.
func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	raw, err := s.Repo.GetRaw(ctx, id)
	if err != nil {
		return nil, NewNotFoundError(fmt.Sprintf("booking %s not found", id))
	}
	b := NormalizeBooking(raw)
	applyCaregiverRef(&b, ResolveCaregiver(raw, s.featuredList(ctx)))
	return &b, nil
}

// CreateBooking persists a new booking request. The stored document keeps
// whatever shape the client sent; only identity and lifecycle fields are
// stamped.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, doc map[string]any) (*models.Booking, error) {
	if doc == nil {
		doc = map[string]any{}
	}
	if coerceID(firstPresent(doc, "_id", "id")) == "" {
		doc["id"] = uuid.New().String()
	}
	doc["status"] = string(StatusPending)
	doc["createdAt"] = time.Now()

	if err := s.Repo.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	b := NormalizeBooking(doc)
	applyCaregiverRef(&b, ResolveCaregiver(doc, s.featuredList(ctx)))
	return &b, nil
}

// PaymentActions returns the legal payment steps for a booking.
func (s *DefaultBookingService) PaymentActions(ctx context.Context, id string) ([]models.PaymentAction, error) {
	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	return GetPaymentActions(*b), nil
}

// RecordPayment processes a payment for a booking and advances its status
// per the transition table when the payment captures. The amount is always
// taken from the calculator, never from the client.
func (s *DefaultBookingService) RecordPayment(ctx context.Context, input PaymentInput) (*models.Invoice, *models.Booking, error) {
	b, err := s.GetBooking(ctx, input.BookingID)
	if err != nil {
		return nil, nil, err
	}

	var action *models.PaymentAction
	for _, a := range GetPaymentActions(*b) {
		if a.Type == input.PaymentType {
			action = &a
			break
		}
	}
	if action == nil {
		return nil, nil, NewInvalidActionError(
			fmt.Sprintf("payment type %q is not valid for booking in status %q", input.PaymentType, b.Status))
	}

	inv, err := s.Payments.ProcessPayment(ctx, models.PaymentRequest{
		BookingID:   b.ID,
		UserID:      input.UserID,
		Amount:      action.Amount,
		Type:        input.PaymentType,
		Method:      input.Method,
		Currency:    b.Currency,
		Idempotency: input.Idempotency,
		Description: fmt.Sprintf("%s for booking %s", action.Label, b.ID),
	})
	if err != nil {
		return inv, nil, err
	}

	if inv.Status == "paid" {
		current := NormalizeStatus(b.Status)
		next := NextStatusAfterPayment(current, input.PaymentType)
		if next != current {
			if err := s.Repo.UpdateStatus(ctx, b.ID, string(next)); err != nil {
				return inv, nil, fmt.Errorf("payment captured but status update failed: %w", err)
			}
			b.Status = string(next)
		}
		paymentStatus := "deposit_paid"
		if input.PaymentType == PaymentTypeFinal {
			paymentStatus = "paid"
		}
		if err := s.Repo.SetPaymentStatus(ctx, b.ID, paymentStatus); err != nil {
			s.Logger.Warn("failed to record payment status",
				zap.String("booking", b.ID), zap.Error(err))
		} else {
			b.PaymentStatus = paymentStatus
		}
	}
	return inv, b, nil
}

// UpdateStatus applies an externally-driven lifecycle transition (service
// started, service ended). Reaching completed schedules the final-payment
// reminder.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	current := NormalizeStatus(b.Status)
	if current.IsTerminal() {
		return nil, NewInvalidActionError(
			fmt.Sprintf("booking %s is %s and cannot change status", id, current))
	}

	next := NormalizeStatus(status)
	if err := s.Repo.UpdateStatus(ctx, id, string(next)); err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	b.Status = string(next)

	if next == StatusCompleted && s.Reminders != nil {
		payload := models.ReminderPayload{
			BookingID: b.ID,
			Caregiver: b.Caregiver,
			AmountDue: CalculateRemainingPayment(b.TotalCost),
			Currency:  b.Currency,
			Date:      b.Date,
		}
		if err := s.Reminders.ScheduleFinalPaymentReminder(ctx, payload, finalPaymentReminderDelay); err != nil {
			s.Logger.Warn("failed to schedule final payment reminder",
				zap.String("booking", b.ID), zap.Error(err))
		}
	}
	return b, nil
}

// CancelBooking moves a booking to the cancelled terminal state.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, id string) (*models.Booking, error) {
	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if NormalizeStatus(b.Status).IsTerminal() {
		return nil, NewInvalidActionError(
			fmt.Sprintf("booking %s is %s and cannot be cancelled", id, b.Status))
	}
	if err := s.Repo.UpdateStatus(ctx, id, string(StatusCancelled)); err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}
	b.Status = string(StatusCancelled)
	return b, nil
}

// AttachPaymentProof records an uploaded payment proof reference.
func (s *DefaultBookingService) AttachPaymentProof(ctx context.Context, id, proofRef string) error {
	if err := s.Repo.SetPaymentProof(ctx, id, proofRef); err != nil {
		return fmt.Errorf("failed to attach payment proof: %w", err)
	}
	return nil
}

// pipeline sorts, normalizes, and enriches a raw batch. Enrichment runs in
// a bounded worker pool so a large history cannot fan out unbounded;
// results keep the sorted order.
func (s *DefaultBookingService) pipeline(ctx context.Context, raws []map[string]any) []models.Booking {
	featured := s.featuredList(ctx)
	sorted := SortBookingsByDate(raws)
	out := make([]models.Booking, len(sorted))

	workers := s.Workers
	if workers <= 0 {
		workers = defaultEnrichmentWorkers
	}
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i := range sorted {
		wg.Add(1)
		go func(i int, raw map[string]any) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				// Degrade to the unenriched record rather than dropping it.
				out[i] = NormalizeBooking(raw)
				return
			}
			b := NormalizeBooking(raw)
			applyCaregiverRef(&b, ResolveCaregiver(raw, featured))
			out[i] = b
		}(i, sorted[i])
	}
	wg.Wait()
	return out
}

// featuredList fetches the featured cache; enrichment tolerates an empty
// list, so fetch failure degrades rather than propagating.
func (s *DefaultBookingService) featuredList(ctx context.Context) []models.Caregiver {
	if s.Featured == nil {
		return nil
	}
	featured, err := s.Featured.Featured(ctx)
	if err != nil {
		s.Logger.Warn("featured caregiver fetch failed, enriching without cache", zap.Error(err))
		return nil
	}
	return featured
}

func applyCaregiverRef(b *models.Booking, ref models.CaregiverRef) {
	if ref.Name != "" {
		b.Caregiver = ref.Name
	}
	if ref.ID != "" {
		b.CaregiverID = ref.ID
	}
}
