package booking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"nestcare/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// --- Pure payment calculator ---

// CalculateDeposit returns the upfront deposit for a booking total.
func CalculateDeposit(totalCost float64) float64 {
	return totalCost * DepositPercentage / 100
}

// CalculateRemainingPayment returns the balance due after the deposit.
func CalculateRemainingPayment(totalCost float64) float64 {
	return totalCost - CalculateDeposit(totalCost)
}

// paymentTransitions is the authoritative table of payment-triggered status
// edges. Everything else in the lifecycle is driven by external actors.
var paymentTransitions = map[Status]map[string]Status{
	StatusPending:   {PaymentTypeDeposit: StatusConfirmed},
	StatusCompleted: {PaymentTypeFinal: StatusPaid},
}

// GetPaymentActions returns the legal payment steps for a booking in its
// current status: a deposit while pending, the final balance once completed,
// nothing otherwise.
func GetPaymentActions(b models.Booking) []models.PaymentAction {
	switch NormalizeStatus(b.Status) {
	case StatusPending:
		return []models.PaymentAction{{
			Type:   PaymentTypeDeposit,
			Label:  "Pay Deposit",
			Amount: CalculateDeposit(b.TotalCost),
		}}
	case StatusCompleted:
		return []models.PaymentAction{{
			Type:   PaymentTypeFinal,
			Label:  "Pay Remaining Balance",
			Amount: CalculateRemainingPayment(b.TotalCost),
		}}
	}
	return []models.PaymentAction{}
}

// NextStatusAfterPayment returns the status a booking moves to after a
// payment of the given type. Invalid combinations return the current status
// unchanged; this is a planner consulted before the actual mutation, so
// nonsensical input is a no-op rather than an error.
func NextStatusAfterPayment(current Status, paymentType string) Status {
	if next, ok := paymentTransitions[current][paymentType]; ok {
		return next
	}
	return current
}

// --- PaymentHandler ---

// PaymentHandler processes a payment request and produces an invoice.
type PaymentHandler interface {
	ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error)
}

// UnifiedPaymentHandler handles card payments through Stripe and cash
// payments as pending invoices.
type UnifiedPaymentHandler struct {
	logger *zap.Logger
}

func NewPaymentHandler(logger *zap.Logger) *UnifiedPaymentHandler {
	return &UnifiedPaymentHandler{logger: logger}
}

// ProcessPayment validates the request and dispatches on method.
func (h *UnifiedPaymentHandler) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if err := validatePaymentRequest(req); err != nil {
		return nil, fmt.Errorf("invalid payment request: %w", err)
	}

	inv := &models.Invoice{
		InvoiceID: uuid.New().String(),
		BookingID: req.BookingID,
		UserID:    req.UserID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Method:    req.Method,
		Type:      req.Type,
		Status:    "pending",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	switch req.Method {
	case "card":
		return h.processCardPayment(ctx, req, inv)
	case "cash":
		return h.processCashPayment(req, inv)
	default:
		return nil, fmt.Errorf("unsupported payment method: %s", req.Method)
	}
}

func (h *UnifiedPaymentHandler) processCardPayment(ctx context.Context, req models.PaymentRequest, inv *models.Invoice) (*models.Invoice, error) {
	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(int64(math.Round(req.Amount * 100))),
		Currency:    stripe.String(strings.ToLower(req.Currency)),
		Description: stripe.String(req.Description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	if req.Idempotency != "" {
		params.IdempotencyKey = stripe.String(req.Idempotency)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	params.AddMetadata("bookingId", req.BookingID)
	params.AddMetadata("paymentType", req.Type)

	pi, err := paymentintent.New(params)
	if err != nil {
		inv.Status = "failed"
		inv.Error = err.Error()
		inv.UpdatedAt = time.Now()
		h.logger.Error("Card payment failed", zap.String("invoice", inv.InvoiceID), zap.Error(err))
		return inv, fmt.Errorf("card payment failed: %w", err)
	}

	inv.PaymentID = pi.ID
	inv.Status = "paid"
	inv.UpdatedAt = time.Now()
	h.logger.Info("Card payment successful",
		zap.String("invoice", inv.InvoiceID),
		zap.String("paymentIntent", pi.ID),
	)
	return inv, nil
}

func (h *UnifiedPaymentHandler) processCashPayment(req models.PaymentRequest, inv *models.Invoice) (*models.Invoice, error) {
	// Cash stays "pending" until the caregiver confirms receipt.
	inv.UpdatedAt = time.Now()
	h.logger.Info("Cash payment recorded",
		zap.String("invoice", inv.InvoiceID),
		zap.String("booking", req.BookingID),
	)
	return inv, nil
}

func validatePaymentRequest(req models.PaymentRequest) error {
	if req.Amount <= 0 {
		return errors.New("invalid payment amount")
	}
	if req.BookingID == "" {
		return errors.New("missing booking ID")
	}
	if req.Type != PaymentTypeDeposit && req.Type != PaymentTypeFinal {
		return errors.New("unsupported payment type")
	}
	if req.Method != "card" && req.Method != "cash" {
		return errors.New("unsupported method")
	}
	return nil
}
