package handlers

import (
	"errors"
	"net/http"

	"nestcare/services/booking"
	"nestcare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking pipeline over HTTP.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

// authedUserID returns the user ID set by the auth middleware.
func authedUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	id, ok := userID.(string)
	return id, ok && id != ""
}

// ListBookings handles GET /api/bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing user identity")
		return
	}

	bookings, err := h.Svc.ListBookings(c.Request.Context(), userID)
	if err != nil {
		h.Logger.Error("ListBookings: failed to load bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetBooking handles GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.Svc.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondServiceError(c, err, "failed to load booking")
		return
	}
	c.JSON(http.StatusOK, b)
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing user identity")
		return
	}

	var doc map[string]any
	if err := c.ShouldBindJSON(&doc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	doc["userId"] = userID

	b, err := h.Svc.CreateBooking(c.Request.Context(), doc)
	if err != nil {
		h.Logger.Error("CreateBooking: failed to create booking", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create booking", err.Error())
		return
	}
	c.JSON(http.StatusCreated, b)
}

// GetPaymentActions handles GET /api/bookings/:id/payment-actions.
func (h *BookingHandler) GetPaymentActions(c *gin.Context) {
	actions, err := h.Svc.PaymentActions(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondServiceError(c, err, "failed to compute payment actions")
		return
	}
	c.JSON(http.StatusOK, gin.H{"actions": actions})
}

// RecordPayment handles POST /api/bookings/:id/payments.
func (h *BookingHandler) RecordPayment(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing user identity")
		return
	}

	var input struct {
		PaymentType string `json:"paymentType" binding:"required"`
		Method      string `json:"method" binding:"required"`
		Idempotency string `json:"idempotencyKey"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	inv, b, err := h.Svc.RecordPayment(c.Request.Context(), booking.PaymentInput{
		BookingID:   c.Param("id"),
		UserID:      userID,
		PaymentType: input.PaymentType,
		Method:      input.Method,
		Idempotency: input.Idempotency,
	})
	if err != nil {
		h.respondServiceError(c, err, "payment failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoice": inv, "booking": b})
}

// UpdateStatus handles PATCH /api/bookings/:id/status.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	b, err := h.Svc.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status)
	if err != nil {
		h.respondServiceError(c, err, "failed to update booking status")
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelBooking handles POST /api/bookings/:id/cancel.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	b, err := h.Svc.CancelBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondServiceError(c, err, "failed to cancel booking")
		return
	}
	c.JSON(http.StatusOK, b)
}

// AttachPaymentProof handles POST /api/bookings/:id/payment-proof.
func (h *BookingHandler) AttachPaymentProof(c *gin.Context) {
	var input struct {
		ProofRef string `json:"proofRef" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Svc.AttachPaymentProof(c.Request.Context(), c.Param("id"), input.ProofRef); err != nil {
		h.respondServiceError(c, err, "failed to attach payment proof")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *BookingHandler) respondServiceError(c *gin.Context, err error, message string) {
	var se *booking.ServiceError
	if errors.As(err, &se) {
		switch se.Code {
		case "notFound":
			utils.JSONError(c, http.StatusNotFound, message, se.Message)
		case "invalidAction":
			utils.JSONError(c, http.StatusConflict, message, se.Message)
		default:
			utils.JSONError(c, http.StatusBadRequest, message, se.Message)
		}
		return
	}
	h.Logger.Error(message, zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, message, err.Error())
}
