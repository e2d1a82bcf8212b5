package routes

import (
	"nestcare/handlers"
	"nestcare/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking lifecycle.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.AuthMiddleware())
		bookingGroup.GET("", hb.Booking.ListBookings)
		bookingGroup.POST("", hb.Booking.CreateBooking)
		bookingGroup.GET("/:id", hb.Booking.GetBooking)
		bookingGroup.GET("/:id/payment-actions", hb.Booking.GetPaymentActions)
		bookingGroup.POST("/:id/payments", hb.Booking.RecordPayment)
		bookingGroup.POST("/:id/payment-proof", hb.Booking.AttachPaymentProof)
		bookingGroup.PATCH("/:id/status", hb.Booking.UpdateStatus)
		bookingGroup.POST("/:id/cancel", hb.Booking.CancelBooking)
	}
}
