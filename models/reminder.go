package models

// ReminderPayload is the task payload enqueued when a booking becomes
// eligible for its final payment.
type ReminderPayload struct {
	BookingID string  `json:"bookingId"`
	UserID    string  `json:"userId"`
	Caregiver string  `json:"caregiver"`
	AmountDue float64 `json:"amountDue"`
	Currency  string  `json:"currency"`
	Date      string  `json:"date"`
}
