package models

// Booking is the canonical booking record produced by the normalizer.
// Every field carries a safe default so a malformed upstream document still
// yields a renderable record.
type Booking struct {
	ID            string   `bson:"id" json:"id"`                         // Stable identifier, or a synthetic fallback for malformed docs
	Caregiver     string   `bson:"caregiver" json:"caregiver"`           // Display name; never empty ("No caregiver assigned")
	CaregiverID   string   `bson:"caregiver_id" json:"caregiverId"`      // Opaque reference, may be empty
	Status        string   `bson:"status" json:"status"`                 // One of the canonical statuses
	Date          string   `bson:"date" json:"date"`                     // "YYYY-MM-DD"
	StartTime     string   `bson:"start_time" json:"startTime"`          // "HH:MM", 24-hour
	EndTime       string   `bson:"end_time" json:"endTime"`              // "HH:MM", 24-hour
	Schedule      string   `bson:"schedule" json:"schedule"`             // Human-readable composite, e.g. "Today • 9:00 AM - 5:00 PM • 8h"
	Children      []string `bson:"children" json:"children"`             // Child display names or fallback IDs
	TotalCost     float64  `bson:"total_cost" json:"totalCost"`          // 0 if absent/invalid
	Amount        float64  `bson:"amount" json:"amount"`                 // 0 if absent/invalid
	PaymentStatus string   `bson:"payment_status" json:"paymentStatus"`  // Defaults to "pending"
	Currency      string   `bson:"currency" json:"currency"`             // Defaults to "USD"
	PaymentProof  string   `bson:"payment_proof,omitempty" json:"paymentProof,omitempty"` // Reference to an uploaded payment proof
}
