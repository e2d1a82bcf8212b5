package models

import "time"

// Caregiver is a caregiver profile as stored in Mongo and served through the
// featured-caregiver feed.
type Caregiver struct {
	ID           string    `bson:"id" json:"id"`
	UserID       string    `bson:"user_id,omitempty" json:"userId,omitempty"`   // Linked account, when the profile is account-backed
	Name         string    `bson:"name" json:"name"`
	Bio          string    `bson:"bio,omitempty" json:"bio,omitempty"`
	ProfileImage string    `bson:"profile_image,omitempty" json:"profileImage,omitempty"`
	Rating       float64   `bson:"rating,omitempty" json:"rating,omitempty"`         // Expected value between 1 and 5
	ReviewCount  int       `bson:"review_count,omitempty" json:"reviewCount,omitempty"`
	HourlyRate   float64   `bson:"hourly_rate,omitempty" json:"hourlyRate,omitempty"`
	Featured     bool      `bson:"featured" json:"featured"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt,omitzero"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt,omitzero"`
}

// CaregiverRef is the read-only caregiver projection resolved for a booking.
// It merges the booking's embedded snapshot with the featured cache and is
// never persisted back.
type CaregiverRef struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	ProfileImage string  `json:"profileImage,omitempty"`
	Rating       float64 `json:"rating,omitempty"`
	ReviewCount  int     `json:"reviewCount,omitempty"`
	HourlyRate   float64 `json:"hourlyRate,omitempty"`
}
