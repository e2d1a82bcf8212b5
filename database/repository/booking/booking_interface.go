package bookingRepo

import "context"

// Repository defines data access for booking documents. Reads return the
// raw documents as stored; normalization is the booking service's concern,
// since historical documents predate the canonical shape.
type Repository interface {
	ListRawByUser(ctx context.Context, userID string) ([]map[string]any, error)
	GetRaw(ctx context.Context, id string) (map[string]any, error)
	Create(ctx context.Context, doc map[string]any) error
	UpdateStatus(ctx context.Context, id string, status string) error
	SetPaymentStatus(ctx context.Context, id string, paymentStatus string) error
	SetPaymentProof(ctx context.Context, id string, proofRef string) error
}
