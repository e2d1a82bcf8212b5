package booking

import "strings"

// Status is a booking lifecycle status.
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusPaid       Status = "paid"
	StatusCancelled  Status = "cancelled"
)

// legacyPendingAlias is emitted by older clients and maps to StatusPending.
const legacyPendingAlias = "pending_confirmation"

// Payment flow configuration.
const (
	DepositPercentage   = 20
	EscrowEnabled       = true
	PaymentOnCompletion = true
)

// Payment types accepted by the transition table.
const (
	PaymentTypeDeposit = "deposit"
	PaymentTypeFinal   = "final_payment"
)

var statusLabels = map[Status]string{
	StatusPending:    "Pending",
	StatusConfirmed:  "Confirmed",
	StatusInProgress: "In Progress",
	StatusCompleted:  "Completed",
	StatusPaid:       "Paid",
	StatusCancelled:  "Cancelled",
}

var statusColors = map[Status]string{
	StatusPending:    "#FFA500",
	StatusConfirmed:  "#4CAF50",
	StatusInProgress: "#2196F3",
	StatusCompleted:  "#9C27B0",
	StatusPaid:       "#4CAF50",
	StatusCancelled:  "#F44336",
}

// NormalizeStatus coerces an arbitrary raw status string to a canonical
// Status. The legacy "pending_confirmation" alias maps to pending; any
// unrecognized value also falls back to pending rather than erroring.
func NormalizeStatus(raw string) Status {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == legacyPendingAlias {
		return StatusPending
	}
	status := Status(s)
	if status.IsValid() {
		return status
	}
	return StatusPending
}

// IsValid reports whether s is one of the canonical statuses.
func (s Status) IsValid() bool {
	_, ok := statusLabels[s]
	return ok
}

// IsTerminal reports whether no further transitions exist out of s.
func (s Status) IsTerminal() bool {
	return s == StatusPaid || s == StatusCancelled
}

// Label returns the display label for s, or "" for an unknown status.
func (s Status) Label() string {
	return statusLabels[s]
}

// Color returns the display color for s, or "" for an unknown status.
func (s Status) Color() string {
	return statusColors[s]
}
