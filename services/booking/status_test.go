package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want Status
	}{
		{"pending", StatusPending},
		{"confirmed", StatusConfirmed},
		{"in_progress", StatusInProgress},
		{"completed", StatusCompleted},
		{"paid", StatusPaid},
		{"cancelled", StatusCancelled},
		{"pending_confirmation", StatusPending},
		{"PENDING_CONFIRMATION", StatusPending},
		{"  Confirmed  ", StatusConfirmed},
		{"garbage", StatusPending},
		{"", StatusPending},
	}
	for _, tt := range tests {
		got := NormalizeStatus(tt.raw)
		assert.Equal(t, tt.want, got, "NormalizeStatus(%q)", tt.raw)
		assert.True(t, got.IsValid(), "NormalizeStatus(%q) must land in the closed set", tt.raw)
	}
}

func TestStatusLookupsNeverPanic(t *testing.T) {
	unknown := Status("nonsense")
	assert.Equal(t, "", unknown.Label())
	assert.Equal(t, "", unknown.Color())
	assert.False(t, unknown.IsValid())
}

func TestStatusLabelsAndColors(t *testing.T) {
	assert.Equal(t, "In Progress", StatusInProgress.Label())
	assert.NotEmpty(t, StatusPending.Color())
	assert.NotEmpty(t, StatusCancelled.Color())
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, StatusPaid.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusCompleted.IsTerminal())
}
