package booking

import (
	"testing"

	"nestcare/models"

	"github.com/stretchr/testify/assert"
)

func featuredFixture() []models.Caregiver {
	return []models.Caregiver{
		{ID: "cg-1", UserID: "user-1", Name: "Amina Diallo", ProfileImage: "https://cdn/amina.jpg", Rating: 4.9, ReviewCount: 41, HourlyRate: 22},
		{ID: "cg-2", UserID: "user-2", Name: "Priya Shah", Rating: 4.6, ReviewCount: 12, HourlyRate: 18},
	}
}

func TestResolveCaregiverEmbeddedObjectWins(t *testing.T) {
	raw := map[string]any{
		"caregiver": map[string]any{
			"_id":          "cg-9",
			"name":         "Embedded Person",
			"profileImage": "https://cdn/embedded.jpg",
			"rating":       4.2,
			"reviewCount":  7,
			"hourlyRate":   25,
		},
		// Cache also matches, but the embedded object has priority.
		"caregiverId": "cg-1",
	}
	ref := ResolveCaregiver(raw, featuredFixture())
	assert.Equal(t, "cg-9", ref.ID)
	assert.Equal(t, "Embedded Person", ref.Name)
	assert.Equal(t, "https://cdn/embedded.jpg", ref.ProfileImage)
	assert.Equal(t, 4.2, ref.Rating)
	assert.Equal(t, 7, ref.ReviewCount)
	assert.Equal(t, 25.0, ref.HourlyRate)
}

func TestResolveCaregiverRejectsBookingShapedObject(t *testing.T) {
	// A nested booking document must not be mistaken for a caregiver even
	// when it happens to carry an id and a name-like field.
	raw := map[string]any{
		"caregiver": map[string]any{
			"_id":    "b-77",
			"status": "pending",
			"date":   "2024-06-01",
			"name":   "weekend sitting",
		},
		"caregiverId": "cg-2",
	}
	ref := ResolveCaregiver(raw, featuredFixture())
	assert.Equal(t, "cg-2", ref.ID)
	assert.Equal(t, "Priya Shah", ref.Name)
}

func TestResolveCaregiverIDOnlyObjectConsultsCache(t *testing.T) {
	// An object-shaped caregiverId carrying only an ID is a reference, not
	// a profile snapshot: it must match the featured cache rather than
	// short-circuiting to a nameless stub.
	raw := map[string]any{"caregiverId": map[string]any{"_id": "cg-1"}}
	ref := ResolveCaregiver(raw, featuredFixture())
	assert.Equal(t, "cg-1", ref.ID)
	assert.Equal(t, "Amina Diallo", ref.Name)
	assert.Equal(t, 4.9, ref.Rating)

	// Same shape under the "caregiver" key.
	raw = map[string]any{"caregiver": map[string]any{"_id": "cg-2"}}
	ref = ResolveCaregiver(raw, featuredFixture())
	assert.Equal(t, "cg-2", ref.ID)
	assert.Equal(t, "Priya Shah", ref.Name)

	// No cache hit still degrades to the stub, ID preserved.
	raw = map[string]any{"caregiverId": map[string]any{"_id": "ghost-id"}}
	ref = ResolveCaregiver(raw, featuredFixture())
	assert.Equal(t, "ghost-id", ref.ID)
	assert.Equal(t, "Caregiver", ref.Name)
}

func TestResolveCaregiverCacheMatchByUserID(t *testing.T) {
	raw := map[string]any{"caregiverId": "user-1"}
	ref := ResolveCaregiver(raw, featuredFixture())
	assert.Equal(t, "cg-1", ref.ID)
	assert.Equal(t, "Amina Diallo", ref.Name)
	assert.Equal(t, 4.9, ref.Rating)
}

func TestResolveCaregiverStubWhenNoMatch(t *testing.T) {
	raw := map[string]any{"caregiverId": "ghost-id"}
	ref := ResolveCaregiver(raw, featuredFixture())
	assert.Equal(t, "ghost-id", ref.ID)
	assert.Equal(t, "Caregiver", ref.Name)
	assert.Zero(t, ref.Rating)
}

func TestResolveCaregiverStubKeepsNameHint(t *testing.T) {
	raw := map[string]any{
		"caregiverId":   "ghost-id",
		"caregiverName": "Jordan Lee",
	}
	ref := ResolveCaregiver(raw, featuredFixture())
	assert.Equal(t, "ghost-id", ref.ID)
	assert.Equal(t, "Jordan Lee", ref.Name)
}

func TestResolveCaregiverNoCandidates(t *testing.T) {
	ref := ResolveCaregiver(map[string]any{"status": "pending"}, featuredFixture())
	assert.Equal(t, models.CaregiverRef{}, ref)
}

func TestResolveCaregiverStringCaregiverField(t *testing.T) {
	// A plain string under "caregiver" is a display name, not a reference;
	// with no ID candidates the zero ref comes back and the display name is
	// left to the normalizer.
	ref := ResolveCaregiver(map[string]any{"caregiver": "Sam Okafor"}, featuredFixture())
	assert.Equal(t, models.CaregiverRef{}, ref)
}

func TestResolveCaregiverSnapshotBackfill(t *testing.T) {
	featured := []models.Caregiver{{ID: "cg-3", Name: "Rosa Mendes"}}
	raw := map[string]any{
		"caregiverId": "cg-3",
		"caregiver": map[string]any{
			"rating":      4.8,
			"reviewCount": 19,
		},
	}
	// The embedded snapshot has no name and no id, so it cannot win on its
	// own; the cache match absorbs its rating and review count instead.
	ref := ResolveCaregiver(raw, featured)
	assert.Equal(t, "cg-3", ref.ID)
	assert.Equal(t, "Rosa Mendes", ref.Name)
	assert.Equal(t, 4.8, ref.Rating)
	assert.Equal(t, 19, ref.ReviewCount)
}

func TestResolveIDCandidates(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want []string
	}{
		{
			"scalar aliases in priority order",
			map[string]any{"caregiver_id": "b", "caregiverId": "a", "assignedCaregiverId": "c"},
			[]string{"a", "b", "c"},
		},
		{
			"duplicates collapse",
			map[string]any{"caregiverId": "a", "caregiver_id": "a"},
			[]string{"a"},
		},
		{
			"object reference harvests id and nested userId",
			map[string]any{"caregiverId": map[string]any{"_id": "cg-5", "userId": "user-5"}},
			[]string{"cg-5", "user-5"},
		},
		{
			"doubly nested userId object",
			map[string]any{"caregiverId": map[string]any{"userId": map[string]any{"_id": "user-6"}}},
			[]string{"user-6"},
		},
		{
			"numeric ids coerce to strings",
			map[string]any{"caregiverId": 42},
			[]string{"42"},
		},
		{
			"nothing present",
			map[string]any{"status": "confirmed"},
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveIDCandidates(tt.raw))
		})
	}
}
