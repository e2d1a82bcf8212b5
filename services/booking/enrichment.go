package booking

import (
	"nestcare/models"

	"go.uber.org/zap"
)

// embeddedCaregiverKeys are the raw fields that may carry an embedded
// caregiver object on a booking document.
var embeddedCaregiverKeys = []string{"caregiver", "caregiverId", "assignedCaregiver"}

// caregiverIDKeys are the alias fields that may carry a caregiver ID
// reference, scalar or object-shaped.
var caregiverIDKeys = []string{"caregiverId", "caregiver_id", "assignedCaregiverId", "caregiverUserId"}

// stubCaregiverName is used when an ID reference exists but resolves
// nowhere.
const stubCaregiverName = "Caregiver"

// ResolveCaregiver resolves the best-effort caregiver identity for a raw
// booking document against the featured-caregiver cache. Resolution never
// fails; it degrades through embedded snapshot, cache match, and named stub.
func ResolveCaregiver(raw map[string]any, featured []models.Caregiver) models.CaregiverRef {
	// An embedded caregiver-shaped object wins outright.
	if embedded, ok := embeddedCaregiver(raw); ok {
		return refFromRaw(embedded)
	}

	candidates := ResolveIDCandidates(raw)
	for _, candidate := range candidates {
		for i := range featured {
			if caregiverMatchesID(&featured[i], candidate) {
				return mergeWithSnapshot(&featured[i], raw)
			}
		}
	}

	if len(candidates) > 0 {
		logFailedResolution(candidates, featured)
		return models.CaregiverRef{
			ID:   candidates[0],
			Name: fallbackCaregiverName(raw),
		}
	}

	// Nothing to resolve against; the normalizer's display default stands.
	return models.CaregiverRef{}
}

// ResolveIDCandidates harvests every plausible caregiver ID from a raw
// document, in priority order, coerced to strings. It is the single place
// identity aliases are known.
func ResolveIDCandidates(raw map[string]any) []string {
	seen := map[string]bool{}
	var candidates []string
	add := func(id string) {
		if id != "" && !seen[id] {
			seen[id] = true
			candidates = append(candidates, id)
		}
	}

	harvestObject := func(m map[string]any) {
		add(coerceID(firstPresent(m, "_id", "id")))
		// Account-backed references nest the ID one level deeper.
		if nested, ok := asMap(m["userId"]); ok {
			add(coerceID(firstPresent(nested, "_id", "id")))
		} else {
			add(coerceID(m["userId"]))
		}
	}

	for _, key := range caregiverIDKeys {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		if m, isMap := asMap(v); isMap {
			harvestObject(m)
			continue
		}
		add(coerceID(v))
	}
	// Embedded caregiver objects carry usable IDs too; when they lack a
	// name they never win as snapshots, so their ID must enter the
	// candidate pool here.
	for _, key := range embeddedCaregiverKeys {
		if m, ok := asMap(raw[key]); ok && !looksLikeBooking(m) {
			harvestObject(m)
		}
	}
	return candidates
}

// embeddedCaregiver returns a caregiver profile snapshot embedded on the
// booking, if one exists. An object qualifies only when it carries a name
// and is not itself booking-shaped (status + date); name-less objects are
// bare ID references and resolve through the cache match instead.
func embeddedCaregiver(raw map[string]any) (map[string]any, bool) {
	for _, key := range embeddedCaregiverKeys {
		m, ok := asMap(raw[key])
		if !ok {
			continue
		}
		if looksLikeBooking(m) {
			continue
		}
		if stringField(m, "name") != "" {
			return m, true
		}
	}
	return nil, false
}

func looksLikeBooking(m map[string]any) bool {
	_, hasStatus := m["status"]
	_, hasDate := m["date"]
	return hasStatus && hasDate
}

func refFromRaw(m map[string]any) models.CaregiverRef {
	return models.CaregiverRef{
		ID:           coerceID(firstPresent(m, "_id", "id", "userId")),
		Name:         stringField(m, "name"),
		ProfileImage: stringField(m, "profileImage", "avatar", "profile_image"),
		Rating:       numberField(m, "rating"),
		ReviewCount:  int(numberField(m, "reviewCount", "review_count")),
		HourlyRate:   numberField(m, "hourlyRate", "hourly_rate"),
	}
}

// mergeWithSnapshot prefers the live cache entry (fresher profile data) but
// backfills rating and review count from the booking's embedded snapshot
// when the cache entry lacks them.
func mergeWithSnapshot(cg *models.Caregiver, raw map[string]any) models.CaregiverRef {
	ref := models.CaregiverRef{
		ID:           cg.ID,
		Name:         cg.Name,
		ProfileImage: cg.ProfileImage,
		Rating:       cg.Rating,
		ReviewCount:  cg.ReviewCount,
		HourlyRate:   cg.HourlyRate,
	}
	var snapshot map[string]any
	for _, key := range embeddedCaregiverKeys {
		if m, ok := asMap(raw[key]); ok {
			snapshot = m
			break
		}
	}
	if snapshot != nil {
		if ref.Rating == 0 {
			ref.Rating = numberField(snapshot, "rating")
		}
		if ref.ReviewCount == 0 {
			ref.ReviewCount = int(numberField(snapshot, "reviewCount", "review_count"))
		}
	}
	if ref.Name == "" {
		ref.Name = fallbackCaregiverName(raw)
	}
	return ref
}

func caregiverMatchesID(cg *models.Caregiver, id string) bool {
	return (cg.ID != "" && cg.ID == id) || (cg.UserID != "" && cg.UserID == id)
}

func fallbackCaregiverName(raw map[string]any) string {
	if name := stringField(raw, "caregiverName", "caregiver_name"); name != "" {
		return name
	}
	if name, ok := raw["caregiver"].(string); ok && name != "" {
		return name
	}
	return stubCaregiverName
}

// logFailedResolution emits a debug diagnostic listing the attempted
// candidates against the cache contents. Dropped at info level in
// production; purely an observability aid.
func logFailedResolution(candidates []string, featured []models.Caregiver) {
	cacheIDs := make([]string, 0, len(featured))
	for i := range featured {
		cacheIDs = append(cacheIDs, featured[i].ID)
	}
	zap.L().Debug("caregiver resolution missed the featured cache",
		zap.Strings("candidates", candidates),
		zap.Strings("cacheIds", cacheIDs),
	)
}
