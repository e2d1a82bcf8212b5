package booking

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"nestcare/config"
	"nestcare/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	defaultStartTime = "09:00"
	defaultEndTime   = "17:00"
	defaultCurrency  = "USD"
	defaultCaregiver = "No caregiver assigned"

	dateLayout = "2006-01-02"
)

// extractor probes one tolerated response envelope for the bookings array.
type extractor func(resp any) ([]any, bool)

// The upstream API is not consistent about its envelope; these probes are
// tried in order and the first hit wins.
var extractors = []extractor{
	func(resp any) ([]any, bool) { // {bookings: [...]}
		m, ok := asMap(resp)
		if !ok {
			return nil, false
		}
		return asSlice(m["bookings"])
	},
	func(resp any) ([]any, bool) { // {data: {data: {bookings: [...]}}}
		m, ok := asMap(resp)
		if !ok {
			return nil, false
		}
		inner, ok := asMap(m["data"])
		if !ok {
			return nil, false
		}
		inner, ok = asMap(inner["data"])
		if !ok {
			return nil, false
		}
		return asSlice(inner["bookings"])
	},
	func(resp any) ([]any, bool) { // {data: {bookings: [...]}}
		m, ok := asMap(resp)
		if !ok {
			return nil, false
		}
		inner, ok := asMap(m["data"])
		if !ok {
			return nil, false
		}
		return asSlice(inner["bookings"])
	},
	func(resp any) ([]any, bool) { // {data: [...]}
		m, ok := asMap(resp)
		if !ok {
			return nil, false
		}
		return asSlice(m["data"])
	},
	func(resp any) ([]any, bool) { // bare array
		return asSlice(resp)
	},
}

// ExtractBookingsFromResponse locates the bookings array inside an
// arbitrarily-shaped API response. Non-object elements degrade to empty
// documents so downstream normalization stays length-preserving. A response
// matching no known envelope yields an empty slice, never an error.
func ExtractBookingsFromResponse(resp any) []map[string]any {
	for _, probe := range extractors {
		items, ok := probe(resp)
		if !ok {
			continue
		}
		out := make([]map[string]any, 0, len(items))
		for _, item := range items {
			if m, ok := asMap(item); ok {
				out = append(out, m)
			} else {
				out = append(out, map[string]any{})
			}
		}
		return out
	}
	return []map[string]any{}
}

// SortBookingsByDate stable-sorts raw bookings descending by (date, start
// time). Documents with unparseable dates key as epoch zero and therefore
// sort last.
func SortBookingsByDate(raws []map[string]any) []map[string]any {
	sorted := make([]map[string]any, len(raws))
	copy(sorted, raws)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sortKey(sorted[i]).After(sortKey(sorted[j]))
	})
	return sorted
}

func sortKey(raw map[string]any) time.Time {
	date := stringField(raw, "date")
	start := stringField(raw, "startTime", "start_time")
	if t, err := time.Parse(dateLayout+" 15:04", strings.TrimSpace(date+" "+start)); err == nil {
		return t
	}
	if t, err := time.Parse(dateLayout, date); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, date); err == nil {
		return t
	}
	return time.Unix(0, 0).UTC()
}

// NormalizeBooking converts one raw document into the canonical Booking,
// applying safe defaults for every missing or malformed field. It is
// deterministic except for the synthetic-ID fallback, which only fires when
// the document carries no usable identifier.
func NormalizeBooking(raw map[string]any) models.Booking {
	id := coerceID(firstPresent(raw, "_id", "id"))
	if id == "" {
		id = syntheticID()
	}

	date := normalizeDate(stringField(raw, "date"))
	start := timeOrDefault(stringField(raw, "startTime", "start_time"), defaultStartTime)
	end := timeOrDefault(stringField(raw, "endTime", "end_time"), defaultEndTime)

	caregiverID := ""
	if candidates := ResolveIDCandidates(raw); len(candidates) > 0 {
		caregiverID = candidates[0]
	}

	currency := stringField(raw, "currency")
	if currency == "" {
		currency = config.AppConfig.DefaultCurrency
	}
	if currency == "" {
		currency = defaultCurrency
	}
	paymentStatus := stringField(raw, "paymentStatus", "payment_status")
	if paymentStatus == "" {
		paymentStatus = "pending"
	}

	// A plain string under "caregiver" is a display name; object-shaped
	// references are the enrichment chain's concern.
	caregiver := defaultCaregiver
	if name, ok := raw["caregiver"].(string); ok && strings.TrimSpace(name) != "" {
		caregiver = strings.TrimSpace(name)
	}

	return models.Booking{
		ID:            id,
		Caregiver:     caregiver,
		CaregiverID:   caregiverID,
		Status:        string(NormalizeStatus(stringField(raw, "status"))),
		Date:          date,
		StartTime:     start,
		EndTime:       end,
		Schedule:      GenerateScheduleString(date, start, end),
		Children:      normalizeChildren(raw["children"]),
		TotalCost:     numberField(raw, "totalCost", "total_cost"),
		Amount:        numberField(raw, "amount"),
		PaymentStatus: paymentStatus,
		Currency:      currency,
		PaymentProof:  stringField(raw, "paymentProof", "payment_proof"),
	}
}

// ProcessBookings sorts then normalizes a raw batch. Length-preserving:
// every input document produces exactly one Booking, malformed documents
// degrade to default-filled records rather than being dropped.
func ProcessBookings(raws []map[string]any) []models.Booking {
	sorted := SortBookingsByDate(raws)
	out := make([]models.Booking, 0, len(sorted))
	for _, raw := range sorted {
		out = append(out, NormalizeBooking(raw))
	}
	return out
}

func syntheticID() string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return fmt.Sprintf("booking-%d-%s", time.Now().UnixMilli(), suffix)
}

// normalizeDate coerces a raw date value to "YYYY-MM-DD", defaulting to the
// current date when unparseable.
func normalizeDate(raw string) string {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{dateLayout, time.RFC3339, "2006-01-02T15:04:05.000Z07:00", "01/02/2006"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(dateLayout)
		}
	}
	return time.Now().Format(dateLayout)
}

func timeOrDefault(raw, fallback string) string {
	raw = strings.TrimSpace(raw)
	if _, err := time.Parse("15:04", raw); err == nil {
		return raw
	}
	return fallback
}

// normalizeChildren flattens a heterogeneous child array (strings or
// objects) into display identifiers.
func normalizeChildren(raw any) []string {
	items, ok := asSlice(raw)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			if v != "" {
				out = append(out, v)
			}
		default:
			if m, ok := asMap(item); ok {
				if name := stringField(m, "name", "firstName", "first_name"); name != "" {
					out = append(out, name)
				} else if id := coerceID(firstPresent(m, "_id", "id")); id != "" {
					out = append(out, id)
				}
			}
		}
	}
	return out
}

// --- raw value coercion helpers ---

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case primitive.M:
		return map[string]any(m), true
	}
	return nil, false
}

func asSlice(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case primitive.A:
		return []any(s), true
	case []map[string]any:
		out := make([]any, len(s))
		for i, m := range s {
			out[i] = m
		}
		return out, true
	}
	return nil, false
}

func firstPresent(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func stringField(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func numberField(m map[string]any, keys ...string) float64 {
	for _, k := range keys {
		v, ok := m[k]
		if !ok || v == nil {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n
		case float32:
			return float64(n)
		case int:
			return float64(n)
		case int32:
			return float64(n)
		case int64:
			return float64(n)
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
				return f
			}
		}
	}
	return 0
}

// coerceID normalizes any identifier-ish value to a string for comparison.
// Mongo ObjectIDs render as hex, numbers drop a trailing ".0".
func coerceID(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(id)
	case primitive.ObjectID:
		return id.Hex()
	case float64:
		if id == float64(int64(id)) {
			return strconv.FormatInt(int64(id), 10)
		}
		return strconv.FormatFloat(id, 'f', -1, 64)
	case int:
		return strconv.Itoa(id)
	case int64:
		return strconv.FormatInt(id, 10)
	default:
		return ""
	}
}
