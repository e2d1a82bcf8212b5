package booking

import (
	"fmt"
	"strings"
	"time"
)

const scheduleSeparator = " • "

// GenerateScheduleString composes a friendly date label, a 12-hour time
// range, and a computed duration into a single display string. Formatting
// never fails outward: any parse error degrades to a raw concatenation of
// the inputs.
func GenerateScheduleString(date, start, end string) string {
	dateLabel, dateErr := friendlyDate(date)
	timeRange, rangeErr := formatTimeRange(start, end)
	if dateErr != nil || rangeErr != nil {
		return fallbackSchedule(date, start, end)
	}

	parts := []string{dateLabel, timeRange}
	if d := formatDuration(start, end); d != "" {
		parts = append(parts, d)
	}
	return strings.Join(parts, scheduleSeparator)
}

// friendlyDate renders "Today"/"Tomorrow" for near dates, otherwise
// "Mon, Jan 2".
func friendlyDate(date string) (string, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(date))
	if err != nil {
		return "", err
	}
	today, _ := time.Parse(dateLayout, time.Now().Format(dateLayout))
	switch t.Sub(today) {
	case 0:
		return "Today", nil
	case 24 * time.Hour:
		return "Tomorrow", nil
	}
	return t.Format("Mon, Jan 2"), nil
}

// formatTimeRange renders "9:00 AM - 5:00 PM"; with an absent end it renders
// the start alone.
func formatTimeRange(start, end string) (string, error) {
	s, err := time.Parse("15:04", strings.TrimSpace(start))
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(end) == "" {
		return s.Format("3:04 PM"), nil
	}
	e, err := time.Parse("15:04", strings.TrimSpace(end))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s - %s", s.Format("3:04 PM"), e.Format("3:04 PM")), nil
}

// formatDuration computes the same-day duration segment. Overnight ranges
// are not supported: when end <= start the segment is omitted entirely
// rather than computed as negative or wrapped.
func formatDuration(start, end string) string {
	s, err := time.Parse("15:04", strings.TrimSpace(start))
	if err != nil {
		return ""
	}
	e, err := time.Parse("15:04", strings.TrimSpace(end))
	if err != nil {
		return ""
	}
	mins := int(e.Sub(s).Minutes())
	if mins <= 0 {
		return ""
	}
	h, m := mins/60, mins%60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}

// fallbackSchedule is the best-effort rendition used when any formatting
// step fails. It always returns a non-empty string containing the raw
// inputs.
func fallbackSchedule(date, start, end string) string {
	if strings.TrimSpace(end) == "" {
		return fmt.Sprintf("%s%s%s", date, scheduleSeparator, start)
	}
	return fmt.Sprintf("%s%s%s - %s", date, scheduleSeparator, start, end)
}
