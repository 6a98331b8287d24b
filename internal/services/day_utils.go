package services

import (
	"strings"
	"time"

	"github.com/terraincognita07/cyclelens/internal/models"
)

const dayLayout = "2006-01-02"

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// CalendarDay drops the clock and zone of value, keeping the calendar date it
// shows in its own location. All engine arithmetic runs on these UTC days.
func CalendarDay(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func DaysBetween(from time.Time, to time.Time) int {
	return int(CalendarDay(to).Sub(CalendarDay(from)).Hours() / 24)
}

func AddDays(day time.Time, days int) time.Time {
	return CalendarDay(day).AddDate(0, 0, days)
}

func FormatDay(day time.Time) string {
	return CalendarDay(day).Format(dayLayout)
}

func ParseDay(raw string) (time.Time, error) {
	return time.ParseInLocation(dayLayout, strings.TrimSpace(raw), time.UTC)
}

func sameCalendarDay(a time.Time, b time.Time) bool {
	return FormatDay(a) == FormatDay(b)
}

func betweenCalendarDaysInclusive(day time.Time, start time.Time, end time.Time) bool {
	if start.IsZero() || end.IsZero() {
		return false
	}
	day = CalendarDay(day)
	return !day.Before(CalendarDay(start)) && !day.After(CalendarDay(end))
}

// sortedByDate returns a date-ordered copy; the input is left untouched.
func sortedByDate(logs []models.DailyLog) []models.DailyLog {
	sorted := make([]models.DailyLog, 0, len(logs))
	sorted = append(sorted, logs...)
	sortLogsByDate(sorted)
	return sorted
}

func cleanLabels(values []string) []string {
	cleaned := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		cleaned = append(cleaned, trimmed)
	}
	return cleaned
}
