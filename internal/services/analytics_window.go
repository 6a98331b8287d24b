package services

import (
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/cyclelens/internal/models"
)

var ErrInvalidWindow = errors.New("invalid analytics window")

type Window string

const (
	Window3Months Window = "3m"
	Window6Months Window = "6m"
	Window1Year   Window = "1y"
	WindowAll     Window = "all"

	DefaultWindow = Window6Months
)

func ParseWindow(raw string) (Window, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return DefaultWindow, nil
	case "3m", "3months":
		return Window3Months, nil
	case "6m", "6months":
		return Window6Months, nil
	case "1y", "12m", "1year":
		return Window1Year, nil
	case "all":
		return WindowAll, nil
	default:
		return "", ErrInvalidWindow
	}
}

// Start returns the first calendar day inside the window. WindowAll has no
// lower bound.
func (window Window) Start(now time.Time) (time.Time, bool) {
	today := CalendarDay(now)
	switch window {
	case Window3Months:
		return today.AddDate(0, -3, 0), true
	case Window6Months:
		return today.AddDate(0, -6, 0), true
	case Window1Year:
		return today.AddDate(-1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

func FilterByWindow(logs []models.DailyLog, window Window, now time.Time) []models.DailyLog {
	start, bounded := window.Start(now)
	filtered := make([]models.DailyLog, 0, len(logs))
	for _, entry := range logs {
		if bounded && CalendarDay(entry.Date).Before(start) {
			continue
		}
		filtered = append(filtered, entry)
	}
	return filtered
}
