package services

import (
	"sort"
	"strings"

	"github.com/terraincognita07/cyclelens/internal/models"
)

const maxMoodShares = 8

type MoodShare struct {
	Name    string `json:"name"`
	Count   int    `json:"count"`
	Percent int    `json:"percent"`
	Color   string `json:"color"`
}

// MoodDistribution uses the total record count as the denominator, so days
// without a mood lower every share.
func MoodDistribution(logs []models.DailyLog) []MoodShare {
	if len(logs) == 0 {
		return []MoodShare{}
	}

	order := make([]string, 0)
	counts := make(map[string]int)
	for _, entry := range logs {
		mood := strings.TrimSpace(entry.Mood)
		if mood == "" {
			continue
		}
		if _, seen := counts[mood]; !seen {
			order = append(order, mood)
		}
		counts[mood]++
	}

	shares := make([]MoodShare, 0, len(order))
	for _, mood := range order {
		shares = append(shares, MoodShare{
			Name:    mood,
			Count:   counts[mood],
			Percent: percentOf(counts[mood], len(logs)),
			Color:   models.PresentationColor(mood),
		})
	}
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Percent > shares[j].Percent
	})
	if len(shares) > maxMoodShares {
		shares = shares[:maxMoodShares]
	}
	return shares
}
