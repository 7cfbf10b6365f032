// Package stats provides pure aggregation helpers over achievement slices.
// Dashboard services assemble their headline numbers from these instead of
// issuing one COUNT query per figure.
package stats

import (
	"strings"

	"github.com/studenthub/backend/internal/app/models"
)

// CountWhere counts achievements satisfying the predicate
func CountWhere(achievements []*models.Achievement, pred func(*models.Achievement) bool) int {
	count := 0
	for _, a := range achievements {
		if pred(a) {
			count++
		}
	}
	return count
}

// VerifiedCount counts achievements whose status is verified
func VerifiedCount(achievements []*models.Achievement) int {
	return CountWhere(achievements, func(a *models.Achievement) bool {
		return a.VerificationStatus == models.VerificationVerified
	})
}

// PendingCount counts achievements whose status is pending
func PendingCount(achievements []*models.Achievement) int {
	return CountWhere(achievements, func(a *models.Achievement) bool {
		return a.VerificationStatus == models.VerificationPending
	})
}

// TotalPoints sums the points of all achievements regardless of status.
// The verified-only sum lives in AchievementRepository.SumVerifiedPoints and
// feeds portfolios, not dashboards.
func TotalPoints(achievements []*models.Achievement) int {
	total := 0
	for _, a := range achievements {
		total += a.Points
	}
	return total
}

// CategoryHistogram counts achievements per category. Keys are title-cased
// category labels ready for chart legends. Categories with no achievements
// are absent from the map.
func CategoryHistogram(achievements []*models.Achievement) map[string]int {
	hist := make(map[string]int)
	for _, a := range achievements {
		hist[titleLabel(string(a.Category))]++
	}
	return hist
}

// StatusDistribution counts achievements per verification status, keyed by
// title-cased status labels.
func StatusDistribution(achievements []*models.Achievement) map[string]int {
	dist := make(map[string]int)
	for _, a := range achievements {
		dist[titleLabel(string(a.VerificationStatus))]++
	}
	return dist
}

func titleLabel(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
