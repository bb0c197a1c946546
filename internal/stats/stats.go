// internal/stats/stats.go
package stats

import (
	"math"

	"github.com/odnamta/agency-service/internal/models"
)

// Summary reducers for the dashboard. Only active records count toward
// any figure; inactive records are invisible to every field below.
// All functions are total over any finite slice including the empty
// one, for which every field is zero.

// ShippingLineStats is the flat summary the carrier dashboard renders.
type ShippingLineStats struct {
	TotalLines       int
	PreferredCount   int
	AverageRating    float64 // mean of present ratings over active lines, 2 decimals
	TotalCreditLimit float64
}

// PortAgentStats is the flat summary the agent dashboard renders.
type PortAgentStats struct {
	TotalAgents    int
	PreferredCount int
	AverageRating  float64
	CountriesCount int // distinct portCountry among active agents, case-sensitive
}

// CalculateShippingLineStats reduces a slice of shipping lines into a
// dashboard summary. AverageRating is 0 when no active line carries a
// rating, so callers never divide by zero themselves.
func CalculateShippingLineStats(lines []models.ShippingLine) ShippingLineStats {
	var s ShippingLineStats
	var ratingSum float64
	var rated int
	for _, line := range lines {
		if !line.IsActive {
			continue
		}
		s.TotalLines++
		if line.IsPreferred {
			s.PreferredCount++
		}
		if line.ServiceRating != nil {
			ratingSum += *line.ServiceRating
			rated++
		}
		if line.CreditLimit != nil {
			s.TotalCreditLimit += *line.CreditLimit
		}
	}
	if rated > 0 {
		s.AverageRating = round2(ratingSum / float64(rated))
	}
	return s
}

// CalculatePortAgentStats reduces a slice of port agents into a
// dashboard summary, including the count of distinct countries covered.
func CalculatePortAgentStats(agents []models.PortAgent) PortAgentStats {
	var s PortAgentStats
	var ratingSum float64
	var rated int
	countries := make(map[string]struct{})
	for _, agent := range agents {
		if !agent.IsActive {
			continue
		}
		s.TotalAgents++
		if agent.IsPreferred {
			s.PreferredCount++
		}
		if agent.ServiceRating != nil {
			ratingSum += *agent.ServiceRating
			rated++
		}
		countries[agent.PortCountry] = struct{}{}
	}
	if rated > 0 {
		s.AverageRating = round2(ratingSum / float64(rated))
	}
	s.CountriesCount = len(countries)
	return s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
