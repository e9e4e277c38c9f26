package scorecard

import (
	"fmt"

	"github.com/dotcommander/lifescore/internal/scoring"
)

// maxInsights caps the number of matched insight messages.
const maxInsights = 3

// fallbackInsight is emitted when no rule matches.
const fallbackInsight = "Keep tracking consistently to unlock personalized insights based on your patterns."

// InsightRule produces a message when its pattern holds. Rules are evaluated
// in order.
type InsightRule struct {
	Name  string
	Match func(dims map[string]scoring.DimensionScore) (string, bool)
}

// DefaultInsightRules returns the standard rule list in priority order.
func DefaultInsightRules() []InsightRule {
	return []InsightRule{
		{
			Name: "physical-strong",
			Match: func(dims map[string]scoring.DimensionScore) (string, bool) {
				d, ok := dims[scoring.PhysicalHealth.Key]
				if !ok || d.Percentage < 80 {
					return "", false
				}
				return "Your physical health habits are strong - this is fueling your overall performance.", true
			},
		},
		{
			Name: "meditation-gap",
			Match: func(dims map[string]scoring.DimensionScore) (string, bool) {
				d, ok := dims[scoring.MentalHealth.Key]
				if !ok || d.Percentage >= 70 {
					return "", false
				}
				for _, b := range d.Breakdown {
					if b.Metric == "Meditation days" && !b.Met {
						return fmt.Sprintf("Meditation is at %v/7 days. Studies show consistent meditation reduces stress by 30%%.", b.Value), true
					}
				}
				return "", false
			},
		},
		{
			Name: "relationships-strong",
			Match: func(dims map[string]scoring.DimensionScore) (string, bool) {
				d, ok := dims[scoring.Relationships.Key]
				if !ok || d.Percentage < 90 {
					return "", false
				}
				return "Excellent relationship investment this week - strong connections support all other areas.", true
			},
		},
	}
}

// generateInsights evaluates rules in order, keeping at most maxInsights
// messages, or the fallback when nothing matches.
func generateInsights(dims []scoring.DimensionScore, rules []InsightRule) []string {
	byKey := make(map[string]scoring.DimensionScore, len(dims))
	for _, d := range dims {
		byKey[d.Key] = d
	}

	var insights []string
	for _, rule := range rules {
		if len(insights) == maxInsights {
			break
		}
		if msg, ok := rule.Match(byKey); ok {
			insights = append(insights, msg)
		}
	}
	if len(insights) == 0 {
		insights = []string{fallbackInsight}
	}
	return insights
}
