package scorecard

import (
	"github.com/dotcommander/lifescore/internal/period"
	"github.com/dotcommander/lifescore/internal/records"
	"github.com/dotcommander/lifescore/internal/scoring"
)

// HistoryPoint summarises one week of a history series.
type HistoryPoint struct {
	WeekStartDate     string             `json:"weekStartDate"`
	WeekNumber        int                `json:"weekNumber"`
	Year              int                `json:"year"`
	OverallScore      int                `json:"overallScore"`
	OverallPercentage float64            `json:"overallPercentage"`
	OverallStatus     scoring.Status     `json:"overallStatus"`
	Dimensions        map[string]float64 `json:"dimensions"`
	DailyRecords      int                `json:"dailyRecords"`
	HasWeeklyRecord   bool               `json:"hasWeeklyRecord"`
}

// History scores the given number of weeks ending with the week containing
// ref, oldest first. Every week is recomputed from the records.
func (a *Aggregator) History(daily []records.DailyRecord, weekly []records.WeeklyRecord, ref records.Date, start period.WeekStartDay, weeks int) []HistoryPoint {
	if weeks <= 0 {
		return nil
	}

	points := make([]HistoryPoint, 0, weeks)
	for i := weeks - 1; i >= 0; i-- {
		sel := period.Select(daily, weekly, ref.AddDays(-7*i), start)
		sc := a.score(sel)

		dims := make(map[string]float64, len(sc.Dimensions))
		for _, d := range sc.Dimensions {
			dims[d.Key] = d.Percentage
		}
		points = append(points, HistoryPoint{
			WeekStartDate:     sc.WeekStartDate,
			WeekNumber:        sc.WeekNumber,
			Year:              sc.Year,
			OverallScore:      sc.OverallScore,
			OverallPercentage: sc.OverallPercentage,
			OverallStatus:     sc.OverallStatus,
			Dimensions:        dims,
			DailyRecords:      len(sel.Daily),
			HasWeeklyRecord:   sel.Weekly != nil,
		})
	}
	return points
}
