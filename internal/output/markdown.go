package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dotcommander/lifescore/internal/coach"
	"github.com/dotcommander/lifescore/internal/scorecard"
	"github.com/dotcommander/lifescore/internal/scoring"
)

// MarkdownFormatter formats reports as Markdown
type MarkdownFormatter struct {
	verbose bool
}

// NewMarkdownFormatter creates a new MarkdownFormatter
func NewMarkdownFormatter(verbose bool) *MarkdownFormatter {
	return &MarkdownFormatter{verbose: verbose}
}

func flush(w io.Writer, builder *strings.Builder) error {
	if _, err := io.WriteString(w, builder.String()); err != nil {
		return fmt.Errorf("error writing markdown: %w", err)
	}
	return nil
}

// Scorecard writes the scorecard as a dimension table
func (f *MarkdownFormatter) Scorecard(w io.Writer, c scorecard.Comparison) error {
	sc := c.Scorecard
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("# Weekly Scorecard: Week %d, %d\n\n", sc.WeekNumber, sc.Year))
	builder.WriteString(fmt.Sprintf("**Week of:** %s\n\n", sc.WeekStartDate))
	builder.WriteString(fmt.Sprintf("**Overall:** %d/%d (%.1f%%) %s %s\n\n",
		sc.OverallScore, len(sc.Dimensions)*100, sc.OverallPercentage, sc.OverallStatus.Label(), formatTrend(c.OverallTrend, c.OverallTrendValue)))

	builder.WriteString("| Dimension | Score | % | Status | Trend |\n")
	builder.WriteString("|-----------|-------|---|--------|-------|\n")
	for _, d := range sc.Dimensions {
		builder.WriteString(fmt.Sprintf("| %s | %d/%d | %.1f | %s | %s |\n",
			d.Name, d.Score, d.MaxScore, d.Percentage, d.Status.Label(), formatTrend(d.Trend, d.TrendValue)))
	}
	builder.WriteString("\n")

	if f.verbose {
		for _, d := range sc.Dimensions {
			writeBreakdown(&builder, d)
		}
	}

	builder.WriteString("## Focus Areas\n\n")
	for _, name := range sc.FocusAreas {
		builder.WriteString(fmt.Sprintf("- %s\n", name))
	}
	builder.WriteString("\n## Insights\n\n")
	for _, insight := range sc.Insights {
		builder.WriteString(fmt.Sprintf("- %s\n", insight))
	}

	return flush(w, &builder)
}

func writeBreakdown(builder *strings.Builder, d scoring.DimensionScore) {
	builder.WriteString(fmt.Sprintf("### %s\n\n", d.Name))
	builder.WriteString("| Metric | Value | Target | Points | Met |\n")
	builder.WriteString("|--------|-------|--------|--------|-----|\n")
	for _, b := range d.Breakdown {
		builder.WriteString(fmt.Sprintf("| %s | %v | %v | %d/%d | %s |\n",
			b.Metric, b.Value, b.Target, b.Points, b.MaxPoints, getStatusEmoji(b.Met)))
	}
	builder.WriteString("\n")
}

// Dashboard writes dashboard stats as tables
func (f *MarkdownFormatter) Dashboard(w io.Writer, r DashboardReport) error {
	s := r.Stats
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("# Dashboard: %s\n\n", s.Today))

	builder.WriteString("## Streaks\n\n")
	builder.WriteString("| Habit | Streak |\n")
	builder.WriteString("|-------|--------|\n")
	builder.WriteString(fmt.Sprintf("| Exercise | %s |\n", days(s.ExerciseStreak)))
	builder.WriteString(fmt.Sprintf("| Meditation | %s |\n", days(s.MeditationStreak)))
	builder.WriteString(fmt.Sprintf("| Reading | %s |\n\n", days(s.ReadingStreak)))

	builder.WriteString("## This Week\n\n")
	builder.WriteString("| Metric | Value |\n")
	builder.WriteString("|--------|-------|\n")
	builder.WriteString(fmt.Sprintf("| Avg sleep | %.1f h |\n", s.AvgSleepHours))
	builder.WriteString(fmt.Sprintf("| Avg deep work | %.1f h |\n", s.AvgDeepWorkHours))
	builder.WriteString(fmt.Sprintf("| Avg energy | %.1f/10 |\n", s.AvgEnergyLevel))
	builder.WriteString(fmt.Sprintf("| Avg stress | %.1f/10 |\n", s.AvgStressLevel))
	builder.WriteString(fmt.Sprintf("| Exercise | %d/7 |\n", s.ExerciseDays))
	builder.WriteString(fmt.Sprintf("| Protein target | %d/7 |\n", s.ProteinTargetHitDays))
	builder.WriteString(fmt.Sprintf("| Meditation | %d/7 |\n", s.MeditationDays))
	builder.WriteString(fmt.Sprintf("| Reading | %d/7 |\n", s.ReadingDays))
	builder.WriteString(fmt.Sprintf("| AI skills | %d/7 |\n", s.AISkillsDays))
	builder.WriteString(fmt.Sprintf("| YouTube videos | %d |\n", s.YouTubeVideosThisWeek))
	builder.WriteString(fmt.Sprintf("| Client outreach | %d |\n\n", s.ClientOutreachThisWeek))

	builder.WriteString("## Weight and Income\n\n")
	builder.WriteString(fmt.Sprintf("- **Weight:** %s (week %s, month %s)\n",
		formatOptional(s.CurrentWeight, "kg"), formatChange(s.WeightChangeWeek), formatChange(s.WeightChangeMonth)))
	builder.WriteString(fmt.Sprintf("- **Non-salary income:** %s / %s (%.1f%%)\n",
		formatMoney(s.CurrentMonthlyIncome), formatMoney(s.TargetIncome), s.IncomeGoalProgress))
	if r.Income != nil {
		builder.WriteString(fmt.Sprintf("- **Total income %s:** %s\n", r.Income.Month, formatMoney(r.Income.Total.InexactFloat64())))
	}
	builder.WriteString("\n")

	if len(r.Goals) > 0 {
		builder.WriteString("## Goals\n\n")
		builder.WriteString("| Goal | Progress |\n")
		builder.WriteString("|------|----------|\n")
		for _, g := range r.Goals {
			builder.WriteString(fmt.Sprintf("| %s | %.1f%% |\n", g.Goal.Title, g.Progress))
		}
		builder.WriteString("\n")
	}

	for _, m := range r.Motivations {
		builder.WriteString(fmt.Sprintf("> %s\n", m))
	}

	return flush(w, &builder)
}

// History writes one table row per week with every dimension
func (f *MarkdownFormatter) History(w io.Writer, points []scorecard.HistoryPoint) error {
	var builder strings.Builder
	builder.WriteString("# Score History\n\n")

	if len(points) == 0 {
		builder.WriteString("*No history.*\n")
		return flush(w, &builder)
	}

	dims := scoring.All()
	builder.WriteString("| Week | Overall |")
	for _, s := range dims {
		builder.WriteString(fmt.Sprintf(" %s |", s.Dimension().Name))
	}
	builder.WriteString("\n|------|---------|")
	builder.WriteString(strings.Repeat("---|", len(dims)))
	builder.WriteString("\n")

	for _, p := range points {
		builder.WriteString(fmt.Sprintf("| %s | %.1f |", p.WeekStartDate, p.OverallPercentage))
		for _, s := range dims {
			builder.WriteString(fmt.Sprintf(" %.1f |", p.Dimensions[s.Dimension().Key]))
		}
		builder.WriteString("\n")
	}

	return flush(w, &builder)
}

// Validation writes issues grouped by file
func (f *MarkdownFormatter) Validation(w io.Writer, r ValidationReport) error {
	var builder strings.Builder

	builder.WriteString("# Validation Report\n\n")
	builder.WriteString(fmt.Sprintf("**Data directory:** %s\n\n", r.DataDir))

	builder.WriteString("## Summary\n\n")
	builder.WriteString("| Metric | Count |\n")
	builder.WriteString("|--------|-------|\n")
	builder.WriteString(fmt.Sprintf("| Records | %d |\n", totalRecords(r.Records)))
	builder.WriteString(fmt.Sprintf("| Errors | %d |\n", r.Errors()))
	builder.WriteString(fmt.Sprintf("| Warnings | %d |\n", r.Warnings()))
	builder.WriteString(fmt.Sprintf("| Ignored by baseline | %d |\n\n", r.Ignored))

	files, byFile := groupByFile(r.Issues)
	for _, file := range files {
		builder.WriteString(fmt.Sprintf("### %s\n\n", file))
		for _, issue := range byFile[file] {
			builder.WriteString(fmt.Sprintf("- **%s** - %s", issue.Severity, issue.Message))
			if issue.Line > 0 {
				builder.WriteString(fmt.Sprintf(" (line %d)", issue.Line))
			}
			if issue.Source != "" {
				builder.WriteString(fmt.Sprintf(" `[%s]`", issue.Source))
			}
			builder.WriteString("\n")
		}
		builder.WriteString("\n")
	}

	builder.WriteString("## Conclusion\n\n")
	if r.Errors() == 0 {
		builder.WriteString("✓ All records passed validation!\n")
	} else {
		builder.WriteString(fmt.Sprintf("✗ %d errors found\n", r.Errors()))
	}

	return flush(w, &builder)
}

// Coach emits the payload as a fenced JSON block.
func (f *MarkdownFormatter) Coach(w io.Writer, in coach.Input) error {
	if _, err := io.WriteString(w, "```json\n"); err != nil {
		return fmt.Errorf("error writing markdown: %w", err)
	}
	if err := writeJSON(w, in, true); err != nil {
		return err
	}
	_, err := io.WriteString(w, "```\n")
	return err
}

// getStatusEmoji returns an emoji for the status
func getStatusEmoji(met bool) string {
	if met {
		return "✅"
	}
	return "❌"
}
