package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dotcommander/lifescore/internal/coach"
	"github.com/dotcommander/lifescore/internal/scorecard"
	"github.com/dotcommander/lifescore/internal/scoring"
	"github.com/dotcommander/lifescore/internal/types"
)

// nameWidth is the column width for dimension names.
const nameWidth = 32

// ConsoleFormatter formats reports for terminal display
type ConsoleFormatter struct {
	quiet    bool
	verbose  bool
	colorize bool
}

// NewConsoleFormatter creates a new ConsoleFormatter
func NewConsoleFormatter(quiet, verbose bool) *ConsoleFormatter {
	return &ConsoleFormatter{
		quiet:    quiet,
		verbose:  verbose,
		colorize: true,
	}
}

func (f *ConsoleFormatter) style(color string) lipgloss.Style {
	if !f.colorize || color == "" {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

func (f *ConsoleFormatter) bold() lipgloss.Style {
	if !f.colorize {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Bold(true)
}

func (f *ConsoleFormatter) statusStyle(s scoring.Status) lipgloss.Style {
	switch s {
	case scoring.StatusExcellent:
		return f.style("10") // green
	case scoring.StatusGood:
		return f.style("2")
	case scoring.StatusOkay:
		return f.style("3") // yellow
	case scoring.StatusBelow:
		return f.style("208") // orange
	default:
		return f.style("9") // red
	}
}

func (f *ConsoleFormatter) trendStyle(t scoring.Trend) lipgloss.Style {
	switch t {
	case scoring.TrendUp:
		return f.style("10")
	case scoring.TrendDown:
		return f.style("9")
	default:
		return f.style("8") // gray
	}
}

// Scorecard prints the week's scorecard with trends against the prior week
func (f *ConsoleFormatter) Scorecard(w io.Writer, c scorecard.Comparison) error {
	sc := c.Scorecard
	header := fmt.Sprintf("Week %d, %d (from %s)", sc.WeekNumber, sc.Year, sc.WeekStartDate)
	fmt.Fprintln(w, f.bold().Render(header))
	fmt.Fprintln(w)

	overall := fmt.Sprintf("%d/%d  %5.1f%%  %s", sc.OverallScore, len(sc.Dimensions)*100, sc.OverallPercentage, sc.OverallStatus.Label())
	fmt.Fprintf(w, "%s %s  %s\n",
		f.bold().Width(nameWidth).Render("Overall"),
		f.statusStyle(sc.OverallStatus).Render(overall),
		f.trendStyle(c.OverallTrend).Render(formatTrend(c.OverallTrend, c.OverallTrendValue)))
	fmt.Fprintln(w)

	for _, d := range sc.Dimensions {
		f.printDimension(w, d)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s\n", f.bold().Render("Focus areas:"), strings.Join(sc.FocusAreas, ", "))
	fmt.Fprintln(w, f.bold().Render("Insights:"))
	for _, insight := range sc.Insights {
		fmt.Fprintf(w, "  • %s\n", insight)
	}

	if sc.OverallStatus == scoring.StatusExcellent && f.colorize && isTTY(w) {
		printCelebration(w, "Excellent week!")
	}
	return nil
}

func (f *ConsoleFormatter) printDimension(w io.Writer, d scoring.DimensionScore) {
	score := fmt.Sprintf("%3d/%-3d %5.1f%%  %-14s", d.Score, d.MaxScore, d.Percentage, d.Status.Label())
	fmt.Fprintf(w, "%s %s %s  %s\n",
		f.style(d.Color).Width(nameWidth).Render(d.Name),
		f.style("8").Render(bar(d.Percentage, 10)),
		f.statusStyle(d.Status).Render(score),
		f.trendStyle(d.Trend).Render(formatTrend(d.Trend, d.TrendValue)))

	if !f.verbose {
		return
	}
	for _, b := range d.Breakdown {
		mark := f.style("10").Render("✓")
		if !b.Met {
			mark = f.style("9").Render("✗")
		}
		fmt.Fprintf(w, "    %s %-32s %v / %v  (%d/%d)\n", mark, b.Metric, b.Value, b.Target, b.Points, b.MaxPoints)
	}
}

// Dashboard prints running stats, goals, and motivation
func (f *ConsoleFormatter) Dashboard(w io.Writer, r DashboardReport) error {
	s := r.Stats
	heading := f.bold()

	fmt.Fprintln(w, heading.Render("Dashboard for "+s.Today))
	fmt.Fprintln(w)

	fmt.Fprintln(w, heading.Render("Streaks"))
	fmt.Fprintf(w, "  %-18s %s\n", "Exercise", days(s.ExerciseStreak))
	fmt.Fprintf(w, "  %-18s %s\n", "Meditation", days(s.MeditationStreak))
	fmt.Fprintf(w, "  %-18s %s\n", "Reading", days(s.ReadingStreak))
	fmt.Fprintln(w)

	fmt.Fprintln(w, heading.Render("This week"))
	fmt.Fprintf(w, "  %-18s %.1f h\n", "Avg sleep", s.AvgSleepHours)
	fmt.Fprintf(w, "  %-18s %.1f h\n", "Avg deep work", s.AvgDeepWorkHours)
	fmt.Fprintf(w, "  %-18s %.1f/10\n", "Avg energy", s.AvgEnergyLevel)
	fmt.Fprintf(w, "  %-18s %.1f/10\n", "Avg stress", s.AvgStressLevel)
	fmt.Fprintf(w, "  %-18s %d/7\n", "Exercise", s.ExerciseDays)
	fmt.Fprintf(w, "  %-18s %d/7\n", "Protein target", s.ProteinTargetHitDays)
	fmt.Fprintf(w, "  %-18s %d/7\n", "Meditation", s.MeditationDays)
	fmt.Fprintf(w, "  %-18s %d/7\n", "Reading", s.ReadingDays)
	fmt.Fprintf(w, "  %-18s %d/7\n", "AI skills", s.AISkillsDays)
	fmt.Fprintf(w, "  %-18s %d\n", "YouTube videos", s.YouTubeVideosThisWeek)
	fmt.Fprintf(w, "  %-18s %d\n", "Client outreach", s.ClientOutreachThisWeek)
	fmt.Fprintln(w)

	fmt.Fprintln(w, heading.Render("Weight"))
	fmt.Fprintf(w, "  %-18s %s\n", "Current", formatOptional(s.CurrentWeight, "kg"))
	fmt.Fprintf(w, "  %-18s %s\n", "Week change", formatChange(s.WeightChangeWeek))
	fmt.Fprintf(w, "  %-18s %s\n", "Month change", formatChange(s.WeightChangeMonth))
	fmt.Fprintln(w)

	fmt.Fprintln(w, heading.Render("Income"))
	fmt.Fprintf(w, "  %-18s %s / %s  %s %.1f%%\n", "Non-salary",
		formatMoney(s.CurrentMonthlyIncome), formatMoney(s.TargetIncome),
		f.style("8").Render(bar(s.IncomeGoalProgress, 10)), s.IncomeGoalProgress)
	if r.Income != nil {
		fmt.Fprintf(w, "  %-18s %s\n", "Month total ("+r.Income.Month+")", formatMoney(r.Income.Total.InexactFloat64()))
	}

	if len(r.Goals) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, heading.Render("Goals"))
		for _, g := range r.Goals {
			fmt.Fprintf(w, "  %-32s %s %5.1f%%\n", g.Goal.Title, f.style("8").Render(bar(g.Progress, 10)), g.Progress)
		}
	}

	fmt.Fprintln(w)
	for _, m := range r.Motivations {
		fmt.Fprintln(w, f.style("11").Render(m))
	}
	return nil
}

// History prints one line per week, oldest first
func (f *ConsoleFormatter) History(w io.Writer, points []scorecard.HistoryPoint) error {
	if len(points) == 0 {
		fmt.Fprintln(w, "No history.")
		return nil
	}
	fmt.Fprintln(w, f.bold().Render(fmt.Sprintf("%-10s  %-8s  %-20s  %7s  %-14s  %s", "Week", "ISO", "", "Overall", "Status", "Logged")))
	for _, p := range points {
		logged := fmt.Sprintf("%d/7", p.DailyRecords)
		if p.HasWeeklyRecord {
			logged += " +review"
		}
		fmt.Fprintf(w, "%-10s  %d-W%02d  %s  %6.1f%%  %s  %s\n",
			p.WeekStartDate, p.Year, p.WeekNumber,
			f.style("8").Render(bar(p.OverallPercentage, 20)),
			p.OverallPercentage,
			f.statusStyle(p.OverallStatus).Render(fmt.Sprintf("%-14s", p.OverallStatus.Label())),
			logged)
	}
	return nil
}

// Validation prints issues grouped by file
func (f *ConsoleFormatter) Validation(w io.Writer, r ValidationReport) error {
	if f.quiet {
		return nil
	}

	files, byFile := groupByFile(r.Issues)
	for _, file := range files {
		issues := byFile[file]
		status := f.style("3").Render("⚠")
		if types.HasErrors(issues) {
			status = f.style("9").Render("✗")
		}
		fmt.Fprintf(w, "%s %s\n", status, file)
		for _, issue := range issues {
			f.printIssue(w, issue)
		}
	}

	ignored := ""
	if r.Ignored > 0 {
		ignored = fmt.Sprintf(", %d ignored by baseline", r.Ignored)
	}

	if len(r.Issues) > 0 {
		fmt.Fprintf(w, "\n%d records, %d errors, %d warnings%s\n", totalRecords(r.Records), r.Errors(), r.Warnings(), ignored)
		return nil
	}

	fmt.Fprintln(w, f.bold().Inherit(f.style("10")).Render(fmt.Sprintf("✓ All passed (%d records%s)", totalRecords(r.Records), ignored)))
	return nil
}

func (f *ConsoleFormatter) printIssue(w io.Writer, issue types.ValidationError) {
	style := f.style("3")
	prefix := "    ⚠ "
	if issue.Severity == types.SeverityError {
		style = f.style("9")
		prefix = "    ✘ "
	}

	loc := issue.File
	if issue.Line > 0 {
		loc = fmt.Sprintf("%s:%d", issue.File, issue.Line)
	}
	fmt.Fprintf(w, "%s%s: %s\n", prefix, style.Render(loc), issue.Message)
}

// Coach has no console rendering; the payload is always JSON.
func (f *ConsoleFormatter) Coach(w io.Writer, in coach.Input) error {
	return writeJSON(w, in, true)
}

func totalRecords(counts map[string]int) int {
	n := 0
	for _, c := range counts {
		n += c
	}
	return n
}
