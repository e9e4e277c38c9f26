package output

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dotcommander/lifescore/internal/scoring"
)

// printer groups thousands in money amounts.
var printer = message.NewPrinter(language.English)

func formatMoney(v float64) string {
	return printer.Sprintf("%.0f", v)
}

func formatTrend(t scoring.Trend, v float64) string {
	switch t {
	case scoring.TrendUp:
		return fmt.Sprintf("▲ %+.1f", v)
	case scoring.TrendDown:
		return fmt.Sprintf("▼ %+.1f", v)
	default:
		return fmt.Sprintf("• %+.1f", v)
	}
}

func formatChange(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%+.1f kg", *v)
}

func formatOptional(v *float64, unit string) string {
	if v == nil {
		return "not logged"
	}
	return fmt.Sprintf("%.1f %s", *v, unit)
}

func days(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

// bar renders pct (0..100) as a fixed-width block bar.
func bar(pct float64, width int) string {
	filled := int(pct/100*float64(width) + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	out := make([]rune, width)
	for i := range out {
		if i < filled {
			out[i] = '█'
		} else {
			out[i] = '░'
		}
	}
	return string(out)
}
