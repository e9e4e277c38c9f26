// Package income totals monthly income streams with exact decimal arithmetic.
package income

import (
	"github.com/shopspring/decimal"

	"github.com/dotcommander/lifescore/internal/records"
)

var hundred = decimal.NewFromInt(100)

// Breakdown is one month's income by stream.
type Breakdown struct {
	Month     string          `json:"month"`
	Salary    decimal.Decimal `json:"salary"`
	Trading   decimal.Decimal `json:"trading"`
	Business  decimal.Decimal `json:"business"`
	Other     decimal.Decimal `json:"other"`
	NonSalary decimal.Decimal `json:"non_salary"`
	Total     decimal.Decimal `json:"total"`
}

// Of breaks a monthly record down by stream. Unlogged streams are zero.
func Of(m records.MonthlyRecord) Breakdown {
	b := Breakdown{
		Month:    m.Key(),
		Salary:   amount(m.SalaryIncome),
		Trading:  amount(m.TradingIncome),
		Business: amount(m.BusinessIncome),
		Other:    amount(m.OtherIncome),
	}
	b.NonSalary = b.Trading.Add(b.Business).Add(b.Other)
	b.Total = b.Salary.Add(b.NonSalary)
	return b
}

// Total is every income stream for the month.
func Total(m records.MonthlyRecord) decimal.Decimal {
	return Of(m).Total
}

// NonSalaryTotal is the income the business goal tracks: trading, business,
// and other income.
func NonSalaryTotal(m records.MonthlyRecord) decimal.Decimal {
	return Of(m).NonSalary
}

// ForMonth returns the record for year/month, if present.
func ForMonth(monthly []records.MonthlyRecord, year, month int) (records.MonthlyRecord, bool) {
	for _, m := range monthly {
		if m.Year == year && m.Month == month {
			return m, true
		}
	}
	return records.MonthlyRecord{}, false
}

// Current is the non-salary income of the month containing ref, or zero when
// that month has no record.
func Current(monthly []records.MonthlyRecord, ref records.Date) decimal.Decimal {
	m, ok := ForMonth(monthly, ref.Year(), int(ref.Month()))
	if !ok {
		return decimal.Zero
	}
	return NonSalaryTotal(m)
}

// Progress is current/target as a percentage rounded to one decimal. A
// non-positive target yields 0.
func Progress(current, target decimal.Decimal) float64 {
	if !target.IsPositive() {
		return 0
	}
	return current.Div(target).Mul(hundred).Round(1).InexactFloat64()
}

func amount(v *float64) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return decimal.NewFromFloat(*v)
}
