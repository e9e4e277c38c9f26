package income

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/dotcommander/lifescore/internal/records"
)

func TestOf(t *testing.T) {
	m := records.MonthlyRecord{
		Year:           2024,
		Month:          12,
		SalaryIncome:   records.Float(50000),
		TradingIncome:  records.Float(0.1),
		BusinessIncome: records.Float(0.2),
	}

	b := Of(m)
	assert.Equal(t, "2024-12", b.Month)
	assert.True(t, b.Other.IsZero())
	// Exact, unlike 0.1+0.2 in binary floating point.
	assert.Equal(t, "0.3", b.NonSalary.String())
	assert.Equal(t, "50000.3", b.Total.String())
	assert.True(t, Total(m).Equal(b.Total))
	assert.True(t, NonSalaryTotal(m).Equal(b.NonSalary))
}

func TestCurrent(t *testing.T) {
	monthly := []records.MonthlyRecord{
		{Year: 2024, Month: 11, TradingIncome: records.Float(100)},
		{Year: 2024, Month: 12, TradingIncome: records.Float(150000), OtherIncome: records.Float(25000)},
	}

	got := Current(monthly, records.MustParseDate("2024-12-15"))
	assert.Equal(t, "175000", got.String())

	assert.True(t, Current(monthly, records.MustParseDate("2025-01-01")).IsZero())
	_, ok := ForMonth(monthly, 2023, 12)
	assert.False(t, ok)
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name    string
		current decimal.Decimal
		target  decimal.Decimal
		want    float64
	}{
		{"quarter", decimal.NewFromInt(250000), decimal.NewFromInt(1000000), 25},
		{"one decimal", decimal.NewFromInt(1), decimal.NewFromInt(3), 33.3},
		{"rounds half away from zero", decimal.NewFromFloat(0.0015), decimal.NewFromInt(1), 0.2},
		{"over target", decimal.NewFromInt(3), decimal.NewFromInt(2), 150},
		{"zero target", decimal.NewFromInt(10), decimal.Zero, 0},
		{"negative target", decimal.NewFromInt(10), decimal.NewFromInt(-5), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Progress(tt.current, tt.target))
		})
	}
}
