package records

import "fmt"

// MonthlyRecord holds income streams and the monthly review.
type MonthlyRecord struct {
	Year  int `yaml:"year" json:"year"`
	Month int `yaml:"month" json:"month"`

	SalaryIncome   *float64 `yaml:"salary_income,omitempty" json:"salary_income,omitempty"`
	TradingIncome  *float64 `yaml:"trading_income,omitempty" json:"trading_income,omitempty"`
	BusinessIncome *float64 `yaml:"business_income,omitempty" json:"business_income,omitempty"`
	OtherIncome    *float64 `yaml:"other_income,omitempty" json:"other_income,omitempty"`

	MonthRating    *int   `yaml:"month_rating,omitempty" json:"month_rating,omitempty"`
	Wins           string `yaml:"wins,omitempty" json:"wins,omitempty"`
	Lessons        string `yaml:"lessons,omitempty" json:"lessons,omitempty"`
	FocusNextMonth string `yaml:"focus_next_month,omitempty" json:"focus_next_month,omitempty"`
}

// Key identifies the month, e.g. "2024-12".
func (m MonthlyRecord) Key() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month)
}

// Principle is a personal operating rule fed to the coaching collaborator.
type Principle struct {
	Content  string `yaml:"content" json:"content"`
	Category string `yaml:"category,omitempty" json:"category,omitempty"`
	IsActive *bool  `yaml:"is_active,omitempty" json:"is_active,omitempty"`
}

// Active reports whether the principle applies. Principles without an
// explicit flag are active.
func (p Principle) Active() bool {
	return p.IsActive == nil || *p.IsActive
}
