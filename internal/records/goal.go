package records

// Goal is a long-range target with optional weekly leading indicators.
type Goal struct {
	Title             string             `yaml:"title" json:"title"`
	Description       string             `yaml:"description,omitempty" json:"description,omitempty"`
	TargetValue       float64            `yaml:"target_value" json:"target_value"`
	TargetUnit        string             `yaml:"target_unit,omitempty" json:"target_unit,omitempty"`
	CurrentValue      float64            `yaml:"current_value" json:"current_value"`
	GoalType          string             `yaml:"goal_type,omitempty" json:"goal_type,omitempty"`
	Deadline          string             `yaml:"deadline,omitempty" json:"deadline,omitempty"`
	Category          string             `yaml:"category,omitempty" json:"category,omitempty"`
	LeadingIndicators []LeadingIndicator `yaml:"leading_indicators,omitempty" json:"leading_indicators,omitempty"`
	IsActive          *bool              `yaml:"is_active,omitempty" json:"is_active,omitempty"`
}

// Active reports whether the goal is in play. Goals without an explicit flag
// are active.
func (g Goal) Active() bool {
	return g.IsActive == nil || *g.IsActive
}

// LeadingIndicator is a weekly behaviour that drives a goal.
type LeadingIndicator struct {
	Name            string  `yaml:"name" json:"name"`
	TargetPerWeek   float64 `yaml:"target_per_week" json:"target_per_week"`
	CurrentThisWeek float64 `yaml:"current_this_week,omitempty" json:"current_this_week,omitempty"`
}
