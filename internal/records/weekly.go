package records

// WeeklyRecord holds the once-per-week review, keyed by its week-start date.
type WeeklyRecord struct {
	WeekStartDate Date `yaml:"week_start_date" json:"week_start_date"`
	Year          int  `yaml:"year,omitempty" json:"year,omitempty"`
	WeekNumber    int  `yaml:"week_number,omitempty" json:"week_number,omitempty"`

	// Relationships
	LovedOneLunch    bool     `yaml:"loved_one_lunch" json:"loved_one_lunch"`
	FamilyDinner     bool     `yaml:"family_dinner" json:"family_dinner"`
	QualityTimeHours *float64 `yaml:"quality_time_hours,omitempty" json:"quality_time_hours,omitempty"`

	// Business leading indicators
	YouTubeVideoPosted    bool `yaml:"youtube_video_posted" json:"youtube_video_posted"`
	YouTubeVideoCount     int  `yaml:"youtube_video_count" json:"youtube_video_count"`
	ClientOutreachCount   int  `yaml:"client_outreach_count" json:"client_outreach_count"`
	ProductOfferingsCount int  `yaml:"product_offerings_count" json:"product_offerings_count"`

	// Review
	WeekRating      *int   `yaml:"week_rating,omitempty" json:"week_rating,omitempty"`
	BigDecisionMade string `yaml:"big_decision_made,omitempty" json:"big_decision_made,omitempty"`
	WhatWentWell    string `yaml:"what_went_well,omitempty" json:"what_went_well,omitempty"`
	WhatToImprove   string `yaml:"what_to_improve,omitempty" json:"what_to_improve,omitempty"`
	FocusNextWeek   string `yaml:"focus_next_week,omitempty" json:"focus_next_week,omitempty"`
}
