package scoring

import (
	"testing"

	"github.com/dotcommander/lifescore/internal/records"
)

func fullWeek(mutate func(i int, d *records.DailyRecord)) []records.DailyRecord {
	start := records.MustParseDate("2024-12-02")
	days := make([]records.DailyRecord, 7)
	for i := range days {
		days[i].Date = start.AddDays(i)
		if mutate != nil {
			mutate(i, &days[i])
		}
	}
	return days
}

func metric(t *testing.T, s DimensionScore, name string) ScoreBreakdown {
	t.Helper()
	for _, b := range s.Breakdown {
		if b.Metric == name {
			return b
		}
	}
	t.Fatalf("%s has no metric %q", s.Key, name)
	return ScoreBreakdown{}
}

func TestPhysicalScorer_PerfectWeek(t *testing.T) {
	days := fullWeek(func(_ int, d *records.DailyRecord) {
		d.ExerciseDone = true
		d.ProteinTargetHit = true
		d.SleepScheduleStatus = records.SleepAsScheduled
		d.EnergyLevel = records.Int(8)
	})

	got := NewPhysicalScorer().Score(Week{Daily: days})
	if got.Score != 100 {
		t.Errorf("Score = %d, want 100", got.Score)
	}
	if got.Status != StatusExcellent {
		t.Errorf("Status = %q, want excellent", got.Status)
	}
	for _, b := range got.Breakdown {
		if !b.Met {
			t.Errorf("metric %q not met", b.Metric)
		}
	}
}

func TestPhysicalScorer_Partial(t *testing.T) {
	days := fullWeek(func(i int, d *records.DailyRecord) {
		d.ExerciseDone = i < 3
		if i < 2 {
			d.EnergyLevel = records.Int(6)
		}
		if i == 0 {
			d.SleepScheduleStatus = records.SleepLessThan8
		}
	})

	got := NewPhysicalScorer().Score(Week{Daily: days})
	exercise := metric(t, got, "Exercise days")
	if exercise.Value != 3 || exercise.Points != 13 || exercise.Target != 6 {
		t.Errorf("exercise = %+v", exercise)
	}
	if p := metric(t, got, "Protein target hit").Points; p != 0 {
		t.Errorf("protein points = %d", p)
	}
	if p := metric(t, got, "Sleep on schedule (9pm-5am)").Points; p != 0 {
		t.Errorf("sleep points = %d", p)
	}
	// Unlogged energy is excluded from the average: 6 over two days.
	energy := metric(t, got, "Avg energy level")
	if energy.Value != 6.0 || energy.Points != 19 {
		t.Errorf("energy = %+v", energy)
	}
	if got.Score != 32 {
		t.Errorf("Score = %d, want 32", got.Score)
	}
}

func TestEmptyWeek(t *testing.T) {
	scores := ScoreAll(Week{})
	for _, s := range scores {
		want := 0
		if s.Key == MentalHealth.Key {
			// Stress falls back to the neutral average of 5.
			want = 25
		}
		if s.Score != want {
			t.Errorf("%s Score = %d, want %d", s.Key, s.Score, want)
		}
		if s.Status != StatusCritical {
			t.Errorf("%s Status = %q, want critical", s.Key, s.Status)
		}
	}
}

func TestZeroPlannedTasks(t *testing.T) {
	days := fullWeek(func(_ int, d *records.DailyRecord) {
		d.TasksPlanned = records.Int(0)
		d.TasksCompleted = records.Int(4)
	})
	w := Week{Daily: days}

	for _, s := range []DimensionScore{NewCareerScorer().Score(w), NewProductivityScorer().Score(w)} {
		rate := metric(t, s, "Task completion rate")
		if rate.Points != 0 || rate.Value != "0%" || rate.Met {
			t.Errorf("%s completion = %+v", s.Key, rate)
		}
	}
}

func TestMentalScorer(t *testing.T) {
	days := fullWeek(func(i int, d *records.DailyRecord) {
		d.MeditationDone = i < 5
		d.ReadingDone = i < 5
		d.StressLevel = records.Int(4)
		d.SleepQuality = records.Int(7)
	})

	got := NewMentalScorer().Score(Week{Daily: days})
	// meditation 5/7 -> 21, stress 30, sleep quality 7/8 -> 18, reading 20
	if got.Score != 89 {
		t.Errorf("Score = %d, want 89", got.Score)
	}
	med := metric(t, got, "Meditation days")
	if med.Target != 7 || med.Met {
		t.Errorf("meditation = %+v", med)
	}
	if got.Status != StatusGood {
		t.Errorf("Status = %q", got.Status)
	}
}

func TestCareerScorer(t *testing.T) {
	days := fullWeek(func(i int, d *records.DailyRecord) {
		switch {
		case i < 4:
			d.DeepWorkHours = records.Float(2)
		case i == 4:
			d.DeepWorkHours = records.Float(1.5)
		}
		d.TasksPlanned = records.Int(5)
		d.TasksCompleted = records.Int(4)
		d.AISkillsDone = i%2 == 0
	})

	got := NewCareerScorer().Score(Week{Daily: days})
	if p := metric(t, got, "Days with 1.5+ hrs deep work").Points; p != 30 {
		t.Errorf("deep work days points = %d", p)
	}
	if p := metric(t, got, "Task completion rate").Points; p != 30 {
		t.Errorf("completion points = %d", p)
	}
	ai := metric(t, got, "AI skills practice days")
	if ai.Value != 4 || ai.Points != 16 {
		t.Errorf("ai = %+v", ai)
	}
	total := metric(t, got, "Total deep work hours")
	if total.Value != 9.5 || total.Points != 20 || !total.Met {
		t.Errorf("total = %+v", total)
	}
	if got.Score != 96 {
		t.Errorf("Score = %d, want 96", got.Score)
	}
}

func TestWealthScorer(t *testing.T) {
	days := fullWeek(func(i int, d *records.DailyRecord) {
		if i < 5 {
			d.TasksCompleted = records.Int(3)
		}
	})

	t.Run("no weekly record", func(t *testing.T) {
		got := NewWealthScorer().Score(Week{Daily: days})
		yt := metric(t, got, "YouTube video posted")
		if yt.Value != "No" || yt.Points != 0 {
			t.Errorf("youtube = %+v", yt)
		}
		if got.Score != 25 {
			t.Errorf("Score = %d, want 25", got.Score)
		}
	})

	t.Run("with weekly record", func(t *testing.T) {
		weekly := &records.WeeklyRecord{YouTubeVideoPosted: true, ClientOutreachCount: 4}
		got := NewWealthScorer().Score(Week{Daily: days, Weekly: weekly})
		outreach := metric(t, got, "Client outreach count")
		if outreach.Points != 10 || outreach.Value != 4 {
			t.Errorf("outreach = %+v", outreach)
		}
		if got.Score != 60 {
			t.Errorf("Score = %d, want 60", got.Score)
		}
	})
}

func TestRelationshipsScorer(t *testing.T) {
	if got := NewRelationshipsScorer().Score(Week{Daily: fullWeek(nil)}); got.Score != 0 {
		t.Errorf("absent weekly record Score = %d, want 0", got.Score)
	}

	weekly := &records.WeeklyRecord{LovedOneLunch: true, FamilyDinner: true, QualityTimeHours: records.Float(4)}
	got := NewRelationshipsScorer().Score(Week{Weekly: weekly})
	// 30 + 30 + round(4/5*40)=32
	if got.Score != 92 || got.Status != StatusExcellent {
		t.Errorf("Score = %d (%s), want 92 excellent", got.Score, got.Status)
	}
}

func TestProductivityScorer(t *testing.T) {
	wakes := []string{"04:30", "05:00", "05:59", "06:00", "", "5:10", "late"}
	days := fullWeek(func(i int, d *records.DailyRecord) {
		d.WakeTime = wakes[i]
		if i < 5 {
			d.Top3Priorities = []string{"a", "b", "c"}
		}
		if i == 5 {
			d.Top3Priorities = []string{"a", " ", "c"}
		}
		d.DeepWorkHours = records.Float(1)
	})

	got := NewProductivityScorer().Score(Week{Daily: days})
	wake := metric(t, got, "Wake by 5am")
	// hour <= 5: 04:30, 05:00, 05:59, 5:10
	if wake.Value != 4 || wake.Points != 20 {
		t.Errorf("wake = %+v", wake)
	}
	if p := metric(t, got, "Days with 3 priorities set").Points; p != 25 {
		t.Errorf("priorities points = %d", p)
	}
	if p := metric(t, got, "Days with 1+ hr deep work").Points; p != 20 {
		t.Errorf("deep work points = %d", p)
	}
}

func TestVisionScorer(t *testing.T) {
	weekly := &records.WeeklyRecord{BigDecisionMade: "  ", WhatWentWell: "shipped", FocusNextWeek: "sales"}
	days := fullWeek(func(i int, d *records.DailyRecord) {
		if i < 2 {
			d.BestOfDay = "sunrise run"
		}
	})

	got := NewVisionScorer().Score(Week{Daily: days, Weekly: weekly})
	if metric(t, got, "Big decision made").Met {
		t.Error("blank decision should not count")
	}
	// 0 + 25 + 25 + round(2/5*20)=8
	if got.Score != 58 {
		t.Errorf("Score = %d, want 58", got.Score)
	}
}

func TestAwarenessScorer(t *testing.T) {
	days := fullWeek(func(i int, d *records.DailyRecord) {
		switch i {
		case 0:
			d.BestOfDay = "x"
		case 1:
			d.ReflectionGood = "y"
		}
		if i < 3 {
			d.ReflectionImprove = "sleep earlier"
		}
		d.ReadingDone = true
	})

	got := NewAwarenessScorer().Score(Week{Daily: days})
	// round(2/5*30)=12 + 25 + 0 + 20
	if got.Score != 57 {
		t.Errorf("Score = %d, want 57", got.Score)
	}
	if m := metric(t, got, "Meditation days"); m.Target != 5 {
		t.Errorf("awareness meditation target = %v, want 5", m.Target)
	}
}

func TestBreakdownSumsMatchScore(t *testing.T) {
	weeks := []Week{
		{},
		{Daily: fullWeek(func(i int, d *records.DailyRecord) {
			d.ExerciseDone = i%2 == 0
			d.StressLevel = records.Int(i + 1)
			d.EnergyLevel = records.Int(10 - i)
			d.DeepWorkHours = records.Float(float64(i) * 0.4)
			d.TasksPlanned = records.Int(4)
			d.TasksCompleted = records.Int(i % 4)
			d.WakeTime = "05:30"
		}), Weekly: &records.WeeklyRecord{ClientOutreachCount: 13, QualityTimeHours: records.Float(2.5)}},
	}

	for _, w := range weeks {
		for _, s := range ScoreAll(w) {
			var pts, maxPts int
			for _, b := range s.Breakdown {
				pts += b.Points
				maxPts += b.MaxPoints
				if b.Points < 0 || b.Points > b.MaxPoints {
					t.Errorf("%s/%s points %d out of range", s.Key, b.Metric, b.Points)
				}
			}
			if pts != s.Score {
				t.Errorf("%s: breakdown sum %d != score %d", s.Key, pts, s.Score)
			}
			if maxPts != 100 || s.MaxScore != 100 {
				t.Errorf("%s: max %d/%d, want 100", s.Key, maxPts, s.MaxScore)
			}
			if s.Percentage < 0 || s.Percentage > 100 {
				t.Errorf("%s: percentage %v out of range", s.Key, s.Percentage)
			}
			if len(s.Breakdown) < 3 || len(s.Breakdown) > 4 {
				t.Errorf("%s: %d metrics", s.Key, len(s.Breakdown))
			}
		}
	}
}
