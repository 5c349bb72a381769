// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package estimate

import (
	"math"
	"testing"
	"time"

	"github.com/CrudusLiv/StudyFlow-sub000/pkg/types"
)

var testNow = time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

func fptr(v float64) *float64 { return &v }

func TestHours(t *testing.T) {
	tests := []struct {
		name string
		a    types.Assignment
		want float64
	}{
		{
			name: "base hours by type",
			a:    types.Assignment{Type: types.TypeEssay},
			want: 10,
		},
		{
			name: "weight multiplier",
			a:    types.Assignment{Type: types.TypeEssay, Weight: fptr(20)},
			want: 12, // 10 * 1.2
		},
		{
			name: "word count multiplier",
			a:    types.Assignment{Type: types.TypeEssay, WordCount: 2000},
			want: 20, // 10 * 2.0
		},
		{
			name: "weight and word count compound",
			a:    types.Assignment{Type: types.TypeReport, Weight: fptr(50), WordCount: 1000},
			want: 27, // 12 * 1.5 * 1.5
		},
		{
			name: "explicit estimate wins",
			a:    types.Assignment{Type: types.TypeProject, EstimatedHours: 3, Weight: fptr(40)},
			want: 3,
		},
		{
			name: "unknown type falls back to task",
			a:    types.Assignment{Type: types.AssignmentType("thesis")},
			want: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hours(tt.a, types.EstimatorConfig{})
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Hours = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHoursConfigOverridesTable(t *testing.T) {
	cfg := types.EstimatorConfig{BaseHours: map[types.AssignmentType]float64{types.TypeEssay: 4}}
	if got := Hours(types.Assignment{Type: types.TypeEssay}, cfg); got != 4 {
		t.Errorf("Hours = %v, want 4", got)
	}
}

func TestWindow(t *testing.T) {
	tests := []struct {
		hours  float64
		perDay float64
		want   int
	}{
		{hours: 4, perDay: 2, want: 2},           // ceil(2), no buffer
		{hours: 1, perDay: 2, want: 2},           // floor of 2 days
		{hours: 6, perDay: 2, want: 4},           // 3 + 1 buffer
		{hours: 12, perDay: 2, want: 8},          // 6 + 2 buffer
		{hours: 12, perDay: 4, want: 5},          // pace shrinks the window
		{hours: 10, perDay: 0, want: 6},          // zero pace defaults to 2/day
		{hours: 10.5, perDay: 2, want: 8},        // ceil rounds up, >10 buffer
	}

	for _, tt := range tests {
		if got := Window(tt.hours, tt.perDay); got != tt.want {
			t.Errorf("Window(%v, %v) = %d, want %d", tt.hours, tt.perDay, got, tt.want)
		}
	}
}

func TestScore(t *testing.T) {
	approx := func(t *testing.T, got, want float64, field string) {
		t.Helper()
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("%s = %v, want %v", field, got, want)
		}
	}

	t.Run("neutral task", func(t *testing.T) {
		c := Score(types.Assignment{Type: types.TypeTask, Title: "Weekly reading"})
		approx(t, c.Overall, 1.0, "Overall")
		approx(t, c.Conceptual, 1.0, "Conceptual")
		approx(t, c.Procedural, 1.0, "Procedural")
	})

	t.Run("conceptual verbs raise scores", func(t *testing.T) {
		c := Score(types.Assignment{
			Type:         types.TypeEssay,
			Title:        "Critically evaluate two frameworks",
			Requirements: []string{"Compare and contrast the approaches", "Discuss limitations"},
		})
		// critically, evaluate, compare, contrast, discuss = 5 conceptual verbs.
		approx(t, c.Overall, 1.15+0.5, "Overall")
		approx(t, c.Conceptual, 1.75, "Conceptual")
		approx(t, c.Procedural, 1.0, "Procedural")
	})

	t.Run("overall clamped at ceiling", func(t *testing.T) {
		c := Score(types.Assignment{
			Type:         types.TypeProject,
			Title:        "Design and implement a compiler",
			Requirements: []string{"Build a lexer", "Develop a parser", "Construct an IR", "Test and optimize passes", "Model the type system"},
		})
		if c.Overall != 2.0 {
			t.Errorf("Overall = %v, want clamp at 2.0", c.Overall)
		}
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		due    time.Time
		weight *float64
		want   types.Priority
	}{
		{name: "due soon", due: testNow.AddDate(0, 0, 5), want: types.PriorityHigh},
		{name: "heavy weight", due: testNow.AddDate(0, 0, 40), weight: fptr(30), want: types.PriorityHigh},
		{name: "far and light", due: testNow.AddDate(0, 0, 30), weight: fptr(10), want: types.PriorityLow},
		{name: "far and unknown weight", due: testNow.AddDate(0, 0, 30), want: types.PriorityLow},
		{name: "near but light", due: testNow.AddDate(0, 0, 10), weight: fptr(10), want: types.PriorityMedium},
		{name: "far but moderate weight", due: testNow.AddDate(0, 0, 30), weight: fptr(20), want: types.PriorityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := types.Assignment{DueDate: tt.due, Weight: tt.weight}
			if got := Classify(a, testNow); got != tt.want {
				t.Errorf("Classify = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEstimateAnnotates(t *testing.T) {
	a := types.Assignment{
		Title:   "Research essay",
		Type:    types.TypeEssay,
		DueDate: testNow.AddDate(0, 0, 30),
		Weight:  fptr(20),
	}

	got := Estimate(a, testNow, nil, types.EstimatorConfig{HoursPerDay: 2})

	if got.TotalHours != 12 {
		t.Errorf("TotalHours = %v, want 12", got.TotalHours)
	}
	if got.DaysNeeded != 8 { // ceil(12/2)=6, +2 buffer above 10h
		t.Errorf("DaysNeeded = %d, want 8", got.DaysNeeded)
	}
	if want := got.DueDate.AddDate(0, 0, -8); !got.StartDate.Equal(want) {
		t.Errorf("StartDate = %s, want %s", got.StartDate.Format("2006-01-02"), want.Format("2006-01-02"))
	}
	if got.Priority != types.PriorityMedium {
		t.Errorf("Priority = %q, want medium", got.Priority)
	}
	if a.TotalHours != 0 {
		t.Error("input assignment was mutated")
	}
}

func TestEstimatePrefsOverridePace(t *testing.T) {
	a := types.Assignment{Type: types.TypeQuiz, DueDate: testNow.AddDate(0, 0, 30)}
	prefs := &types.UserPreferences{DailyHours: 4}

	got := Estimate(a, testNow, prefs, types.EstimatorConfig{HoursPerDay: 2})
	if got.DaysNeeded != 2 { // 4h at 4/day = 1, floored to 2
		t.Errorf("DaysNeeded = %d, want 2", got.DaysNeeded)
	}
}
