// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package estimate annotates assignments with required study hours,
// complexity scores, priority, and the resulting study window. All
// functions are pure; absent inputs (no weight, no word count) fall back
// to neutral defaults rather than failing.
package estimate

import (
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/CrudusLiv/StudyFlow-sub000/pkg/types"
)

// baseHours is the per-type effort table. Quiz covers tests and exams at
// the parser level, so its entry reflects exam-style preparation when the
// weight multiplier kicks in.
var baseHours = map[types.AssignmentType]float64{
	types.TypeEssay:        10,
	types.TypeReport:       12,
	types.TypeProject:      15,
	types.TypePresentation: 8,
	types.TypeQuiz:         4,
	types.TypeHomework:     5,
	types.TypeLab:          6,
	types.TypeTask:         6,
}

// typeComplexity scales the base complexity score per assignment type.
var typeComplexity = map[types.AssignmentType]float64{
	types.TypeEssay:        1.15,
	types.TypeReport:       1.2,
	types.TypeProject:      1.4,
	types.TypePresentation: 1.1,
	types.TypeQuiz:         0.9,
	types.TypeHomework:     0.9,
	types.TypeLab:          1.1,
	types.TypeTask:         1.0,
}

// Complexity-indicator verbs. Conceptual verbs signal analysis-heavy
// work, procedural verbs construction-heavy work; both raise the
// overall score.
var (
	conceptualRe = regexp.MustCompile(`(?i)\b(?:analy[sz]e|evaluate|critically|justify|compare|contrast|discuss|interpret|synthesi[sz]e)\b`)
	proceduralRe = regexp.MustCompile(`(?i)\b(?:design|implement|build|develop|construct|calculate|test|configure|optimi[sz]e|model)\b`)
)

const (
	complexityFloor = 0.5
	complexityCeil  = 2.0
)

// Estimate fills the effort fields of an assignment: TotalHours,
// DaysNeeded, StartDate, Complexity, and Priority. DueDate must already
// be resolved. The input is returned annotated; the original is not
// mutated.
func Estimate(a types.Assignment, now time.Time, prefs *types.UserPreferences, cfg types.EstimatorConfig) types.Assignment {
	a.TotalHours = Hours(a, cfg)
	a.Complexity = Score(a)
	a.Priority = Classify(a, now)
	a.DaysNeeded = Window(a.TotalHours, hoursPerDay(prefs, cfg))
	a.StartDate = a.DueDate.AddDate(0, 0, -a.DaysNeeded)
	return a
}

// Hours computes required study hours: base hours per type, multiplied
// by (1 + weight/100) when a weight is known and by (1 + wordCount/2000)
// when a length hint exists. An explicit EstimatedHours always wins.
func Hours(a types.Assignment, cfg types.EstimatorConfig) float64 {
	if a.EstimatedHours > 0 {
		return a.EstimatedHours
	}

	table := baseHours
	if len(cfg.BaseHours) > 0 {
		table = cfg.BaseHours
	}
	hours, ok := table[a.Type]
	if !ok || hours <= 0 {
		hours = baseHours[types.TypeTask]
	}

	if a.Weight != nil {
		hours *= 1 + *a.Weight/100
	}
	if a.WordCount > 0 {
		hours *= 1 + float64(a.WordCount)/2000
	}
	return hours
}

// Window converts study hours into a window length in days at the given
// daily pace: ceil(hours/pace), minimum 2, plus one buffer day above 5
// hours and two above 10.
func Window(hours, perDay float64) int {
	if perDay <= 0 {
		perDay = 2
	}
	days := int(math.Ceil(hours / perDay))
	if days < 2 {
		days = 2
	}
	switch {
	case hours > 10:
		days += 2
	case hours > 5:
		days++
	}
	return days
}

// Score computes the complexity scores. The overall score starts at 1.0,
// is scaled by the type multiplier, gains 0.1 per complexity-indicator
// verb found in the title and requirements, and is clamped to
// [0.5, 2.0]. Conceptual and procedural scores count only their own
// verb families.
func Score(a types.Assignment) types.Complexity {
	text := a.Title + " " + strings.Join(a.Requirements, " ")

	conceptual := len(conceptualRe.FindAllString(text, -1))
	procedural := len(proceduralRe.FindAllString(text, -1))

	mult, ok := typeComplexity[a.Type]
	if !ok {
		mult = 1.0
	}

	return types.Complexity{
		Overall:    clamp(mult + 0.1*float64(conceptual+procedural)),
		Conceptual: clamp(1.0 + 0.15*float64(conceptual)),
		Procedural: clamp(1.0 + 0.15*float64(procedural)),
	}
}

// Classify buckets an assignment's priority: high when due within 7 days
// or weighted at 25 percent or more; low when due at least 21 days out
// and weighted under 15 percent (unknown weight counts as under);
// medium otherwise.
func Classify(a types.Assignment, now time.Time) types.Priority {
	daysUntil := a.DueDate.Sub(now).Hours() / 24

	weight := 0.0
	if a.Weight != nil {
		weight = *a.Weight
	}

	if daysUntil <= 7 || weight >= 25 {
		return types.PriorityHigh
	}
	if daysUntil >= 21 && weight < 15 {
		return types.PriorityLow
	}
	return types.PriorityMedium
}

func hoursPerDay(prefs *types.UserPreferences, cfg types.EstimatorConfig) float64 {
	if prefs != nil && prefs.DailyHours > 0 {
		return prefs.DailyHours
	}
	if cfg.HoursPerDay > 0 {
		return cfg.HoursPerDay
	}
	return 2
}

func clamp(v float64) float64 {
	return math.Min(complexityCeil, math.Max(complexityFloor, v))
}
