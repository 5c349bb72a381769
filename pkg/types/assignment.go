// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// AssignmentType classifies a parsed unit of coursework.
type AssignmentType string

const (
	TypeEssay        AssignmentType = "essay"
	TypeReport       AssignmentType = "report"
	TypeProject      AssignmentType = "project"
	TypePresentation AssignmentType = "presentation"
	TypeQuiz         AssignmentType = "quiz"
	TypeHomework     AssignmentType = "homework"
	TypeLab          AssignmentType = "lab"
	TypeTask         AssignmentType = "task"
)

// Priority buckets an assignment by how soon it needs attention.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Complexity scores how mentally demanding an assignment is. Scores are
// clamped to [0.5, 2.0] and feed the hour and priority estimates.
type Complexity struct {
	// Overall is the combined complexity score.
	Overall float64 `json:"overall" yaml:"overall"`

	// Conceptual reflects analysis-heavy demands (evaluate, justify, compare).
	Conceptual float64 `json:"conceptual" yaml:"conceptual"`

	// Procedural reflects construction-heavy demands (implement, build, test).
	Procedural float64 `json:"procedural" yaml:"procedural"`
}

// Assignment is one parsed unit of required work from a course document.
// After resolution DueDate is never zero: a fallback date is fabricated
// when the source text states none.
type Assignment struct {
	// Title is the assignment's display name (never empty after parsing;
	// defaults to "Untitled Assignment").
	Title string `json:"title" yaml:"title"`

	// Type classifies the work: essay, report, project, presentation,
	// quiz, homework, lab, or task.
	Type AssignmentType `json:"type" yaml:"type"`

	// Number is the ordinal parsed from the title ("Assignment 2" → 2).
	// Defaults to 1 and spaces out fabricated fallback due dates.
	Number int `json:"number" yaml:"number"`

	// DueDate is the extracted or fabricated deadline.
	DueDate time.Time `json:"due_date" yaml:"due_date"`

	// Weight is the grade percentage, when stated. Nil means unknown and
	// is treated as neutral by the estimator.
	Weight *float64 `json:"weight,omitempty" yaml:"weight,omitempty"`

	// Requirements lists extracted requirement lines.
	Requirements []string `json:"requirements,omitempty" yaml:"requirements,omitempty"`

	// Deliverables lists extracted submission items.
	Deliverables []string `json:"deliverables,omitempty" yaml:"deliverables,omitempty"`

	// CourseCode identifies the course, when known (e.g. "CS101").
	CourseCode string `json:"course_code,omitempty" yaml:"course_code,omitempty"`

	// WordCount is an extracted length hint (e.g. "2000 words"). Zero
	// means no hint.
	WordCount int `json:"word_count,omitempty" yaml:"word_count,omitempty"`

	// EstimatedHours overrides the computed hour estimate when positive.
	EstimatedHours float64 `json:"estimated_hours,omitempty" yaml:"estimated_hours,omitempty"`

	// Complexity holds the heuristic complexity scores.
	Complexity Complexity `json:"complexity" yaml:"complexity"`

	// Priority buckets the assignment: high, medium, or low.
	Priority Priority `json:"priority" yaml:"priority"`

	// TotalHours is the estimated study effort. Always positive after
	// estimation.
	TotalHours float64 `json:"total_hours" yaml:"total_hours"`

	// DaysNeeded is the length of the study window in days, including
	// buffer days. At least 2 after estimation.
	DaysNeeded int `json:"days_needed" yaml:"days_needed"`

	// StartDate is DueDate minus DaysNeeded days. StartDate <= DueDate.
	StartDate time.Time `json:"start_date" yaml:"start_date"`
}

// LearningStage names a phase of working on an assignment with its share
// of the total study hours. The stage set for any assignment type sums
// to 100 percent.
type LearningStage struct {
	// Name is the stage label (e.g. "Research", "Draft Writing").
	Name string `json:"name" yaml:"name"`

	// Percent is the stage's share of total hours.
	Percent float64 `json:"percent" yaml:"percent"`
}
