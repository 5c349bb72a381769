// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// EntryKind tags the variant of a ScheduleEntry.
type EntryKind string

const (
	KindStudySession   EntryKind = "study-session"
	KindRevision       EntryKind = "revision"
	KindMilestone      EntryKind = "milestone"
	KindTopicStudy     EntryKind = "topic-study"
	KindKnowledgeCheck EntryKind = "knowledge-check"
)

// Resource links a ScheduleEntry back to what produced it. It is a
// kind-specific payload consumed by the calendar UI; fields not relevant
// to a kind are left zero.
type Resource struct {
	// AssignmentTitle names the originating assignment. Empty for
	// topic-study entries.
	AssignmentTitle string `json:"assignment_title,omitempty" yaml:"assignment_title,omitempty"`

	// DueDate is the originating assignment's deadline.
	DueDate time.Time `json:"due_date,omitempty" yaml:"due_date,omitempty"`

	// SessionNumber is the 1-based index of a study session.
	SessionNumber int `json:"session_number,omitempty" yaml:"session_number,omitempty"`

	// TotalSessions is the study-session count for the assignment.
	TotalSessions int `json:"total_sessions,omitempty" yaml:"total_sessions,omitempty"`

	// Stage is the learning-stage label for a study session.
	Stage string `json:"stage,omitempty" yaml:"stage,omitempty"`

	// Checklist holds the fixed review items of a milestone entry.
	Checklist []string `json:"checklist,omitempty" yaml:"checklist,omitempty"`

	// Questions holds the reflective prompts of a knowledge-check entry.
	Questions []string `json:"questions,omitempty" yaml:"questions,omitempty"`

	// TopicTitle names the source topic of a topic-study entry.
	TopicTitle string `json:"topic_title,omitempty" yaml:"topic_title,omitempty"`
}

// ScheduleEntry is the unit emitted to the caller: one calendar block.
// IDs are deterministic content hashes, so repeated synthesis of the same
// input yields the same entry set.
type ScheduleEntry struct {
	// ID is a stable identifier derived from the entry kind, the source
	// title, and the entry index.
	ID string `json:"id" yaml:"id"`

	// Kind tags the entry variant.
	Kind EntryKind `json:"kind" yaml:"kind"`

	// Title is the display title.
	Title string `json:"title" yaml:"title"`

	// Start is the block's start time.
	Start time.Time `json:"start" yaml:"start"`

	// End is the block's end time. For entries derived from assignment A,
	// End <= A.DueDate and Start >= A.StartDate.
	End time.Time `json:"end" yaml:"end"`

	// Category is the calendar grouping label (mirrors Kind for the UI).
	Category string `json:"category" yaml:"category"`

	// Priority is inherited from the originating assignment.
	Priority Priority `json:"priority,omitempty" yaml:"priority,omitempty"`

	// CourseCode identifies the course, when known.
	CourseCode string `json:"course_code,omitempty" yaml:"course_code,omitempty"`

	// Description is a human-readable summary of what to do in the block.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Resource links the entry back to its source.
	Resource Resource `json:"resource" yaml:"resource"`
}

// Topic is an externally supplied study topic. Consumed read-only to
// produce topic-study entries; never mutated.
type Topic struct {
	// Title is the topic name.
	Title string `json:"title" yaml:"title"`

	// Context is optional explanatory text shown in the entry description.
	Context string `json:"context,omitempty" yaml:"context,omitempty"`

	// Importance ranks the topic; higher is scheduled first.
	Importance int `json:"importance" yaml:"importance"`
}

// ClassBlock is one fixed class meeting in a user's timetable.
type ClassBlock struct {
	// Day is the weekday name (e.g. "Monday").
	Day string `json:"day" yaml:"day"`

	// Start is the class start time as "HH:MM".
	Start string `json:"start" yaml:"start"`

	// End is the class end time as "HH:MM".
	End string `json:"end" yaml:"end"`

	// Course identifies the class.
	Course string `json:"course,omitempty" yaml:"course,omitempty"`
}

// ClassSchedule is a user's fixed class timetable. It is accepted as
// input but the default session placement does not consult it, so
// generated sessions can overlap scheduled classes. Known limitation;
// collision-aware placement can be substituted via distribute.Placement.
type ClassSchedule []ClassBlock

// UserPreferences carries per-user scheduling preferences.
type UserPreferences struct {
	// DailyHours is the sustainable focused study time per day. When
	// positive it overrides the estimator's default pace.
	DailyHours float64 `json:"daily_hours,omitempty" yaml:"daily_hours,omitempty"`
}
