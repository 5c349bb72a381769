// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package supplement produces the schedule entries that surround study
// sessions: final-review revisions, mid-window milestones, topic-study
// sessions from externally supplied topics, and periodic knowledge
// checks anchored to long study sequences.
package supplement

import (
	"fmt"
	"sort"
	"time"

	"github.com/CrudusLiv/StudyFlow-sub000/internal/distribute"
	"github.com/CrudusLiv/StudyFlow-sub000/pkg/types"
)

// milestoneChecklist is the fixed review list attached to every
// milestone entry.
var milestoneChecklist = []string{
	"Review progress against the plan",
	"Identify blockers and missing materials",
	"Adjust the remaining schedule if needed",
	"Set goals for the remaining sessions",
}

// checkQuestions are the two reflective prompts of a knowledge check.
var checkQuestions = []string{
	"What are the key ideas you can explain from memory so far?",
	"Which part is still unclear and needs another pass?",
}

// maxTopics caps how many external topics produce topic-study entries.
const maxTopics = 5

// Revision emits one final-review entry 2-3 days before the due date for
// assignments with a study window of at least 4 days. Windows of 10 or
// more days review 3 days out, shorter ones 2, keeping the entry inside
// the study window.
func Revision(a types.Assignment) []types.ScheduleEntry {
	window := windowDays(a)
	if window < 4 {
		return nil
	}

	daysBefore := 2
	if window >= 10 {
		daysBefore = 3
	}

	day := a.DueDate.AddDate(0, 0, -daysBefore)
	start := day.Add(17 * time.Hour)

	return []types.ScheduleEntry{{
		ID:          distribute.EntryID("revision", a.Title, 0),
		Kind:        types.KindRevision,
		Title:       "Final Review: " + a.Title,
		Start:       start,
		End:         start.Add(90 * time.Minute),
		Category:    string(types.KindRevision),
		Priority:    a.Priority,
		CourseCode:  a.CourseCode,
		Description: fmt.Sprintf("Full pass over %s before the deadline: check every requirement is met and fix weak spots.", a.Title),
		Resource: types.Resource{
			AssignmentTitle: a.Title,
			DueDate:         a.DueDate,
		},
	}}
}

// Milestone emits one progress-check entry at the midpoint of windows
// longer than 7 days, carrying the fixed review checklist.
func Milestone(a types.Assignment) []types.ScheduleEntry {
	window := windowDays(a)
	if window <= 7 {
		return nil
	}

	day := a.StartDate.AddDate(0, 0, window/2)
	start := day.Add(18 * time.Hour)

	return []types.ScheduleEntry{{
		ID:          distribute.EntryID("milestone", a.Title, 0),
		Kind:        types.KindMilestone,
		Title:       "Progress Check: " + a.Title,
		Start:       start,
		End:         start.Add(30 * time.Minute),
		Category:    string(types.KindMilestone),
		Priority:    a.Priority,
		CourseCode:  a.CourseCode,
		Description: "Midpoint checkpoint: you should be roughly halfway through the planned work.",
		Resource: types.Resource{
			AssignmentTitle: a.Title,
			DueDate:         a.DueDate,
			Checklist:       milestoneChecklist,
		},
	}}
}

// TopicSessions emits a topic-study entry for up to five topics, highest
// importance first, placed 1+index days after the earliest assignment
// start. Topics are consumed read-only. Returns nil when there are no
// assignments to anchor the placement.
func TopicSessions(topics []types.Topic, earliestStart time.Time, courseCode string) []types.ScheduleEntry {
	if len(topics) == 0 || earliestStart.IsZero() {
		return nil
	}

	ranked := make([]types.Topic, len(topics))
	copy(ranked, topics)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Importance > ranked[j].Importance
	})
	if len(ranked) > maxTopics {
		ranked = ranked[:maxTopics]
	}

	entries := make([]types.ScheduleEntry, 0, len(ranked))
	for i, topic := range ranked {
		day := earliestStart.AddDate(0, 0, 1+i)
		start := day.Add(10 * time.Hour)

		desc := "Study the topic in depth and take structured notes."
		if topic.Context != "" {
			desc = fmt.Sprintf("Study the topic in depth: %s", topic.Context)
		}

		entries = append(entries, types.ScheduleEntry{
			ID:          distribute.EntryID("topic", topic.Title, i),
			Kind:        types.KindTopicStudy,
			Title:       "Topic Study: " + topic.Title,
			Start:       start,
			End:         start.Add(2 * time.Hour),
			Category:    string(types.KindTopicStudy),
			Priority:    types.PriorityMedium,
			CourseCode:  courseCode,
			Description: desc,
			Resource: types.Resource{
				TopicTitle: topic.Title,
			},
		})
	}
	return entries
}

// KnowledgeChecks emits short recall prompts for assignments with at
// least 3 study sessions, every max(2, sessionCount/3) sessions, one day
// after the anchoring session. Checks that would land on or after the
// due date are dropped; the final review covers the tail of the window.
func KnowledgeChecks(a types.Assignment, sessions []types.ScheduleEntry) []types.ScheduleEntry {
	if len(sessions) < 3 {
		return nil
	}

	step := len(sessions) / 3
	if step < 2 {
		step = 2
	}

	var entries []types.ScheduleEntry
	for i := step - 1; i < len(sessions); i += step {
		anchor := sessions[i]
		day := midnight(anchor.Start).AddDate(0, 0, 1)
		if !day.Before(a.DueDate) {
			continue
		}
		start := day.Add(18 * time.Hour)
		end := start.Add(30 * time.Minute)
		if end.After(a.DueDate) {
			continue
		}

		entries = append(entries, types.ScheduleEntry{
			ID:          distribute.EntryID("check", a.Title, i),
			Kind:        types.KindKnowledgeCheck,
			Title:       fmt.Sprintf("Knowledge Check: %s (after session %d)", a.Title, i+1),
			Start:       start,
			End:         end,
			Category:    string(types.KindKnowledgeCheck),
			Priority:    a.Priority,
			CourseCode:  a.CourseCode,
			Description: "Short recall break: answer the prompts without looking at your notes first.",
			Resource: types.Resource{
				AssignmentTitle: a.Title,
				DueDate:         a.DueDate,
				SessionNumber:   i + 1,
				Questions:       checkQuestions,
			},
		})
	}
	return entries
}

// windowDays is the assignment's study window length in whole days.
func windowDays(a types.Assignment) int {
	return int(a.DueDate.Sub(a.StartDate).Hours() / 24)
}

func midnight(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
