// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package distribute converts an assignment's estimated hours into dated,
// timed study sessions across the half-open window [StartDate, DueDate).
// Day offsets follow a U-shaped curve for longer sequences, concentrating
// sessions at the start (orientation, research) and the end (polishing),
// which is how deadline-driven study behavior actually distributes.
package distribute

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/CrudusLiv/StudyFlow-sub000/pkg/types"
)

// Placement chooses the clock time for a session on a given day. The
// default SlotPlacement ignores the user's class timetable; a
// collision-aware strategy can be substituted here without touching the
// rest of the pipeline.
type Placement interface {
	Place(day time.Time, index int, hours float64) (start, end time.Time)
}

// SlotPlacement cycles sessions through fixed start hours. It does not
// consult any class schedule, so sessions can overlap fixed classes;
// known limitation.
type SlotPlacement struct {
	// Slots are the start hours cycled through (default 9, 13, 16, 19).
	Slots []int
}

// Place returns the session's start and end on day, cycling through the
// configured slots by session index.
func (p SlotPlacement) Place(day time.Time, index int, hours float64) (time.Time, time.Time) {
	slots := p.Slots
	if len(slots) == 0 {
		slots = []int{9, 13, 16, 19}
	}
	hour := slots[index%len(slots)]
	start := day.Add(time.Duration(hour) * time.Hour)
	end := start.Add(time.Duration(hours * float64(time.Hour)))
	return start, end
}

// Sessions generates exactly a.DaysNeeded study-session entries for an
// assignment. Session length is TotalHours spread evenly, clamped to
// [MinSessionHours, MaxSessionHours].
func Sessions(a types.Assignment, cfg types.DistributorConfig, placement Placement) []types.ScheduleEntry {
	n := a.DaysNeeded
	if n <= 0 {
		return nil
	}
	if placement == nil {
		placement = SlotPlacement{Slots: cfg.SlotHours}
	}

	totalDays := int(a.DueDate.Sub(a.StartDate).Hours() / 24)
	if totalDays < n {
		totalDays = n
	}

	hours := sessionHours(a.TotalHours, n, cfg)
	stages := Stages(a.Type)

	entries := make([]types.ScheduleEntry, 0, n)
	for i := 0; i < n; i++ {
		day := a.StartDate.AddDate(0, 0, offsetDays(i, n, totalDays))
		start, end := placement.Place(day, i, hours)

		progress := (float64(i) + 0.5) / float64(n)
		stage := stageFor(stages, progress)

		entries = append(entries, types.ScheduleEntry{
			ID:          EntryID("session", a.Title, i),
			Kind:        types.KindStudySession,
			Title:       fmt.Sprintf("%s: %s (%d/%d)", stage.Name, a.Title, i+1, n),
			Start:       start,
			End:         end,
			Category:    string(types.KindStudySession),
			Priority:    a.Priority,
			CourseCode:  a.CourseCode,
			Description: describe(stage.Name, progress),
			Resource: types.Resource{
				AssignmentTitle: a.Title,
				DueDate:         a.DueDate,
				SessionNumber:   i + 1,
				TotalSessions:   n,
				Stage:           stage.Name,
			},
		})
	}
	return entries
}

// offsetDays maps session i of n to a day offset within totalDays.
// Sequences of three or fewer are evenly spaced. Longer sequences follow
// the U-shaped curve: front-loaded below 30% progress, sparse through
// the middle, back-loaded above 70%.
func offsetDays(i, n, totalDays int) int {
	if n <= 1 {
		return 0
	}
	var frac float64
	if n <= 3 {
		frac = float64(i) / float64(n)
	} else {
		p := float64(i) / float64(n-1)
		switch {
		case p < 0.3:
			frac = 0.4 * p
		case p <= 0.7:
			frac = 0.4 + 0.2*(p-0.3)
		default:
			frac = 0.6 + 1.3*(p-0.7)
		}
	}

	offset := int(frac * float64(totalDays))
	// Keep the window half-open: never land on the due date itself.
	if offset > totalDays-1 {
		offset = totalDays - 1
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// sessionHours spreads total hours across n sessions, clamped to the
// configured session length bounds.
func sessionHours(total float64, n int, cfg types.DistributorConfig) float64 {
	minH := cfg.MinSessionHours
	if minH <= 0 {
		minH = 1.5
	}
	maxH := cfg.MaxSessionHours
	if maxH <= 0 {
		maxH = 2.5
	}

	h := total / float64(n)
	if h < minH {
		h = minH
	}
	if h > maxH {
		h = maxH
	}
	return h
}

// describe builds the session description from the stage's activity
// phrase plus an early/middle/final qualifier.
func describe(stageName string, progress float64) string {
	verb, ok := stageVerbs[stageName]
	if !ok {
		verb = "work on the assignment"
	}

	qualifier := "early stage"
	switch {
	case progress >= 0.66:
		qualifier = "final stage"
	case progress >= 0.33:
		qualifier = "middle stage"
	}
	return fmt.Sprintf("Focus block (%s): %s.", qualifier, verb)
}

// EntryID generates a deterministic identifier from the entry kind tag,
// the source title, and the entry index. The ID is the tag plus the
// first 12 hex characters of SHA-256(tag + title + index), so repeated
// synthesis of identical input is reproducible and cacheable.
func EntryID(tag, title string, index int) string {
	h := sha256.New()
	h.Write([]byte(tag))
	h.Write([]byte(title))
	fmt.Fprintf(h, "%d", index)
	return fmt.Sprintf("%s-%x", tag, h.Sum(nil))[:len(tag)+13]
}
