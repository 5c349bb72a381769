// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package schedule orchestrates the synthesis pipeline: parsed
// assignments flow through due-date resolution, effort estimation,
// session distribution, and supplementary generation, and the results
// are concatenated into one flat schedule collection.
//
// Synthesis never fails as a whole. A malformed assignment degrades to
// fallback values, and an assignment whose processing panics is skipped
// with a log line while the rest of the batch continues. The package
// holds no state across calls; every input, including the clock, arrives
// as a parameter.
package schedule

import (
	"fmt"
	"io"
	"time"

	"github.com/CrudusLiv/StudyFlow-sub000/internal/dates"
	"github.com/CrudusLiv/StudyFlow-sub000/internal/distribute"
	"github.com/CrudusLiv/StudyFlow-sub000/internal/estimate"
	"github.com/CrudusLiv/StudyFlow-sub000/internal/parse"
	"github.com/CrudusLiv/StudyFlow-sub000/internal/supplement"
	"github.com/CrudusLiv/StudyFlow-sub000/pkg/types"
)

// Metadata carries the per-request context for one synthesis call.
type Metadata struct {
	// Preferences are optional per-user scheduling preferences.
	Preferences *types.UserPreferences

	// ClassSchedule is the user's fixed timetable. Accepted but not used
	// for collision avoidance by the default placement; see
	// distribute.Placement.
	ClassSchedule types.ClassSchedule

	// CourseCode labels entries whose assignment has no course of its own.
	CourseCode string

	// Topics are external high-importance topics for topic-study entries.
	Topics []types.Topic

	// Now anchors fallback dates and priority classification. Zero means
	// the wall clock.
	Now time.Time

	// Config holds the per-stage settings. Zero-valued fields use
	// documented defaults.
	Config types.PipelineConfig

	// Placement overrides study-session time-of-day placement. Nil uses
	// the slot-cycling default.
	Placement distribute.Placement

	// Log receives progress and degradation notices. Nil discards them.
	Log io.Writer
}

func (m *Metadata) fill() {
	if m.Now.IsZero() {
		m.Now = time.Now()
	}
	if m.Log == nil {
		m.Log = io.Discard
	}
	// A wholly zero config means "use the defaults". Individual zero
	// fields inside a caller-built config are also defaulted downstream,
	// but DayFirst needs the explicit default here: its zero value is a
	// real setting (month-first).
	if !m.Config.Resolver.DayFirst && m.Config.Resolver.FallbackBaseDays == 0 &&
		m.Config.Resolver.FallbackSpacingDays == 0 && len(m.Config.Resolver.SemesterEnds) == 0 {
		m.Config.Resolver = types.DefaultPipelineConfig().Resolver
	}
}

// SynthesizeText runs the full pipeline on raw course-document text:
// parse, resolve, estimate, distribute, supplement, assemble. Text with
// no assignment-like sections yields an empty collection.
func SynthesizeText(text, userID string, meta Metadata) []types.ScheduleEntry {
	meta.fill()

	parsed := parse.Parse(text, meta.Config.Parser)
	assignments := make([]types.Assignment, len(parsed))
	sections := make([]string, len(parsed))
	for i, p := range parsed {
		assignments[i] = p.Assignment
		sections[i] = p.Section
	}

	return Synthesize(assignments, sections, userID, meta)
}

// Synthesize converts assignments into the final schedule collection.
// rawSections[i] is the source text for assignments[i] and is scanned
// for due dates when assignments[i].DueDate is unset; a shorter slice is
// padded. The output concatenates, in fixed order: study sessions,
// supplementary activities (revisions and milestones), topic sessions,
// and knowledge checks. No chronological sort is imposed; callers sort
// by Start for a calendar view.
func Synthesize(assignments []types.Assignment, rawSections []string, userID string, meta Metadata) []types.ScheduleEntry {
	meta.fill()

	var (
		sessions      []types.ScheduleEntry
		supplementary []types.ScheduleEntry
		checks        []types.ScheduleEntry
		earliestStart time.Time
	)

	for i := range assignments {
		section := ""
		if i < len(rawSections) {
			section = rawSections[i]
		}

		a, entries, assignmentChecks, ok := processAssignment(assignments[i], section, meta)
		if !ok {
			continue
		}

		sessions = append(sessions, entries...)
		supplementary = append(supplementary, supplement.Revision(a)...)
		supplementary = append(supplementary, supplement.Milestone(a)...)
		checks = append(checks, assignmentChecks...)

		if earliestStart.IsZero() || a.StartDate.Before(earliestStart) {
			earliestStart = a.StartDate
		}
	}

	topicEntries := supplement.TopicSessions(meta.Topics, earliestStart, meta.CourseCode)

	out := assemble(sessions, supplementary, topicEntries, checks)
	fmt.Fprintf(meta.Log, "synthesized %d entries for user %s (%d assignments)\n",
		len(out), userID, len(assignments))
	return out
}

// processAssignment runs one assignment through resolution, estimation,
// and distribution. A panic in any stage is contained here so a single
// malformed assignment cannot abort the batch.
func processAssignment(a types.Assignment, section string, meta Metadata) (out types.Assignment, sessions, checks []types.ScheduleEntry, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(meta.Log, "skipped %q: %v\n", a.Title, r)
			ok = false
		}
	}()

	a = Prepare(a, section, meta)

	sessions = distribute.Sessions(a, meta.Config.Distributor, meta.Placement)
	checks = supplement.KnowledgeChecks(a, sessions)
	return a, sessions, checks, true
}

// Prepare fills an assignment's derived fields: due date (extracted or
// fabricated), course code, effort, complexity, priority, and study
// window. Already-populated fields are kept.
func Prepare(a types.Assignment, section string, meta Metadata) types.Assignment {
	if a.Number <= 0 {
		a.Number = 1
	}
	if a.DueDate.IsZero() {
		res := dates.Resolve(section, a.Number, meta.Now, meta.Config.Resolver)
		a.DueDate = res.Date
		if res.Fabricated() {
			fmt.Fprintf(meta.Log, "no due date for %q, fabricated %s\n",
				a.Title, res.Date.Format("2006-01-02"))
		}
	}
	if a.CourseCode == "" {
		a.CourseCode = meta.CourseCode
	}
	if a.TotalHours <= 0 || a.DaysNeeded <= 0 {
		a = estimate.Estimate(a, meta.Now, meta.Preferences, meta.Config.Estimator)
	}
	return a
}

// assemble concatenates entry groups in the pipeline's fixed order.
func assemble(groups ...[]types.ScheduleEntry) []types.ScheduleEntry {
	var out []types.ScheduleEntry
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
