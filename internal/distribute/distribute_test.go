// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package distribute

import (
	"strings"
	"testing"
	"time"

	"github.com/CrudusLiv/StudyFlow-sub000/pkg/types"
)

func essayAssignment(days int) types.Assignment {
	due := time.Date(2025, time.April, 15, 0, 0, 0, 0, time.UTC)
	return types.Assignment{
		Title:      "Research Essay",
		Type:       types.TypeEssay,
		DueDate:    due,
		StartDate:  due.AddDate(0, 0, -days),
		TotalHours: float64(days) * 1.5,
		DaysNeeded: days,
		Priority:   types.PriorityMedium,
		CourseCode: "CS101",
	}
}

func TestSessionsCountAndWindow(t *testing.T) {
	for _, days := range []int{1, 2, 3, 6, 10} {
		a := essayAssignment(days)
		got := Sessions(a, types.DistributorConfig{}, nil)

		if len(got) != days {
			t.Fatalf("days=%d: got %d sessions, want %d", days, len(got), days)
		}
		for i, e := range got {
			if !e.Start.Before(a.DueDate) {
				t.Errorf("days=%d session %d starts %s, on or after due date", days, i, e.Start)
			}
			if e.Start.Before(a.StartDate) {
				t.Errorf("days=%d session %d starts %s, before window start", days, i, e.Start)
			}
			if !e.End.After(e.Start) {
				t.Errorf("days=%d session %d has non-positive duration", days, i)
			}
		}
	}
}

func TestSessionsOffsetsNonDecreasing(t *testing.T) {
	a := essayAssignment(8)
	got := Sessions(a, types.DistributorConfig{}, nil)

	for i := 1; i < len(got); i++ {
		prev := got[i-1].Start.Truncate(24 * time.Hour)
		cur := got[i].Start.Truncate(24 * time.Hour)
		if cur.Before(prev) {
			t.Fatalf("session %d day %s before session %d day %s", i, cur, i-1, prev)
		}
	}
}

func TestSessionsUShape(t *testing.T) {
	// With 10 sessions over 10 days, the U-curve packs the first three
	// sessions into the opening 40% of the window and the last three into
	// the closing 40%.
	a := essayAssignment(10)
	got := Sessions(a, types.DistributorConfig{}, nil)

	firstOffset := int(got[0].Start.Sub(a.StartDate).Hours() / 24)
	lastOffset := int(got[9].Start.Sub(a.StartDate).Hours() / 24)
	if firstOffset != 0 {
		t.Errorf("first session offset = %d, want 0", firstOffset)
	}
	if lastOffset != 9 {
		t.Errorf("last session offset = %d, want 9", lastOffset)
	}

	midOffset := int(got[4].Start.Sub(a.StartDate).Hours() / 24)
	if midOffset < 4 || midOffset > 5 {
		t.Errorf("middle session offset = %d, want the plateau around mid-window", midOffset)
	}
}

func TestSessionsHoursConservation(t *testing.T) {
	// 12 hours over 8 days: 1.5h per session, total exactly preserved.
	a := essayAssignment(8)
	a.TotalHours = 12

	got := Sessions(a, types.DistributorConfig{}, nil)

	var sum float64
	for _, e := range got {
		sum += e.End.Sub(e.Start).Hours()
	}
	if sum < a.TotalHours*0.8 || sum > a.TotalHours*1.2 {
		t.Errorf("scheduled %.1f hours, want within 20%% of %.1f", sum, a.TotalHours)
	}
}

func TestSessionsClampLength(t *testing.T) {
	a := essayAssignment(2)
	a.TotalHours = 20 // 10h/session uncapped

	got := Sessions(a, types.DistributorConfig{}, nil)
	for _, e := range got {
		if h := e.End.Sub(e.Start).Hours(); h != 2.5 {
			t.Errorf("session length = %v, want clamp at 2.5", h)
		}
	}
}

func TestSessionsStageProgression(t *testing.T) {
	a := essayAssignment(10)
	got := Sessions(a, types.DistributorConfig{}, nil)

	if got[0].Resource.Stage != "Research" {
		t.Errorf("first stage = %q, want Research", got[0].Resource.Stage)
	}
	if got[9].Resource.Stage != "Finalize" {
		t.Errorf("last stage = %q, want Finalize", got[9].Resource.Stage)
	}

	// Stage order must follow the set's order, never regress.
	order := map[string]int{}
	for i, s := range Stages(types.TypeEssay) {
		order[s.Name] = i
	}
	last := -1
	for i, e := range got {
		idx, ok := order[e.Resource.Stage]
		if !ok {
			t.Fatalf("session %d has unknown stage %q", i, e.Resource.Stage)
		}
		if idx < last {
			t.Fatalf("session %d regressed to stage %q", i, e.Resource.Stage)
		}
		last = idx
	}
}

func TestSessionsMetadata(t *testing.T) {
	a := essayAssignment(4)
	got := Sessions(a, types.DistributorConfig{}, nil)

	for i, e := range got {
		if e.Kind != types.KindStudySession {
			t.Errorf("session %d kind = %q", i, e.Kind)
		}
		if e.Resource.SessionNumber != i+1 || e.Resource.TotalSessions != 4 {
			t.Errorf("session %d numbering = %d/%d", i, e.Resource.SessionNumber, e.Resource.TotalSessions)
		}
		if e.Resource.AssignmentTitle != a.Title {
			t.Errorf("session %d resource title = %q", i, e.Resource.AssignmentTitle)
		}
		if !strings.Contains(e.Title, "Research Essay") {
			t.Errorf("session %d title %q missing assignment title", i, e.Title)
		}
		if e.CourseCode != "CS101" {
			t.Errorf("session %d course = %q", i, e.CourseCode)
		}
	}
}

func TestSessionsZeroDays(t *testing.T) {
	a := essayAssignment(4)
	a.DaysNeeded = 0
	if got := Sessions(a, types.DistributorConfig{}, nil); got != nil {
		t.Errorf("got %d sessions for zero-day window", len(got))
	}
}

func TestStagePercentagesSumToHundred(t *testing.T) {
	for _, typ := range []types.AssignmentType{
		types.TypeEssay, types.TypeReport, types.TypeProject,
		types.TypePresentation, types.TypeQuiz, types.TypeHomework,
		types.TypeLab, types.TypeTask,
	} {
		var sum float64
		for _, s := range Stages(typ) {
			sum += s.Percent
		}
		if sum != 100 {
			t.Errorf("%s stages sum to %v, want 100", typ, sum)
		}
	}
}

func TestStagesUnknownTypeFallsBack(t *testing.T) {
	got := Stages(types.AssignmentType("thesis"))
	want := Stages(types.TypeTask)
	if len(got) != len(want) || got[0].Name != want[0].Name {
		t.Errorf("unknown type stages = %v, want task set", got)
	}
}

func TestEntryIDDeterministic(t *testing.T) {
	a := EntryID("session", "Research Essay", 3)
	b := EntryID("session", "Research Essay", 3)
	if a != b {
		t.Fatalf("same input produced %q and %q", a, b)
	}
	if !strings.HasPrefix(a, "session-") {
		t.Errorf("ID %q missing kind prefix", a)
	}
	if len(a) != len("session")+13 {
		t.Errorf("ID length = %d, want %d", len(a), len("session")+13)
	}
	if EntryID("session", "Research Essay", 4) == a {
		t.Error("different index produced identical ID")
	}
	if EntryID("revision", "Research Essay", 3) == a {
		t.Error("different tag produced identical ID")
	}
}

func TestSlotPlacementCyclesSlots(t *testing.T) {
	day := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	p := SlotPlacement{}

	hours := []int{9, 13, 16, 19, 9}
	for i, want := range hours {
		start, end := p.Place(day, i, 2)
		if start.Hour() != want {
			t.Errorf("index %d starts at hour %d, want %d", i, start.Hour(), want)
		}
		if end.Sub(start) != 2*time.Hour {
			t.Errorf("index %d duration = %v", i, end.Sub(start))
		}
	}
}
