// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CrudusLiv/StudyFlow-sub000/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.StoreConfig{DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testEntries() []types.ScheduleEntry {
	base := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	due := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)

	return []types.ScheduleEntry{
		{
			ID:         "session-aaaaaaaaaaaa",
			Kind:       types.KindStudySession,
			Title:      "Research: Essay (1/3)",
			Start:      base,
			End:        base.Add(2 * time.Hour),
			Category:   string(types.KindStudySession),
			Priority:   types.PriorityMedium,
			CourseCode: "CS101",
			Resource: types.Resource{
				AssignmentTitle: "Essay",
				DueDate:         due,
				SessionNumber:   1,
				TotalSessions:   3,
				Stage:           "Research",
			},
		},
		{
			ID:         "session-bbbbbbbbbbbb",
			Kind:       types.KindStudySession,
			Title:      "Draft Writing: Essay (2/3)",
			Start:      base.AddDate(0, 0, 3).Add(4 * time.Hour),
			End:        base.AddDate(0, 0, 3).Add(6 * time.Hour),
			Category:   string(types.KindStudySession),
			Priority:   types.PriorityMedium,
			CourseCode: "CS101",
		},
		{
			ID:         "revision-cccccccccccc",
			Kind:       types.KindRevision,
			Title:      "Final Review: Essay",
			Start:      base.AddDate(0, 0, 8),
			End:        base.AddDate(0, 0, 8).Add(90 * time.Minute),
			Category:   string(types.KindRevision),
			Priority:   types.PriorityMedium,
			CourseCode: "MATH201",
		},
	}
}

func TestSaveAndListRoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	entries := testEntries()

	require.NoError(t, s.SaveSchedule(ctx, "user-1", entries))

	got, err := s.ListEntries(ctx, ListOptions{UserID: "user-1"})
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Entries come back ordered by start time.
	assert.Equal(t, "session-aaaaaaaaaaaa", got[0].ID)
	assert.Equal(t, "session-bbbbbbbbbbbb", got[1].ID)
	assert.Equal(t, "revision-cccccccccccc", got[2].ID)

	assert.Equal(t, entries[0].Title, got[0].Title)
	assert.True(t, got[0].Start.Equal(entries[0].Start))
	assert.True(t, got[0].End.Equal(entries[0].End))
	assert.Equal(t, types.PriorityMedium, got[0].Priority)
	assert.Equal(t, "Essay", got[0].Resource.AssignmentTitle)
	assert.Equal(t, 3, got[0].Resource.TotalSessions)
	assert.Equal(t, "Research", got[0].Resource.Stage)
}

func TestSaveScheduleReplaces(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSchedule(ctx, "user-1", testEntries()))

	replacement := testEntries()[:1]
	require.NoError(t, s.SaveSchedule(ctx, "user-1", replacement))

	got, err := s.ListEntries(ctx, ListOptions{UserID: "user-1"})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSaveScheduleIsolatesUsers(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSchedule(ctx, "user-1", testEntries()))
	require.NoError(t, s.SaveSchedule(ctx, "user-2", testEntries()[:1]))

	got1, err := s.ListEntries(ctx, ListOptions{UserID: "user-1"})
	require.NoError(t, err)
	got2, err := s.ListEntries(ctx, ListOptions{UserID: "user-2"})
	require.NoError(t, err)

	assert.Len(t, got1, 3)
	assert.Len(t, got2, 1)
}

func TestSaveScheduleRequiresUser(t *testing.T) {
	s := testStore(t)
	err := s.SaveSchedule(context.Background(), "", testEntries())
	assert.Error(t, err)
}

func TestListEntriesFilters(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	require.NoError(t, s.SaveSchedule(ctx, "user-1", testEntries()))

	t.Run("by kind", func(t *testing.T) {
		got, err := s.ListEntries(ctx, ListOptions{UserID: "user-1", Kind: types.KindRevision})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, types.KindRevision, got[0].Kind)
	})

	t.Run("by course", func(t *testing.T) {
		got, err := s.ListEntries(ctx, ListOptions{UserID: "user-1", CourseCode: "CS101"})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("by time range", func(t *testing.T) {
		got, err := s.ListEntries(ctx, ListOptions{
			UserID: "user-1",
			From:   time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC),
			To:     time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "session-bbbbbbbbbbbb", got[0].ID)
	})

	t.Run("limit", func(t *testing.T) {
		got, err := s.ListEntries(ctx, ListOptions{UserID: "user-1", MaxResults: 2})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := s.ListEntries(ctx, ListOptions{})
		assert.Error(t, err)
	})
}

func TestExport(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	require.NoError(t, s.SaveSchedule(ctx, "user-1", testEntries()))

	t.Run("yaml", func(t *testing.T) {
		path, err := s.ExportYAML(ctx, ListOptions{UserID: "user-1"})
		require.NoError(t, err)
		assert.Equal(t, "user-1.yaml", filepath.Base(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "user_id: user-1")
		assert.Contains(t, string(data), "session-aaaaaaaaaaaa")
	})

	t.Run("json", func(t *testing.T) {
		path, err := s.ExportJSON(ctx, ListOptions{UserID: "user-1"})
		require.NoError(t, err)
		assert.Equal(t, "user-1.json", filepath.Base(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"user_id": "user-1"`)
	})
}

func TestSummaries(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSchedule(ctx, "user-1", testEntries()))
	require.NoError(t, s.SaveSchedule(ctx, "user-2", testEntries()[:1]))

	got, err := s.Summaries(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	counts := map[string]int{}
	for _, sum := range got {
		counts[sum.UserID] = sum.EntryCount
		assert.False(t, sum.SavedAt.IsZero())
	}
	assert.Equal(t, 3, counts["user-1"])
	assert.Equal(t, 1, counts["user-2"])
}
