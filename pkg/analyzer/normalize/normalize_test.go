package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/issuelens/issuelens/pkg/models"
)

func ts(s string) *time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func fixedNow() time.Time {
	return time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
}

func TestRowsAppliesDefaults(t *testing.T) {
	n := New(WithNow(fixedNow))

	rows := n.Rows([]models.Issue{
		{Key: "PROJ-1", Summary: "Login broken"},
	})

	require.Len(t, rows, 1)
	assert.Equal(t, "Open", rows[0].Status)
	assert.Equal(t, "Medium", rows[0].Priority)
	assert.Equal(t, "Unassigned", rows[0].Assignee)
}

func TestRowsKeepsExplicitValues(t *testing.T) {
	n := New(WithNow(fixedNow))

	rows := n.Rows([]models.Issue{
		{Key: "PROJ-2", Status: "In Progress", Priority: "High", Assignee: "alice"},
	})

	require.Len(t, rows, 1)
	assert.Equal(t, "In Progress", rows[0].Status)
	assert.Equal(t, "High", rows[0].Priority)
	assert.Equal(t, "alice", rows[0].Assignee)
}

func TestRowsResolutionDays(t *testing.T) {
	n := New(WithNow(fixedNow))

	rows := n.Rows([]models.Issue{
		{
			Key:     "PROJ-3",
			Created: ts("2026-08-01T00:00:00Z"),
			Updated: ts("2026-08-11T00:00:00Z"),
		},
	})

	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].ResolutionDays)
	assert.Equal(t, 10, *rows[0].ResolutionDays)
}

func TestRowsResolutionDaysTruncatesPartialDays(t *testing.T) {
	n := New(WithNow(fixedNow))

	// 47 hours is 1 whole day, not 2.
	rows := n.Rows([]models.Issue{
		{
			Key:     "PROJ-4",
			Created: ts("2026-08-01T00:00:00Z"),
			Updated: ts("2026-08-02T23:00:00Z"),
		},
	})

	require.NotNil(t, rows[0].ResolutionDays)
	assert.Equal(t, 1, *rows[0].ResolutionDays)
}

func TestRowsMissingTimestamps(t *testing.T) {
	n := New(WithNow(fixedNow))

	rows := n.Rows([]models.Issue{
		{Key: "PROJ-5", Updated: ts("2026-08-11T00:00:00Z")},
		{Key: "PROJ-6", Created: ts("2026-08-01T00:00:00Z")},
		{Key: "PROJ-7"},
	})

	require.Len(t, rows, 3)

	// Resolution needs both timestamps.
	assert.Nil(t, rows[0].ResolutionDays)
	assert.Nil(t, rows[1].ResolutionDays)
	assert.Nil(t, rows[2].ResolutionDays)

	// Age needs created only.
	assert.Equal(t, 0, rows[0].AgeDays)
	assert.Equal(t, 25, rows[1].AgeDays)
	assert.Equal(t, 0, rows[2].AgeDays)
	assert.False(t, rows[2].Overdue)
}

func TestRowsOverdueBoundary(t *testing.T) {
	n := New(WithNow(fixedNow), WithOverdueDays(30))

	rows := n.Rows([]models.Issue{
		{Key: "EXACT", Created: ts("2026-07-27T12:00:00Z")}, // exactly 30 days
		{Key: "OVER", Created: ts("2026-07-26T12:00:00Z")},  // 31 days
	})

	require.Len(t, rows, 2)
	assert.Equal(t, 30, rows[0].AgeDays)
	assert.False(t, rows[0].Overdue)
	assert.Equal(t, 31, rows[1].AgeDays)
	assert.True(t, rows[1].Overdue)
}

func TestRowsEmptyBatch(t *testing.T) {
	rows := New().Rows(nil)

	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
