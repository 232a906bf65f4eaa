package bottleneck

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/issuelens/issuelens/pkg/models"
)

// mkRows builds n rows with the given status, spreading assignees so the
// overload rule stays quiet unless a test wants it.
func mkRows(n int, status string) []models.Row {
	rows := make([]models.Row, n)
	for i := range rows {
		rows[i] = models.Row{
			Key:      fmt.Sprintf("T-%d", i+1),
			Status:   status,
			Priority: "Medium",
			Assignee: fmt.Sprintf("dev%d", i),
		}
	}
	return rows
}

func TestStatusShareExactThresholdDoesNotFire(t *testing.T) {
	// 4 of 10 in progress is exactly 40%; the rule needs strictly more.
	rows := append(mkRows(4, "In Progress"), mkRows(6, "Done")...)
	for i := range rows {
		rows[i].Assignee = fmt.Sprintf("dev%d", i)
	}

	analysis := New().Detect(rows)

	assert.Zero(t, analysis.BottleneckCount)
	assert.Empty(t, analysis.Bottlenecks)
	assert.Empty(t, analysis.Recommendations)
}

func TestStatusShareAboveThresholdFires(t *testing.T) {
	// 5 of 12 open is 41.7%.
	rows := append(mkRows(5, "Open"), mkRows(7, "Done")...)
	for i := range rows {
		rows[i].Assignee = fmt.Sprintf("dev%d", i)
	}

	analysis := New().Detect(rows)

	require.Equal(t, 1, analysis.BottleneckCount)
	flag := analysis.Bottlenecks[0]
	assert.Equal(t, TypeStatus, flag.Type)
	assert.Equal(t, SeverityMedium, flag.Severity)
	assert.Equal(t, 5, flag.AffectedCount)
	assert.Equal(t, "Too many issues in 'Open' status (41.7%)", flag.Description)
}

func TestStatusShareHighSeverity(t *testing.T) {
	// 7 of 10 open is 70%, above the High cutoff of 60%.
	rows := append(mkRows(7, "Open"), mkRows(3, "Done")...)
	for i := range rows {
		rows[i].Assignee = fmt.Sprintf("dev%d", i)
	}

	analysis := New().Detect(rows)

	require.Equal(t, 1, analysis.BottleneckCount)
	assert.Equal(t, SeverityHigh, analysis.Bottlenecks[0].Severity)
}

func TestStatusShareIgnoresTerminalStatuses(t *testing.T) {
	// 90% Done never flags.
	rows := append(mkRows(9, "Done"), mkRows(1, "Open")...)
	for i := range rows {
		rows[i].Assignee = fmt.Sprintf("dev%d", i)
	}

	analysis := New().Detect(rows)

	assert.Zero(t, analysis.BottleneckCount)
}

func TestOverloadFlag(t *testing.T) {
	rows := mkRows(10, "Done")
	// amy takes 9 of 19 issues across 11 assignees: avg 1.7.
	for i := 0; i < 9; i++ {
		rows = append(rows, models.Row{
			Key: fmt.Sprintf("O-%d", i), Status: "Done", Priority: "Medium", Assignee: "amy",
		})
	}

	analysis := New().Detect(rows)

	require.Equal(t, 1, analysis.BottleneckCount)
	flag := analysis.Bottlenecks[0]
	assert.Equal(t, TypeOverload, flag.Type)
	assert.Equal(t, SeverityHigh, flag.Severity) // 9 > 3 * 1.7
	assert.Equal(t, 9, flag.AffectedCount)
	assert.Equal(t, "amy has 9 issues (avg: 1.7)", flag.Description) // 19/11 assignees
}

func TestOverloadIgnoresUnassigned(t *testing.T) {
	rows := []models.Row{
		{Key: "T-1", Status: "Done", Priority: "Medium", Assignee: "Unassigned"},
		{Key: "T-2", Status: "Done", Priority: "Medium", Assignee: "Unassigned"},
		{Key: "T-3", Status: "Done", Priority: "Medium", Assignee: "Unassigned"},
	}

	analysis := New().Detect(rows)

	assert.Zero(t, analysis.BottleneckCount)
}

func TestAgingFlag(t *testing.T) {
	rows := mkRows(3, "Done")
	rows[0].AgeDays = 61
	rows[1].AgeDays = 120
	rows[2].AgeDays = 60 // boundary, not counted

	analysis := New().Detect(rows)

	require.Equal(t, 1, analysis.BottleneckCount)
	flag := analysis.Bottlenecks[0]
	assert.Equal(t, TypeAging, flag.Type)
	assert.Equal(t, SeverityMedium, flag.Severity)
	assert.Equal(t, 2, flag.AffectedCount)
	assert.Equal(t, "2 issues are over 60 days old", flag.Description)
}

func TestHighPriorityDelayFlag(t *testing.T) {
	rows := mkRows(3, "Done")
	rows[0].Priority = "Critical"
	rows[0].AgeDays = 15
	rows[1].Priority = "High"
	rows[1].AgeDays = 14 // boundary, not counted
	rows[2].Priority = "Low"
	rows[2].AgeDays = 50

	analysis := New().Detect(rows)

	require.Equal(t, 1, analysis.BottleneckCount)
	flag := analysis.Bottlenecks[0]
	assert.Equal(t, TypeHighDelay, flag.Type)
	assert.Equal(t, SeverityCritical, flag.Severity)
	assert.Equal(t, 1, flag.AffectedCount)
	assert.Equal(t, 1, analysis.CriticalCount)
}

func TestRecommendationsPerFlagType(t *testing.T) {
	rows := mkRows(3, "Done")
	rows[0].Priority = "Urgent"
	rows[0].AgeDays = 90

	analysis := New().Detect(rows)

	// Aging and high-priority rules both fire on the same old urgent issue.
	require.Equal(t, 2, analysis.BottleneckCount)
	require.Len(t, analysis.Recommendations, 2)
	assert.Equal(t, "Review and prioritize old issues - consider closing obsolete ones", analysis.Recommendations[0])
	assert.Equal(t, "Urgent: Review high priority issues that are delayed", analysis.Recommendations[1])
}

func TestRecommendationsManyFlags(t *testing.T) {
	// 8 of 10 stuck in progress, all on one person, all old and urgent:
	// status, overload, aging, and high-priority rules all fire.
	rows := make([]models.Row, 0, 10)
	for i := 0; i < 8; i++ {
		rows = append(rows, models.Row{
			Key: fmt.Sprintf("T-%d", i), Status: "In Progress", Priority: "Urgent",
			Assignee: "amy", AgeDays: 90,
		})
	}
	rows = append(rows,
		models.Row{Key: "T-8", Status: "Done", Priority: "Medium", Assignee: "bob"},
		models.Row{Key: "T-9", Status: "Done", Priority: "Medium", Assignee: "cal"},
	)

	analysis := New().Detect(rows)

	require.Equal(t, 4, analysis.BottleneckCount)
	assert.Contains(t, analysis.Recommendations,
		"Consider sprint planning review to address multiple bottlenecks")
}

func TestDetectEmptyTable(t *testing.T) {
	analysis := New().Detect(nil)

	assert.Zero(t, analysis.BottleneckCount)
	assert.NotNil(t, analysis.Bottlenecks)
	assert.NotNil(t, analysis.Recommendations)
}

func TestCustomThresholds(t *testing.T) {
	// 3 of 10 open is 30%, above a lowered 25% cutoff.
	rows := append(mkRows(3, "Open"), mkRows(7, "Done")...)
	for i := range rows {
		rows[i].Assignee = fmt.Sprintf("dev%d", i)
	}

	analysis := New(WithStatusShare(25, 60)).Detect(rows)

	require.Equal(t, 1, analysis.BottleneckCount)
	assert.Equal(t, TypeStatus, analysis.Bottlenecks[0].Type)
}
