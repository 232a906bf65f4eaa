package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/issuelens/issuelens/pkg/models"
)

func TestAnalyzeLabelsAndDistribution(t *testing.T) {
	rows := []models.Row{
		{Key: "A-1", Summary: "great improvement, much faster now", Assignee: "alice"},
		{Key: "A-2", Summary: "everything is broken and crashing", Assignee: "bob"},
		{Key: "A-3", Summary: "update dependency versions", Assignee: "alice"},
	}

	res := New().Analyze(rows)

	assert.Equal(t, 1, res.Distribution[LabelPositive])
	assert.Equal(t, 1, res.Distribution[LabelNegative])
	assert.Equal(t, 1, res.Distribution[LabelNeutral])
	assert.Equal(t, 1, res.StressIndicators)
}

func TestAnalyzeBlankTextIsNeutral(t *testing.T) {
	rows := []models.Row{
		{Key: "A-1", Assignee: "alice"},
		{Key: "A-2", Summary: "   ", Assignee: "alice"},
	}

	res := New().Analyze(rows)

	assert.Equal(t, 2, res.Distribution[LabelNeutral])
	assert.Equal(t, 0.0, res.AvgScore)
	assert.Equal(t, MoodNeutral, res.TeamMood)
}

func TestAnalyzeAssigneeSentiment(t *testing.T) {
	rows := []models.Row{
		{Key: "A-1", Summary: "broken", Assignee: "bob"},   // -0.8
		{Key: "A-2", Summary: "fixed", Assignee: "bob"},    // 0.6
		{Key: "A-3", Summary: "works now", Assignee: "al"}, // 0.3
	}

	res := New().Analyze(rows)

	assert.InDelta(t, -0.1, res.AssigneeSentiment["bob"], 1e-9)
	assert.InDelta(t, 0.3, res.AssigneeSentiment["al"], 1e-9)
}

func TestAnalyzeMostNegativeRanking(t *testing.T) {
	rows := []models.Row{
		{Key: "A-1", Summary: "minor bug in tooltip"},
		{Key: "A-2", Summary: "terrible outage, everything broken"},
		{Key: "A-3", Summary: "works great"},
		{Key: "A-4", Summary: "slow response"},
		{Key: "A-5", Summary: "crash on startup"},
		{Key: "A-6", Summary: "database migration"},
		{Key: "A-7", Summary: "confusing error message"},
	}

	res := New().Analyze(rows)

	require.Len(t, res.MostNegative, 5)
	assert.Equal(t, "A-2", res.MostNegative[0].Key)

	// Ascending polarity throughout the list.
	for i := 1; i < len(res.MostNegative); i++ {
		assert.LessOrEqual(t, res.MostNegative[i-1].Polarity, res.MostNegative[i].Polarity)
	}
}

func TestAnalyzeMostNegativeTieKeepsRowOrder(t *testing.T) {
	rows := []models.Row{
		{Key: "A-1", Summary: "broken"},
		{Key: "A-2", Summary: "broken"},
	}

	res := New().Analyze(rows)

	require.Len(t, res.MostNegative, 2)
	assert.Equal(t, "A-1", res.MostNegative[0].Key)
	assert.Equal(t, "A-2", res.MostNegative[1].Key)
}

func TestAnalyzeTeamMood(t *testing.T) {
	good := New().Analyze([]models.Row{
		{Key: "A-1", Summary: "excellent work"},
		{Key: "A-2", Summary: "great fix"},
	})
	assert.Equal(t, MoodGood, good.TeamMood)

	concerning := New().Analyze([]models.Row{
		{Key: "A-1", Summary: "broken again"},
		{Key: "A-2", Summary: "terrible regression"},
	})
	assert.Equal(t, MoodConcerning, concerning.TeamMood)
}

func TestAnalyzeDescriptionFeedsScore(t *testing.T) {
	rows := []models.Row{
		{Key: "A-1", Summary: "login page", Description: "completely broken after the deploy"},
	}

	res := New().Analyze(rows)

	assert.Equal(t, 1, res.Distribution[LabelNegative])
}

func TestAnalyzeCustomCutoffs(t *testing.T) {
	rows := []models.Row{
		{Key: "A-1", Summary: "works now"}, // 0.3
	}

	strict := New(WithLabelCutoffs(0.5, -0.5)).Analyze(rows)
	assert.Equal(t, 1, strict.Distribution[LabelNeutral])

	loose := New(WithLabelCutoffs(0.1, -0.1)).Analyze(rows)
	assert.Equal(t, 1, loose.Distribution[LabelPositive])
}
