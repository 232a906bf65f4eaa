package predict

// Feature names in column order. has_description is encoded 0/1.
var featureNames = []string{
	"age_days",
	"priority_score",
	"summary_length",
	"has_description",
}

// priorityScores encodes priority categories numerically for the model.
// Unmapped priorities default to the Medium score.
var priorityScores = map[string]float64{
	"Low":      1,
	"Medium":   2,
	"High":     3,
	"Critical": 4,
	"Urgent":   5,
}

const defaultPriorityScore = 2

// Blocker is one issue ranked likely to stall.
type Blocker struct {
	Key         string  `json:"key"`
	Summary     string  `json:"summary"`
	Assignee    string  `json:"assignee"`
	Priority    string  `json:"priority"`
	AgeDays     int     `json:"age_days"`
	Probability float64 `json:"blocker_probability"`
}

// Insights is the predictive-model result for one batch.
type Insights struct {
	PotentialBlockers []Blocker          `json:"potential_blockers,omitempty"`
	ModelStatus       string             `json:"model_accuracy,omitempty"`
	FeatureImportance map[string]float64 `json:"feature_importance,omitempty"`
	PredictionsMade   int                `json:"predictions_made,omitempty"`
	Err               string             `json:"error,omitempty"`
}
