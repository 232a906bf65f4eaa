package sentiment

// Labels assigned to individual issues and batch mood verdicts.
const (
	LabelPositive = "Positive"
	LabelNegative = "Negative"
	LabelNeutral  = "Neutral"

	MoodGood       = "Good"
	MoodNeutral    = "Neutral"
	MoodConcerning = "Concerning"
)

// NegativeIssue is one of the lowest-polarity issues in the batch.
type NegativeIssue struct {
	Key      string  `json:"key"`
	Summary  string  `json:"summary"`
	Polarity float64 `json:"sentiment_polarity"`
}

// Analysis is the sentiment result for one batch.
type Analysis struct {
	Distribution      map[string]int     `json:"sentiment_distribution"`
	AvgScore          float64            `json:"avg_sentiment_score"`
	AssigneeSentiment map[string]float64 `json:"assignee_sentiment"`

	// StressIndicators counts issues labeled Negative.
	StressIndicators int             `json:"stress_indicators"`
	MostNegative     []NegativeIssue `json:"most_negative_issues"`
	TeamMood         string          `json:"team_mood"`
}
