package anomaly

// Flagged is one issue surfaced as an outlier.
type Flagged struct {
	Key      string `json:"key"`
	Summary  string `json:"summary"`
	Assignee string `json:"assignee"`
	Status   string `json:"status"`
	AgeDays  int    `json:"age_days"`

	// ResolutionDays is present only when the batch had resolution data.
	ResolutionDays *int `json:"resolution_days,omitempty"`
}

// Analysis is the anomaly-detection result for one batch.
type Analysis struct {
	Anomalies         []Flagged `json:"anomalies_detected,omitempty"`
	AnomalyCount      int       `json:"anomaly_count"`
	AnomalyPercentage float64   `json:"anomaly_percentage"`
	Err               string    `json:"error,omitempty"`
}
