package basic

// Metrics is the basic-metrics result for one batch.
type Metrics struct {
	TotalIssues          int            `json:"total_issues"`
	StatusDistribution   map[string]int `json:"status_distribution"`
	PriorityDistribution map[string]int `json:"priority_distribution"`
	TypeDistribution     map[string]int `json:"type_distribution"`
	AssigneeDistribution map[string]int `json:"assignee_distribution"`
	AvgResolutionDays    float64        `json:"avg_resolution_days"`
	MedianResolutionDays float64        `json:"median_resolution_days"`
	UnassignedPercentage float64        `json:"unassigned_percentage"`
	OverdueCount         int            `json:"overdue_count"`
}
