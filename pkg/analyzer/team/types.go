package team

// AssigneeMetrics holds per-assignee workload and resolution figures.
type AssigneeMetrics struct {
	TotalAssigned     int     `json:"total_assigned"`
	OpenIssues        int     `json:"open_issues"`
	AvgResolutionDays float64 `json:"avg_resolution_days"`

	// WorkloadScore is total + 2*open, weighting unresolved work twice
	// as heavily as raw volume.
	WorkloadScore int `json:"workload_score"`
}

// Performance is the team-performance result for one batch.
type Performance struct {
	IndividualMetrics map[string]AssigneeMetrics `json:"individual_metrics"`
	MonthlyVelocity   int                        `json:"monthly_velocity"`

	// BestPerformer is the assignee with the lowest positive average
	// resolution time. Assignees without resolution data are excluded
	// from the ranking rather than treated as worst; empty when nobody
	// has data.
	BestPerformer  string `json:"best_performer,omitempty"`
	MostOverloaded string `json:"most_overloaded,omitempty"`
	TeamSize       int    `json:"team_size"`
}

// Workload is the open-issue distribution result for one batch.
type Workload struct {
	CurrentWorkload      map[string]int `json:"current_workload"`
	AvgWorkloadPerPerson float64        `json:"avg_workload_per_person"`
	WorkloadStdDev       float64        `json:"workload_std_dev"`

	// BalanceScore is stddev/avg; lower is better.
	BalanceScore  float64        `json:"balance_score"`
	BalanceRating string         `json:"balance_rating"`
	Overloaded    map[string]int `json:"overloaded_members"`
	Underloaded   map[string]int `json:"underloaded_members"`
	TotalOpen     int            `json:"total_open_issues"`
	Err           string         `json:"error,omitempty"`
}
