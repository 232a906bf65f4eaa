package bottleneck

// FlagType classifies a detected workflow pathology.
type FlagType string

const (
	TypeStatus    FlagType = "Status Bottleneck"
	TypeOverload  FlagType = "Assignee Overload"
	TypeAging     FlagType = "Aging Issues"
	TypeHighDelay FlagType = "High Priority Delays"
)

// Severity ranks how urgent a flag is.
type Severity string

const (
	SeverityMedium   Severity = "Medium"
	SeverityHigh     Severity = "High"
	SeverityCritical Severity = "Critical"
)

// Flag is one detected bottleneck. Rules are evaluated independently, so a
// batch can carry several flags of the same type.
type Flag struct {
	Type          FlagType `json:"type"`
	Description   string   `json:"description"`
	Severity      Severity `json:"severity"`
	AffectedCount int      `json:"affected_count"`
}

// Analysis is the bottleneck-detection result for one batch.
type Analysis struct {
	Bottlenecks     []Flag   `json:"bottlenecks_detected"`
	BottleneckCount int      `json:"bottleneck_count"`
	CriticalCount   int      `json:"critical_count"`
	Recommendations []string `json:"recommendations"`
}
