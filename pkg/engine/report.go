package engine

import (
	"github.com/issuelens/issuelens/pkg/analyzer/anomaly"
	"github.com/issuelens/issuelens/pkg/analyzer/basic"
	"github.com/issuelens/issuelens/pkg/analyzer/bottleneck"
	"github.com/issuelens/issuelens/pkg/analyzer/predict"
	"github.com/issuelens/issuelens/pkg/analyzer/sentiment"
	"github.com/issuelens/issuelens/pkg/analyzer/team"
	"github.com/issuelens/issuelens/pkg/analyzer/timeseries"
)

// Report is the assembled result of one AnalyzeIssues call. Disabled
// analyses are nil and omitted from JSON; consumers must tolerate both
// missing sections and sections that carry only an error field.
type Report struct {
	BasicMetrics    *basic.Metrics       `json:"basic_metrics,omitempty"`
	TimeAnalysis    *timeseries.Patterns `json:"time_analysis,omitempty"`
	TeamPerformance *team.Performance    `json:"team_performance,omitempty"`
	Workload        *team.Workload       `json:"workload_distribution,omitempty"`
	TrendAnalysis   *timeseries.Trend    `json:"trend_analysis,omitempty"`
	Sentiment       *sentiment.Analysis  `json:"sentiment_analysis,omitempty"`
	Bottlenecks     *bottleneck.Analysis `json:"bottleneck_detection,omitempty"`
	Predictive      *predict.Insights    `json:"predictive_insights,omitempty"`
	Anomalies       *anomaly.Analysis    `json:"anomaly_detection,omitempty"`

	// Err is set only for the empty-batch short circuit.
	Err string `json:"error,omitempty"`
}
