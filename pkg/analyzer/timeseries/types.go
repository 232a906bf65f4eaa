package timeseries

import "github.com/issuelens/issuelens/pkg/stats"

// dayNames orders days Monday-first, matching the calendar week convention
// used for the histograms and peak tie-breaking.
var dayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday",
	"Friday", "Saturday", "Sunday",
}

var monthNames = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// ResolutionBreakdown summarizes resolution days over resolved rows.
type ResolutionBreakdown struct {
	AvgByPriority map[string]float64 `json:"avg_by_priority"`
	AvgByType     map[string]float64 `json:"avg_by_type"`
	Distribution  stats.FiveNumber   `json:"resolution_distribution"`
}

// Patterns is the time-pattern result for one batch.
type Patterns struct {
	HourlyCreation  map[int]int          `json:"hourly_creation_pattern"`
	DailyCreation   map[string]int       `json:"daily_creation_pattern"`
	MonthlyCreation map[string]int       `json:"monthly_creation_trend"`
	Resolution      *ResolutionBreakdown `json:"resolution_time_analysis,omitempty"`
	PeakHour        int                  `json:"peak_creation_hour"`
	PeakDay         string               `json:"peak_creation_day"`
	Err             string               `json:"error,omitempty"`
}

// Trend is the creation-trend result for one batch.
type Trend struct {
	WeeklyCreation  map[string]int `json:"weekly_creation_trend"`
	MonthlyCreation map[string]int `json:"monthly_creation_trend"`
	Direction       string         `json:"trend_direction"`
	Slope           float64        `json:"trend_slope"`
	CurrentWeek     int            `json:"current_week_issues"`
	Err             string         `json:"error,omitempty"`
}
