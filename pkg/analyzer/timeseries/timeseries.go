// Package timeseries buckets issue-creation timestamps into temporal
// histograms and computes resolution-time breakdowns and creation trends.
package timeseries

import (
	"fmt"
	"sort"
	"time"

	"github.com/issuelens/issuelens/pkg/models"
	"github.com/issuelens/issuelens/pkg/stats"
)

// Analyzer computes time patterns and trends over a canonical row table.
type Analyzer struct {
	now func() time.Time
}

// Option is a functional option for configuring Analyzer.
type Option func(*Analyzer)

// WithNow sets the clock used for current-week lookups (useful for testing).
func WithNow(now func() time.Time) Option {
	return func(a *Analyzer) {
		a.now = now
	}
}

// New creates a new time-pattern analyzer.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Patterns buckets creation timestamps by hour, weekday, and month and
// summarizes resolution time. A batch with no creation dates at all yields
// an error result rather than failing.
func (a *Analyzer) Patterns(rows []models.Row) *Patterns {
	p := &Patterns{
		HourlyCreation:  map[int]int{},
		DailyCreation:   map[string]int{},
		MonthlyCreation: map[string]int{},
	}

	created := 0
	for _, r := range rows {
		if r.Created == nil {
			continue
		}
		created++
		p.HourlyCreation[r.Created.Hour()]++
		p.DailyCreation[dayName(r.Created.Weekday())]++
		p.MonthlyCreation[monthNames[r.Created.Month()-1]]++
	}
	if created == 0 {
		return &Patterns{Err: "no creation date data available"}
	}

	// Peak hour: ascending scan keeps ties on the earliest hour.
	best := -1
	for h := 0; h < 24; h++ {
		if c := p.HourlyCreation[h]; c > best {
			best = c
			p.PeakHour = h
		}
	}

	// Peak day: Monday-first scan keeps ties on the earliest weekday.
	best = -1
	for _, d := range dayNames {
		if c := p.DailyCreation[d]; c > best {
			best = c
			p.PeakDay = d
		}
	}

	p.Resolution = a.resolutionBreakdown(rows)
	return p
}

// resolutionBreakdown groups resolution days by priority and type. Returns
// nil when no row has resolution data.
func (a *Analyzer) resolutionBreakdown(rows []models.Row) *ResolutionBreakdown {
	var all []float64
	byPriority := map[string][]float64{}
	byType := map[string][]float64{}

	for _, r := range rows {
		if !r.Resolved() {
			continue
		}
		days := float64(*r.ResolutionDays)
		all = append(all, days)
		byPriority[r.Priority] = append(byPriority[r.Priority], days)
		if r.IssueType != "" {
			byType[r.IssueType] = append(byType[r.IssueType], days)
		}
	}
	if len(all) == 0 {
		return nil
	}

	b := &ResolutionBreakdown{
		AvgByPriority: map[string]float64{},
		AvgByType:     map[string]float64{},
		Distribution:  stats.Summarize(all),
	}
	for pri, days := range byPriority {
		b.AvgByPriority[pri] = stats.Round1(stats.Mean(days))
	}
	for typ, days := range byType {
		b.AvgByType[typ] = stats.Round1(stats.Mean(days))
	}
	return b
}

// Trends computes weekly and monthly creation counts and a direction
// verdict over the most recent four observed weeks.
func (a *Analyzer) Trends(rows []models.Row) *Trend {
	t := &Trend{
		WeeklyCreation:  map[string]int{},
		MonthlyCreation: map[string]int{},
		Direction:       "Stable",
	}

	created := 0
	for _, r := range rows {
		if r.Created == nil {
			continue
		}
		created++
		t.WeeklyCreation[isoWeekKey(*r.Created)]++
		t.MonthlyCreation[r.Created.Format("2006-01")]++
	}
	if created == 0 {
		return &Trend{Err: "no date data available for trend analysis"}
	}

	weeks := make([]string, 0, len(t.WeeklyCreation))
	for w := range t.WeeklyCreation {
		weeks = append(weeks, w)
	}
	sort.Strings(weeks)

	recent := weeks
	if len(recent) > 4 {
		recent = recent[len(recent)-4:]
	}
	if len(recent) >= 2 {
		first := t.WeeklyCreation[recent[0]]
		last := t.WeeklyCreation[recent[len(recent)-1]]
		if last > first {
			t.Direction = "Increasing"
		} else {
			t.Direction = "Decreasing"
		}
	}

	counts := make([]float64, len(weeks))
	for i, w := range weeks {
		counts[i] = float64(t.WeeklyCreation[w])
	}
	t.Slope = stats.LinearSlope(counts)

	t.CurrentWeek = t.WeeklyCreation[isoWeekKey(a.now())]
	return t
}

// dayName maps time.Weekday (Sunday=0) onto the Monday-first labels.
func dayName(d time.Weekday) string {
	return dayNames[(int(d)+6)%7]
}

// isoWeekKey returns a sortable ISO week label like "2026-W35".
func isoWeekKey(ts time.Time) string {
	year, week := ts.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}
