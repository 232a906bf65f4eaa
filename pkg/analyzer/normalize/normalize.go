// Package normalize converts raw issue records into canonical rows with
// consistent defaults and derived fields.
package normalize

import (
	"time"

	"github.com/issuelens/issuelens/pkg/models"
)

// Normalizer builds the canonical row table for one analysis call.
type Normalizer struct {
	overdueDays int
	now         func() time.Time
}

// Option is a functional option for configuring Normalizer.
type Option func(*Normalizer)

// WithOverdueDays sets the age beyond which a row is marked overdue.
func WithOverdueDays(days int) Option {
	return func(n *Normalizer) {
		if days > 0 {
			n.overdueDays = days
		}
	}
}

// WithNow sets the clock used for age calculations (useful for testing).
func WithNow(now func() time.Time) Option {
	return func(n *Normalizer) {
		n.now = now
	}
}

// New creates a new normalizer.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		overdueDays: 30,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Rows normalizes a batch of issues. An empty batch yields an empty table,
// never an error; downstream aggregators are expected to handle it.
func (n *Normalizer) Rows(issues []models.Issue) []models.Row {
	now := n.now()
	rows := make([]models.Row, 0, len(issues))
	for _, is := range issues {
		row := models.Row{
			Key:         is.Key,
			Summary:     is.Summary,
			Description: is.Description,
			Status:      is.Status,
			Priority:    is.Priority,
			Assignee:    is.Assignee,
			IssueType:   is.IssueType,
			Created:     is.Created,
			Updated:     is.Updated,
		}

		if row.Status == "" {
			row.Status = models.DefaultStatus
		}
		if row.Priority == "" {
			row.Priority = models.DefaultPriority
		}
		if row.Assignee == "" {
			row.Assignee = models.Unassigned
		}

		if is.Created != nil && is.Updated != nil {
			days := wholeDays(is.Updated.Sub(*is.Created))
			row.ResolutionDays = &days
		}
		if is.Created != nil {
			row.AgeDays = wholeDays(now.Sub(*is.Created))
		}
		row.Overdue = row.AgeDays > n.overdueDays

		rows = append(rows, row)
	}
	return rows
}

// wholeDays truncates a duration to whole days, matching calendar-style
// day deltas rather than rounding.
func wholeDays(d time.Duration) int {
	return int(d.Hours() / 24)
}
