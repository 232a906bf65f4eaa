// Package models defines the issue record and canonical row types shared by
// all analyzers.
package models

import "time"

// Issue is one raw record from an issue tracker. Optional string fields may
// be empty and optional timestamps nil; the normalizer applies defaults.
type Issue struct {
	Key         string     `json:"key"`
	Summary     string     `json:"summary"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status,omitempty"`
	Priority    string     `json:"priority,omitempty"`
	Assignee    string     `json:"assignee,omitempty"`
	IssueType   string     `json:"issue_type,omitempty"`
	Created     *time.Time `json:"created,omitempty"`
	Updated     *time.Time `json:"updated,omitempty"`
}

// Default values applied during normalization.
const (
	Unassigned      = "Unassigned"
	DefaultPriority = "Medium"
	DefaultStatus   = "Open"
)

// Row is the canonical, normalized form of one Issue. Categorical fields are
// never empty after normalization. ResolutionDays stays nil for unresolved
// issues and must be excluded from resolution-time statistics, never coerced
// to zero.
type Row struct {
	Key         string
	Summary     string
	Description string
	Status      string
	Priority    string
	Assignee    string
	IssueType   string
	Created     *time.Time
	Updated     *time.Time

	// ResolutionDays is Updated-Created in whole days, nil if either
	// timestamp is missing.
	ResolutionDays *int

	// AgeDays is now-Created in whole days, 0 if Created is missing.
	AgeDays int

	// Overdue reports AgeDays above the configured overdue window.
	Overdue bool
}

// Resolved reports whether the row has resolution-time data.
func (r *Row) Resolved() bool {
	return r.ResolutionDays != nil
}

// Text returns the free-text content used for sentiment scoring.
func (r *Row) Text() string {
	if r.Description == "" {
		return r.Summary
	}
	return r.Summary + " " + r.Description
}
