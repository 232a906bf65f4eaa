package models

// Status and priority category sets used by multiple analyzers. Trackers
// vary in workflow naming; these cover the common defaults.

var terminalStatuses = map[string]bool{
	"Done":     true,
	"Closed":   true,
	"Resolved": true,
}

var openStatuses = map[string]bool{
	"Open":        true,
	"In Progress": true,
	"To Do":       true,
}

var highPriorities = map[string]bool{
	"High":     true,
	"Critical": true,
	"Urgent":   true,
}

// IsTerminalStatus reports whether s marks completed work.
func IsTerminalStatus(s string) bool {
	return terminalStatuses[s]
}

// IsOpenStatus reports whether s marks unresolved, actionable work.
func IsOpenStatus(s string) bool {
	return openStatuses[s]
}

// IsWorkableStatus is IsOpenStatus plus freshly triaged "New" issues. The
// workload distribution counts these toward current load.
func IsWorkableStatus(s string) bool {
	return openStatuses[s] || s == "New"
}

// IsHighPriority reports whether p is an escalated priority.
func IsHighPriority(p string) bool {
	return highPriorities[p]
}
