package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTerminalStatus(t *testing.T) {
	assert.True(t, IsTerminalStatus("Done"))
	assert.True(t, IsTerminalStatus("Closed"))
	assert.True(t, IsTerminalStatus("Resolved"))
	assert.False(t, IsTerminalStatus("Open"))
	assert.False(t, IsTerminalStatus("done")) // statuses are case sensitive
}

func TestIsOpenStatus(t *testing.T) {
	assert.True(t, IsOpenStatus("Open"))
	assert.True(t, IsOpenStatus("In Progress"))
	assert.True(t, IsOpenStatus("To Do"))
	assert.False(t, IsOpenStatus("Done"))
	assert.False(t, IsOpenStatus("New"))
}

func TestIsWorkableStatus(t *testing.T) {
	assert.True(t, IsWorkableStatus("Open"))
	assert.True(t, IsWorkableStatus("New"))
	assert.False(t, IsWorkableStatus("Done"))
}

func TestIsHighPriority(t *testing.T) {
	assert.True(t, IsHighPriority("High"))
	assert.True(t, IsHighPriority("Critical"))
	assert.True(t, IsHighPriority("Urgent"))
	assert.False(t, IsHighPriority("Medium"))
	assert.False(t, IsHighPriority("Low"))
}
