package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/issuelens/issuelens/pkg/analyzer/basic"
	"github.com/issuelens/issuelens/pkg/engine"
)

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatMarkdown, ParseFormat("markdown"))
	assert.Equal(t, FormatMarkdown, ParseFormat("md"))
	assert.Equal(t, FormatText, ParseFormat("text"))
	assert.Equal(t, FormatText, ParseFormat("anything else"))
}

func fileFormatter(t *testing.T, format Format) (*Formatter, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out")
	f, err := NewFormatter(format, path, true)
	require.NoError(t, err)
	return f, path
}

func TestRenderReportJSON(t *testing.T) {
	f, path := fileFormatter(t, FormatJSON)

	rep := &engine.Report{
		BasicMetrics: &basic.Metrics{
			TotalIssues:        3,
			StatusDistribution: map[string]int{"Open": 3},
		},
	}
	require.NoError(t, RenderReport(f, rep))
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "basic_metrics")
	assert.NotContains(t, decoded, "error")
}

func TestRenderReportErrorBanner(t *testing.T) {
	f, path := fileFormatter(t, FormatText)

	require.NoError(t, RenderReport(f, &engine.Report{Err: "No issues to analyze"}))
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "No issues to analyze")
}

func TestRenderReportMarkdownTable(t *testing.T) {
	f, path := fileFormatter(t, FormatMarkdown)

	rep := &engine.Report{
		BasicMetrics: &basic.Metrics{
			TotalIssues:          2,
			StatusDistribution:   map[string]int{"Open": 1, "Done": 1},
			PriorityDistribution: map[string]int{"Medium": 2},
		},
	}
	require.NoError(t, RenderReport(f, rep))
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "## Basic Metrics")
	assert.Contains(t, out, "| Status | Count |")
	assert.Contains(t, out, "| Done | 1 |")
	assert.Contains(t, out, "| Open | 1 |")
}

func TestFileOutputDisablesColor(t *testing.T) {
	f, _ := fileFormatter(t, FormatText)
	defer f.Close()

	assert.False(t, f.Colored())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly10!", truncate("exactly10!", 10))
	assert.Equal(t, "this is...", truncate("this is too long", 10))
}

func TestSortedKeys(t *testing.T) {
	keys := sortedKeys(map[string]int{"c": 1, "a": 2, "b": 3})
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}
