package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all configuration options for issuelens.
type Config struct {
	// Analysis settings control which analyzers run.
	Analysis AnalysisConfig `koanf:"analysis"`

	// Thresholds for the heuristic rules.
	Thresholds ThresholdConfig `koanf:"thresholds"`

	// Model settings for the predictive and anomaly analyzers.
	Model ModelConfig `koanf:"model"`

	// Output settings.
	Output OutputConfig `koanf:"output"`
}

// AnalysisConfig controls which optional analyzers run.
type AnalysisConfig struct {
	Sentiment  bool `koanf:"sentiment"`
	Predictive bool `koanf:"predictive"`
	Bottleneck bool `koanf:"bottleneck"`
}

// ThresholdConfig names every heuristic cutoff used by the analyzers so they
// can be tuned without code changes.
type ThresholdConfig struct {
	// OverdueDays is the age beyond which an issue counts as overdue.
	OverdueDays int `koanf:"overdue_days"`

	// AgingDays is the age beyond which issues feed the aging-issues
	// bottleneck rule.
	AgingDays int `koanf:"aging_days"`

	// HighPriorityDelayDays is the age beyond which a high-priority
	// issue counts as delayed.
	HighPriorityDelayDays int `koanf:"high_priority_delay_days"`

	// VelocityWindowDays bounds the recently-resolved window used for
	// monthly velocity.
	VelocityWindowDays int `koanf:"velocity_window_days"`

	// StatusSharePct is the share of the batch a single non-terminal
	// status must exceed (strictly) to flag a status bottleneck.
	StatusSharePct float64 `koanf:"status_share_pct"`

	// StatusShareHighPct upgrades a status bottleneck to High severity.
	StatusShareHighPct float64 `koanf:"status_share_high_pct"`

	// OverloadFactor is the multiple of the per-assignee mean above which
	// an assignee counts as overloaded.
	OverloadFactor float64 `koanf:"overload_factor"`

	// OverloadHighFactor upgrades an overload flag to High severity.
	OverloadHighFactor float64 `koanf:"overload_high_factor"`

	// SentimentPositive and SentimentNegative are the polarity cutoffs
	// for labeling a single issue.
	SentimentPositive float64 `koanf:"sentiment_positive"`
	SentimentNegative float64 `koanf:"sentiment_negative"`

	// MoodGood and MoodConcerning are the batch-average cutoffs for the
	// team mood verdict.
	MoodGood       float64 `koanf:"mood_good"`
	MoodConcerning float64 `koanf:"mood_concerning"`
}

// ModelConfig controls the trained models.
type ModelConfig struct {
	// Seed drives all model randomness; fixed by default so repeated
	// runs over the same batch are identical.
	Seed int64 `koanf:"seed"`

	// MinRows is the minimum batch size for the predictive model.
	MinRows int `koanf:"min_rows"`

	// Trees is the ensemble size for both models.
	Trees int `koanf:"trees"`

	// TestFraction is the held-out share of the predictive training set.
	TestFraction float64 `koanf:"test_fraction"`

	// Contamination is the assumed anomalous fraction of the batch.
	Contamination float64 `koanf:"contamination"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Format string `koanf:"format"` // text, json, markdown
	Color  bool   `koanf:"color"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			Sentiment:  true,
			Predictive: true,
			Bottleneck: true,
		},
		Thresholds: ThresholdConfig{
			OverdueDays:           30,
			AgingDays:             60,
			HighPriorityDelayDays: 14,
			VelocityWindowDays:    30,
			StatusSharePct:        40,
			StatusShareHighPct:    60,
			OverloadFactor:        2,
			OverloadHighFactor:    3,
			SentimentPositive:     0.1,
			SentimentNegative:     -0.1,
			MoodGood:              0.05,
			MoodConcerning:        -0.05,
		},
		Model: ModelConfig{
			Seed:          42,
			MinRows:       10,
			Trees:         50,
			TestFraction:  0.3,
			Contamination: 0.1,
		},
		Output: OutputConfig{
			Format: "text",
			Color:  true,
		},
	}
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	// Determine parser based on extension
	var parser koanf.Parser
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml":
		parser = toml.Parser()
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		parser = toml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault tries to load config from standard locations or returns
// defaults.
func LoadOrDefault() *Config {
	configNames := []string{
		"issuelens.toml",
		"issuelens.yaml",
		"issuelens.yml",
		"issuelens.json",
		".issuelens.toml",
		".issuelens.yaml",
		".issuelens.yml",
		".issuelens.json",
	}

	searchDirs := []string{".", ".issuelens"}

	for _, dir := range searchDirs {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				cfg, err := Load(path)
				if err == nil {
					return cfg
				}
			}
		}
	}

	return DefaultConfig()
}
