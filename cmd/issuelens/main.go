package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/issuelens/issuelens/internal/output"
	"github.com/issuelens/issuelens/pkg/config"
	"github.com/issuelens/issuelens/pkg/engine"
	"github.com/issuelens/issuelens/pkg/models"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "issuelens",
		Usage:   "Analytics reports for issue-tracker exports",
		Version: version,
		Description: `Issuelens analyzes a batch of issue records for descriptive statistics,
temporal patterns, team performance, sentiment, bottlenecks, predicted
blockers, and anomalies.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (TOML, YAML, or JSON)",
				EnvVars: []string{"ISSUELENS_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "text",
				Usage:   "Output format: text, json, markdown",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write output to file",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable verbose logging",
			},
		},
		Commands: []*cli.Command{
			analyzeCmd(),
			configCmd(),
		},
		DefaultCommand: "analyze",
	}

	if err := app.Run(os.Args); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func analyzeCmd() *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "Analyze a JSON file of issue records",
		ArgsUsage: "<issues.json>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-sentiment",
				Usage: "Skip sentiment analysis",
			},
			&cli.BoolFlag{
				Name:  "no-predictive",
				Usage: "Skip predictive and anomaly analysis",
			},
			&cli.BoolFlag{
				Name:  "no-bottlenecks",
				Usage: "Skip bottleneck detection",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "Override the model seed",
			},
		},
		Action: runAnalyze,
	}
}

func runAnalyze(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one issues file, got %d arguments", c.Args().Len())
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if c.IsSet("seed") {
		cfg.Model.Seed = c.Int64("seed")
	}

	issues, err := readIssues(c.Args().First())
	if err != nil {
		return err
	}

	logger := zerolog.Nop()
	if c.Bool("verbose") {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	opts := engine.DefaultOptions()
	if c.Bool("no-sentiment") || !cfg.Analysis.Sentiment {
		opts.Sentiment = false
	}
	if c.Bool("no-predictive") || !cfg.Analysis.Predictive {
		opts.Predictive = false
	}
	if c.Bool("no-bottlenecks") || !cfg.Analysis.Bottleneck {
		opts.Bottleneck = false
	}

	report := engine.New(cfg, engine.WithLogger(logger)).AnalyzeIssues(issues, opts)

	format := cfg.Output.Format
	if c.IsSet("format") {
		format = c.String("format")
	}

	formatter, err := output.NewFormatter(
		output.ParseFormat(format),
		c.String("output"),
		cfg.Output.Color,
	)
	if err != nil {
		return err
	}
	defer formatter.Close()

	return output.RenderReport(formatter, report)
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	if path := c.String("config"); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
		return cfg, nil
	}
	return config.LoadOrDefault(), nil
}

func readIssues(path string) ([]models.Issue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read issues file: %w", err)
	}
	var issues []models.Issue
	if err := json.Unmarshal(data, &issues); err != nil {
		return nil, fmt.Errorf("failed to parse issues file: %w", err)
	}
	return issues, nil
}
