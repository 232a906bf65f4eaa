package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/pelletier/go-toml"
	"github.com/urfave/cli/v2"

	"github.com/issuelens/issuelens/pkg/config"
)

func configCmd() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Subcommands: []*cli.Command{
			{
				Name:   "validate",
				Usage:  "Validate a configuration file",
				Action: runConfigValidate,
			},
			{
				Name:   "show",
				Usage:  "Show the effective configuration",
				Action: runConfigShow,
			},
		},
	}
}

func runConfigValidate(c *cli.Context) error {
	path := c.String("config")
	if path == "" {
		color.Yellow("No config file specified. Default configuration is valid.")
		return nil
	}

	if _, err := config.Load(path); err != nil {
		color.Red("Configuration validation failed:")
		fmt.Printf("  - %s\n", err)
		return err
	}
	color.Green("Configuration valid: %s", path)
	return nil
}

func runConfigShow(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	if path := c.String("config"); path != "" {
		fmt.Printf("# Configuration from: %s\n\n", path)
	} else {
		fmt.Println("# Effective configuration")
	}

	content, err := toml.Marshal(*cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	fmt.Print(string(content))
	return nil
}
