package main

import (
	"fmt"
	"os"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// config holds the CLI settings. Environment variables provide the defaults
// and flags override them.
type config struct {
	LogLevel string
	Output   string
}

func loadConfig() *config {
	return &config{
		LogLevel: getEnv("PROCRESULT_LOG_LEVEL", "warning"),
		Output:   getEnv("PROCRESULT_OUTPUT", outputText),
	}
}

func (c *config) validate() error {
	switch c.Output {
	case outputText, outputJSON, outputYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q; use text, json or yaml", c.Output)
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
