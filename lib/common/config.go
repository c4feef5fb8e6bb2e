package common

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Defaults reproduce the fixed behaviour of the tool when no flag or
// environment variable is set
const (
	DefaultInputPath   = "german.dic"
	DefaultRecordCount = 256000
	DefaultOutputDir   = "."
	DefaultLogLevel    = "info"

	// OutputPrefix is the base name shared by every artifact (output.csv, output.json, ...)
	OutputPrefix = "output"
)

var (
	ErrInvalidRecordCount = errors.New("record count must be at least 1")
	ErrMissingInput       = errors.New("input path must not be empty")
)

// --------------------------------------------------------------------------
// Run configuration struct
// --------------------------------------------------------------------------

// Config holds all parameters of one comparison run.
type Config struct {
	// InputPath is the dictionary file the dataset is loaded from
	InputPath string
	// RecordCount is the number of 7-line records read from InputPath (header included)
	RecordCount int
	// OutputDir is the directory the artifacts are written to
	OutputDir string

	// Verify re-reads every artifact after writing and compares it with the dataset
	Verify bool
	// Metrics prints the collected metrics in prometheus text format after the report
	Metrics bool

	// Logging configuration
	LogLevel string
}

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	return Config{
		InputPath:   DefaultInputPath,
		RecordCount: DefaultRecordCount,
		OutputDir:   DefaultOutputDir,
		LogLevel:    DefaultLogLevel,
	}
}

// Validate checks the configuration for values the pipeline cannot work with
func (c *Config) Validate() error {
	if strings.TrimSpace(c.InputPath) == "" {
		return ErrMissingInput
	}
	if c.RecordCount < 1 {
		return fmt.Errorf("%w (got %d)", ErrInvalidRecordCount, c.RecordCount)
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// String returns a formatted string representation of the configuration
func (c *Config) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	addSection("Input")
	addField("Path", c.InputPath)
	addField("Records", strconv.Itoa(c.RecordCount))

	addSection("Output")
	addField("Directory", c.OutputDir)
	addField("Verify", strconv.FormatBool(c.Verify))
	addField("Metrics", strconv.FormatBool(c.Metrics))

	addSection("Logging")
	addField("Log Level", c.LogLevel)

	return sb.String()
}
