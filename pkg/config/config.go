// Package config loads rowdb's start-up options from command-line flags,
// falling back to environment variables and then to defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"rowdb/pkg/logging"
	"strconv"
)

const DefaultPrompt = "db>"

// Configuration holds all start-up options.
type Configuration struct {
	TUI        bool   // run the terminal UI instead of the line REPL
	ImportFile string // commands executed before the interactive loop
	Prompt     string
	Log        LogConfig
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  logging.LogLevel
	File   string // empty for stderr
	Format string // "text" or "json"
}

// Load parses args (without the program name). Flags take precedence over
// ROWDB_* environment variables.
func Load(args []string) (*Configuration, error) {
	return load(args, io.Discard)
}

func load(args []string, usage io.Writer) (*Configuration, error) {
	tuiDefault, err := getEnvBool("ROWDB_TUI", false)
	if err != nil {
		return nil, err
	}

	cfg := &Configuration{}
	var level string

	fs := flag.NewFlagSet("rowdb", flag.ContinueOnError)
	fs.SetOutput(usage)
	fs.BoolVar(&cfg.TUI, "tui", tuiDefault, "Start the terminal UI")
	fs.StringVar(&cfg.ImportFile, "import", "", "File of commands to run before the interactive loop")
	fs.StringVar(&cfg.Prompt, "prompt", DefaultPrompt, "Prompt printed before each line")
	fs.StringVar(&level, "log-level", getEnv("ROWDB_LOG_LEVEL", string(logging.LevelWarn)), "Log level (DEBUG, INFO, WARN, ERROR)")
	fs.StringVar(&cfg.Log.File, "log-file", getEnv("ROWDB_LOG_FILE", ""), "Log file path; empty logs to stderr")
	fs.StringVar(&cfg.Log.Format, "log-format", getEnv("ROWDB_LOG_FORMAT", "text"), "Log format (text or json)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg.Log.Level, err = logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if cfg.Log.Format != "text" && cfg.Log.Format != "json" {
		return nil, fmt.Errorf("invalid log format %q; want text or json", cfg.Log.Format)
	}

	return cfg, nil
}

// LoggingConfig converts the log settings for logging.Init.
func (c *Configuration) LoggingConfig() logging.Config {
	return logging.Config{
		Level:      c.Log.Level,
		OutputPath: c.Log.File,
		Format:     c.Log.Format,
	}
}

// String returns a one-line summary for start-up logs.
func (c *Configuration) String() string {
	return fmt.Sprintf("Config{TUI: %t, Import: %q, Log: %s/%s}", c.TUI, c.ImportFile, c.Log.Level, c.Log.Format)
}

// getEnv retrieves an environment variable with a default fallback.
func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

// getEnvBool retrieves an environment variable as a bool with a default fallback.
func getEnvBool(key string, defaultVal bool) (bool, error) {
	if value, exists := os.LookupEnv(key); exists {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("invalid boolean for %s: %w", key, err)
		}
		return b, nil
	}
	return defaultVal, nil
}
