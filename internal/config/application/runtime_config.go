package application

import (
	"context"
	"net"
	"os"
	"slices"
	"strconv"
	"strings"

	"loadprobe/internal/loadavg/infrastructure"
	"loadprobe/internal/shared/validation"
)

// RuntimeConfig holds all runtime configuration from CLI flags, environment variables, and .env file
type RuntimeConfig struct {
	// HTTP listener
	Host string
	Port string

	// Load average source, one of infrastructure.Sources()
	Source   string
	ProcPath string

	// Development Mode
	DevMode bool

	// Logging Configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// Flags carries raw CLI flag values; empty strings mean "not set"
type Flags struct {
	Host      string
	Port      string
	Source    string
	ProcPath  string
	LogLevel  string
	LogFormat string
	LogOutput string
	DevMode   bool
}

// LoadRuntimeConfig loads configuration with precedence: CLI flags > env vars > .env file > defaults
func LoadRuntimeConfig(flags Flags) *RuntimeConfig {
	return &RuntimeConfig{
		Host:      getValue(flags.Host, "LOADPROBE_HOST", ""),
		Port:      getValue(flags.Port, "LOADPROBE_PORT", "8000"),
		Source:    getValue(flags.Source, "LOADPROBE_SOURCE", infrastructure.SourceGopsutil),
		ProcPath:  getValue(flags.ProcPath, "LOADPROBE_PROC_PATH", "/proc"),
		DevMode:   flags.DevMode || getBoolEnv("LOADPROBE_DEV_MODE", false),
		LogLevel:  getValue(flags.LogLevel, "LOADPROBE_LOG_LEVEL", "INFO"),
		LogFormat: getValue(flags.LogFormat, "LOADPROBE_LOG_FORMAT", "text"),
		LogOutput: getValue(flags.LogOutput, "LOADPROBE_LOG_OUTPUT", "stdout"),
	}
}

// Addr returns the host:port the HTTP server binds to
func (c *RuntimeConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// getValue returns the first non-empty value from CLI flag, env var, or default
func getValue(cliValue, envKey, defaultValue string) string {
	if cliValue != "" {
		return cliValue
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}
	return defaultValue
}

// getBoolEnv gets a boolean environment variable
func getBoolEnv(key string, defaultValue bool) bool {
	value := strings.ToLower(os.Getenv(key))
	if value == "true" || value == "1" || value == "yes" {
		return true
	}
	if value == "false" || value == "0" || value == "no" {
		return false
	}
	return defaultValue
}

func (c *RuntimeConfig) Valid(ctx context.Context) map[string]string {
	problems := make(map[string]string)

	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 0 || port > 65535 {
		problems["port"] = "port must be a number between 0 and 65535"
	}

	if !slices.Contains(infrastructure.Sources(), c.Source) {
		problems["source"] = "source must be one of: " + strings.Join(infrastructure.Sources(), ", ")
	}

	if c.Source == infrastructure.SourceProcfs && c.ProcPath == "" {
		problems["proc-path"] = "proc path is required for the procfs source"
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		problems["log-format"] = "log format must be 'text' or 'json'"
	}

	return problems
}

// Validate checks that the configuration is usable
func (c *RuntimeConfig) Validate() error {
	return validation.Check(context.Background(), c, "runtime")
}
