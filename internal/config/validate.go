package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks configuration values for consistency.
func (c *Config) Validate() error {
	var problems []string

	if c.Ingest.RowCap <= 0 {
		problems = append(problems, "ingest.row_cap must be positive")
	}
	if c.Ingest.MaxDatabaseMiB <= 0 {
		problems = append(problems, "ingest.max_database_mib must be positive")
	}
	if strings.ContainsRune(c.Export.Filename, '/') {
		problems = append(problems, "export.filename must not contain path separators")
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("logging.format %q is not one of console, json", c.Logging.Format))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		problems = append(problems, fmt.Sprintf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level))
	}

	if len(problems) > 0 {
		return errors.New("invalid configuration: " + strings.Join(problems, "; "))
	}
	return nil
}
