package config

const (
	defaultLogDir         = "~/.local/share/cardstock/logs"
	defaultExportDir      = "."
	defaultRowCap         = 1000
	defaultMaxDatabaseMiB = 256
	defaultExportFilename = "anki_export_quizlet.csv"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:    defaultLogDir,
			ExportDir: defaultExportDir,
		},
		Ingest: Ingest{
			RowCap:         defaultRowCap,
			MaxDatabaseMiB: defaultMaxDatabaseMiB,
		},
		Export: Export{
			Filename: defaultExportFilename,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
