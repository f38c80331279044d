package database

// Config holds configuration for the SQLite store.
type Config struct {
	// Path is the location of the SQLite database file.
	// The parent directory is created on demand.
	Path string `mapstructure:"path" default:"data/catalog.db"`
	// BusyTimeoutMillis is the SQLite busy timeout in milliseconds.
	BusyTimeoutMillis int `mapstructure:"busy_timeout_millis" default:"5000"`
}
