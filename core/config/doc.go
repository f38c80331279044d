// Package config provides configuration management for catalog-sync.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Log: Logging level and format
//   - Database: SQLite store location and timeouts
//   - Watch: Source file polling interval
//
// Defaults come from `default` struct tags on the partial configs; environment
// variables override them using underscore-joined keys (DATABASE_PATH,
// WATCH_INTERVAL_SECONDS, LOG_LEVEL, ...). Command-line flags override both.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Database.Path)
package config
