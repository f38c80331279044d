// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) with console or JSON encoding.
//
// # Pass Correlation
//
// Sync passes are tagged with a pass id. The WithPassID helper attaches the id
// to the log entry, ensuring that all logs belonging to a specific pass can be
// correlated when the watch loop runs many passes back to back.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Sync started")
//
//	// Inside one pass:
//	l := logger.WithPassID(log, passID)
//	l.Error("Pass failed", zap.Error(err))
package logger
