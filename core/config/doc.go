// Package config provides configuration management for league-assets.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Every field declares its environment key through its
// mapstructure tag and its fallback through a default tag.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, sync on start, refresh interval)
//   - Source: static data CDN base URL, locale, pinned version and payload format
//   - Store: cache persistence backend (bolt, object, database, memory)
//   - Storage: S3/MinIO credentials and bucket settings for the object backend
//   - Database: MySQL or SQLite connection details for the database backend
//   - HTTP: outbound timeout and rate limit retry policy
//   - Riot: dynamic API key and region
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Source.BaseURL)
package config
