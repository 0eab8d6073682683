// Package config provides configuration management for SectionKit.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of every section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, enabled features)
//   - Database: render journal database (mysql or sqlite)
//   - Storage: S3/MinIO credentials and bucket of the snapshot archive
//   - Log: Logging level and format
//   - Adapter: section adapter behaviour (strict goroutine check, invisible widgets)
//
// Environment variables map to nested keys by replacing dots with underscores, so
// ADAPTER_STRICT_THREAD sets adapter.strict_thread.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
