// Package config provides configuration management for foodfunk.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from the `default` struct tags of each
// section.
//
// # Configuration Structure
//
//   - Server: HTTP query API settings (port, API key)
//   - Properties: local property file, file watching, database overrides
//   - Storage: S3/MinIO location of a shared property file
//   - Database: MySQL/SQLite connection for property overrides
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Properties.File)
package config
