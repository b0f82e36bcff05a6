// Package config provides configuration management for the order manager.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, CORS origins)
//   - Database: MySQL/SQLite connection details
//   - Auth: bearer-token verification settings (shared secret or introspection endpoint)
//   - Archive: S3/MinIO credentials for order snapshot archiving
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
