// Package config provides configuration management for the cheque frontend.
//
// Configuration is loaded from environment variables using the env package.
// A .env file in the working directory, when present, is applied first;
// variables already set in the process environment take precedence.
// All configuration values have sensible defaults for local development.
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("HTTP server will listen on %s\n", cfg.GetHTTPAddr())
package config
