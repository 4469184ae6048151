// Package config provides configuration management for sieve.
//
// This package loads, validates and holds configuration from YAML files
// with environment variable overrides.
//
// # Configuration Loading
//
// Configuration can be loaded in three ways:
//
//  1. From a YAML file only:
//     cfg, err := config.LoadConfig("sieve.yaml")
//
//  2. From a YAML file with environment variable overrides:
//     cfg, err := config.LoadConfigWithEnvOverrides("sieve.yaml")
//
//  3. From an optional file (missing file means defaults):
//     cfg, err := config.LoadOptional("sieve.yaml")
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention SIEVE_SECTION_FIELD:
//
//   - SIEVE_RECORDS_SOURCE overrides records.source
//   - SIEVE_RECORDS_FILE_PATH overrides records.file_path
//   - SIEVE_TELEMETRY_LOGGING_LEVEL overrides telemetry.logging.level
//
// # Configuration Precedence
//
//  1. Default values (defaults.go)
//  2. Values from YAML file
//  3. Environment variable overrides
//  4. Validation (fails fast if invalid)
//
// # Example Configuration
//
//	records:
//	  source: file
//	  file_path: ./people.yaml
//	evaluation:
//	  max_depth: 16
//	  queries: [single-male, single-or-female]
//	output:
//	  format: json
//	telemetry:
//	  logging:
//	    level: info
//	    format: json
//
// # Singleton Pattern
//
// The CLI initializes configuration once and reads it from anywhere:
//
//	if err := config.Initialize("sieve.yaml"); err != nil {
//	    return err
//	}
//	cfg := config.GetConfig()
//
// Library code should take explicit *Config values instead.
package config
