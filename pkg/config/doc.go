// Package config loads the environment configuration of the notes binaries.
//
// Both binaries read plain environment variables through cleanenv struct
// tags:
//
//	cfg, err := config.LoadClientConfig()  // NOTES_*
//
//	var cfg config.ServerConfig
//	err := config.LoadServerConfig(&cfg)   // SESSIOND_*
//
// Loading validates the result with the helpers from pkg/validation, so a
// returned error lists every offending variable at once.
package config
