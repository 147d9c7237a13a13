// Package config loads runtime configuration from multiple sources (YAML files,
// environment variables, CLI flags) with precedence: CLI flags > YAML config >
// Environment variables > Defaults. It selects the mass list to read, the fuel
// variant, and logging behaviour.
package config
