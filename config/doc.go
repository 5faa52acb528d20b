// Package config loads configuration for applications hosting the dispatch
// layer: YAML files via viper, .env files via godotenv, environment
// variable overrides, and struct-tag validation.
package config
