// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional config file. It provides
// type-safe access to settings for logging and catalog reporting while
// keeping configuration details separate from domain logic.
package config
