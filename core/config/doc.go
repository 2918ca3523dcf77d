// Package config loads typed configuration from environment variables and
// optional .env files, using `env` struct tags. It exists so limits like
// binder.Config can be tuned per environment without code changes.
package config
