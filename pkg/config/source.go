// Package config resolves platform credentials from the process environment.
//
// Environment access goes through the Source capability so tests can inject
// a fake store instead of mutating real process state. Resolution is
// deliberately uncached: every call re-reads the source, which keeps CI
// workflows that inject credentials per invocation working.
package config

import "os"

// Source supplies environment values. os.Getenv semantics: unknown keys
// yield "".
type Source interface {
	Getenv(key string) string
}

// EnvSource reads from the real process environment.
type EnvSource struct{}

// Getenv returns the value of the environment variable named by key.
func (EnvSource) Getenv(key string) string {
	return os.Getenv(key)
}

// MapSource is an in-memory Source, mainly for tests and embedding callers.
type MapSource map[string]string

// Getenv returns the mapped value, or "" when the key is absent.
func (m MapSource) Getenv(key string) string {
	return m[key]
}
