// Package storage defines the persistence contracts for saved calculator
// sessions.
//
// Handlers depend on these interfaces so they stay testable without a
// concrete SQLite schema. Implementations live in subpackages.
//
// # Error Types
//
// Stores report a missing session with domain.ErrSessionNotFound.
package storage
