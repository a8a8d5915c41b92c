// Package sqlite implements saved-session storage on SQLite.
//
// Sessions are stored as share tokens, so the schema does not follow changes
// to the calculator state shape.
package sqlite
