// Package server hosts the calculator HTTP API and its live websocket
// sessions.
//
// Handlers are thin: they decode JSON, call the combat, session, share and
// statsheet packages, and render results or localized errors. The only state
// the process holds is one session per open live connection; saved sessions
// live in the configured store.
package server
