// Package timeouts defines shared timeout constants used by the calculator
// server and its live connections.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// WriteMessage caps a single websocket frame write.
const WriteMessage = 10 * time.Second

// LivePong is how long a live connection may stay silent before it is dropped.
const LivePong = 60 * time.Second

// LivePing is the keepalive interval; it must stay below LivePong.
const LivePing = LivePong * 9 / 10
