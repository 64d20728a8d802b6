// Package timeouts defines shared timeout constants used across the service.
// Centralizing these values prevents drift between transport boundaries and
// makes the durations discoverable.
package timeouts

import "time"

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown. It must stay long enough for a slow document
// save to finish.
const Shutdown = 35 * time.Second

// OtelShutdown bounds the flush of pending spans at process exit.
const OtelShutdown = 5 * time.Second
