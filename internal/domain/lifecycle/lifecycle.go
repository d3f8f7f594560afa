// Package lifecycle contains timeouts shared by fx start/stop hooks.
package lifecycle

import "time"

const (
	// DefaultTimeout bounds connection checks on start and graceful shutdown on stop.
	DefaultTimeout = 10 * time.Second

	// DrainTimeout bounds how long background workers may flush queued work on stop.
	DrainTimeout = 5 * time.Second
)
