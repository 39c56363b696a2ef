// Package lifecycle holds shared constants for component startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds infrastructure OnStart/OnStop hooks.
const DefaultTimeout = 10 * time.Second
