// Package lifecycle holds shared timing constants for start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown and background deliveries.
const DefaultTimeout = 10 * time.Second
