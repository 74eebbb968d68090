// Package lifecycle holds values shared by fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and clients.
const DefaultTimeout = 15 * time.Second
