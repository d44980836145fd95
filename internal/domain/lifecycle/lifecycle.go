// Package lifecycle holds shared process lifecycle settings.
package lifecycle

import "time"

// DefaultTimeout bounds graceful start and stop hooks.
const DefaultTimeout = 30 * time.Second
