// Package lifecycle holds shared constants for application start and stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds how long any single lifecycle hook may take,
// such as pinging the database on start or draining the server on stop.
const DefaultTimeout = 10 * time.Second
