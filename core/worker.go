package core

import "time"

// Worker is a cron-scheduled background job. Schedule returns a cron
// expression; Ready lets a worker decline a tick (e.g. a previous run is
// still going); Execute runs one pass.
type Worker interface {
	Schedule() string
	Ready(now time.Time) bool
	Execute()
}
