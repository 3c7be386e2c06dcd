package helpers

import "time"

// Today returns the current date truncated to midnight UTC. Due-date and
// enrollment-date comparisons work on whole days.
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
