// Package opentime holds the reservation gate rule shared by server and client.
package opentime

import "time"

// IsOpen is the gate rule: open when no instant is stored, else once now
// reaches it.
func IsOpen(openAt *time.Time, now time.Time) bool {
	return openAt == nil || !now.Before(*openAt)
}

// Remaining is how long until the gate opens, zero once it is open.
func Remaining(openAt *time.Time, now time.Time) time.Duration {
	if IsOpen(openAt, now) {
		return 0
	}
	return openAt.Sub(now)
}
