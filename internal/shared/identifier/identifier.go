// Package identifier issues the opaque string ids every record kind keys on.
// Ids mix a millisecond timestamp with random bits (UUIDv7), so two calls in
// one process never collide and values trend chronologically without
// carrying ordering guarantees.
package identifier

import "github.com/google/uuid"

// New returns a fresh record id. Generated once at creation; never reused.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does; fall back to v4
		// rather than stalling a write.
		return uuid.NewString()
	}
	return id.String()
}
