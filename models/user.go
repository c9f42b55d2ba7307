package models

import "time"

// LocalUserID is the fixed key under which the singleton session user is
// stored locally. The remote API identifies the user by the bearer token, so
// no server-assigned numeric id exists for this resource.
const LocalUserID int64 = 0

// User is the session user's profile, overwritten wholesale on every sync.
type User struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	Level     int        `json:"level"`
	StartedAt *time.Time `json:"started_at,omitempty"`
}
