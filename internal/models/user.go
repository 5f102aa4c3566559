package models

import (
	"time"
)

// User is a commenter identified by display name. Rows are created lazily the
// first time a submission names a username and are never updated or deleted.
type User struct {
	ID        int64     `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// MaxUsernameLength caps the display name accepted on submission
const MaxUsernameLength = 64
