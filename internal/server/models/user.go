package models

import "time"

// User is a stored account record. Digest is the peppered bcrypt digest of
// the password; the plaintext is never persisted. ID is assigned by the
// repository on create.
type User struct {
	ID        string
	UserName  string
	Digest    string
	CreatedAt time.Time
}
