package models

import "time"

// User is a registered login identity. PasswordHash holds a bcrypt hash,
// never the plaintext.
type User struct {
	ID           int64
	UserName     *string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}
