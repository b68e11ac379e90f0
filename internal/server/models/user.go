// Package models defines server-side data models persisted by the
// repositories.
package models

import "time"

// User is an account row. Username is the immutable primary key;
// PasswordDigest is an opaque bcrypt digest; Active is flipped by
// Login/Logoff and the account is removed entirely by deactivation.
type User struct {
	Username       string
	PasswordDigest string
	Active         bool
	CreatedAt      time.Time
}
