// Package services holds the application logic between the gRPC handlers and
// the repositories: account lifecycle, direct-message delivery, and the store
// operations backing the streaming conversations.
package services

// Outcome is the tagged result of a user-facing operation. OK reports whether
// the operation was accepted; Message is the text shown to the user either
// way. Callers branch on OK, never on the message contents.
type Outcome struct {
	OK      bool
	Message string
}

func accepted(message string) Outcome { return Outcome{OK: true, Message: message} }
func rejected(message string) Outcome { return Outcome{OK: false, Message: message} }
