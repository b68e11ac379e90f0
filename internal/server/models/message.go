package models

import "time"

// Message is a stored direct message. ID is assigned by the store and grows
// monotonically, which is what per-receiver insertion order relies on.
type Message struct {
	ID        int64
	Receiver  string
	Sender    string
	Body      string
	CreatedAt time.Time
	IsRead    bool
}

// SenderCount is one row of the unread-by-sender aggregation.
type SenderCount struct {
	Sender string
	Count  int
}
