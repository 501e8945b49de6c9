package domain

import "time"

// Message is a direct message delivered to a user's inbox. Sender is either a
// real admin identity or the fixed system moderation sender. Immutable once
// written.
type Message struct {
	ID             string
	SenderID       string
	RecipientID    string
	Text           string
	Timestamp      time.Time
	Read           bool
	ParticipantIDs []string
}
