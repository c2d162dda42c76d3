package domain

import "time"

type VoteType string

const (
	VoteUp   VoteType = "up"
	VoteDown VoteType = "down"
)

func (v VoteType) Valid() bool {
	return v == VoteUp || v == VoteDown
}

// Vote records one user's up/down vote on a ticket. Casting the same vote
// again retracts it; casting the opposite vote switches it.
type Vote struct {
	TicketID  string    `json:"ticket_id"`
	UserID    string    `json:"user_id"`
	Type      VoteType  `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}
