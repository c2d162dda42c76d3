package domain

import "time"

// Comment is one entry in a ticket's flat comment collection. Replies is
// derived by BuildCommentTree and is never persisted.
type Comment struct {
	ID        string     `json:"id"`
	TicketID  string     `json:"ticket_id,omitempty"`
	ParentID  *string    `json:"parent_id"`
	Author    string     `json:"author"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	Replies   []*Comment `json:"replies,omitempty"`
}
