package domain

import "time"

type TicketStatus string

const (
	StatusOpen       TicketStatus = "Open"
	StatusInProgress TicketStatus = "In Progress"
	StatusResolved   TicketStatus = "Resolved"
	StatusClosed     TicketStatus = "Closed"
)

func (s TicketStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

// CanTransitionTo reports whether an agent may move a ticket from s to next.
// Closed is terminal; Open may be closed directly when no work is needed.
func (s TicketStatus) CanTransitionTo(next TicketStatus) bool {
	switch s {
	case StatusOpen:
		return next == StatusInProgress || next == StatusClosed
	case StatusInProgress:
		return next == StatusResolved
	case StatusResolved:
		return next == StatusClosed
	}
	return false
}

type TicketPriority string

const (
	PriorityLow    TicketPriority = "Low"
	PriorityMedium TicketPriority = "Medium"
	PriorityHigh   TicketPriority = "High"
)

func (p TicketPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Ticket is a support request. Comments holds the derived thread forest
// when loaded through the service layer; CommentCount is maintained by the
// repository for listings.
type Ticket struct {
	ID           string         `json:"id"`
	Subject      string         `json:"subject"`
	Description  string         `json:"description"`
	Category     string         `json:"category"`
	Status       TicketStatus   `json:"status"`
	Priority     TicketPriority `json:"priority"`
	CreatedBy    string         `json:"created_by"`
	Agent        string         `json:"agent"`
	Upvotes      int            `json:"upvotes"`
	Downvotes    int            `json:"downvotes"`
	CommentCount int            `json:"comment_count"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	Comments     []*Comment     `json:"comments,omitempty"`
}

// Score is the net vote count used by the community listing's default sort.
func (t *Ticket) Score() int {
	return t.Upvotes - t.Downvotes
}
