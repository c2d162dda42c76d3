package domain

import "context"

type TicketRepository interface {
	Create(ctx context.Context, t *Ticket) error
	FindByID(ctx context.Context, id string) (*Ticket, error)
	List(ctx context.Context) ([]*Ticket, error)
	ListByCreator(ctx context.Context, email string) ([]*Ticket, error)
	UpdateStatus(ctx context.Context, id string, status TicketStatus) error
	UpdateAgent(ctx context.Context, id, agent string) error
	Search(ctx context.Context, query string, limit, offset int) ([]*Ticket, error)
	CountByStatus(ctx context.Context) (map[TicketStatus]int, error)
}

// CommentRepository persists the flat comment collection of a ticket.
// Append and DeleteByIDs bump the ticket's updated_at in the same
// transaction.
type CommentRepository interface {
	ListByTicket(ctx context.Context, ticketID string) ([]*Comment, error)
	Append(ctx context.Context, c *Comment) error
	DeleteByIDs(ctx context.Context, ticketID string, ids []string) error
}

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	UpdateRole(ctx context.Context, id string, role Role) error
	SetPendingRequest(ctx context.Context, id string, pending bool) error
	CountByRole(ctx context.Context) (map[Role]int, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, c *Category) error
	FindByName(ctx context.Context, name string) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
	Delete(ctx context.Context, id string) error
}

type RoleRequestRepository interface {
	Create(ctx context.Context, r *RoleChangeRequest) error
	FindByID(ctx context.Context, id string) (*RoleChangeRequest, error)
	ListPending(ctx context.Context) ([]*RoleChangeRequest, error)
	UpdateStatus(ctx context.Context, id string, status RequestStatus) error
	HasPending(ctx context.Context, userID string) (bool, error)
}

// VoteRepository applies a vote transition atomically: the vote row and the
// ticket's counters change in one transaction. prev == nil records a new
// vote, next == nil retracts, both set switches.
type VoteRepository interface {
	Find(ctx context.Context, ticketID, userID string) (*Vote, error)
	Apply(ctx context.Context, ticketID, userID string, prev, next *VoteType) error
}
