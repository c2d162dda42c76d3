package domain

import "context"

type CommentService interface {
	PostReply(ctx context.Context, ticketID string, parentID *string, author, content string) (*Comment, error)
	GetThread(ctx context.Context, ticketID string) ([]*Comment, error)
	DeleteThread(ctx context.Context, ticketID, commentID, actor string, actorRole Role) error
}

// CommunityQuery drives the knowledge-base listing: filtering, sorting and
// pagination happen in memory over the full ticket list.
type CommunityQuery struct {
	Category string
	Search   string
	SortKey  string // votes, comments, subject, status, created
	SortDir  string // asc, desc
	Page     int
	PerPage  int
}

type CommunityPage struct {
	Tickets   []*Ticket `json:"tickets"`
	Total     int       `json:"total"`
	Page      int       `json:"page"`
	PerPage   int       `json:"per_page"`
	PageCount int       `json:"page_count"`
}

type TicketService interface {
	Create(ctx context.Context, t *Ticket) (*Ticket, error)
	Get(ctx context.Context, id string) (*Ticket, error)
	ListMine(ctx context.Context, email string) ([]*Ticket, error)
	ListQueue(ctx context.Context) ([]*Ticket, error)
	Assign(ctx context.Context, id, agent string) error
	ChangeStatus(ctx context.Context, id string, next TicketStatus, agent string) error
	Community(ctx context.Context, viewer string, q CommunityQuery) (*CommunityPage, error)
	Search(ctx context.Context, query string, limit, offset int) ([]*Ticket, error)
}

type VoteService interface {
	Cast(ctx context.Context, ticketID, userID string, vote VoteType) error
}

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*User, error)
	Login(ctx context.Context, email, password string) (string, *User, error)
	Profile(ctx context.Context, userID string) (*User, error)
	RequestRoleChange(ctx context.Context, userID string, requested Role) (*RoleChangeRequest, error)
}

type DashboardStats struct {
	TicketsByStatus map[TicketStatus]int `json:"tickets_by_status"`
	UsersByRole     map[Role]int         `json:"users_by_role"`
}

type AdminService interface {
	AddCategory(ctx context.Context, name string) (*Category, error)
	ListCategories(ctx context.Context) ([]*Category, error)
	DeleteCategory(ctx context.Context, id string) error
	PendingRequests(ctx context.Context) ([]*RoleChangeRequest, error)
	ResolveRequest(ctx context.Context, id string, approve bool) error
	Stats(ctx context.Context) (*DashboardStats, error)
}
