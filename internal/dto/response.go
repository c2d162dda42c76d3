package dto

import "time"

type UserResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Role              string    `json:"role"`
	HasPendingRequest bool      `json:"has_pending_request"`
	CreatedAt         time.Time `json:"created_at"`
}

type TokenResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type CommentResponse struct {
	ID        string             `json:"id"`
	ParentID  *string            `json:"parent_id"`
	Author    string             `json:"author"`
	Content   string             `json:"content"`
	CreatedAt time.Time          `json:"created_at"`
	Replies   []*CommentResponse `json:"replies"`
}

type TicketResponse struct {
	ID           string             `json:"id"`
	Subject      string             `json:"subject"`
	Description  string             `json:"description"`
	Category     string             `json:"category"`
	Status       string             `json:"status"`
	Priority     string             `json:"priority"`
	CreatedBy    string             `json:"created_by"`
	Agent        string             `json:"agent"`
	Upvotes      int                `json:"upvotes"`
	Downvotes    int                `json:"downvotes"`
	CommentCount int                `json:"comment_count"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
	Comments     []*CommentResponse `json:"comments,omitempty"`
}

type CommunityPageResponse struct {
	Tickets   []*TicketResponse `json:"tickets"`
	Total     int               `json:"total"`
	Page      int               `json:"page"`
	PerPage   int               `json:"per_page"`
	PageCount int               `json:"page_count"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type RoleRequestResponse struct {
	ID            string    `json:"id"`
	UserEmail     string    `json:"user_email"`
	CurrentRole   string    `json:"current_role"`
	RequestedRole string    `json:"requested_role"`
	Status        string    `json:"status"`
	RequestedAt   time.Time `json:"requested_at"`
}

type StatsResponse struct {
	TicketsByStatus map[string]int `json:"tickets_by_status"`
	UsersByRole     map[string]int `json:"users_by_role"`
}
