package dto

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RoleChangeRequest struct {
	RequestedRole string `json:"requested_role" binding:"required"`
}

type CreateTicketRequest struct {
	Subject     string `json:"subject" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Priority    string `json:"priority"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type VoteRequest struct {
	Type string `json:"type" binding:"required"`
}

type CreateCommentRequest struct {
	ParentID *string `json:"parent_id,omitempty"`
	Content  string  `json:"content" binding:"required"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}
