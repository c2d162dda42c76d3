package domain

import "time"

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// RoleChangeRequest is a user's petition to change their role; only one
// pending request per user is allowed at a time.
type RoleChangeRequest struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	UserEmail     string        `json:"user_email"`
	CurrentRole   Role          `json:"current_role"`
	RequestedRole Role          `json:"requested_role"`
	Status        RequestStatus `json:"status"`
	RequestedAt   time.Time     `json:"requested_at"`
}
