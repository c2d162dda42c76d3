package domain

import "time"

type Role string

const (
	RoleEndUser      Role = "end-user"
	RoleSupportAgent Role = "support-agent"
	RoleAdmin        Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleEndUser, RoleSupportAgent, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	PasswordHash      string    `json:"-"`
	Role              Role      `json:"role"`
	HasPendingRequest bool      `json:"has_pending_request"`
	CreatedAt         time.Time `json:"created_at"`
}
