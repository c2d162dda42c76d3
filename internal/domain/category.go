package domain

import "time"

// Category is an admin-managed ticket category. Tickets reference it by
// name, matching the original data shape.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
