package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrEmptyContent       = errors.New("content cannot be empty")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrRequestPending     = errors.New("a role change request is already pending")
	ErrRequestResolved    = errors.New("request has already been resolved")
	ErrCategoryExists     = errors.New("category already exists")
	ErrTicketAssigned     = errors.New("ticket is already assigned")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInvalidVote        = errors.New("invalid vote type")
	ErrInvalidPriority    = errors.New("invalid priority")
	ErrInvalidRole        = errors.New("invalid role")
)
