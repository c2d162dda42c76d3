package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ha0himanshuarora/QuickDesk/internal/auth"
	"github.com/ha0himanshuarora/QuickDesk/internal/domain"
)

type authUsecase struct {
	users    domain.UserRepository
	requests domain.RoleRequestRepository
	tokens   *auth.TokenManager
}

func NewAuthUsecase(users domain.UserRepository, requests domain.RoleRequestRepository, tokens *auth.TokenManager) domain.AuthService {
	return &authUsecase{users: users, requests: requests, tokens: tokens}
}

func (uc *authUsecase) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || strings.TrimSpace(name) == "" || password == "" {
		return nil, domain.ErrEmptyContent
	}

	existing, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleEndUser,
	}
	if err := uc.users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (uc *authUsecase) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	u, err := uc.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", nil, fmt.Errorf("lookup user: %w", err)
	}
	if u == nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if err := auth.CheckPassword(u.PasswordHash, password); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := uc.tokens.Generate(u)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, u, nil
}

func (uc *authUsecase) Profile(ctx context.Context, userID string) (*domain.User, error) {
	u, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

// RequestRoleChange files a role-change request for admin review. A user
// can hold at most one pending request.
func (uc *authUsecase) RequestRoleChange(ctx context.Context, userID string, requested domain.Role) (*domain.RoleChangeRequest, error) {
	if !requested.Valid() {
		return nil, domain.ErrInvalidRole
	}

	u, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	if u.Role == requested {
		return nil, domain.ErrInvalidRole
	}
	if u.HasPendingRequest {
		return nil, domain.ErrRequestPending
	}

	req := &domain.RoleChangeRequest{
		ID:            uuid.NewString(),
		UserID:        u.ID,
		UserEmail:     u.Email,
		CurrentRole:   u.Role,
		RequestedRole: requested,
		Status:        domain.RequestPending,
	}
	if err := uc.requests.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if err := uc.users.SetPendingRequest(ctx, u.ID, true); err != nil {
		return nil, fmt.Errorf("flag pending request: %w", err)
	}
	return req, nil
}
