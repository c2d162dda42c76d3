package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ha0himanshuarora/QuickDesk/internal/domain"
)

type adminUsecase struct {
	categories domain.CategoryRepository
	requests   domain.RoleRequestRepository
	users      domain.UserRepository
	tickets    domain.TicketRepository
}

func NewAdminUsecase(categories domain.CategoryRepository, requests domain.RoleRequestRepository, users domain.UserRepository, tickets domain.TicketRepository) domain.AdminService {
	return &adminUsecase{categories: categories, requests: requests, users: users, tickets: tickets}
}

func (uc *adminUsecase) AddCategory(ctx context.Context, name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrEmptyContent
	}

	existing, err := uc.categories.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("lookup category: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrCategoryExists
	}

	c := &domain.Category{ID: uuid.NewString(), Name: name}
	if err := uc.categories.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

func (uc *adminUsecase) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return uc.categories.List(ctx)
}

func (uc *adminUsecase) DeleteCategory(ctx context.Context, id string) error {
	return uc.categories.Delete(ctx, id)
}

func (uc *adminUsecase) PendingRequests(ctx context.Context) ([]*domain.RoleChangeRequest, error) {
	return uc.requests.ListPending(ctx)
}

// ResolveRequest approves or rejects a pending role-change request.
// Approval also applies the new role; either outcome clears the user's
// pending flag once no pending requests remain.
func (uc *adminUsecase) ResolveRequest(ctx context.Context, id string, approve bool) error {
	req, err := uc.requests.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("lookup request: %w", err)
	}
	if req == nil {
		return domain.ErrNotFound
	}
	if req.Status != domain.RequestPending {
		return domain.ErrRequestResolved
	}

	status := domain.RequestRejected
	if approve {
		if err := uc.users.UpdateRole(ctx, req.UserID, req.RequestedRole); err != nil {
			return fmt.Errorf("update role: %w", err)
		}
		status = domain.RequestApproved
	}
	if err := uc.requests.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("update request: %w", err)
	}

	pending, err := uc.requests.HasPending(ctx, req.UserID)
	if err != nil {
		return fmt.Errorf("check pending: %w", err)
	}
	if !pending {
		if err := uc.users.SetPendingRequest(ctx, req.UserID, false); err != nil {
			return fmt.Errorf("clear pending flag: %w", err)
		}
	}
	return nil
}

func (uc *adminUsecase) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	byStatus, err := uc.tickets.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count tickets: %w", err)
	}
	byRole, err := uc.users.CountByRole(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	return &domain.DashboardStats{TicketsByStatus: byStatus, UsersByRole: byRole}, nil
}
