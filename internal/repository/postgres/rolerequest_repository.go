package postgres

import (
	"context"
	"database/sql"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/ha0himanshuarora/QuickDesk/internal/domain"
)

type roleRequestRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRoleRequestRepository(db *dbpg.DB, strategy retry.Strategy) domain.RoleRequestRepository {
	return &roleRequestRepository{db: db, strategy: strategy}
}

func (r *roleRequestRepository) Create(ctx context.Context, req *domain.RoleChangeRequest) error {
	return r.db.Master.QueryRowContext(ctx, `
		INSERT INTO role_change_requests (id, user_id, user_email, current_role, requested_role, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING requested_at
	`, req.ID, req.UserID, req.UserEmail, req.CurrentRole, req.RequestedRole, req.Status).Scan(&req.RequestedAt)
}

func (r *roleRequestRepository) FindByID(ctx context.Context, id string) (*domain.RoleChangeRequest, error) {
	req := &domain.RoleChangeRequest{}
	row := r.db.Master.QueryRowContext(ctx, `
		SELECT id, user_id, user_email, current_role, requested_role, status, requested_at
		FROM role_change_requests
		WHERE id = $1
	`, id)
	err := row.Scan(&req.ID, &req.UserID, &req.UserEmail, &req.CurrentRole, &req.RequestedRole, &req.Status, &req.RequestedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return req, nil
}

func (r *roleRequestRepository) ListPending(ctx context.Context) ([]*domain.RoleChangeRequest, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, `
		SELECT id, user_id, user_email, current_role, requested_role, status, requested_at
		FROM role_change_requests
		WHERE status = $1
		ORDER BY requested_at
	`, domain.RequestPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*domain.RoleChangeRequest
	for rows.Next() {
		req := &domain.RoleChangeRequest{}
		if err := rows.Scan(&req.ID, &req.UserID, &req.UserEmail, &req.CurrentRole, &req.RequestedRole, &req.Status, &req.RequestedAt); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *roleRequestRepository) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `
		UPDATE role_change_requests SET status = $2 WHERE id = $1
	`, id, status)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *roleRequestRepository) HasPending(ctx context.Context, userID string) (bool, error) {
	var count int
	err := r.db.Master.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM role_change_requests WHERE user_id = $1 AND status = $2
	`, userID, domain.RequestPending).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
