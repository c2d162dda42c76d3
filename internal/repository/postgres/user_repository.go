package postgres

import (
	"context"
	"database/sql"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/ha0himanshuarora/QuickDesk/internal/domain"
)

type userRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepository(db *dbpg.DB, strategy retry.Strategy) domain.UserRepository {
	return &userRepository{db: db, strategy: strategy}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	return r.db.Master.QueryRowContext(ctx, `
		INSERT INTO users (id, name, email, password_hash, role, has_pending_request)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`, u.ID, u.Name, u.Email, u.PasswordHash, u.Role, u.HasPendingRequest).Scan(&u.CreatedAt)
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findBy(ctx, "id", id)
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findBy(ctx, "email", email)
}

func (r *userRepository) findBy(ctx context.Context, column, value string) (*domain.User, error) {
	query := `
		SELECT id, name, email, password_hash, role, has_pending_request, created_at
		FROM users
		WHERE ` + column + ` = $1
	`

	u := &domain.User{}
	row := r.db.Master.QueryRowContext(ctx, query, value)
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.HasPendingRequest, &u.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		zlog.Logger.Error().Err(err).Str(column, value).Msg("find user failed")
		return nil, err
	}
	return u, nil
}

func (r *userRepository) UpdateRole(ctx context.Context, id string, role domain.Role) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `
		UPDATE users SET role = $2 WHERE id = $1
	`, id, role)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *userRepository) SetPendingRequest(ctx context.Context, id string, pending bool) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `
		UPDATE users SET has_pending_request = $2 WHERE id = $1
	`, id, pending)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *userRepository) CountByRole(ctx context.Context) (map[domain.Role]int, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, `
		SELECT role, COUNT(*) FROM users GROUP BY role
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[domain.Role]int)
	for rows.Next() {
		var role domain.Role
		var count int
		if err := rows.Scan(&role, &count); err != nil {
			return nil, err
		}
		out[role] = count
	}
	return out, rows.Err()
}
