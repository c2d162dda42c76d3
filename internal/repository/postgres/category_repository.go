package postgres

import (
	"context"
	"database/sql"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/ha0himanshuarora/QuickDesk/internal/domain"
)

type categoryRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCategoryRepository(db *dbpg.DB, strategy retry.Strategy) domain.CategoryRepository {
	return &categoryRepository{db: db, strategy: strategy}
}

func (r *categoryRepository) Create(ctx context.Context, c *domain.Category) error {
	return r.db.Master.QueryRowContext(ctx, `
		INSERT INTO ticket_categories (id, name)
		VALUES ($1, $2)
		RETURNING created_at
	`, c.ID, c.Name).Scan(&c.CreatedAt)
}

func (r *categoryRepository) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	c := &domain.Category{}
	row := r.db.Master.QueryRowContext(ctx, `
		SELECT id, name, created_at FROM ticket_categories WHERE name = $1
	`, name)
	if err := row.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, `
		SELECT id, name, created_at FROM ticket_categories ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*domain.Category
	for rows.Next() {
		c := &domain.Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `
		DELETE FROM ticket_categories WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
