package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/ha0himanshuarora/QuickDesk/internal/domain"
)

type commentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCommentRepository(db *dbpg.DB, strategy retry.Strategy) domain.CommentRepository {
	return &commentRepository{db: db, strategy: strategy}
}

// ListByTicket returns the flat, unordered comment collection of a ticket;
// ordering is a read-time concern of the tree builder.
func (r *commentRepository) ListByTicket(ctx context.Context, ticketID string) ([]*domain.Comment, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, `
		SELECT id, ticket_id, parent_id, author, content, created_at
		FROM comments
		WHERE ticket_id = $1
	`, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*domain.Comment
	for rows.Next() {
		c := &domain.Comment{}
		var parent sql.NullString
		if err := rows.Scan(&c.ID, &c.TicketID, &parent, &c.Author, &c.Content, &c.CreatedAt); err != nil {
			return nil, err
		}
		if parent.Valid {
			c.ParentID = &parent.String
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// Append inserts a comment and bumps the ticket's updated_at in the same
// transaction.
func (r *commentRepository) Append(ctx context.Context, c *domain.Comment) error {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO comments (id, ticket_id, parent_id, author, content)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`, c.ID, c.TicketID, c.ParentID, c.Author, c.Content).Scan(&c.CreatedAt)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("ticket_id", c.TicketID).Msg("append comment failed")
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE tickets SET updated_at = now() WHERE id = $1
	`, c.TicketID); err != nil {
		return err
	}

	return tx.Commit()
}

// DeleteByIDs removes the given comment ids from one ticket and bumps its
// updated_at, all in one transaction. Ids that no longer exist are skipped
// silently; matching is by id, never by value.
func (r *commentRepository) DeleteByIDs(ctx context.Context, ticketID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM comments WHERE ticket_id = $1 AND id = ANY($2)
	`, ticketID, pq.Array(ids)); err != nil {
		zlog.Logger.Error().Err(err).Str("ticket_id", ticketID).Msg("delete subtree failed")
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE tickets SET updated_at = now() WHERE id = $1
	`, ticketID); err != nil {
		return err
	}

	return tx.Commit()
}
