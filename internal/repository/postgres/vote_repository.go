package postgres

import (
	"context"
	"database/sql"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/ha0himanshuarora/QuickDesk/internal/domain"
)

type voteRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewVoteRepository(db *dbpg.DB, strategy retry.Strategy) domain.VoteRepository {
	return &voteRepository{db: db, strategy: strategy}
}

func (r *voteRepository) Find(ctx context.Context, ticketID, userID string) (*domain.Vote, error) {
	v := &domain.Vote{}
	row := r.db.Master.QueryRowContext(ctx, `
		SELECT ticket_id, user_id, vote_type, created_at
		FROM ticket_votes
		WHERE ticket_id = $1 AND user_id = $2
	`, ticketID, userID)
	if err := row.Scan(&v.TicketID, &v.UserID, &v.Type, &v.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return v, nil
}

// Apply moves the vote row and the ticket counters in a single
// transaction: prev=nil records, next=nil retracts, both set switches.
func (r *voteRepository) Apply(ctx context.Context, ticketID, userID string, prev, next *domain.VoteType) error {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	switch {
	case prev == nil && next != nil:
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO ticket_votes (ticket_id, user_id, vote_type) VALUES ($1, $2, $3)
		`, ticketID, userID, *next); err != nil {
			return err
		}
		if err := bumpCounter(ctx, tx, ticketID, *next, +1); err != nil {
			return err
		}

	case prev != nil && next == nil:
		if _, err := tx.ExecContext(ctx, `
			DELETE FROM ticket_votes WHERE ticket_id = $1 AND user_id = $2
		`, ticketID, userID); err != nil {
			return err
		}
		if err := bumpCounter(ctx, tx, ticketID, *prev, -1); err != nil {
			return err
		}

	case prev != nil && next != nil:
		if _, err := tx.ExecContext(ctx, `
			UPDATE ticket_votes SET vote_type = $3 WHERE ticket_id = $1 AND user_id = $2
		`, ticketID, userID, *next); err != nil {
			return err
		}
		if err := bumpCounter(ctx, tx, ticketID, *prev, -1); err != nil {
			return err
		}
		if err := bumpCounter(ctx, tx, ticketID, *next, +1); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		zlog.Logger.Error().Err(err).Str("ticket_id", ticketID).Msg("vote commit failed")
		return err
	}
	return nil
}

func bumpCounter(ctx context.Context, tx *sql.Tx, ticketID string, vt domain.VoteType, delta int) error {
	column := "upvotes"
	if vt == domain.VoteDown {
		column = "downvotes"
	}
	_, err := tx.ExecContext(ctx, `
		UPDATE tickets SET `+column+` = `+column+` + $2 WHERE id = $1
	`, ticketID, delta)
	return err
}
