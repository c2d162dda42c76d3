package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/ha0himanshuarora/QuickDesk/internal/domain"
)

const ticketColumns = `
	t.id, t.subject, t.description, t.category, t.status, t.priority,
	t.created_by, t.agent, t.upvotes, t.downvotes,
	(SELECT COUNT(*) FROM comments c WHERE c.ticket_id = t.id) AS comment_count,
	t.created_at, t.updated_at
`

type ticketRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTicketRepository(db *dbpg.DB, strategy retry.Strategy) domain.TicketRepository {
	return &ticketRepository{db: db, strategy: strategy}
}

func (r *ticketRepository) Create(ctx context.Context, t *domain.Ticket) error {
	query := `
		INSERT INTO tickets (id, subject, description, category, status, priority, created_by, agent, upvotes, downvotes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`
	return r.db.Master.QueryRowContext(ctx, query,
		t.ID,
		t.Subject,
		t.Description,
		t.Category,
		t.Status,
		t.Priority,
		t.CreatedBy,
		t.Agent,
		t.Upvotes,
		t.Downvotes,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
}

func (r *ticketRepository) FindByID(ctx context.Context, id string) (*domain.Ticket, error) {
	query := fmt.Sprintf(`SELECT %s FROM tickets t WHERE t.id = $1`, ticketColumns)

	row := r.db.Master.QueryRowContext(ctx, query, id)
	t, err := scanTicket(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		zlog.Logger.Error().Err(err).Str("ticket_id", id).Msg("FindByID failed")
		return nil, err
	}
	return t, nil
}

func (r *ticketRepository) List(ctx context.Context) ([]*domain.Ticket, error) {
	query := fmt.Sprintf(`SELECT %s FROM tickets t ORDER BY t.created_at DESC`, ticketColumns)
	return r.queryTickets(ctx, query)
}

func (r *ticketRepository) ListByCreator(ctx context.Context, email string) ([]*domain.Ticket, error) {
	query := fmt.Sprintf(`SELECT %s FROM tickets t WHERE t.created_by = $1 ORDER BY t.created_at DESC`, ticketColumns)
	return r.queryTickets(ctx, query, email)
}

func (r *ticketRepository) UpdateStatus(ctx context.Context, id string, status domain.TicketStatus) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `
		UPDATE tickets SET status = $2, updated_at = now() WHERE id = $1
	`, id, status)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *ticketRepository) UpdateAgent(ctx context.Context, id, agent string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `
		UPDATE tickets SET agent = $2, updated_at = now() WHERE id = $1
	`, id, agent)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *ticketRepository) Search(ctx context.Context, query string, limit, offset int) ([]*domain.Ticket, error) {
	q := fmt.Sprintf(`
		SELECT %s
		FROM tickets t
		WHERE t.search_tsv @@ plainto_tsquery('english', $1)
		ORDER BY t.created_at DESC
		LIMIT $2 OFFSET $3
	`, ticketColumns)
	return r.queryTickets(ctx, q, query, limit, offset)
}

func (r *ticketRepository) CountByStatus(ctx context.Context) (map[domain.TicketStatus]int, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, `
		SELECT status, COUNT(*) FROM tickets GROUP BY status
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[domain.TicketStatus]int)
	for rows.Next() {
		var status domain.TicketStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		out[status] = count
	}
	return out, rows.Err()
}

func (r *ticketRepository) queryTickets(ctx context.Context, query string, args ...interface{}) ([]*domain.Ticket, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickets []*domain.Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTicket(row rowScanner) (*domain.Ticket, error) {
	t := &domain.Ticket{}
	err := row.Scan(
		&t.ID,
		&t.Subject,
		&t.Description,
		&t.Category,
		&t.Status,
		&t.Priority,
		&t.CreatedBy,
		&t.Agent,
		&t.Upvotes,
		&t.Downvotes,
		&t.CommentCount,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
