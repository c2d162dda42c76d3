package search

import (
	"context"

	"github.com/ha0himanshuarora/QuickDesk/internal/domain"
)

type FullTextSearcher interface {
	SearchTickets(ctx context.Context, query string, limit, offset int) ([]*domain.Ticket, error)
}

// PostgresFullText adapts the ticket repository's tsvector search to the
// search port used by the ticket service.
type PostgresFullText struct {
	repo domain.TicketRepository
}

func NewPostgresFullText(repo domain.TicketRepository) *PostgresFullText {
	return &PostgresFullText{repo: repo}
}

func (f *PostgresFullText) SearchTickets(ctx context.Context, query string, limit, offset int) ([]*domain.Ticket, error) {
	return f.repo.Search(ctx, query, limit, offset)
}
