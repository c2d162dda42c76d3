package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/ha0himanshuarora/QuickDesk/internal/domain"
)

// TicketCache caches the full ticket listing that backs the community view.
// A nil cache disables caching.
type TicketCache interface {
	Get(ctx context.Context) ([]*domain.Ticket, bool)
	Set(ctx context.Context, tickets []*domain.Ticket)
	Invalidate(ctx context.Context)
}

// TicketSearcher is the full-text search port; the postgres adapter lives
// in internal/infrastructure/search.
type TicketSearcher interface {
	SearchTickets(ctx context.Context, query string, limit, offset int) ([]*domain.Ticket, error)
}

type ticketUsecase struct {
	tickets  domain.TicketRepository
	comments domain.CommentRepository
	searcher TicketSearcher
	cache    TicketCache
}

func NewTicketUsecase(tickets domain.TicketRepository, comments domain.CommentRepository, searcher TicketSearcher, cache TicketCache) domain.TicketService {
	return &ticketUsecase{tickets: tickets, comments: comments, searcher: searcher, cache: cache}
}

func (uc *ticketUsecase) Create(ctx context.Context, t *domain.Ticket) (*domain.Ticket, error) {
	if strings.TrimSpace(t.Subject) == "" || strings.TrimSpace(t.Description) == "" {
		return nil, domain.ErrEmptyContent
	}
	if t.Priority == "" {
		t.Priority = domain.PriorityMedium
	}
	if !t.Priority.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPriority, t.Priority)
	}

	t.ID = uuid.NewString()
	t.Status = domain.StatusOpen
	t.Agent = ""
	t.Upvotes, t.Downvotes = 0, 0

	if err := uc.tickets.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}
	uc.invalidate(ctx)
	return t, nil
}

// Get loads a ticket with its comment thread already built.
func (uc *ticketUsecase) Get(ctx context.Context, id string) (*domain.Ticket, error) {
	t, err := uc.tickets.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load ticket: %w", err)
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}

	flat, err := uc.comments.ListByTicket(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	t.Comments = domain.BuildCommentTree(flat)
	t.CommentCount = len(flat)
	return t, nil
}

func (uc *ticketUsecase) ListMine(ctx context.Context, email string) ([]*domain.Ticket, error) {
	return uc.tickets.ListByCreator(ctx, email)
}

func (uc *ticketUsecase) ListQueue(ctx context.Context) ([]*domain.Ticket, error) {
	return uc.tickets.List(ctx)
}

func (uc *ticketUsecase) Assign(ctx context.Context, id, agent string) error {
	t, err := uc.tickets.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load ticket: %w", err)
	}
	if t == nil {
		return domain.ErrNotFound
	}
	if t.Agent != "" && t.Agent != agent {
		return domain.ErrTicketAssigned
	}

	if err := uc.tickets.UpdateAgent(ctx, id, agent); err != nil {
		return fmt.Errorf("assign ticket: %w", err)
	}
	uc.invalidate(ctx)
	return nil
}

// ChangeStatus applies the transition table; only the assigned agent may
// move a ticket.
func (uc *ticketUsecase) ChangeStatus(ctx context.Context, id string, next domain.TicketStatus, agent string) error {
	if !next.Valid() {
		return domain.ErrInvalidTransition
	}

	t, err := uc.tickets.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load ticket: %w", err)
	}
	if t == nil {
		return domain.ErrNotFound
	}
	if t.Agent != agent {
		return domain.ErrForbidden
	}
	if !t.Status.CanTransitionTo(next) {
		return domain.ErrInvalidTransition
	}

	if err := uc.tickets.UpdateStatus(ctx, id, next); err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	uc.invalidate(ctx)
	return nil
}

// Community builds the knowledge-base listing: everyone's tickets except
// the viewer's own, filtered, sorted and paginated in memory.
func (uc *ticketUsecase) Community(ctx context.Context, viewer string, q domain.CommunityQuery) (*domain.CommunityPage, error) {
	all, err := uc.listAll(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(q.Search))
	filtered := make([]*domain.Ticket, 0, len(all))
	for _, t := range all {
		if t.CreatedBy == viewer {
			continue
		}
		if q.Category != "" && q.Category != "All" && t.Category != q.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Subject), search) &&
			!strings.Contains(strings.ToLower(t.Description), search) {
			continue
		}
		filtered = append(filtered, t)
	}

	sortTickets(filtered, q.SortKey, q.SortDir)

	perPage := q.PerPage
	if perPage <= 0 {
		perPage = 10
	}
	page := q.Page
	if page <= 0 {
		page = 1
	}
	pageCount := (len(filtered) + perPage - 1) / perPage

	start := (page - 1) * perPage
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + perPage
	if end > len(filtered) {
		end = len(filtered)
	}

	return &domain.CommunityPage{
		Tickets:   filtered[start:end],
		Total:     len(filtered),
		Page:      page,
		PerPage:   perPage,
		PageCount: pageCount,
	}, nil
}

func (uc *ticketUsecase) Search(ctx context.Context, query string, limit, offset int) ([]*domain.Ticket, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.ErrEmptyContent
	}
	return uc.searcher.SearchTickets(ctx, query, limit, offset)
}

func (uc *ticketUsecase) listAll(ctx context.Context) ([]*domain.Ticket, error) {
	if uc.cache != nil {
		if tickets, ok := uc.cache.Get(ctx); ok {
			return tickets, nil
		}
	}
	tickets, err := uc.tickets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	if uc.cache != nil {
		uc.cache.Set(ctx, tickets)
	}
	return tickets, nil
}

func (uc *ticketUsecase) invalidate(ctx context.Context) {
	if uc.cache != nil {
		uc.cache.Invalidate(ctx)
	}
}

func sortTickets(tickets []*domain.Ticket, key, dir string) {
	desc := dir != "asc"
	less := func(a, b *domain.Ticket) bool { return a.Score() < b.Score() }

	switch key {
	case "comments":
		less = func(a, b *domain.Ticket) bool { return a.CommentCount < b.CommentCount }
	case "subject":
		less = func(a, b *domain.Ticket) bool {
			return strings.ToLower(a.Subject) < strings.ToLower(b.Subject)
		}
	case "status":
		less = func(a, b *domain.Ticket) bool { return a.Status < b.Status }
	case "created":
		less = func(a, b *domain.Ticket) bool { return a.CreatedAt.Before(b.CreatedAt) }
	}

	sort.SliceStable(tickets, func(i, j int) bool {
		if desc {
			return less(tickets[j], tickets[i])
		}
		return less(tickets[i], tickets[j])
	})
}
