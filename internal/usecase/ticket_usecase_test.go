package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha0himanshuarora/QuickDesk/internal/domain"
)

func newTicketService(tickets *fakeTicketRepo, cache TicketCache) domain.TicketService {
	comments := &fakeCommentRepo{tickets: tickets}
	return NewTicketUsecase(tickets, comments, &fakeSearcher{}, cache)
}

func createTicket(t *testing.T, svc domain.TicketService, subject, createdBy, category string, up, down int) *domain.Ticket {
	t.Helper()
	tk, err := svc.Create(context.Background(), &domain.Ticket{
		Subject:     subject,
		Description: "description of " + subject,
		Category:    category,
		CreatedBy:   createdBy,
	})
	require.NoError(t, err)
	tk.Upvotes, tk.Downvotes = up, down
	return tk
}

func TestCreateTicketDefaults(t *testing.T) {
	tickets := newFakeTicketRepo()
	svc := newTicketService(tickets, nil)

	tk, err := svc.Create(context.Background(), &domain.Ticket{
		Subject:     "vpn drops",
		Description: "every hour",
		Category:    "Technical Support",
		CreatedBy:   "user@example.com",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tk.ID)
	assert.Equal(t, domain.StatusOpen, tk.Status)
	assert.Equal(t, domain.PriorityMedium, tk.Priority)
	assert.Empty(t, tk.Agent)
}

func TestCreateTicketValidation(t *testing.T) {
	svc := newTicketService(newFakeTicketRepo(), nil)

	_, err := svc.Create(context.Background(), &domain.Ticket{Subject: " ", Description: "x"})
	assert.ErrorIs(t, err, domain.ErrEmptyContent)

	_, err = svc.Create(context.Background(), &domain.Ticket{
		Subject: "s", Description: "d", Priority: domain.TicketPriority("Urgent"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPriority)
}

func TestGetTicketBuildsThread(t *testing.T) {
	tickets := newFakeTicketRepo()
	comments := &fakeCommentRepo{tickets: tickets}
	svc := NewTicketUsecase(tickets, comments, &fakeSearcher{}, nil)
	commentSvc := NewCommentUsecase(tickets, comments)
	seedTicket(t, tickets, "user@example.com")

	c1 := postReply(t, commentSvc, "t1", nil, "user@example.com", "c1")
	postReply(t, commentSvc, "t1", &c1.ID, "agent@example.com", "c2")

	tk, err := svc.Get(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, 2, tk.CommentCount)
	require.Len(t, tk.Comments, 1)
	assert.Len(t, tk.Comments[0].Replies, 1)

	_, err = svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAssignTicket(t *testing.T) {
	tickets := newFakeTicketRepo()
	svc := newTicketService(tickets, nil)
	tk := createTicket(t, svc, "broken login", "user@example.com", "Technical Support", 0, 0)

	require.NoError(t, svc.Assign(context.Background(), tk.ID, "agent@example.com"))

	// re-assigning to the same agent is fine, another agent is rejected
	require.NoError(t, svc.Assign(context.Background(), tk.ID, "agent@example.com"))
	err := svc.Assign(context.Background(), tk.ID, "rival@example.com")
	assert.ErrorIs(t, err, domain.ErrTicketAssigned)

	assert.ErrorIs(t, svc.Assign(context.Background(), "missing", "agent@example.com"), domain.ErrNotFound)
}

func TestChangeStatus(t *testing.T) {
	tickets := newFakeTicketRepo()
	svc := newTicketService(tickets, nil)
	tk := createTicket(t, svc, "broken login", "user@example.com", "Technical Support", 0, 0)
	require.NoError(t, svc.Assign(context.Background(), tk.ID, "agent@example.com"))

	// only the assigned agent may move the ticket
	err := svc.ChangeStatus(context.Background(), tk.ID, domain.StatusInProgress, "rival@example.com")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	require.NoError(t, svc.ChangeStatus(context.Background(), tk.ID, domain.StatusInProgress, "agent@example.com"))

	err = svc.ChangeStatus(context.Background(), tk.ID, domain.StatusClosed, "agent@example.com")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	require.NoError(t, svc.ChangeStatus(context.Background(), tk.ID, domain.StatusResolved, "agent@example.com"))
	require.NoError(t, svc.ChangeStatus(context.Background(), tk.ID, domain.StatusClosed, "agent@example.com"))

	got, err := svc.Get(context.Background(), tk.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusClosed, got.Status)
}

func seedCommunity(t *testing.T, tickets *fakeTicketRepo) {
	t.Helper()
	seed := []struct {
		subject, createdBy, category string
		up, down                     int
	}{
		{"email outage", "alice@example.com", "Technical Support", 10, 1},
		{"invoice question", "bob@example.com", "Billing", 2, 0},
		{"printer jam", "alice@example.com", "Technical Support", 5, 0},
		{"my own ticket", "viewer@example.com", "Billing", 100, 0},
		{"slack is slow", "bob@example.com", "Technical Support", 1, 4},
	}
	for _, s := range seed {
		tk := &domain.Ticket{
			Subject:     s.subject,
			Description: "description of " + s.subject,
			Category:    s.category,
			Status:      domain.StatusResolved,
			Priority:    domain.PriorityMedium,
			CreatedBy:   s.createdBy,
			Upvotes:     s.up,
			Downvotes:   s.down,
		}
		tk.ID = s.subject
		require.NoError(t, tickets.Create(context.Background(), tk))
	}
}

func subjects(tickets []*domain.Ticket) []string {
	out := make([]string, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, t.Subject)
	}
	return out
}

func TestCommunityExcludesOwnAndSortsByVotes(t *testing.T) {
	tickets := newFakeTicketRepo()
	svc := newTicketService(tickets, nil)
	seedCommunity(t, tickets)

	page, err := svc.Community(context.Background(), "viewer@example.com", domain.CommunityQuery{})
	require.NoError(t, err)
	assert.Equal(t, 4, page.Total)
	// default sort: net votes, descending; viewer's own 100-vote ticket absent
	assert.Equal(t, []string{"email outage", "printer jam", "invoice question", "slack is slow"}, subjects(page.Tickets))
}

func TestCommunityFilters(t *testing.T) {
	tickets := newFakeTicketRepo()
	svc := newTicketService(tickets, nil)
	seedCommunity(t, tickets)

	page, err := svc.Community(context.Background(), "viewer@example.com", domain.CommunityQuery{Category: "Billing"})
	require.NoError(t, err)
	assert.Equal(t, []string{"invoice question"}, subjects(page.Tickets))

	page, err = svc.Community(context.Background(), "viewer@example.com", domain.CommunityQuery{Search: "PRINTER"})
	require.NoError(t, err)
	assert.Equal(t, []string{"printer jam"}, subjects(page.Tickets))

	// "All" behaves like no category filter
	page, err = svc.Community(context.Background(), "viewer@example.com", domain.CommunityQuery{Category: "All"})
	require.NoError(t, err)
	assert.Equal(t, 4, page.Total)
}

func TestCommunitySortKeys(t *testing.T) {
	tickets := newFakeTicketRepo()
	svc := newTicketService(tickets, nil)
	seedCommunity(t, tickets)

	page, err := svc.Community(context.Background(), "viewer@example.com", domain.CommunityQuery{SortKey: "subject", SortDir: "asc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"email outage", "invoice question", "printer jam", "slack is slow"}, subjects(page.Tickets))

	page, err = svc.Community(context.Background(), "viewer@example.com", domain.CommunityQuery{SortKey: "created", SortDir: "desc"})
	require.NoError(t, err)
	assert.Equal(t, "slack is slow", page.Tickets[0].Subject)
}

func TestCommunityPagination(t *testing.T) {
	tickets := newFakeTicketRepo()
	svc := newTicketService(tickets, nil)
	seedCommunity(t, tickets)

	page, err := svc.Community(context.Background(), "viewer@example.com", domain.CommunityQuery{Page: 2, PerPage: 3})
	require.NoError(t, err)
	assert.Equal(t, 4, page.Total)
	assert.Equal(t, 2, page.PageCount)
	assert.Len(t, page.Tickets, 1)

	// a page past the end is empty, not an error
	page, err = svc.Community(context.Background(), "viewer@example.com", domain.CommunityQuery{Page: 9, PerPage: 3})
	require.NoError(t, err)
	assert.Empty(t, page.Tickets)
}

func TestCommunityUsesCache(t *testing.T) {
	tickets := newFakeTicketRepo()
	cache := &fakeCache{}
	svc := newTicketService(tickets, cache)
	seedCommunity(t, tickets)

	_, err := svc.Community(context.Background(), "viewer@example.com", domain.CommunityQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	_, err = svc.Community(context.Background(), "viewer@example.com", domain.CommunityQuery{})
	require.NoError(t, err)
	// second read served from cache
	assert.Equal(t, 1, cache.sets)

	_, err = svc.Create(context.Background(), &domain.Ticket{
		Subject: "new", Description: "d", Category: "Billing", CreatedBy: "x@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, cache.invalidates)
}

func TestSearchDelegatesToSearcher(t *testing.T) {
	tickets := newFakeTicketRepo()
	searcher := &fakeSearcher{results: []*domain.Ticket{{ID: "t9", Subject: "hit"}}}
	svc := NewTicketUsecase(tickets, &fakeCommentRepo{tickets: tickets}, searcher, nil)

	got, err := svc.Search(context.Background(), "outage", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, "outage", searcher.query)
	assert.Len(t, got, 1)

	_, err = svc.Search(context.Background(), "  ", 10, 0)
	assert.ErrorIs(t, err, domain.ErrEmptyContent)
}
