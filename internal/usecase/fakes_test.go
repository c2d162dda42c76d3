package usecase

import (
	"context"
	"time"

	"github.com/ha0himanshuarora/QuickDesk/internal/domain"
)

// In-memory repositories backing the usecase tests. All of them keep
// insertion order so listings are deterministic.

type fakeTicketRepo struct {
	tickets []*domain.Ticket
	now     time.Time
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (r *fakeTicketRepo) tick() time.Time {
	r.now = r.now.Add(time.Second)
	return r.now
}

func (r *fakeTicketRepo) Create(_ context.Context, t *domain.Ticket) error {
	t.CreatedAt = r.tick()
	t.UpdatedAt = t.CreatedAt
	cp := *t
	r.tickets = append(r.tickets, &cp)
	return nil
}

func (r *fakeTicketRepo) find(id string) *domain.Ticket {
	for _, t := range r.tickets {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (r *fakeTicketRepo) FindByID(_ context.Context, id string) (*domain.Ticket, error) {
	t := r.find(id)
	if t == nil {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTicketRepo) List(_ context.Context) ([]*domain.Ticket, error) {
	out := make([]*domain.Ticket, 0, len(r.tickets))
	for _, t := range r.tickets {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeTicketRepo) ListByCreator(_ context.Context, email string) ([]*domain.Ticket, error) {
	var out []*domain.Ticket
	for _, t := range r.tickets {
		if t.CreatedBy == email {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeTicketRepo) UpdateStatus(_ context.Context, id string, status domain.TicketStatus) error {
	t := r.find(id)
	if t == nil {
		return domain.ErrNotFound
	}
	t.Status = status
	t.UpdatedAt = r.tick()
	return nil
}

func (r *fakeTicketRepo) UpdateAgent(_ context.Context, id, agent string) error {
	t := r.find(id)
	if t == nil {
		return domain.ErrNotFound
	}
	t.Agent = agent
	t.UpdatedAt = r.tick()
	return nil
}

func (r *fakeTicketRepo) Search(_ context.Context, _ string, _, _ int) ([]*domain.Ticket, error) {
	return nil, nil
}

func (r *fakeTicketRepo) CountByStatus(_ context.Context) (map[domain.TicketStatus]int, error) {
	out := map[domain.TicketStatus]int{}
	for _, t := range r.tickets {
		out[t.Status]++
	}
	return out, nil
}

type fakeCommentRepo struct {
	comments []*domain.Comment
	tickets  *fakeTicketRepo
}

func (r *fakeCommentRepo) ListByTicket(_ context.Context, ticketID string) ([]*domain.Comment, error) {
	var out []*domain.Comment
	for _, c := range r.comments {
		if c.TicketID == ticketID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) Append(_ context.Context, c *domain.Comment) error {
	c.CreatedAt = r.tickets.tick()
	cp := *c
	r.comments = append(r.comments, &cp)
	if t := r.tickets.find(c.TicketID); t != nil {
		t.UpdatedAt = c.CreatedAt
	}
	return nil
}

func (r *fakeCommentRepo) DeleteByIDs(_ context.Context, ticketID string, ids []string) error {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := r.comments[:0]
	for _, c := range r.comments {
		if c.TicketID == ticketID && drop[c.ID] {
			continue
		}
		kept = append(kept, c)
	}
	r.comments = kept
	if t := r.tickets.find(ticketID); t != nil {
		t.UpdatedAt = r.tickets.tick()
	}
	return nil
}

type fakeUserRepo struct {
	users []*domain.User
}

func (r *fakeUserRepo) Create(_ context.Context, u *domain.User) error {
	cp := *u
	r.users = append(r.users, &cp)
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdateRole(_ context.Context, id string, role domain.Role) error {
	for _, u := range r.users {
		if u.ID == id {
			u.Role = role
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeUserRepo) SetPendingRequest(_ context.Context, id string, pending bool) error {
	for _, u := range r.users {
		if u.ID == id {
			u.HasPendingRequest = pending
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeUserRepo) CountByRole(_ context.Context) (map[domain.Role]int, error) {
	out := map[domain.Role]int{}
	for _, u := range r.users {
		out[u.Role]++
	}
	return out, nil
}

type fakeCategoryRepo struct {
	categories []*domain.Category
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *domain.Category) error {
	cp := *c
	r.categories = append(r.categories, &cp)
	return nil
}

func (r *fakeCategoryRepo) FindByName(_ context.Context, name string) (*domain.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]*domain.Category, error) {
	return append([]*domain.Category(nil), r.categories...), nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	for i, c := range r.categories {
		if c.ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeRoleRequestRepo struct {
	requests []*domain.RoleChangeRequest
}

func (r *fakeRoleRequestRepo) Create(_ context.Context, req *domain.RoleChangeRequest) error {
	cp := *req
	r.requests = append(r.requests, &cp)
	return nil
}

func (r *fakeRoleRequestRepo) FindByID(_ context.Context, id string) (*domain.RoleChangeRequest, error) {
	for _, req := range r.requests {
		if req.ID == id {
			cp := *req
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeRoleRequestRepo) ListPending(_ context.Context) ([]*domain.RoleChangeRequest, error) {
	var out []*domain.RoleChangeRequest
	for _, req := range r.requests {
		if req.Status == domain.RequestPending {
			cp := *req
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeRoleRequestRepo) UpdateStatus(_ context.Context, id string, status domain.RequestStatus) error {
	for _, req := range r.requests {
		if req.ID == id {
			req.Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeRoleRequestRepo) HasPending(_ context.Context, userID string) (bool, error) {
	for _, req := range r.requests {
		if req.UserID == userID && req.Status == domain.RequestPending {
			return true, nil
		}
	}
	return false, nil
}

type fakeVoteRepo struct {
	votes   map[string]domain.VoteType // ticketID/userID
	tickets *fakeTicketRepo
}

func newFakeVoteRepo(tickets *fakeTicketRepo) *fakeVoteRepo {
	return &fakeVoteRepo{votes: map[string]domain.VoteType{}, tickets: tickets}
}

func voteKey(ticketID, userID string) string { return ticketID + "/" + userID }

func (r *fakeVoteRepo) Find(_ context.Context, ticketID, userID string) (*domain.Vote, error) {
	vt, ok := r.votes[voteKey(ticketID, userID)]
	if !ok {
		return nil, nil
	}
	return &domain.Vote{TicketID: ticketID, UserID: userID, Type: vt}, nil
}

func (r *fakeVoteRepo) Apply(_ context.Context, ticketID, userID string, prev, next *domain.VoteType) error {
	t := r.tickets.find(ticketID)
	if t == nil {
		return domain.ErrNotFound
	}
	bump := func(vt domain.VoteType, delta int) {
		if vt == domain.VoteUp {
			t.Upvotes += delta
		} else {
			t.Downvotes += delta
		}
	}
	if prev != nil {
		bump(*prev, -1)
		delete(r.votes, voteKey(ticketID, userID))
	}
	if next != nil {
		bump(*next, 1)
		r.votes[voteKey(ticketID, userID)] = *next
	}
	return nil
}

type fakeCache struct {
	tickets     []*domain.Ticket
	hit         bool
	sets        int
	invalidates int
}

func (c *fakeCache) Get(_ context.Context) ([]*domain.Ticket, bool) {
	if c.hit {
		return c.tickets, true
	}
	return nil, false
}

func (c *fakeCache) Set(_ context.Context, tickets []*domain.Ticket) {
	c.tickets = tickets
	c.hit = true
	c.sets++
}

func (c *fakeCache) Invalidate(_ context.Context) {
	c.tickets = nil
	c.hit = false
	c.invalidates++
}

type fakeSearcher struct {
	results []*domain.Ticket
	query   string
}

func (s *fakeSearcher) SearchTickets(_ context.Context, query string, _, _ int) ([]*domain.Ticket, error) {
	s.query = query
	return s.results, nil
}
