package usecase

import (
	"context"
	"fmt"

	"github.com/ha0himanshuarora/QuickDesk/internal/domain"
)

type voteUsecase struct {
	tickets domain.TicketRepository
	votes   domain.VoteRepository
	cache   TicketCache
}

func NewVoteUsecase(tickets domain.TicketRepository, votes domain.VoteRepository, cache TicketCache) domain.VoteService {
	return &voteUsecase{tickets: tickets, votes: votes, cache: cache}
}

// Cast records, switches or retracts a user's vote. Repeating the current
// vote retracts it; voting the opposite way switches it. The vote row and
// the ticket counters move in one transaction.
func (uc *voteUsecase) Cast(ctx context.Context, ticketID, userID string, vote domain.VoteType) error {
	if !vote.Valid() {
		return domain.ErrInvalidVote
	}

	t, err := uc.tickets.FindByID(ctx, ticketID)
	if err != nil {
		return fmt.Errorf("load ticket: %w", err)
	}
	if t == nil {
		return domain.ErrNotFound
	}

	existing, err := uc.votes.Find(ctx, ticketID, userID)
	if err != nil {
		return fmt.Errorf("load vote: %w", err)
	}

	switch {
	case existing == nil:
		err = uc.votes.Apply(ctx, ticketID, userID, nil, &vote)
	case existing.Type == vote:
		err = uc.votes.Apply(ctx, ticketID, userID, &existing.Type, nil)
	default:
		err = uc.votes.Apply(ctx, ticketID, userID, &existing.Type, &vote)
	}
	if err != nil {
		return fmt.Errorf("apply vote: %w", err)
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx)
	}
	return nil
}
