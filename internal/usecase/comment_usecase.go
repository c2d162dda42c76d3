package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ha0himanshuarora/QuickDesk/internal/domain"
)

type commentUsecase struct {
	tickets  domain.TicketRepository
	comments domain.CommentRepository
}

func NewCommentUsecase(tickets domain.TicketRepository, comments domain.CommentRepository) domain.CommentService {
	return &commentUsecase{tickets: tickets, comments: comments}
}

// PostReply appends a new comment to the ticket's flat collection. A
// parentID pointing at a comment of another ticket is stored as-is and
// later orphan-promoted by the tree builder (lenient-parent policy).
func (uc *commentUsecase) PostReply(ctx context.Context, ticketID string, parentID *string, author, content string) (*domain.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domain.ErrEmptyContent
	}

	ticket, err := uc.tickets.FindByID(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("load ticket: %w", err)
	}
	if ticket == nil {
		return nil, domain.ErrNotFound
	}

	c := &domain.Comment{
		ID:       uuid.NewString(),
		TicketID: ticketID,
		ParentID: parentID,
		Author:   author,
		Content:  content,
	}
	if err := uc.comments.Append(ctx, c); err != nil {
		return nil, fmt.Errorf("append comment: %w", err)
	}
	return c, nil
}

func (uc *commentUsecase) GetThread(ctx context.Context, ticketID string) ([]*domain.Comment, error) {
	flat, err := uc.comments.ListByTicket(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return domain.BuildCommentTree(flat), nil
}

// DeleteThread removes a comment together with its full descendant subtree,
// computed from the latest flat snapshot and deleted as an id set in one
// transaction. Deleting an unknown comment is a no-op. Only the comment's
// author or an admin may delete it.
func (uc *commentUsecase) DeleteThread(ctx context.Context, ticketID, commentID, actor string, actorRole domain.Role) error {
	flat, err := uc.comments.ListByTicket(ctx, ticketID)
	if err != nil {
		return fmt.Errorf("list comments: %w", err)
	}

	subtree := domain.CollectSubtree(flat, commentID)
	if len(subtree) == 0 {
		return nil
	}

	target := subtree[0]
	if target.Author != actor && actorRole != domain.RoleAdmin {
		return domain.ErrForbidden
	}

	ids := make([]string, 0, len(subtree))
	for _, c := range subtree {
		ids = append(ids, c.ID)
	}
	if err := uc.comments.DeleteByIDs(ctx, ticketID, ids); err != nil {
		return fmt.Errorf("delete subtree: %w", err)
	}
	return nil
}
