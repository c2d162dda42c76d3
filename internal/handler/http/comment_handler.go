package http

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/ha0himanshuarora/QuickDesk/internal/domain"
	"github.com/ha0himanshuarora/QuickDesk/internal/dto"
	"github.com/ha0himanshuarora/QuickDesk/internal/handler/middleware"
)

type CommentHandler struct {
	service domain.CommentService
}

func NewCommentHandler(service domain.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

func (h *CommentHandler) RegisterRoutes(engine *ginext.Engine, authMW ginext.HandlerFunc) {
	group := engine.Group("/tickets/:id/comments", authMW)
	group.POST("", h.PostReply)
	group.GET("", h.GetThread)
	group.DELETE("/:commentID", h.DeleteThread)
}

// PostReply POST /tickets/:id/comments
func (h *CommentHandler) PostReply(c *ginext.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("invalid comment request")
		c.JSON(http.StatusBadRequest, ginext.H{"error": "invalid request"})
		return
	}

	comment, err := h.service.PostReply(c, c.Param("id"), req.ParentID, middleware.ActorEmail(c), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mapToCommentResponse(comment))
}

// GetThread GET /tickets/:id/comments
func (h *CommentHandler) GetThread(c *ginext.Context) {
	tree, err := h.service.GetThread(c, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapToCommentResponses(tree))
}

// DeleteThread DELETE /tickets/:id/comments/:commentID
//
// Removes the comment and its whole reply subtree. Unknown comment ids are
// a no-op so a stale client does not see an error.
func (h *CommentHandler) DeleteThread(c *ginext.Context) {
	err := h.service.DeleteThread(c, c.Param("id"), c.Param("commentID"), middleware.ActorEmail(c), middleware.ActorRole(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func mapToCommentResponse(cm *domain.Comment) *dto.CommentResponse {
	if cm == nil {
		return nil
	}

	replies := make([]*dto.CommentResponse, 0, len(cm.Replies))
	for _, r := range cm.Replies {
		replies = append(replies, mapToCommentResponse(r))
	}

	return &dto.CommentResponse{
		ID:        cm.ID,
		ParentID:  cm.ParentID,
		Author:    cm.Author,
		Content:   cm.Content,
		CreatedAt: cm.CreatedAt,
		Replies:   replies,
	}
}

func mapToCommentResponses(list []*domain.Comment) []*dto.CommentResponse {
	out := make([]*dto.CommentResponse, 0, len(list))
	for _, cm := range list {
		out = append(out, mapToCommentResponse(cm))
	}
	return out
}
