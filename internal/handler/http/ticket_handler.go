package http

import (
	"net/http"
	"strconv"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/ha0himanshuarora/QuickDesk/internal/domain"
	"github.com/ha0himanshuarora/QuickDesk/internal/dto"
	"github.com/ha0himanshuarora/QuickDesk/internal/handler/middleware"
)

type TicketHandler struct {
	tickets domain.TicketService
	votes   domain.VoteService
}

func NewTicketHandler(tickets domain.TicketService, votes domain.VoteService) *TicketHandler {
	return &TicketHandler{tickets: tickets, votes: votes}
}

func (h *TicketHandler) RegisterRoutes(engine *ginext.Engine, authMW ginext.HandlerFunc) {
	group := engine.Group("/tickets", authMW)
	group.POST("", h.CreateTicket)
	group.GET("/my", h.ListMine)
	group.GET("/community", h.Community)
	group.GET("/search", h.SearchTickets)
	group.GET("/:id", h.GetTicket)
	group.POST("/:id/votes", h.CastVote)

	agents := group.Group("", middleware.RequireRole(domain.RoleSupportAgent))
	agents.GET("/queue", h.ListQueue)
	agents.PATCH("/:id/status", h.ChangeStatus)
	agents.PATCH("/:id/assign", h.AssignToMe)
}

// CreateTicket POST /tickets
func (h *TicketHandler) CreateTicket(c *ginext.Context) {
	var req dto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("invalid ticket request")
		c.JSON(http.StatusBadRequest, ginext.H{"error": "invalid request"})
		return
	}

	ticket, err := h.tickets.Create(c, &domain.Ticket{
		Subject:     req.Subject,
		Description: req.Description,
		Category:    req.Category,
		Priority:    domain.TicketPriority(req.Priority),
		CreatedBy:   middleware.ActorEmail(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mapToTicketResponse(ticket))
}

// GetTicket GET /tickets/:id
func (h *TicketHandler) GetTicket(c *ginext.Context) {
	ticket, err := h.tickets.Get(c, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapToTicketResponse(ticket))
}

// ListMine GET /tickets/my
func (h *TicketHandler) ListMine(c *ginext.Context) {
	tickets, err := h.tickets.ListMine(c, middleware.ActorEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapToTicketResponses(tickets))
}

// ListQueue GET /tickets/queue
func (h *TicketHandler) ListQueue(c *ginext.Context) {
	tickets, err := h.tickets.ListQueue(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapToTicketResponses(tickets))
}

// Community GET /tickets/community?category=&search=&sort=&dir=&page=&per_page=
func (h *TicketHandler) Community(c *ginext.Context) {
	query := domain.CommunityQuery{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		SortKey:  c.Query("sort"),
		SortDir:  c.Query("dir"),
		Page:     intQuery(c, "page", 1),
		PerPage:  intQuery(c, "per_page", 10),
	}

	page, err := h.tickets.Community(c, middleware.ActorEmail(c), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CommunityPageResponse{
		Tickets:   mapToTicketResponses(page.Tickets),
		Total:     page.Total,
		Page:      page.Page,
		PerPage:   page.PerPage,
		PageCount: page.PageCount,
	})
}

// SearchTickets GET /tickets/search?query=&limit=&offset=
func (h *TicketHandler) SearchTickets(c *ginext.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, ginext.H{"error": "query cannot be empty"})
		return
	}

	tickets, err := h.tickets.Search(c, query, intQuery(c, "limit", 10), intQuery(c, "offset", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapToTicketResponses(tickets))
}

// ChangeStatus PATCH /tickets/:id/status
func (h *TicketHandler) ChangeStatus(c *ginext.Context) {
	var req dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ginext.H{"error": "invalid request"})
		return
	}

	err := h.tickets.ChangeStatus(c, c.Param("id"), domain.TicketStatus(req.Status), middleware.ActorEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AssignToMe PATCH /tickets/:id/assign
func (h *TicketHandler) AssignToMe(c *ginext.Context) {
	if err := h.tickets.Assign(c, c.Param("id"), middleware.ActorEmail(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CastVote POST /tickets/:id/votes
func (h *TicketHandler) CastVote(c *ginext.Context) {
	var req dto.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ginext.H{"error": "invalid request"})
		return
	}

	err := h.votes.Cast(c, c.Param("id"), middleware.ActorID(c), domain.VoteType(req.Type))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func intQuery(c *ginext.Context, name string, fallback int) int {
	if raw := c.Query(name); raw != "" {
		if val, err := strconv.Atoi(raw); err == nil {
			return val
		}
	}
	return fallback
}

func mapToTicketResponse(t *domain.Ticket) *dto.TicketResponse {
	if t == nil {
		return nil
	}
	return &dto.TicketResponse{
		ID:           t.ID,
		Subject:      t.Subject,
		Description:  t.Description,
		Category:     t.Category,
		Status:       string(t.Status),
		Priority:     string(t.Priority),
		CreatedBy:    t.CreatedBy,
		Agent:        t.Agent,
		Upvotes:      t.Upvotes,
		Downvotes:    t.Downvotes,
		CommentCount: t.CommentCount,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
		Comments:     mapToCommentResponses(t.Comments),
	}
}

func mapToTicketResponses(list []*domain.Ticket) []*dto.TicketResponse {
	out := make([]*dto.TicketResponse, 0, len(list))
	for _, t := range list {
		out = append(out, mapToTicketResponse(t))
	}
	return out
}
