package http

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/ha0himanshuarora/QuickDesk/internal/domain"
	"github.com/ha0himanshuarora/QuickDesk/internal/dto"
	"github.com/ha0himanshuarora/QuickDesk/internal/handler/middleware"
)

type AdminHandler struct {
	service domain.AdminService
}

func NewAdminHandler(service domain.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

func (h *AdminHandler) RegisterRoutes(engine *ginext.Engine, authMW ginext.HandlerFunc) {
	// every authenticated user needs the category list for the new-ticket form
	engine.GET("/categories", authMW, h.ListCategories)

	group := engine.Group("/admin", authMW, middleware.RequireRole(domain.RoleAdmin))
	group.POST("/categories", h.AddCategory)
	group.DELETE("/categories/:id", h.DeleteCategory)
	group.GET("/role-requests", h.PendingRequests)
	group.POST("/role-requests/:id/approve", h.ApproveRequest)
	group.POST("/role-requests/:id/reject", h.RejectRequest)
	group.GET("/stats", h.Stats)
}

// ListCategories GET /categories
func (h *AdminHandler) ListCategories(c *ginext.Context) {
	categories, err := h.service.ListCategories(c)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		out = append(out, dto.CategoryResponse{ID: cat.ID, Name: cat.Name})
	}
	c.JSON(http.StatusOK, out)
}

// AddCategory POST /admin/categories
func (h *AdminHandler) AddCategory(c *ginext.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ginext.H{"error": "invalid request"})
		return
	}

	cat, err := h.service.AddCategory(c, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CategoryResponse{ID: cat.ID, Name: cat.Name})
}

// DeleteCategory DELETE /admin/categories/:id
func (h *AdminHandler) DeleteCategory(c *ginext.Context) {
	if err := h.service.DeleteCategory(c, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PendingRequests GET /admin/role-requests
func (h *AdminHandler) PendingRequests(c *ginext.Context) {
	requests, err := h.service.PendingRequests(c)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.RoleRequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, mapToRoleRequestResponse(r))
	}
	c.JSON(http.StatusOK, out)
}

// ApproveRequest POST /admin/role-requests/:id/approve
func (h *AdminHandler) ApproveRequest(c *ginext.Context) {
	h.resolve(c, true)
}

// RejectRequest POST /admin/role-requests/:id/reject
func (h *AdminHandler) RejectRequest(c *ginext.Context) {
	h.resolve(c, false)
}

func (h *AdminHandler) resolve(c *ginext.Context, approve bool) {
	if err := h.service.ResolveRequest(c, c.Param("id"), approve); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Stats GET /admin/stats
func (h *AdminHandler) Stats(c *ginext.Context) {
	stats, err := h.service.Stats(c)
	if err != nil {
		respondError(c, err)
		return
	}

	out := dto.StatsResponse{
		TicketsByStatus: make(map[string]int, len(stats.TicketsByStatus)),
		UsersByRole:     make(map[string]int, len(stats.UsersByRole)),
	}
	for status, n := range stats.TicketsByStatus {
		out.TicketsByStatus[string(status)] = n
	}
	for role, n := range stats.UsersByRole {
		out.UsersByRole[string(role)] = n
	}
	c.JSON(http.StatusOK, out)
}
