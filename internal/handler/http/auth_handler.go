package http

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/ha0himanshuarora/QuickDesk/internal/domain"
	"github.com/ha0himanshuarora/QuickDesk/internal/dto"
	"github.com/ha0himanshuarora/QuickDesk/internal/handler/middleware"
)

type AuthHandler struct {
	service domain.AuthService
}

func NewAuthHandler(service domain.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) RegisterRoutes(engine *ginext.Engine, authMW ginext.HandlerFunc) {
	group := engine.Group("/auth")
	group.POST("/register", h.Register)
	group.POST("/login", h.Login)

	authed := group.Group("", authMW)
	authed.GET("/profile", h.Profile)
	authed.POST("/role-requests", h.RequestRoleChange)
}

// Register POST /auth/register
func (h *AuthHandler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("invalid register request")
		c.JSON(http.StatusBadRequest, ginext.H{"error": "invalid request"})
		return
	}

	user, err := h.service.Register(c, req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mapToUserResponse(user))
}

// Login POST /auth/login
func (h *AuthHandler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ginext.H{"error": "invalid request"})
		return
	}

	token, user, err := h.service.Login(c, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TokenResponse{Token: token, User: mapToUserResponse(user)})
}

// Profile GET /auth/profile
func (h *AuthHandler) Profile(c *ginext.Context) {
	user, err := h.service.Profile(c, middleware.ActorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapToUserResponse(user))
}

// RequestRoleChange POST /auth/role-requests
func (h *AuthHandler) RequestRoleChange(c *ginext.Context) {
	var req dto.RoleChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ginext.H{"error": "invalid request"})
		return
	}

	created, err := h.service.RequestRoleChange(c, middleware.ActorID(c), domain.Role(req.RequestedRole))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mapToRoleRequestResponse(created))
}

func mapToUserResponse(u *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:                u.ID,
		Name:              u.Name,
		Email:             u.Email,
		Role:              string(u.Role),
		HasPendingRequest: u.HasPendingRequest,
		CreatedAt:         u.CreatedAt,
	}
}

func mapToRoleRequestResponse(r *domain.RoleChangeRequest) dto.RoleRequestResponse {
	return dto.RoleRequestResponse{
		ID:            r.ID,
		UserEmail:     r.UserEmail,
		CurrentRole:   string(r.CurrentRole),
		RequestedRole: string(r.RequestedRole),
		Status:        string(r.Status),
		RequestedAt:   r.RequestedAt,
	}
}
