package http

import (
	"errors"
	"net/http"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/ha0himanshuarora/QuickDesk/internal/domain"
)

// respondError maps domain errors to HTTP statuses; anything unmapped is an
// internal error and gets logged.
func respondError(c *ginext.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, ginext.H{"error": domain.ErrNotFound.Error()})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, ginext.H{"error": domain.ErrForbidden.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ginext.H{"error": domain.ErrInvalidCredentials.Error()})
	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrCategoryExists),
		errors.Is(err, domain.ErrRequestPending),
		errors.Is(err, domain.ErrRequestResolved),
		errors.Is(err, domain.ErrTicketAssigned):
		c.JSON(http.StatusConflict, ginext.H{"error": err.Error()})
	case errors.Is(err, domain.ErrEmptyContent),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrInvalidVote),
		errors.Is(err, domain.ErrInvalidPriority),
		errors.Is(err, domain.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, ginext.H{"error": err.Error()})
	default:
		zlog.Logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		c.JSON(http.StatusInternalServerError, ginext.H{"error": "internal error"})
	}
}
