package api

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var (
	ErrInternalServer     = errors.New("internal server error")
	ErrMissingQueryParams = errors.New("watchlistId, userId and invitedBy are required")
)

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}
