package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reelmates/reelmates-BE/internal/db"
	"github.com/rs/zerolog/log"
)

type sharedWatchlistResponse struct {
	Watchlist *db.Watchlist `json:"watchlist"`
	User      *db.User      `json:"user"`
	SharedBy  *db.User      `json:"sharedBy"`
}

// getSharedWatchlist serves the public projection of a shared watchlist: the
// watchlist itself, its owner, and the user who shared the link.
func (server *Server) getSharedWatchlist(ctx *gin.Context) {
	watchlistID := ctx.Query("watchlistId")
	userID := ctx.Query("userId")
	invitedBy := ctx.Query("invitedBy")

	if watchlistID == "" || userID == "" || invitedBy == "" {
		ctx.JSON(http.StatusBadRequest, errorResponse(ErrMissingQueryParams))
		return
	}

	watchlist, err := server.dbStore.GetWatchlist(context.Background(), userID, watchlistID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(fmt.Errorf("watchlist %s not found", watchlistID)))
			return
		}

		log.Err(err).Msg("failed to get watchlist")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	if watchlist.IsPrivate {
		ctx.JSON(http.StatusForbidden, errorResponse(errors.New("this watchlist is private")))
		return
	}

	user, err := server.getPublicUser(ctx, userID)
	if err != nil {
		return
	}

	sharedBy, err := server.getPublicUser(ctx, invitedBy)
	if err != nil {
		return
	}

	ctx.JSON(http.StatusOK, sharedWatchlistResponse{
		Watchlist: watchlist,
		User:      user,
		SharedBy:  sharedBy,
	})
}

// getPublicUser looks a user up and writes the error response itself when
// the lookup fails.
func (server *Server) getPublicUser(ctx *gin.Context, userID string) (*db.User, error) {
	user, err := server.dbStore.GetUser(context.Background(), userID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(fmt.Errorf("user %s not found", userID)))
			return nil, err
		}

		log.Err(err).Msg("failed to get user")
		ctx.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return nil, err
	}

	return user, nil
}
