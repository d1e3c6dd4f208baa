package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reelmates/reelmates-BE/internal/db"
	"github.com/reelmates/reelmates-BE/internal/notification"
)

/*
 Trigger ingress. The Firestore trigger relay posts document snapshots here:
 one endpoint per watched path. Payload field maps are loosely typed, so
 they are narrowed to typed snapshots at this boundary; the handlers always
 answer 200 once the firing is accepted, since per-recipient failures are
 handled (and logged) inside the dispatcher.
*/

type userUpdatedRequest struct {
	Before map[string]any `json:"before"`
	After  map[string]any `json:"after"`
}

type triggerResponse struct {
	Notified int `json:"notified"`
}

// userUpdated handles one document-change firing on users/{id}. A single
// update can carry a follower-list change, an invite change, or neither.
func (server *Server) userUpdated(ctx *gin.Context) {
	userID := ctx.Param("id")

	req := new(userUpdatedRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	before := notification.SnapshotFromFields(req.Before)
	after := notification.SnapshotFromFields(req.After)

	notified := server.dispatcher.HandleUserUpdated(context.Background(), userID, before, after)

	ctx.JSON(http.StatusOK, triggerResponse{Notified: notified})
}

type reviewCreatedRequest struct {
	ID      string `json:"id"`
	UserID  string `json:"userId" binding:"required"`
	MovieID int64  `json:"movieId"`
}

// reviewCreated handles one document-create firing on reviews/{id}.
func (server *Server) reviewCreated(ctx *gin.Context) {
	req := new(reviewCreatedRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	review := db.Review{
		ID:       req.ID,
		AuthorID: req.UserID,
		MovieID:  req.MovieID,
	}

	notified := server.dispatcher.HandleReviewCreated(context.Background(), review)

	ctx.JSON(http.StatusOK, triggerResponse{Notified: notified})
}
