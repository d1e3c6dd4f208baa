package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/reelmates/reelmates-BE/internal/db"
	"github.com/reelmates/reelmates-BE/internal/notification"
	"github.com/reelmates/reelmates-BE/internal/util"
)

type Server struct {
	router     *gin.Engine
	dbStore    db.Store
	dispatcher *notification.Dispatcher
	config     *util.Config
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(store db.Store, dispatcher *notification.Dispatcher, config *util.Config) *Server {
	server := &Server{
		dbStore:    store,
		dispatcher: dispatcher,
		config:     config,
	}

	server.setupRouter()
	return server
}

// setupRouter configures the HTTP server routes.
func (server *Server) setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins: server.config.AllowedOrigins,
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Origin", "Content-Length", "Content-Type"},
		MaxAge:       time.Hour,
	}))

	v1 := router.Group("/v1")

	v1.GET("/watchlists/shared", server.getSharedWatchlist)

	v1.POST("/triggers/users/:id/updated", server.userUpdated)
	v1.POST("/triggers/reviews", server.reviewCreated)

	server.router = router
	return router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}
