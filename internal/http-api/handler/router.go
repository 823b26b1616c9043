package handler

import (
	"net/http"

	"labvote/internal/http-api/middleware"
	"labvote/internal/http-api/repository"
	"labvote/internal/http-api/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter wires repositories, services and handlers over the given
// database and returns the ready-to-serve engine.
func NewRouter(db *gorm.DB, corsOrigins []string) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins: corsOrigins,
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", middleware.RequestIDHeader},
	}))

	weekRepo := repository.NewWeekRepository(db)
	presentationRepo := repository.NewPresentationRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	weekHandler := NewWeekHandler(service.NewWeekService(weekRepo, voteRepo, ratingRepo, commentRepo))
	presentationHandler := NewPresentationHandler(service.NewPresentationService(presentationRepo, weekRepo, ratingRepo, commentRepo))
	voteHandler := NewVoteHandler(service.NewVoteService(voteRepo, presentationRepo, ratingRepo, commentRepo))
	ratingHandler := NewRatingHandler(service.NewRatingService(ratingRepo, presentationRepo, commentRepo))
	commentHandler := NewCommentHandler(service.NewCommentService(commentRepo, presentationRepo))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "lab-voting-backend", "status": "running"})
	})

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	weekHandler.RegisterRoutes(api)
	presentationHandler.RegisterRoutes(api)
	voteHandler.RegisterRoutes(api)
	ratingHandler.RegisterRoutes(api)
	commentHandler.RegisterRoutes(api)

	return r
}
