package v1

import (
	"net/http"

	"salon-relay-backend/config"
	"salon-relay-backend/internal/delivery/http/middleware"
	"salon-relay-backend/internal/delivery/http/response"
	"salon-relay-backend/internal/domain"
	"salon-relay-backend/internal/usecase"
	"salon-relay-backend/web"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	SubmissionUC domain.SubmissionUsecase
	HealthUC     usecase.HealthUsecase
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware())
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.ErrorHandler())

	// Booking page + static assets
	web.Register(r)

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, deps.HealthUC.Check(c.Request.Context()))
	})

	// Public routes
	NewSubmissionHandler(api, deps.SubmissionUC)

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
