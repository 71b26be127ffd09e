package v1

import (
	"next-form-backend/config"
	_ "next-form-backend/docs" // registers the OpenAPI document
	"next-form-backend/internal/delivery/http/middleware"
	"next-form-backend/internal/domain"
	"next-form-backend/pkg/apperror"
	"next-form-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	HealthUC  domain.HealthUsecase
	ContactUC domain.ContactUsecase
	Metrics   *metrics.Metrics
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	// Global Middlewares
	// Liveness routes answer any origin; CORS must be first!
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins, "/", "/healthy"))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	r.NoRoute(func(c *gin.Context) {
		c.Error(apperror.NotFound("Not Found"))
	})
	r.NoMethod(func(c *gin.Context) {
		c.Error(apperror.MethodNotAllowed("Method Not Allowed"))
	})

	NewSystemHandler(r, deps.HealthUC)
	NewContactHandler(r.Group("/api"), deps.ContactUC)

	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
