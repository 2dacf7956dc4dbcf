package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/pickwise/laptop-advisor-backend/internal/http/handlers"
	httpMW "github.com/pickwise/laptop-advisor-backend/internal/http/middleware"
	"github.com/pickwise/laptop-advisor-backend/internal/platform/logger"
)

type RouterConfig struct {
	ServiceName string
	Log         *logger.Logger

	ChatHandler      *httpH.ChatHandler
	RecommendHandler *httpH.RecommendHandler
	CatalogHandler   *httpH.CatalogHandler
	HealthHandler    *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.CORS())
	r.Use(httpMW.RequestLogger(cfg.Log))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Conversational flow
		if cfg.ChatHandler != nil {
			api.POST("/chat", cfg.ChatHandler.Chat)
			api.POST("/conversations", cfg.ChatHandler.CreateConversation)
			api.GET("/conversations/:id", cfg.ChatHandler.GetConversation)
			api.POST("/conversations/:id/complete", cfg.ChatHandler.CompleteConversation)
			api.DELETE("/conversations/:id", cfg.ChatHandler.DeleteConversation)
		}

		// One-shot recommendations
		if cfg.RecommendHandler != nil {
			api.POST("/recommendations", cfg.RecommendHandler.Recommend)
		}

		// Catalog
		if cfg.CatalogHandler != nil {
			api.GET("/laptops", cfg.CatalogHandler.ListLaptops)
			api.GET("/laptops/:id", cfg.CatalogHandler.GetLaptop)
			api.GET("/brands", cfg.CatalogHandler.ListBrands)
			api.GET("/usage-types", cfg.CatalogHandler.ListUsageTypes)
			api.POST("/catalog/reload", cfg.CatalogHandler.ReloadCatalog)
		}
	}

	return r
}
