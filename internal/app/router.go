package app

import (
	httpx "github.com/pickwise/laptop-advisor-backend/internal/http"
	"github.com/pickwise/laptop-advisor-backend/internal/platform/logger"
)

func wireRouter(cfg Config, log *logger.Logger, handlerset Handlers) *httpx.Server {
	return httpx.NewServer(httpx.RouterConfig{
		ServiceName:      cfg.ServiceName,
		Log:              log,
		ChatHandler:      handlerset.Chat,
		RecommendHandler: handlerset.Recommend,
		CatalogHandler:   handlerset.Catalog,
		HealthHandler:    handlerset.Health,
	})
}
