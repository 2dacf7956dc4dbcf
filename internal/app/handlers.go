package app

import (
	httpH "github.com/pickwise/laptop-advisor-backend/internal/http/handlers"
)

type Handlers struct {
	Chat      *httpH.ChatHandler
	Recommend *httpH.RecommendHandler
	Catalog   *httpH.CatalogHandler
	Health    *httpH.HealthHandler
}

func wireHandlers(cfg Config, serviceset Services) Handlers {
	return Handlers{
		Chat:      httpH.NewChatHandler(serviceset.Sessions),
		Recommend: httpH.NewRecommendHandler(serviceset.Recommender, cfg.RecommendLimit),
		Catalog:   httpH.NewCatalogHandler(serviceset.Catalog),
		Health:    httpH.NewHealthHandler(cfg.Version),
	}
}
