package app

import (
	"github.com/pickwise/laptop-advisor-backend/internal/platform/logger"
	"github.com/pickwise/laptop-advisor-backend/internal/services"
)

type Services struct {
	Catalog     services.CatalogService
	Recommender services.RecommendationService
	Sessions    services.SessionService
}

func wireServices(log *logger.Logger, cfg Config, reposet Repos) Services {
	catalog := services.NewCatalogService(reposet.Laptop, log)
	recommender := services.NewRecommendationService(catalog, log)
	sessions := services.NewSessionService(recommender, cfg.RecommendLimit, log)
	return Services{
		Catalog:     catalog,
		Recommender: recommender,
		Sessions:    sessions,
	}
}
