package app

import (
	"gorm.io/gorm"

	"github.com/pickwise/laptop-advisor-backend/internal/platform/logger"
	"github.com/pickwise/laptop-advisor-backend/internal/repos"
)

type Repos struct {
	Laptop repos.LaptopRepo
}

func wireRepos(gdb *gorm.DB, log *logger.Logger) Repos {
	return Repos{
		Laptop: repos.NewLaptopRepo(gdb, log),
	}
}
