package db

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/pickwise/laptop-advisor-backend/internal/platform/envutil"
	"github.com/pickwise/laptop-advisor-backend/internal/platform/logger"
	"github.com/pickwise/laptop-advisor-backend/internal/repos"
	"github.com/pickwise/laptop-advisor-backend/internal/types"
)

//go:embed seed_laptops.json
var seedLaptopsJSON []byte

// SeedIfEmpty loads the sample catalog into an empty laptop table. A custom
// dataset can be supplied via CATALOG_SEED_PATH; the embedded sample is the
// fallback. Returns the number of rows inserted (0 when already populated).
func SeedIfEmpty(ctx context.Context, repo repos.LaptopRepo, log *logger.Logger) (int, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count laptops: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	raw := seedLaptopsJSON
	if path := strings.TrimSpace(envutil.String("CATALOG_SEED_PATH", "")); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return 0, fmt.Errorf("read catalog seed %s: %w", path, err)
		}
		raw = b
	}

	var laptops []types.Laptop
	if err := json.Unmarshal(raw, &laptops); err != nil {
		return 0, fmt.Errorf("decode catalog seed: %w", err)
	}
	if len(laptops) == 0 {
		log.Warn("Catalog seed contained no laptops")
		return 0, nil
	}
	for i := range laptops {
		if laptops[i].ID == uuid.Nil {
			laptops[i].ID = uuid.New()
		}
	}
	if err := repo.ReplaceAll(ctx, laptops); err != nil {
		return 0, fmt.Errorf("insert catalog seed: %w", err)
	}
	log.Info("Seeded catalog", "laptops", len(laptops))
	return len(laptops), nil
}
