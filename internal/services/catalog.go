package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/pickwise/laptop-advisor-backend/internal/platform/logger"
	"github.com/pickwise/laptop-advisor-backend/internal/repos"
	"github.com/pickwise/laptop-advisor-backend/internal/types"
)

// UsageTypeInfo is the browse-endpoint projection of one usage category.
type UsageTypeInfo struct {
	Value       types.UsageType `json:"value"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
}

// CatalogService owns the in-memory catalog snapshot. The snapshot is
// replaced as a whole on Reload and shared read-only by every session and
// recommendation call in between.
type CatalogService interface {
	Reload(ctx context.Context) (int, error)
	List() []types.Laptop
	Get(id uuid.UUID) (types.Laptop, bool)
	Brands() []string
	UsageTypes() []UsageTypeInfo
}

type catalogService struct {
	repo repos.LaptopRepo
	log  *logger.Logger

	mu       sync.RWMutex
	snapshot []types.Laptop
	byID     map[uuid.UUID]types.Laptop
}

func NewCatalogService(repo repos.LaptopRepo, baseLog *logger.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  baseLog.With("service", "CatalogService"),
		byID: map[uuid.UUID]types.Laptop{},
	}
}

func (cs *catalogService) Reload(ctx context.Context) (int, error) {
	laptops, err := cs.repo.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	byID := make(map[uuid.UUID]types.Laptop, len(laptops))
	for _, l := range laptops {
		byID[l.ID] = l
	}

	cs.mu.Lock()
	cs.snapshot = laptops
	cs.byID = byID
	cs.mu.Unlock()

	cs.log.Info("Catalog snapshot loaded", "laptops", len(laptops))
	return len(laptops), nil
}

// List returns the current snapshot. Callers must treat it as read-only.
func (cs *catalogService) List() []types.Laptop {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.snapshot
}

func (cs *catalogService) Get(id uuid.UUID) (types.Laptop, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	l, ok := cs.byID[id]
	return l, ok
}

func (cs *catalogService) Brands() []string {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	seen := map[string]bool{}
	var brands []string
	for _, l := range cs.snapshot {
		b := strings.TrimSpace(l.Brand)
		if b == "" || seen[b] {
			continue
		}
		seen[b] = true
		brands = append(brands, b)
	}
	sort.Strings(brands)
	return brands
}

func (cs *catalogService) UsageTypes() []UsageTypeInfo {
	all := types.AllUsageTypes()
	infos := make([]UsageTypeInfo, 0, len(all))
	for _, u := range all {
		infos = append(infos, UsageTypeInfo{
			Value:       u,
			Name:        titleCase(string(u)),
			Description: u.Description(),
		})
	}
	return infos
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
