package services

import (
	"context"
	"sort"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/pickwise/laptop-advisor-backend/internal/platform/logger"
	"github.com/pickwise/laptop-advisor-backend/internal/types"
)

// DefaultRecommendLimit bounds result count when the caller does not say.
const DefaultRecommendLimit = 5

// Scoring starts at baseScore and adds importance-weighted component scores.
// Component values are normalized to [0,1] against the caps below, so a
// weight reads directly as "how much this usage type cares".
const (
	baseScore = 1.0

	ramNormGB       = 32.0
	storageNormGB   = 1000.0
	batteryNormHrs  = 15.0
	weightNormKG    = 3.0
	screenMatchBand = 1.5 // inches either side of a target that still passes

	// Thresholds for explanation tags.
	headroomTagMin = 0.25
	batteryTagHrs  = 10.0
	lightTagKG     = 1.4
	screenTagBand  = 0.8
)

// scoreWeights is the importance table for one usage type, carried over from
// the per-usage tuning of the source dataset.
type scoreWeights struct {
	price     float64
	ram       float64
	storage   float64
	processor float64
	gpu       float64
	battery   float64
	weight    float64
}

type usageProfile struct {
	processorKeywords []string
	weights           scoreWeights
}

var usageProfiles = map[types.UsageType]usageProfile{
	types.UsageGaming: {
		processorKeywords: []string{"i7", "i9", "ryzen 7", "ryzen 9"},
		weights:           scoreWeights{gpu: 0.4, processor: 0.3, ram: 0.2, battery: 0.0, price: 0.1},
	},
	types.UsageBusiness: {
		processorKeywords: []string{"i5", "i7", "ryzen 5", "ryzen 7"},
		weights:           scoreWeights{battery: 0.4, weight: 0.3, processor: 0.2, ram: 0.1},
	},
	types.UsageStudent: {
		processorKeywords: []string{"i3", "i5", "ryzen 3", "ryzen 5"},
		weights:           scoreWeights{price: 0.4, battery: 0.3, weight: 0.2, storage: 0.1},
	},
	types.UsageCreative: {
		processorKeywords: []string{"i7", "i9", "ryzen 7", "ryzen 9", "m2", "m3"},
		weights:           scoreWeights{gpu: 0.3, ram: 0.2, processor: 0.2, storage: 0.1, price: 0.2},
	},
	types.UsageProgramming: {
		processorKeywords: []string{"i5", "i7", "ryzen 5", "ryzen 7"},
		weights:           scoreWeights{processor: 0.4, ram: 0.3, battery: 0.2, storage: 0.1},
	},
	types.UsageGeneral: {
		processorKeywords: []string{"i5", "i7", "ryzen 5"},
		weights:           scoreWeights{price: 0.4, battery: 0.3, processor: 0.2, ram: 0.1},
	},
}

// Recommend filters the catalog by every set preference field, scores the
// survivors and returns at most limit results, best first. A pure function:
// identical inputs always produce the identical ordered output. An empty
// result is a valid "no match" outcome, never an error.
func Recommend(prefs types.PreferenceRecord, laptops []types.Laptop, limit int) []types.Recommendation {
	if limit <= 0 {
		limit = DefaultRecommendLimit
	}

	profile := usageProfiles[types.UsageGeneral]
	if prefs.Usage != nil {
		if p, ok := usageProfiles[*prefs.Usage]; ok {
			profile = p
		}
	}

	results := make([]types.Recommendation, 0, limit)
	for _, l := range laptops {
		if !matchesHardConstraints(prefs, l) {
			continue
		}
		score, matches := scoreLaptop(prefs, profile, l)
		results = append(results, types.Recommendation{Laptop: l, Score: score, Matches: matches})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		if results[i].Laptop.Price != results[j].Laptop.Price {
			return results[i].Laptop.Price < results[j].Laptop.Price
		}
		return results[i].Laptop.Model < results[j].Laptop.Model
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// matchesHardConstraints applies every set field as a hard filter. No partial
// credit: one violated constraint excludes the laptop.
func matchesHardConstraints(prefs types.PreferenceRecord, l types.Laptop) bool {
	if ceiling, ok := prefs.Budget.Ceiling(); ok && l.Price > ceiling {
		return false
	}
	if floor, ok := prefs.Budget.Floor(); ok && l.Price < floor {
		return false
	}
	if prefs.Usage != nil && l.Usage != *prefs.Usage {
		return false
	}
	if !prefs.AcceptsBrand(l.Brand) {
		return false
	}
	if prefs.MinRAMGB != nil && l.RAMGB < *prefs.MinRAMGB {
		return false
	}
	if prefs.MinStorageGB != nil && l.StorageGB < *prefs.MinStorageGB {
		return false
	}
	if prefs.ScreenInches != nil {
		diff := l.ScreenInches - *prefs.ScreenInches
		if diff < -screenMatchBand || diff > screenMatchBand {
			return false
		}
	}
	if prefs.PreferGPU != nil && *prefs.PreferGPU && !l.HasDedicatedGPU() {
		return false
	}
	if prefs.OS != nil && !strings.EqualFold(strings.TrimSpace(l.OS), *prefs.OS) &&
		!strings.Contains(strings.ToLower(l.OS), strings.ToLower(*prefs.OS)) {
		return false
	}
	return true
}

func scoreLaptop(prefs types.PreferenceRecord, profile usageProfile, l types.Laptop) (float64, []string) {
	score := baseScore
	var matches []string

	if ceiling, ok := prefs.Budget.Ceiling(); ok && ceiling > 0 {
		headroom := 1 - l.Price/ceiling
		if headroom < 0 {
			headroom = 0
		}
		score += profile.weights.price * headroom
		if headroom >= headroomTagMin {
			matches = append(matches, types.MatchBudgetHeadroom)
		}
	}

	ramScore := clamp01(float64(l.RAMGB) / ramNormGB)
	score += profile.weights.ram * ramScore
	if l.RAMGB >= 16 {
		matches = append(matches, types.MatchAmpleMemory)
	}

	score += profile.weights.storage * clamp01(float64(l.StorageGB)/storageNormGB)

	if processorMatches(profile.processorKeywords, l.Processor) {
		score += profile.weights.processor
		matches = append(matches, types.MatchStrongProcessor)
	}

	if l.HasDedicatedGPU() {
		score += profile.weights.gpu
		matches = append(matches, types.MatchDedicatedGPU)
	}

	if l.BatteryHours > 0 {
		score += profile.weights.battery * clamp01(l.BatteryHours/batteryNormHrs)
		if l.BatteryHours >= batteryTagHrs {
			matches = append(matches, types.MatchLongBattery)
		}
	}

	if l.WeightKG > 0 {
		score += profile.weights.weight * (1 - clamp01(l.WeightKG/weightNormKG))
		if l.WeightKG <= lightTagKG {
			matches = append(matches, types.MatchLightweight)
		}
	}

	if prefs.ScreenInches != nil {
		diff := l.ScreenInches - *prefs.ScreenInches
		if diff >= -screenTagBand && diff <= screenTagBand {
			matches = append(matches, types.MatchScreenSize)
		}
	}

	if len(prefs.Brands) > 0 && prefs.AcceptsBrand(l.Brand) {
		matches = append(matches, types.MatchPreferredBrand)
	}

	return score, matches
}

func processorMatches(keywords []string, processor string) bool {
	proc := strings.ToLower(processor)
	for _, kw := range keywords {
		if strings.Contains(proc, kw) {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// RecommendationService wraps the pure engine with the shared catalog
// snapshot for callers that do not bring their own laptop list.
type RecommendationService interface {
	Recommend(ctx context.Context, prefs types.PreferenceRecord, limit int) []types.Recommendation
}

type recommendationService struct {
	catalog CatalogService
	log     *logger.Logger
}

func NewRecommendationService(catalog CatalogService, baseLog *logger.Logger) RecommendationService {
	return &recommendationService{
		catalog: catalog,
		log:     baseLog.With("service", "RecommendationService"),
	}
}

func (rs *recommendationService) Recommend(ctx context.Context, prefs types.PreferenceRecord, limit int) []types.Recommendation {
	_, span := otel.Tracer("recommendation").Start(ctx, "recommend")
	defer span.End()

	laptops := rs.catalog.List()
	results := Recommend(prefs, laptops, limit)

	span.SetAttributes(
		attribute.Int("catalog.size", len(laptops)),
		attribute.Int("results.count", len(results)),
	)
	rs.log.Debug("Computed recommendations", "catalog", len(laptops), "results", len(results))
	return results
}
