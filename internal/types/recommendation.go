package types

// Match tags attached to a recommendation so the chat layer can explain a
// result without the engine producing prose itself.
const (
	MatchBudgetHeadroom  = "budget_headroom"
	MatchAmpleMemory     = "ample_memory"
	MatchStrongProcessor = "strong_processor"
	MatchDedicatedGPU    = "dedicated_gpu"
	MatchLongBattery     = "long_battery"
	MatchLightweight     = "lightweight"
	MatchScreenSize      = "screen_size_match"
	MatchPreferredBrand  = "preferred_brand"
)

// Recommendation is one ranked entry: the laptop, its score and the soft
// criteria it satisfied. Built fresh on every recommend call.
type Recommendation struct {
	Laptop  Laptop   `json:"laptop"`
	Score   float64  `json:"score"`
	Matches []string `json:"matches,omitempty"`
}
