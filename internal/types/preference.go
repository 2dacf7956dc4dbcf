package types

import (
	"sort"
	"strings"
)

// BudgetTolerance is the band applied around a "target" budget ("around
// $1000"): anything within ±15% of the target is considered in budget.
const BudgetTolerance = 0.15

// BudgetPref holds either a hard maximum ("under $1500") or a target with an
// implied tolerance band ("around $1000"). Setting one clears the other.
type BudgetPref struct {
	Max    *float64 `json:"max,omitempty"`
	Target *float64 `json:"target,omitempty"`
}

func (b BudgetPref) IsSet() bool { return b.Max != nil || b.Target != nil }

// Ceiling returns the highest acceptable price.
func (b BudgetPref) Ceiling() (float64, bool) {
	if b.Max != nil {
		return *b.Max, true
	}
	if b.Target != nil {
		return *b.Target * (1 + BudgetTolerance), true
	}
	return 0, false
}

// Floor returns the lowest acceptable price. Only target budgets have one.
func (b BudgetPref) Floor() (float64, bool) {
	if b.Target != nil {
		return *b.Target * (1 - BudgetTolerance), true
	}
	return 0, false
}

// PreferenceRecord accumulates the constraints extracted from a conversation.
// Every field is independently optional: nil (or empty, for Brands) means
// unconstrained. Values are validated before they are ever stored, so a set
// field can be trusted by the recommendation engine.
type PreferenceRecord struct {
	Budget       BudgetPref `json:"budget"`
	Usage        *UsageType `json:"usage_type,omitempty"`
	Brands       []string   `json:"brands,omitempty"`
	MinRAMGB     *int       `json:"min_ram_gb,omitempty"`
	MinStorageGB *int       `json:"min_storage_gb,omitempty"`
	ScreenInches *float64   `json:"screen_inches,omitempty"`
	PreferGPU    *bool      `json:"prefer_gpu,omitempty"`
	OS           *string    `json:"os,omitempty"`
}

// Required slot names, in prompt-priority order.
const (
	FieldUsage  = "usage_type"
	FieldBudget = "budget"
)

// MissingRequired lists the required slots not yet set, usage before budget.
func (p PreferenceRecord) MissingRequired() []string {
	var missing []string
	if p.Usage == nil {
		missing = append(missing, FieldUsage)
	}
	if !p.Budget.IsSet() {
		missing = append(missing, FieldBudget)
	}
	return missing
}

// Ready reports whether enough is known to recommend.
func (p PreferenceRecord) Ready() bool { return len(p.MissingRequired()) == 0 }

// Clone returns a deep copy so callers can merge without aliasing.
func (p PreferenceRecord) Clone() PreferenceRecord {
	out := p
	out.Budget.Max = clonePtr(p.Budget.Max)
	out.Budget.Target = clonePtr(p.Budget.Target)
	out.Usage = clonePtr(p.Usage)
	out.MinRAMGB = clonePtr(p.MinRAMGB)
	out.MinStorageGB = clonePtr(p.MinStorageGB)
	out.ScreenInches = clonePtr(p.ScreenInches)
	out.PreferGPU = clonePtr(p.PreferGPU)
	out.OS = clonePtr(p.OS)
	if p.Brands != nil {
		out.Brands = append([]string(nil), p.Brands...)
	}
	return out
}

// AddBrands unions lowercase brand names into the accepted set, keeping it
// sorted so output is deterministic.
func (p *PreferenceRecord) AddBrands(brands ...string) {
	seen := make(map[string]bool, len(p.Brands)+len(brands))
	for _, b := range p.Brands {
		seen[b] = true
	}
	for _, b := range brands {
		b = strings.ToLower(strings.TrimSpace(b))
		if b == "" || seen[b] {
			continue
		}
		seen[b] = true
		p.Brands = append(p.Brands, b)
	}
	sort.Strings(p.Brands)
}

// AcceptsBrand reports whether the brand set allows the given brand. An empty
// set accepts everything.
func (p PreferenceRecord) AcceptsBrand(brand string) bool {
	if len(p.Brands) == 0 {
		return true
	}
	brand = strings.ToLower(strings.TrimSpace(brand))
	for _, b := range p.Brands {
		if b == brand {
			return true
		}
	}
	return false
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
