package services

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pickwise/laptop-advisor-backend/internal/types"
)

// Extraction is rule-based on purpose: an ordered list of independent
// matchers runs against the normalized utterance and each contributes to the
// preference record. Unknown input is never an error, it just matches nothing.

// Budget values outside this range are treated as non-budget numerics ("under
// 5 hours", "16gb ram") and discarded.
const (
	minBudget = 100
	maxBudget = 1_000_000
)

const (
	minRAMGB     = 4
	maxRAMGB     = 256
	minStorageGB = 128
	maxStorageGB = 16_000
	minScreenIn  = 10
	maxScreenIn  = 20
)

var (
	moneyToken = `(\d{1,3}(?:,\d{3})+|\d+(?:\.\d+)?)\s*(k)?`

	reBudgetTarget = regexp.MustCompile(`\b(?:around|about|approximately|roughly)\s*\$?\s*` + moneyToken)
	reBudgetMax    = regexp.MustCompile(`\b(?:under|below|less than|at most|up to|max(?:imum)?(?:\s+(?:budget|price))?(?:\s+of)?|budget(?:\s+(?:is|of))?|spend(?:ing)?(?:\s+up\s+to)?)\s*\$?\s*` + moneyToken)
	reBudgetBare   = regexp.MustCompile(`\$\s*` + moneyToken)

	reRAM     = regexp.MustCompile(`(\d{1,3})\s*(?:gb|gigs?)?\s*(?:of\s+)?(?:ram|memory)\b`)
	reStorage = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(gb|tb)\s*(?:of\s+)?(?:ssd|storage|hard\s?drive|hdd|disk)\b`)
	reScreen  = regexp.MustCompile(`\b(\d{2}(?:\.\d+)?)\s*-?\s*(?:inch(?:es)?|in\b|")`)
	reGPU     = regexp.MustCompile(`(?:dedicated|discrete|good|powerful|gaming)\s+(?:gpu|graphics)`)
)

// usageMatchers run in precedence order; the first hit wins so utterances
// touching several categories resolve deterministically.
var usageMatchers = []struct {
	usage types.UsageType
	re    *regexp.Regexp
}{
	{types.UsageGaming, regexp.MustCompile(`\b(?:gaming|gamer|play(?:ing)?\s+games?|fps|shooter|mmo|rpg)\b`)},
	{types.UsageCreative, regexp.MustCompile(`\b(?:creative|design(?:er)?|art(?:ist)?|photo|video\s+editing|editing|photoshop|illustrator|premiere)\b`)},
	{types.UsageProgramming, regexp.MustCompile(`\b(?:programming|coding|coder|developer|development|software\s+engineer(?:ing)?|ide)\b`)},
	{types.UsageBusiness, regexp.MustCompile(`\b(?:business|work|office|professional|corporate|presentations?|spreadsheets?|meetings?)\b`)},
	{types.UsageStudent, regexp.MustCompile(`\b(?:student|school|college|university|campus|education|study(?:ing)?|coursework|homework)\b`)},
	{types.UsageGeneral, regexp.MustCompile(`\b(?:general|everyday|casual|browsing|basic)\b`)},
}

// knownBrands maps vocabulary tokens to canonical brand names.
var knownBrands = map[string]string{
	"dell":      "dell",
	"hp":        "hp",
	"lenovo":    "lenovo",
	"thinkpad":  "lenovo",
	"asus":      "asus",
	"acer":      "acer",
	"apple":     "apple",
	"mac":       "apple",
	"macbook":   "apple",
	"microsoft": "microsoft",
	"surface":   "microsoft",
	"msi":       "msi",
	"razer":     "razer",
	"lg":        "lg",
	"samsung":   "samsung",
}

var osKeywords = map[string]string{
	"windows": "windows",
	"macos":   "macos",
	"osx":     "macos",
	"linux":   "linux",
	"ubuntu":  "linux",
}

// ExtractPreferences applies every matcher to the utterance and merges the
// hits into a copy of the current record. Later statements about a field
// overwrite earlier ones; brands accumulate into a set. The second return
// value lists required fields still unset on the updated record.
func ExtractPreferences(utterance string, current types.PreferenceRecord) (types.PreferenceRecord, []string) {
	updated := current.Clone()
	msg := normalize(utterance)
	if msg == "" {
		return updated, updated.MissingRequired()
	}

	extractBudget(msg, &updated)
	extractUsage(msg, &updated)
	extractBrands(msg, &updated)
	extractRAM(msg, &updated)
	extractStorage(msg, &updated)
	extractScreen(msg, &updated)
	extractGPU(msg, &updated)
	extractOS(msg, &updated)

	return updated, updated.MissingRequired()
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func extractBudget(msg string, p *types.PreferenceRecord) {
	if m := reBudgetTarget.FindStringSubmatch(msg); m != nil {
		if v, ok := parseMoney(m[1], m[2]); ok {
			p.Budget = types.BudgetPref{Target: &v}
			return
		}
	}
	if m := reBudgetMax.FindStringSubmatch(msg); m != nil {
		if v, ok := parseMoney(m[1], m[2]); ok {
			p.Budget = types.BudgetPref{Max: &v}
			return
		}
	}
	if m := reBudgetBare.FindStringSubmatch(msg); m != nil {
		if v, ok := parseMoney(m[1], m[2]); ok {
			p.Budget = types.BudgetPref{Max: &v}
		}
	}
}

func parseMoney(num, kSuffix string) (float64, bool) {
	num = strings.ReplaceAll(num, ",", "")
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false
	}
	if kSuffix != "" {
		v *= 1000
	}
	if v < minBudget || v > maxBudget {
		return 0, false
	}
	return v, true
}

func extractUsage(msg string, p *types.PreferenceRecord) {
	for _, m := range usageMatchers {
		if m.re.MatchString(msg) {
			usage := m.usage
			p.Usage = &usage
			return
		}
	}
}

func extractBrands(msg string, p *types.PreferenceRecord) {
	var found []string
	for _, tok := range strings.FieldsFunc(msg, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	}) {
		if brand, ok := knownBrands[tok]; ok {
			found = append(found, brand)
		}
	}
	if len(found) > 0 {
		p.AddBrands(found...)
	}
}

func extractRAM(msg string, p *types.PreferenceRecord) {
	m := reRAM.FindStringSubmatch(msg)
	if m == nil {
		return
	}
	v, err := strconv.Atoi(m[1])
	if err != nil || v < minRAMGB || v > maxRAMGB {
		return
	}
	p.MinRAMGB = &v
}

func extractStorage(msg string, p *types.PreferenceRecord) {
	m := reStorage.FindStringSubmatch(msg)
	if m == nil {
		return
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return
	}
	if m[2] == "tb" {
		v *= 1000
	}
	gb := int(v)
	if gb < minStorageGB || gb > maxStorageGB {
		return
	}
	p.MinStorageGB = &gb
}

func extractScreen(msg string, p *types.PreferenceRecord) {
	m := reScreen.FindStringSubmatch(msg)
	if m == nil {
		return
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil || v < minScreenIn || v > maxScreenIn {
		return
	}
	p.ScreenInches = &v
}

func extractGPU(msg string, p *types.PreferenceRecord) {
	if reGPU.MatchString(msg) {
		yes := true
		p.PreferGPU = &yes
	}
}

func extractOS(msg string, p *types.PreferenceRecord) {
	for _, tok := range strings.Fields(msg) {
		tok = strings.Trim(tok, ".,!?;:")
		if osName, ok := osKeywords[tok]; ok {
			p.OS = &osName
			return
		}
	}
}
