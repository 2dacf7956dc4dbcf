package services

import (
	"embed"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/pickwise/laptop-advisor-backend/internal/types"
)

const botCopyPathEnv = "BOTCOPY_YAML"

//go:embed botcopy.yaml
var botCopyFS embed.FS

// BotCopy holds every user-facing line the conversation layer can emit, so
// wording can be changed without touching the state machine. Loaded from the
// embedded YAML (or a file named by BOTCOPY_YAML); hardcoded fallbacks cover
// a broken override.
type BotCopy struct {
	Greeting       string            `yaml:"greeting"`
	Prompts        map[string]string `yaml:"prompts"`
	FallbackPrompt string            `yaml:"fallback_prompt"`
	ResultsFound   string            `yaml:"results_found"`
	NoResults      string            `yaml:"no_results"`
	SessionClosed  string            `yaml:"session_closed"`
}

var fallbackBotCopy = BotCopy{
	Greeting: "Hello! I'm your laptop recommendation assistant.",
	Prompts: map[string]string{
		types.FieldUsage:  "What will you primarily use this laptop for?",
		types.FieldBudget: "What's your budget for a new laptop?",
	},
	FallbackPrompt: "Can you tell me more about what you're looking for in a laptop?",
	ResultsFound:   "Based on your preferences, here are some laptops worth a look.",
	NoResults:      "I couldn't find any laptops matching your exact criteria.",
	SessionClosed:  "This conversation is finished.",
}

var (
	botCopyOnce sync.Once
	botCopy     BotCopy
)

func loadBotCopy() BotCopy {
	botCopyOnce.Do(func() {
		raw, err := botCopyFS.ReadFile("botcopy.yaml")
		if path := strings.TrimSpace(os.Getenv(botCopyPathEnv)); path != "" {
			if b, rerr := os.ReadFile(path); rerr == nil {
				raw, err = b, nil
			}
		}
		if err != nil {
			botCopy = fallbackBotCopy
			return
		}
		var parsed BotCopy
		if yerr := yaml.Unmarshal(raw, &parsed); yerr != nil {
			botCopy = fallbackBotCopy
			return
		}
		botCopy = mergeBotCopy(parsed)
	})
	return botCopy
}

// mergeBotCopy backfills any blank field from the fallback so a partial
// override file never produces empty bot lines.
func mergeBotCopy(in BotCopy) BotCopy {
	out := in
	if strings.TrimSpace(out.Greeting) == "" {
		out.Greeting = fallbackBotCopy.Greeting
	}
	if strings.TrimSpace(out.FallbackPrompt) == "" {
		out.FallbackPrompt = fallbackBotCopy.FallbackPrompt
	}
	if strings.TrimSpace(out.ResultsFound) == "" {
		out.ResultsFound = fallbackBotCopy.ResultsFound
	}
	if strings.TrimSpace(out.NoResults) == "" {
		out.NoResults = fallbackBotCopy.NoResults
	}
	if strings.TrimSpace(out.SessionClosed) == "" {
		out.SessionClosed = fallbackBotCopy.SessionClosed
	}
	if out.Prompts == nil {
		out.Prompts = map[string]string{}
	}
	for field, line := range fallbackBotCopy.Prompts {
		if strings.TrimSpace(out.Prompts[field]) == "" {
			out.Prompts[field] = line
		}
	}
	return out
}

// PromptFor returns the follow-up line asking for one missing slot.
func (bc BotCopy) PromptFor(field string) string {
	if line, ok := bc.Prompts[field]; ok && strings.TrimSpace(line) != "" {
		return line
	}
	return bc.FallbackPrompt
}
