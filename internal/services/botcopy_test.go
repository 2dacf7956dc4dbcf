package services

import (
	"testing"

	"github.com/pickwise/laptop-advisor-backend/internal/types"
)

func TestBotCopyPrompts(t *testing.T) {
	bc := loadBotCopy()

	for _, field := range []string{types.FieldUsage, types.FieldBudget} {
		if bc.PromptFor(field) == "" {
			t.Fatalf("no prompt for required field %q", field)
		}
	}
	if bc.PromptFor("unknown_field") != bc.FallbackPrompt {
		t.Fatalf("unknown field should fall back to the generic prompt")
	}
	if bc.Greeting == "" || bc.ResultsFound == "" || bc.NoResults == "" || bc.SessionClosed == "" {
		t.Fatalf("bot copy missing core lines: %+v", bc)
	}
}

func TestMergeBotCopyBackfills(t *testing.T) {
	merged := mergeBotCopy(BotCopy{Greeting: "Hi there"})

	if merged.Greeting != "Hi there" {
		t.Fatalf("explicit field overwritten: %q", merged.Greeting)
	}
	if merged.ResultsFound != fallbackBotCopy.ResultsFound {
		t.Fatalf("blank field not backfilled: %q", merged.ResultsFound)
	}
	if merged.Prompts[types.FieldUsage] == "" {
		t.Fatalf("prompt map not backfilled")
	}
}
