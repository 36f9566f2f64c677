package admin

import (
	"strings"
	"testing"

	"github.com/lizTheDeveloper/ai-village-sub012/internal/engine/handlers"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/mutation"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/village"
	"github.com/lizTheDeveloper/ai-village-sub012/pkg/api"
)

func TestHandleDevModeTogglesService(t *testing.T) {
	svc := mutation.NewService(mutation.Config{Schemas: village.BuiltinSchemas()})
	ctx := handlers.Context{Mutations: svc}

	res, err := HandleDevMode(ctx, api.DevModePayload{Enabled: true})
	if err != nil {
		t.Fatalf("Handler error: %v", err)
	}
	if !svc.DevMode() {
		t.Error("Dev mode not enabled")
	}
	if !strings.Contains(res.Msg, "ON") {
		t.Errorf("Expected ON in message, got %q", res.Msg)
	}

	res, _ = HandleDevMode(ctx, api.DevModePayload{Enabled: false})
	if svc.DevMode() {
		t.Error("Dev mode not disabled")
	}
	if !strings.Contains(res.Msg, "OFF") {
		t.Errorf("Expected OFF in message, got %q", res.Msg)
	}
}
