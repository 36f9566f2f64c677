package admin

import (
	"fmt"

	"github.com/lizTheDeveloper/ai-village-sub012/internal/engine/handlers"
	"github.com/lizTheDeveloper/ai-village-sub012/pkg/api"
)

// HandleDevMode переключает dev-режим сервиса мутаций.
// Dev-режим снимает замок с немутабельных полей (и ТОЛЬКО его:
// тип/диапазон/enum проверяются всегда).
func HandleDevMode(ctx handlers.Context, p api.DevModePayload) (handlers.Result, error) {
	ctx.Mutations.SetDevMode(p.Enabled)

	status := "OFF"
	if p.Enabled {
		status = "ON"
	}
	return handlers.Result{
		Msg:     fmt.Sprintf("🔧 Dev mode %s", status),
		MsgType: "INFO",
	}, nil
}
