package actions

import (
	"verdant-server/internal/domain"
	"verdant-server/internal/engine/handlers"
	"verdant-server/internal/systems"
)

// HandleInspect - осмотр растения (MONITOR). Не требует данных.
func HandleInspect(ctx handlers.Context) (handlers.Result, error) {
	action := baseAction(ctx, domain.TaskMonitoring, "")

	eval := systems.EvaluateCare(ctx.Plant, ctx.Strain, action, ctx.Care, ctx.Now)
	return careResult(ctx, domain.TaskMonitoring, eval), nil
}
