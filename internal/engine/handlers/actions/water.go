package actions

import (
	"verdant-server/internal/domain"
	"verdant-server/internal/engine/handlers"
	"verdant-server/internal/systems"
	"verdant-server/pkg/api"
)

func HandleWater(ctx handlers.Context, p api.WaterPayload) (handlers.Result, error) {
	action := baseAction(ctx, domain.TaskWatering, p.ToolID)
	action.Amount = p.Amount

	eval := systems.EvaluateCare(ctx.Plant, ctx.Strain, action, ctx.Care, ctx.Now)
	return careResult(ctx, domain.TaskWatering, eval), nil
}
