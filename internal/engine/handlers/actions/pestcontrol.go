package actions

import (
	"verdant-server/internal/domain"
	"verdant-server/internal/engine/handlers"
	"verdant-server/internal/systems"
	"verdant-server/pkg/api"
)

func HandlePestControl(ctx handlers.Context, p api.PestControlPayload) (handlers.Result, error) {
	action := baseAction(ctx, domain.TaskPestControl, p.ToolID)

	eval := systems.EvaluateCare(ctx.Plant, ctx.Strain, action, ctx.Care, ctx.Now)
	return careResult(ctx, domain.TaskPestControl, eval), nil
}
