package actions

import (
	"verdant-server/internal/domain"
	"verdant-server/internal/engine/handlers"
	"verdant-server/internal/systems"
	"verdant-server/pkg/api"
)

func HandleTransplant(ctx handlers.Context, p api.TransplantPayload) (handlers.Result, error) {
	action := baseAction(ctx, domain.TaskTransplanting, "")
	action.TargetContainer = p.Container

	eval := systems.EvaluateCare(ctx.Plant, ctx.Strain, action, ctx.Care, ctx.Now)
	return careResult(ctx, domain.TaskTransplanting, eval), nil
}
