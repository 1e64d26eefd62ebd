package actions

import (
	"strings"

	"verdant-server/internal/domain"
	"verdant-server/internal/engine/handlers"
	"verdant-server/internal/systems"
	"verdant-server/pkg/api"
)

var pruneStyles = map[string]domain.PruneStyle{
	"TOPPING":  domain.PruneTopping,
	"FIMMING":  domain.PruneFimming,
	"LOLLIPOP": domain.PruneLollipop,
}

func HandlePrune(ctx handlers.Context, p api.PrunePayload) (handlers.Result, error) {
	action := baseAction(ctx, domain.TaskPruning, p.ToolID)
	if style, ok := pruneStyles[strings.ToUpper(p.Style)]; ok {
		action.Prune = style
	}

	eval := systems.EvaluateCare(ctx.Plant, ctx.Strain, action, ctx.Care, ctx.Now)
	return careResult(ctx, domain.TaskPruning, eval), nil
}
