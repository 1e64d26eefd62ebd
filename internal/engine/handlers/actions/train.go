package actions

import (
	"strings"

	"verdant-server/internal/domain"
	"verdant-server/internal/engine/handlers"
	"verdant-server/internal/systems"
	"verdant-server/pkg/api"
)

var trainMethods = map[string]domain.TrainMethod{
	"LST":   domain.TrainLST,
	"HST":   domain.TrainHST,
	"SCROG": domain.TrainSCROG,
}

func HandleTrain(ctx handlers.Context, p api.TrainPayload) (handlers.Result, error) {
	action := baseAction(ctx, domain.TaskTraining, p.ToolID)
	if method, ok := trainMethods[strings.ToUpper(p.Method)]; ok {
		action.Train = method
	}

	eval := systems.EvaluateCare(ctx.Plant, ctx.Strain, action, ctx.Care, ctx.Now)
	return careResult(ctx, domain.TaskTraining, eval), nil
}
