package actions

import (
	"fmt"

	"verdant-server/internal/engine/handlers"
	"verdant-server/internal/systems"
)

// HandleHarvest - сбор урожая. Результат возвращается синхронно,
// растение после этого выводится из симуляции сервисом.
func HandleHarvest(ctx handlers.Context) (handlers.Result, error) {
	result, reason := systems.ResolveHarvest(ctx.Plant, ctx.Strain, ctx.Now)
	if reason != "" {
		return handlers.Result{
			Msg:     fmt.Sprintf("%s: сбор отклонен (%s)", ctx.Plant.Name, reason),
			MsgType: "ERROR",
		}, nil
	}

	if ctx.YieldBonus > 0 {
		result.TotalYieldGrams *= ctx.YieldBonus
	}

	return handlers.Result{
		Msg: fmt.Sprintf("%s: собрано %.0f г, качество %.2f",
			ctx.Plant.Name, result.TotalYieldGrams, result.QualityScore),
		MsgType: "CARE",
		Harvest: &result,
	}, nil
}
