package actions

import (
	"fmt"

	"verdant-server/internal/domain"
	"verdant-server/internal/engine/handlers"
	"verdant-server/internal/systems"
)

// Встроенный каталог инструментов. Инструмент не обязателен:
// пустой toolId означает "руками", без бонуса и без несовместимости.
var toolCatalog = map[string]domain.Tool{
	"watering_can":   {ID: "watering_can", Name: "Лейка", Quality: 0.4, Task: domain.TaskWatering},
	"drip_wand":      {ID: "drip_wand", Name: "Капельная насадка", Quality: 0.8, Task: domain.TaskWatering},
	"dosing_syringe": {ID: "dosing_syringe", Name: "Дозирующий шприц", Quality: 0.7, Task: domain.TaskFeeding},
	"pruning_shears": {ID: "pruning_shears", Name: "Секатор", Quality: 0.6, Task: domain.TaskPruning},
	"trellis_net":    {ID: "trellis_net", Name: "Шпалерная сетка", Quality: 0.5, Task: domain.TaskTraining},
	"neem_sprayer":   {ID: "neem_sprayer", Name: "Опрыскиватель", Quality: 0.6, Task: domain.TaskPestControl},
	"loupe":          {ID: "loupe", Name: "Лупа 60x", Quality: 0.9, Task: domain.TaskMonitoring},
}

// lookupTool возвращает инструмент каталога или nil для пустого ID.
// Неизвестный ID тоже дает nil: оценка пойдет "руками".
func lookupTool(id string) *domain.Tool {
	if id == "" {
		return nil
	}
	if t, ok := toolCatalog[id]; ok {
		return &t
	}
	return nil
}

// careResult сводит исход оценки к записи журнала.
func careResult(ctx handlers.Context, task domain.CareTask, eval systems.EvalResult) handlers.Result {
	if !eval.OK {
		return handlers.Result{
			Msg:     fmt.Sprintf("%s: %s отклонено (%s)", ctx.Plant.Name, task.String(), domain.NormalizeReason(eval.Reason)),
			MsgType: "ERROR",
			Eval:    &eval,
		}
	}
	return handlers.Result{
		Msg:     fmt.Sprintf("%s: %s - %s", ctx.Plant.Name, task.String(), eval.Quality.String()),
		MsgType: "CARE",
		Eval:    &eval,
	}
}

// baseAction собирает общие поля действия ухода из контекста.
func baseAction(ctx handlers.Context, task domain.CareTask, toolID string) domain.CareAction {
	return domain.CareAction{
		Task:      task,
		Tool:      lookupTool(toolID),
		Timestamp: ctx.Now,
		Skill:     ctx.Skill,
		MaxSkill:  ctx.MaxSkill,
	}
}
