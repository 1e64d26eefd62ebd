// Package admin реализует отладочную консоль. Команды набираются
// человеком, поэтому имя команды матчится нечетко (Левенштейн <= 2):
// "haevst", "unlok" и прочие опечатки прощаются.
package admin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"verdant-server/internal/domain"
	"verdant-server/internal/engine/handlers"
	"verdant-server/pkg/api"
)

const maxCommandDistance = 2

// commandFunc выполняет разобранную команду (аргументы без имени команды).
type commandFunc func(ctx handlers.Context, args []string) (handlers.Result, error)

var commands = map[string]commandFunc{
	"heal":   cmdHeal,
	"kill":   cmdKill,
	"grow":   cmdGrow,
	"setenv": cmdSetEnv,
	"skill":  cmdSkill,
	"unlock": cmdUnlock,
	"spawn":  cmdSpawn,
}

func init() {
	// Регистрируется здесь: тело cmdHelp обходит commands,
	// прямая запись в литерале дает цикл инициализации
	commands["help"] = cmdHelp
}

// resolveCommand находит команду по точному или нечеткому совпадению.
func resolveCommand(word string) (string, commandFunc, bool) {
	if fn, ok := commands[word]; ok {
		return word, fn, true
	}

	bestName := ""
	bestDist := maxCommandDistance + 1
	for name := range commands {
		d := levenshtein.ComputeDistance(word, name)
		if d < bestDist {
			bestDist = d
			bestName = name
		}
	}
	if bestName == "" || bestDist > maxCommandDistance {
		return "", nil, false
	}
	return bestName, commands[bestName], true
}

// HandleConsole - точка входа консоли: разбирает строку и диспетчит.
func HandleConsole(ctx handlers.Context, p api.ConsolePayload) (handlers.Result, error) {
	fields := strings.Fields(strings.ToLower(p.Line))
	if len(fields) == 0 {
		return handlers.Result{Msg: "Пустая команда", MsgType: "ERROR"}, nil
	}

	name, fn, ok := resolveCommand(fields[0])
	if !ok {
		return handlers.Result{
			Msg:     fmt.Sprintf("Неизвестная команда: %s (см. help)", fields[0]),
			MsgType: "ERROR",
		}, nil
	}

	result, err := fn(ctx, fields[1:])
	if err != nil {
		return handlers.Result{
			Msg:     fmt.Sprintf("%s: %v", name, err),
			MsgType: "ERROR",
		}, nil
	}
	return result, nil
}

func parsePlantID(arg string) (domain.PlantID, error) {
	raw, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("некорректный plant id %q", arg)
	}
	return domain.PlantID(raw), nil
}

func cmdHeal(ctx handlers.Context, args []string) (handlers.Result, error) {
	if len(args) < 1 {
		return handlers.Result{}, fmt.Errorf("usage: heal <plantId>")
	}
	id, err := parsePlantID(args[0])
	if err != nil {
		return handlers.Result{}, err
	}
	p := ctx.Finder.GetPlant(id)
	if p == nil || p.Vitals == nil {
		return handlers.Result{}, fmt.Errorf("растение %s не найдено", args[0])
	}

	p.Vitals.Health = p.Vitals.MaxHealth
	p.Vitals.Stress = 0
	p.Stressors = nil
	return handlers.Result{Msg: fmt.Sprintf("%s полностью исцелено", p.Name), MsgType: "INFO"}, nil
}

func cmdKill(ctx handlers.Context, args []string) (handlers.Result, error) {
	if len(args) < 1 {
		return handlers.Result{}, fmt.Errorf("usage: kill <plantId>")
	}
	id, err := parsePlantID(args[0])
	if err != nil {
		return handlers.Result{}, err
	}
	if !ctx.Admin.KillPlant(id) {
		return handlers.Result{}, fmt.Errorf("растение %s не найдено", args[0])
	}
	return handlers.Result{Msg: fmt.Sprintf("Растение %s умерщвлено", args[0]), MsgType: "INFO"}, nil
}

func cmdGrow(ctx handlers.Context, args []string) (handlers.Result, error) {
	if len(args) < 1 {
		return handlers.Result{}, fmt.Errorf("usage: grow <plantId> [stage]")
	}
	id, err := parsePlantID(args[0])
	if err != nil {
		return handlers.Result{}, err
	}

	p := ctx.Finder.GetPlant(id)
	if p == nil || p.Growth == nil {
		return handlers.Result{}, fmt.Errorf("растение %s не найдено", args[0])
	}

	// Без аргумента - следующая стадия
	target := p.Growth.Stage.Next()
	if len(args) >= 2 {
		target = parseStage(args[1])
		if target == p.Growth.Stage {
			return handlers.Result{}, fmt.Errorf("неизвестная или текущая стадия %q", args[1])
		}
	}

	if err := ctx.Admin.ForceStage(id, target); err != nil {
		return handlers.Result{}, err
	}
	return handlers.Result{
		Msg:     fmt.Sprintf("%s переведено в стадию %s", p.Name, target.String()),
		MsgType: "INFO",
	}, nil
}

func parseStage(s string) domain.GrowthStage {
	for st := domain.StageSeed; st <= domain.StageHarvest; st++ {
		if strings.EqualFold(st.String(), s) {
			return st
		}
	}
	return domain.StageSeed
}

func cmdSetEnv(ctx handlers.Context, args []string) (handlers.Result, error) {
	// setenv <zone> <temp> <humidity> <light> <co2>
	if len(args) < 5 {
		return handlers.Result{}, fmt.Errorf("usage: setenv <zone> <temp> <humidity> <light> <co2>")
	}
	zone, err := strconv.ParseUint(args[0], 10, 16)
	if err != nil {
		return handlers.Result{}, fmt.Errorf("некорректная зона %q", args[0])
	}

	vals := make([]float64, 4)
	for i, arg := range args[1:5] {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return handlers.Result{}, fmt.Errorf("некорректное число %q", arg)
		}
		vals[i] = v
	}

	ctx.Admin.SetZoneEnvironment(domain.ZoneID(zone), domain.EnvironmentalConditions{
		Temperature:    vals[0],
		Humidity:       vals[1],
		LightIntensity: vals[2],
		CO2:            vals[3],
		Photoperiod:    18,
		PH:             6.2,
		EC:             1.6,
		Moisture:       0.5,
	})
	return handlers.Result{
		Msg:     fmt.Sprintf("Зона %d: условия переопределены", zone),
		MsgType: "INFO",
	}, nil
}

func cmdSkill(ctx handlers.Context, args []string) (handlers.Result, error) {
	if len(args) < 2 {
		return handlers.Result{}, fmt.Errorf("usage: skill <task> <amount>")
	}
	task := domain.ParseTask(args[0])
	if task == domain.TaskUnknown {
		return handlers.Result{}, fmt.Errorf("неизвестная задача %q", args[0])
	}
	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return handlers.Result{}, fmt.Errorf("некорректное число %q", args[1])
	}

	ctx.Admin.GrantSkill(task, amount)
	return handlers.Result{
		Msg:     fmt.Sprintf("Навык %s: +%.1f", task.String(), amount),
		MsgType: "INFO",
	}, nil
}

func cmdUnlock(ctx handlers.Context, args []string) (handlers.Result, error) {
	if len(args) < 1 {
		return handlers.Result{}, fmt.Errorf("usage: unlock <task>")
	}
	task := domain.ParseTask(args[0])
	if task == domain.TaskUnknown {
		return handlers.Result{}, fmt.Errorf("неизвестная задача %q", args[0])
	}
	if !ctx.Admin.ForceUnlock(task) {
		return handlers.Result{}, fmt.Errorf("задача %s не автоматизируется", task.String())
	}
	return handlers.Result{
		Msg:     fmt.Sprintf("Автоматизация %s разблокирована принудительно", task.String()),
		MsgType: "INFO",
	}, nil
}

func cmdSpawn(ctx handlers.Context, args []string) (handlers.Result, error) {
	if len(args) < 1 {
		return handlers.Result{}, fmt.Errorf("usage: spawn <strain> [zone] [name]")
	}
	zone := domain.ZoneID(0)
	if len(args) >= 2 {
		z, err := strconv.ParseUint(args[1], 10, 16)
		if err != nil {
			return handlers.Result{}, fmt.Errorf("некорректная зона %q", args[1])
		}
		zone = domain.ZoneID(z)
	}
	name := ""
	if len(args) >= 3 {
		name = args[2]
	}

	p, err := ctx.Admin.SpawnPlant(args[0], zone, name)
	if err != nil {
		return handlers.Result{}, err
	}
	return handlers.Result{
		Msg:     fmt.Sprintf("Посажено %s (%s) в зоне %d", p.Name, p.ID, zone),
		MsgType: "INFO",
	}, nil
}

func cmdHelp(_ handlers.Context, _ []string) (handlers.Result, error) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	return handlers.Result{
		Msg:     "Команды: " + strings.Join(names, ", "),
		MsgType: "INFO",
	}, nil
}
