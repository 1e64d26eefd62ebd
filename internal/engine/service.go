package engine

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"verdant-server/internal/domain"
	"verdant-server/internal/engine/handlers"
	"verdant-server/internal/engine/handlers/actions"
	"verdant-server/internal/engine/handlers/admin"
	"verdant-server/internal/network"
	"verdant-server/internal/observe"
	"verdant-server/internal/progression"
	"verdant-server/internal/systems"
	"verdant-server/pkg/api"
	"verdant-server/pkg/logger"
	"verdant-server/pkg/strain"
)

// StrainSource - источник определений сортов (каталог).
type StrainSource interface {
	Get(id string) *domain.Strain
}

// SimulationService - авторитетное ядро симуляции.
// Вся мутация состояния происходит на одной тик-горутине (RunLoop);
// команды извне попадают туда через буферизованный канал.
type SimulationService struct {
	cfg Config

	// plants хранит указатели на ВСЕ зарегистрированные растения
	plants map[domain.PlantID]*domain.PlantEntity

	strains StrainSource
	env     EnvironmentProvider

	// Административные переопределения среды по зонам
	envOverride map[domain.ZoneID]domain.EnvironmentalConditions

	scheduler *Scheduler
	deferred  *DeferredQueue
	bus       *EventBus
	progress  *progression.Orchestrator

	careCfg systems.CareConfig

	Logs []api.LogEntry

	CommandChan chan domain.InternalCommand
	Hub         *network.Broadcaster

	// inspect - чтения состояния с чужих горутин (debug-эндпоинты).
	// Замыкание исполняется на тик-горутине между тиками.
	inspect chan func()

	handlers map[domain.CareTask]handlers.HandlerFunc
	console  handlers.HandlerFunc

	metrics *observe.Metrics // nil-safe

	rng       *rand.Rand
	simTime   float64
	tick      uint64
	nextIndex uint64

	// Последнее ОПУБЛИКОВАННОЕ здоровье: дребезг HealthChanged гасится тут
	lastHealth map[domain.PlantID]float64

	// Хуки конца тика (агент автоматизации и пр.)
	tickHooks []func(now, dt float64)
}

func NewService(cfg Config, strains StrainSource, env EnvironmentProvider) *SimulationService {
	if env == nil {
		env = NewDiurnalEnvironment()
	}

	s := &SimulationService{
		cfg:         cfg,
		plants:      make(map[domain.PlantID]*domain.PlantEntity),
		strains:     strains,
		env:         env,
		envOverride: make(map[domain.ZoneID]domain.EnvironmentalConditions),
		scheduler:   NewScheduler(cfg.BatchSize),
		deferred:    NewDeferredQueue(),
		bus:         NewEventBus(),
		careCfg:     systems.DefaultCareConfig(),
		Logs:        []api.LogEntry{},
		CommandChan: make(chan domain.InternalCommand, cfg.CommandBuffer),
		Hub:         network.NewBroadcaster(),
		inspect:     make(chan func()),
		handlers:    make(map[domain.CareTask]handlers.HandlerFunc),
		rng:         rand.New(rand.NewSource(cfg.Seed)),
		lastHealth:  make(map[domain.PlantID]float64),
	}

	acc := progression.NewAccumulator(progression.DefaultBurdenConfig())
	engine := progression.NewUnlockEngine(progression.DefaultUnlockConfig(), acc)
	s.progress = progression.NewOrchestrator(acc, engine, progression.DefaultTree(), s.bus.Publish)

	s.registerHandlers()
	s.bus.Subscribe(s.logEvent)
	return s
}

func (s *SimulationService) registerHandlers() {
	s.handlers[domain.TaskWatering] = handlers.WithPayload(actions.HandleWater)
	s.handlers[domain.TaskFeeding] = handlers.WithPayload(actions.HandleFeed)
	s.handlers[domain.TaskPruning] = handlers.WithPayload(actions.HandlePrune)
	s.handlers[domain.TaskTraining] = handlers.WithPayload(actions.HandleTrain)
	s.handlers[domain.TaskTransplanting] = handlers.WithPayload(actions.HandleTransplant)
	s.handlers[domain.TaskPestControl] = handlers.WithPayload(actions.HandlePestControl)
	s.handlers[domain.TaskMonitoring] = handlers.WithEmptyPayload(actions.HandleInspect)
	s.handlers[domain.TaskHarvesting] = handlers.WithEmptyPayload(actions.HandleHarvest)
	s.console = handlers.WithPayload(admin.HandleConsole)
}

// --- ДОСТУП ---

// GetPlant реализует handlers.PlantFinder.
func (s *SimulationService) GetPlant(id domain.PlantID) *domain.PlantEntity {
	return s.plants[id]
}

// Plants возвращает снимок-срез живых растений (для агента и DTO).
func (s *SimulationService) Plants() []*domain.PlantEntity {
	out := make([]*domain.PlantEntity, 0, len(s.plants))
	for _, p := range s.plants {
		out = append(out, p)
	}
	return out
}

func (s *SimulationService) Bus() *EventBus                           { return s.bus }
func (s *SimulationService) Progression() *progression.Orchestrator  { return s.progress }
func (s *SimulationService) Scheduler() *Scheduler                    { return s.scheduler }
func (s *SimulationService) Deferred() *DeferredQueue                 { return s.deferred }
func (s *SimulationService) SimTime() float64                         { return s.simTime }
func (s *SimulationService) SetMetrics(m *observe.Metrics)            { s.metrics = m }
func (s *SimulationService) AddTickHook(fn func(now, dt float64))     { s.tickHooks = append(s.tickHooks, fn) }

// --- ЖИЗНЕННЫЙ ЦИКЛ РАСТЕНИЙ ---

// AddPlant сажает растение указанного сорта в зону.
func (s *SimulationService) AddPlant(strainID string, zone domain.ZoneID, name string) (*domain.PlantEntity, error) {
	def := s.strains.Get(strainID)
	if def == nil {
		return nil, fmt.Errorf("unknown strain %q", strainID)
	}

	s.nextIndex++
	id := domain.PackPlantID(zone, s.nextIndex)

	p := strain.NewPlant(def, id, name, s.simTime, s.rng)

	// Первичный снимок среды, чтобы растение не тикало на нулях
	cond := s.envFor(zone)
	p.Environment = &cond
	p.Fitness = systems.EvaluateFitness(cond, def)

	s.plants[id] = p
	s.scheduler.Register(p)
	s.lastHealth[id] = p.Vitals.Health
	s.metrics.PlantAdded()

	s.AddLog(fmt.Sprintf("Посажено %s (%s)", p.Name, def.Name), "INFO")
	return p, nil
}

// removePlant выводит растение из симуляции (смерть или сбор).
func (s *SimulationService) removePlant(id domain.PlantID) {
	if _, ok := s.plants[id]; !ok {
		return
	}
	s.scheduler.Unregister(id)
	s.deferred.CancelPlant(id)
	delete(s.plants, id)
	delete(s.lastHealth, id)
	s.metrics.PlantRemoved()
}

func (s *SimulationService) handleDeath(p *domain.PlantEntity, cause string) {
	s.bus.Publish(domain.PlantDiedEvent{PlantID: p.ID, Cause: cause, Timestamp: s.simTime})
	s.removePlant(p.ID)
}

// --- КОМАНДЫ ---

// ProcessCommand принимает команду от внешнего мира (WebSocket).
// Выполняется на горутине клиента: только парсинг и передача в канал.
func (s *SimulationService) ProcessCommand(externalCmd api.ClientCommand) {
	if externalCmd.Action == "CONSOLE" {
		s.CommandChan <- domain.InternalCommand{
			Token:   externalCmd.Token,
			Payload: externalCmd.Payload,
			Console: true,
		}
		return
	}

	task := domain.ParseTask(externalCmd.Action)
	if task == domain.TaskUnknown {
		logger.Log.WithField("action", externalCmd.Action).Warn("Unknown action")
		return
	}

	var plantID domain.PlantID
	if externalCmd.PlantID != "" {
		raw, err := strconv.ParseUint(externalCmd.PlantID, 10, 64)
		if err != nil {
			logger.Log.WithField("plant_id", externalCmd.PlantID).Warn("Malformed plant id")
			return
		}
		plantID = domain.PlantID(raw)
	}

	s.CommandChan <- domain.InternalCommand{
		Task:    task,
		Token:   externalCmd.Token,
		PlantID: plantID,
		Payload: externalCmd.Payload,
	}
}

// EnqueueAutomated - вход для агента автоматизации: та же очередь,
// что и у игроков, но с пометкой Automated. Отправка неблокирующая:
// агент вызывается из тик-горутины, которая и разгружает канал,
// поэтому при переполнении команда просто отбрасывается.
func (s *SimulationService) EnqueueAutomated(task domain.CareTask, plantID domain.PlantID, payload []byte) {
	cmd := domain.InternalCommand{
		Task:      task,
		Token:     "agent",
		PlantID:   plantID,
		Payload:   payload,
		Automated: true,
	}
	select {
	case s.CommandChan <- cmd:
	default:
		logger.Log.WithField("task", task.String()).Warn("Automation command dropped: queue full")
	}
}

// ExecuteCommand выполняет команду на тик-горутине.
// Экспортирован для тестов и прямого встраивания.
func (s *SimulationService) ExecuteCommand(cmd domain.InternalCommand) {
	if cmd.Console {
		result, err := s.console(handlers.Context{Finder: s, Admin: s, Now: s.simTime}, cmd.Payload)
		if err != nil {
			s.AddLog(err.Error(), "ERROR")
			return
		}
		if result.Msg != "" {
			s.AddLog(result.Msg, result.MsgType)
		}
		return
	}

	handler, ok := s.handlers[cmd.Task]
	if !ok {
		s.AddLog(fmt.Sprintf("Команда отклонена (%s)", domain.ReasonUnknownTask), "ERROR")
		return
	}

	plant := s.GetPlant(cmd.PlantID)
	if plant == nil {
		s.AddLog(fmt.Sprintf("Команда отклонена (%s)", domain.ReasonUnknownPlant), "ERROR")
		return
	}
	def := s.strains.Get(plant.StrainID)
	if def == nil {
		s.AddLog(fmt.Sprintf("Команда отклонена (%s)", domain.ReasonUnknownPlant), "ERROR")
		return
	}

	careCfg := s.careCfg
	careCfg.QualityBonus = s.progress.QualityBonus()

	ctx := handlers.Context{
		Finder:     s,
		Plant:      plant,
		Strain:     def,
		Care:       careCfg,
		YieldBonus: s.progress.YieldBonus(),
		Skill:      s.progress.Skill(cmd.Task),
		MaxSkill:   progression.MaxSkill,
		Now:        s.simTime,
	}

	result, err := handler(ctx, cmd.Payload)
	if err != nil {
		s.AddLog(err.Error(), "ERROR")
		return
	}
	if result.Msg != "" {
		s.AddLog(result.Msg, result.MsgType)
	}

	if result.Eval != nil && result.Eval.OK {
		s.bus.Publish(domain.CarePerformedEvent{
			PlantID:   plant.ID,
			Task:      cmd.Task,
			Quality:   result.Eval.Quality,
			Outcome:   result.Eval.Outcome,
			Automated: cmd.Automated,
			Timestamp: s.simTime,
		})

		profile := s.progress.Burden().Config().Tasks[cmd.Task]
		s.progress.HandleCare(progression.CareRecord{
			Task:         cmd.Task,
			Outcome:      result.Eval.Outcome,
			Quality:      result.Eval.Raw,
			Duration:     profile.BaseDuration,
			PlantCount:   len(s.plants),
			FacilitySize: s.cfg.FacilitySize,
			Automated:    cmd.Automated,
			Timestamp:    s.simTime,
		})
	}

	if result.Harvest != nil {
		s.progress.HandleHarvest(*result.Harvest, s.simTime)
		s.metrics.RecordHarvest(result.Harvest.StrainID)
		s.removePlant(plant.ID)
	}
}

// --- ЦИКЛ СИМУЛЯЦИИ ---

// Start запускает цикл в отдельной горутине.
func (s *SimulationService) Start(ctx context.Context) {
	go s.RunLoop(ctx)
}

// RunLoop - единственная горутина, мутирующая симуляцию.
func (s *SimulationService) RunLoop(ctx context.Context) {
	logger.Log.WithFields(logrus.Fields{
		"component":  "sim_loop",
		"tick":       s.cfg.TickInterval.String(),
		"time_scale": s.cfg.TimeScale,
	}).Info("Simulation loop started.")

	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("Simulation loop stopped.")
			return

		case cmd := <-s.CommandChan:
			s.ExecuteCommand(cmd)

		case fn := <-s.inspect:
			fn()

		case <-ticker.C:
			s.Tick(s.cfg.TickInterval.Seconds() * s.cfg.TimeScale)
			s.publishUpdate()
		}
	}
}

// Inspect выполняет fn на тик-горутине и дожидается завершения.
// Единственный безопасный способ читать состояние симуляции извне;
// требует запущенного RunLoop, иначе блокируется до отмены контекста.
func (s *SimulationService) Inspect(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	wrapped := func() {
		fn()
		close(done)
	}
	select {
	case s.inspect <- wrapped:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Tick продвигает симуляцию на dt сим-секунд.
// Экспортирован для тестов: цикл и физика разделены.
func (s *SimulationService) Tick(dt float64) {
	start := time.Now()
	s.tick++
	s.simTime += dt

	// 1. Отложенные эффекты, чье время пришло (FIFO по вставке)
	for _, eff := range s.deferred.Drain(s.simTime) {
		eff.Apply(s.simTime)
	}

	// 2. Очередная порция растений
	for _, p := range s.scheduler.NextBatch() {
		if !p.Alive() {
			continue
		}
		def := s.strains.Get(p.StrainID)
		if def == nil {
			continue
		}

		s.refreshEnvironment(p, def)

		systems.ConsumeResources(p, dt)
		systems.UpdateResourceStressors(p, s.simTime)

		if died, cause := systems.UpdateHealth(p, def, dt); died {
			s.handleDeath(p, cause)
			continue
		}
		s.publishHealthDelta(p)

		if advanced, prev := systems.AdvanceGrowth(p, def, dt, s.progress.GrowthBonus()); advanced {
			s.bus.Publish(domain.StageChangedEvent{
				PlantID:   p.ID,
				Prev:      prev,
				New:       p.Growth.Stage,
				Timestamp: s.simTime,
			})
		}
	}

	// 3. Мета-слой: спад бремени, хуки (агент автоматизации)
	s.progress.Tick(s.simTime, dt)
	for _, hook := range s.tickHooks {
		hook(s.simTime, dt)
	}

	s.metrics.RecordTick(time.Since(start))
}

// refreshEnvironment обновляет снимок среды и фитнес растения.
func (s *SimulationService) refreshEnvironment(p *domain.PlantEntity, def *domain.Strain) {
	cond := s.envFor(p.ID.Zone())

	if p.Environment != nil {
		if math.Abs(cond.Stability()-p.Environment.Stability()) >= s.cfg.EnvEventEpsilon {
			s.bus.Publish(domain.EnvironmentChangedEvent{
				PlantID:   p.ID,
				Prev:      *p.Environment,
				New:       cond,
				Timestamp: s.simTime,
			})
		}
	}

	p.Environment = &cond
	p.Fitness = systems.EvaluateFitness(cond, def)
}

// envFor возвращает условия зоны с учетом административных переопределений.
func (s *SimulationService) envFor(zone domain.ZoneID) domain.EnvironmentalConditions {
	if cond, ok := s.envOverride[zone]; ok {
		return cond
	}
	return s.env.Conditions(zone, s.simTime)
}

// publishHealthDelta публикует HealthChanged, когда накопленная
// с прошлой публикации дельта превышает эпсилон.
func (s *SimulationService) publishHealthDelta(p *domain.PlantEntity) {
	last, ok := s.lastHealth[p.ID]
	if !ok {
		s.lastHealth[p.ID] = p.Vitals.Health
		return
	}
	if math.Abs(p.Vitals.Health-last) < s.cfg.HealthEventEpsilon {
		return
	}
	s.bus.Publish(domain.HealthChangedEvent{
		PlantID:   p.ID,
		Prev:      last,
		New:       p.Vitals.Health,
		Timestamp: s.simTime,
	})
	s.lastHealth[p.ID] = p.Vitals.Health
}

// publishUpdate рассылает снимок всем подписчикам и очищает журнал.
func (s *SimulationService) publishUpdate() {
	if s.Hub.SubscriberCount() == 0 {
		// Некому слать: журнал все равно подрезаем, чтобы не рос вечно
		if len(s.Logs) > 256 {
			s.Logs = s.Logs[len(s.Logs)-256:]
		}
		return
	}
	s.Hub.Broadcast(*s.BuildState())
	s.Logs = []api.LogEntry{}
}
