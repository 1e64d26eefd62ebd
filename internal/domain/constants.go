package domain

// --- ЗДОРОВЬЕ И СТРЕСС ---

const (
	// Пороги "мертвой зоны" влияния среды на здоровье.
	// Между ними среда здоровье не двигает - гасим осцилляции на границе.
	FitnessRewardThreshold  = 0.8
	FitnessPenaltyThreshold = 0.4

	// Скорости изменения здоровья (единиц/сек при полном эффекте)
	EnvHealthRate      = 0.004 // награда за отличную среду
	EnvPenaltyRate     = 0.008 // штраф за плохую среду
	NaturalRecoverRate = 0.002 // фоновая регенерация при низком стрессе

	// Стресс выше этого уровня блокирует фоновую регенерацию
	RecoveryStressCeiling = 0.5
)

// Множители интенсивности стрессоров по категориям
const (
	AbioticStressWeight = 1.0
	BioticStressWeight  = 1.25
)

// --- РОСТ ---

const (
	// Модификатор среды: lerp(EnvModMin, EnvModMax, fitness)
	EnvModMin = 0.2
	EnvModMax = 1.5

	// Модификатор здоровья: lerp(HealthModMin, HealthModMax, health)
	HealthModMin = 0.1
	HealthModMax = 1.2
)

// --- УХОД ---

const (
	// Минимальная релевантность действия нуждам растения.
	// Ниже - отказ без мутации (PreconditionNotMet).
	MinActionRelevance = 0.05

	// Окно тайминга циркадного оптимума, сек
	CareTimingWindow = 600.0

	// Период циркадного цикла растения, сек сим-времени
	CircadianPeriod = 86400.0
)

// --- РАСХОД РЕСУРСОВ ---

const (
	// Скорость расхода воды и нутриентов растением, ед/сек.
	// Масштабируется стадией (цветущее растение пьет больше).
	WaterUseRate    = 0.0004
	NutrientUseRate = 0.00025
)

// --- УРОЖАЙ ---

const (
	// Вклад здоровья и накопленного потенциала в оценку качества урожая
	HarvestHealthWeight    = 0.4
	HarvestPotentialWeight = 0.6
)
