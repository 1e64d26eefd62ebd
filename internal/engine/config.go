package engine

import "time"

// Config хранит параметры запуска движка симуляции.
type Config struct {
	// TickInterval - реальная частота тиков хоста.
	TickInterval time.Duration

	// TimeScale - сим-секунд на одну реальную секунду.
	// 1.0 - реальное время, 60.0 - минута за секунду.
	TimeScale float64

	// BatchSize - максимум растений, обрабатываемых за один тик.
	BatchSize int

	// CommandBuffer - емкость канала входящих команд.
	CommandBuffer int

	// HealthEventEpsilon - минимальная дельта здоровья для публикации
	// HealthChangedEvent (дребезг гасится на стороне издателя).
	HealthEventEpsilon float64

	// EnvEventEpsilon - минимальная дельта стабильности среды для
	// публикации EnvironmentChangedEvent.
	EnvEventEpsilon float64

	// FacilitySize - условный размер хозяйства (единицы площади),
	// входит в давление масштаба модели бремени.
	FacilitySize float64

	// Seed - мастер-зерно фенотипов. Все растения джиттерятся от него.
	Seed int64
}

// NewConfig создает конфиг по умолчанию (случайный сид).
func NewConfig() Config {
	return Config{
		TickInterval:       250 * time.Millisecond,
		TimeScale:          60.0,
		BatchSize:          64,
		CommandBuffer:      100,
		HealthEventEpsilon: 0.02,
		EnvEventEpsilon:    0.05,
		FacilitySize:       5.0,
		Seed:               time.Now().UnixNano(),
	}
}
