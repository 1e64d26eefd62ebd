package engine

import "verdant-server/internal/domain"

// EventBus - синхронная шина уведомлений ядра.
// Подписчики вызываются в порядке регистрации сразу после породившей
// событие мутации, на тик-горутине. Подписчик НЕ должен блокироваться
// и НЕ должен мутировать симуляцию.
type EventBus struct {
	subscribers []func(domain.Event)
}

func NewEventBus() *EventBus {
	return &EventBus{}
}

// Subscribe добавляет подписчика. Не потокобезопасно: все подписки
// выполняются на старте, до запуска цикла.
func (b *EventBus) Subscribe(fn func(domain.Event)) {
	b.subscribers = append(b.subscribers, fn)
}

// Publish доставляет событие всем подписчикам синхронно.
func (b *EventBus) Publish(e domain.Event) {
	for _, fn := range b.subscribers {
		fn(e)
	}
}
