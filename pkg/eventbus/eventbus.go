package eventbus

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const listenerTimeout = 1 * time.Minute

type Event interface {
	Name() string
}

type Listener func(ctx context.Context, event Event) error

// Bus - шина событий внутри процесса. Слушатели выполняются асинхронно.
type Bus struct {
	listeners map[string][]Listener
	mu        sync.RWMutex
	wg        sync.WaitGroup
	logger    *zap.Logger
}

func New(logger *zap.Logger) *Bus {
	return &Bus{
		listeners: make(map[string][]Listener),
		logger:    logger.Named("eventbus"),
	}
}

func (b *Bus) Subscribe(eventName string, listener Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners[eventName] = append(b.listeners[eventName], listener)
}

// Publish не ждёт слушателей. Значения контекста сохраняются, отмена - нет:
// обработка не должна обрываться вместе с HTTP-запросом.
func (b *Bus) Publish(ctx context.Context, event Event) {
	b.mu.RLock()
	listeners := append([]Listener(nil), b.listeners[event.Name()]...)
	b.mu.RUnlock()

	for _, listener := range listeners {
		b.wg.Add(1)
		go func(l Listener) {
			defer b.wg.Done()
			ctxWithTimeout, cancel := context.WithTimeout(context.WithoutCancel(ctx), listenerTimeout)
			defer cancel()

			if err := l(ctxWithTimeout, event); err != nil {
				b.logger.Error("Ошибка в обработчике события",
					zap.String("event", event.Name()),
					zap.Error(err),
				)
			}
		}(listener)
	}
}

// Wait ждёт завершения всех запущенных слушателей (graceful shutdown и тесты).
func (b *Bus) Wait() {
	b.wg.Wait()
}
