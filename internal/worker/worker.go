package worker

import (
	"context"
)

// Worker - фоновый процесс сервиса (обработчик стрима, прогрев кеша)
type Worker interface {
	// Start блокирует до остановки воркера или отмены контекста
	Start(ctx context.Context) error

	// Stop сигнализирует воркеру завершиться, повторный вызов безопасен
	Stop() error

	Name() string
}
