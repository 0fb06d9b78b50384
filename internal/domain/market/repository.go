package market

import (
	"context"
)

// Repository - хранилище рынков. Каждый вызов выполняется в одной транзакции:
// либо применяются все чтения и записи вызова, либо ни одной.
// Входные шаблоны уже проверены сервисом.
type Repository interface {
	// Create вставляет запись и возвращает ее, перечитанную в той же транзакции.
	Create(ctx context.Context, t Template) (Record, error)
	// Read возвращает все записи, подходящие под шаблон, по возрастанию id.
	Read(ctx context.Context, t Template) ([]Record, error)
	// Update применяет Merge(record, values) к каждой записи, подходящей под
	// conditions, и возвращает записи после обновления.
	Update(ctx context.Context, values, conditions Template) ([]Record, error)
	// Delete удаляет подходящие записи и возвращает их состояние до удаления.
	Delete(ctx context.Context, t Template) ([]Record, error)
	Count(ctx context.Context) (int64, error)
}
