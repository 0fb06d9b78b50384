package middleware

import (
	"github.com/danielgtaylor/huma/v2"
)

// Container собирает цепочки мидлварей для групп операций. Базовые
// мидлвари (например, логгер запросов) входят в каждую цепочку первыми,
// за ними идут добавленные через Add для текущей группы.
type Container struct {
	base  huma.Middlewares
	extra huma.Middlewares
}

func NewContainer(base ...func(ctx huma.Context, next func(huma.Context))) *Container {
	return &Container{base: base}
}

// Add добавляет мидлварь только в следующую цепочку
func (mc *Container) Add(middleware func(ctx huma.Context, next func(huma.Context))) {
	mc.extra = append(mc.extra, middleware)
}

// Next возвращает цепочку для очередной группы: базовые мидлвари плюс
// добавленные с прошлого вызова. Добавленные после этого сбрасываются.
func (mc *Container) Next() huma.Middlewares {
	result := make(huma.Middlewares, 0, len(mc.base)+len(mc.extra))
	result = append(result, mc.base...)
	result = append(result, mc.extra...)
	mc.extra = nil
	return result
}
