// HTTP API хранилища рынков. Все операции над рынками - POST с JSON-телом:
//
//	POST /api/v1/markets/echo    # Вернуть рынок как есть
//	POST /api/v1/markets         # Создать рынок
//	POST /api/v1/markets/read    # Найти рынки по шаблону
//	POST /api/v1/markets/update  # Обновить рынки по условиям
//	POST /api/v1/markets/delete  # Удалить рынки по шаблону
//	GET  /api/v1/health          # Проверка хранилища
package api

import (
	healthAPI "marketstore/internal/app/server/api/http/health"
	marketAPI "marketstore/internal/app/server/api/http/market"
	"marketstore/internal/app/server/api/http/middleware"
	"marketstore/internal/app/server/api/http/middleware/logger"
	"marketstore/internal/domain/market"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health *healthAPI.Handler
	Market *marketAPI.Handler
}

// New создает *chi.Mux со всеми операциями, зарегистрированными через huma.
func New(service market.Servicer, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("Market Store API", "1.0.0")
	API := humachi.New(mux, config)

	h := handlers(service, log)
	h.Health.SetupRoutes(API)
	h.Market.SetupRoutes(API)

	return mux
}

func handlers(service market.Servicer, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer(loggerMW.Middleware())

	return &Handlers{
		Health: healthAPI.NewHandler(service, log, middlewares.Next()),
		Market: marketAPI.NewHandler(service, log, middlewares.Next()),
	}
}
