package market

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) echoOp() huma.Operation {
	return huma.Operation{
		OperationID: "markets-echo",
		Method:      http.MethodPost,
		Path:        "/api/v1/markets/echo",
		Summary:     "Вернуть рынок без изменений",
		Tags:        []string{"markets"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "markets-create",
		Method:        http.MethodPost,
		Path:          "/api/v1/markets",
		Summary:       "Создать рынок",
		Tags:          []string{"markets"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) readOp() huma.Operation {
	return huma.Operation{
		OperationID: "markets-read",
		Method:      http.MethodPost,
		Path:        "/api/v1/markets/read",
		Summary:     "Найти рынки по шаблону",
		Tags:        []string{"markets"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "markets-update",
		Method:      http.MethodPost,
		Path:        "/api/v1/markets/update",
		Summary:     "Обновить рынки, подходящие под условия",
		Tags:        []string{"markets"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "markets-delete",
		Method:      http.MethodPost,
		Path:        "/api/v1/markets/delete",
		Summary:     "Удалить рынки по шаблону",
		Tags:        []string{"markets"},
		Middlewares: h.middleware,
	}
}
