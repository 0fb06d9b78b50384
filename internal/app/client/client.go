package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"marketstore/internal/app/client/config"
	"marketstore/internal/domain/market"

	"golang.org/x/exp/slog"
)

// APIError - ответ сервера со статусом вне 2xx, кроме ошибок аргументов.
type APIError struct {
	Status int
	Title  string
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("server error %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("server error %d: %s", e.Status, e.Title)
}

// Health - ответ GET /api/v1/health.
type Health struct {
	Status  string `json:"status" yaml:"status"`
	Markets int64  `json:"markets" yaml:"markets"`
}

type Client struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	userAgent string
}

func New(cfg *config.Config, log *slog.Logger) *Client {
	baseURL := strings.TrimRight(cfg.ServerAddress, "/")
	if !strings.Contains(baseURL, "://") {
		baseURL = "http://" + baseURL
	}

	return &Client{
		client:    &http.Client{Timeout: cfg.RequestTimeout},
		log:       log.With("component", "market_client"),
		baseURL:   baseURL,
		userAgent: "MarketStore-Client/1.0",
	}
}

type listResponse struct {
	Markets []market.Record `json:"markets"`
}

type updateRequest struct {
	Market     market.Template `json:"market"`
	Conditions market.Template `json:"conditions"`
}

// Echo отправляет рынок серверу и возвращает ответ без изменений.
func (c *Client) Echo(ctx context.Context, rec market.Record) (market.Record, error) {
	var out market.Record
	err := c.do(ctx, http.MethodPost, "/api/v1/markets/echo", rec, &out)
	return out, err
}

func (c *Client) Create(ctx context.Context, t market.Template) (market.Record, error) {
	var out market.Record
	err := c.do(ctx, http.MethodPost, "/api/v1/markets", t, &out)
	return out, err
}

func (c *Client) Read(ctx context.Context, t market.Template) ([]market.Record, error) {
	var out listResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/markets/read", t, &out); err != nil {
		return nil, err
	}
	return out.Markets, nil
}

func (c *Client) Update(ctx context.Context, values, conditions market.Template) ([]market.Record, error) {
	var out listResponse
	req := updateRequest{Market: values, Conditions: conditions}
	if err := c.do(ctx, http.MethodPost, "/api/v1/markets/update", req, &out); err != nil {
		return nil, err
	}
	return out.Markets, nil
}

func (c *Client) Delete(ctx context.Context, t market.Template) ([]market.Record, error) {
	var out listResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/markets/delete", t, &out); err != nil {
		return nil, err
	}
	return out.Markets, nil
}

// HealthCheck проверяет доступность сервера и его хранилища
func (c *Client) HealthCheck(ctx context.Context) (Health, error) {
	var out Health
	err := c.do(ctx, http.MethodGet, "/api/v1/health", nil, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("User-Agent", c.userAgent)

	c.log.Debug("sending request", "method", method, "url", req.URL.String())

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("server unavailable: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	c.log.Debug("response received", "status", resp.StatusCode, "request_id", resp.Header.Get("X-Request-ID"))

	if resp.StatusCode >= http.StatusBadRequest {
		return parseError(resp.StatusCode, data)
	}

	if result != nil {
		if err := json.Unmarshal(data, result); err != nil {
			return fmt.Errorf("parse response: %w", err)
		}
	}
	return nil
}

// parseError разбирает problem+json ответ сервера. 400 и 422 (ошибка
// схемы запроса) превращаются в market.ErrInvalidArgument.
func parseError(status int, data []byte) error {
	var problem struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
	}
	_ = json.Unmarshal(data, &problem)
	if problem.Title == "" {
		problem.Title = http.StatusText(status)
	}

	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return &market.Error{Kind: market.ErrInvalidArgument, Message: problem.Detail}
	}
	return &APIError{Status: status, Title: problem.Title, Detail: problem.Detail}
}

// IsInvalidArgument сообщает, что сервер отклонил аргументы запроса.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, market.ErrInvalidArgument)
}

type contextKey struct{}

// NewContext возвращает копию ctx, несущую клиента.
func NewContext(ctx context.Context, c *Client) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// FromContext достает клиента, положенного через NewContext.
func FromContext(ctx context.Context) (*Client, bool) {
	c, ok := ctx.Value(contextKey{}).(*Client)
	return c, ok
}
