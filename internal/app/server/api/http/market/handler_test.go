package market

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"marketstore/internal/domain/market"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Echo(ctx context.Context, rec market.Record) market.Record {
	args := m.Called(ctx, rec)
	return args.Get(0).(market.Record)
}

func (m *MockService) Create(ctx context.Context, t market.Template) (market.Record, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(market.Record), args.Error(1)
}

func (m *MockService) Read(ctx context.Context, t market.Template) ([]market.Record, error) {
	args := m.Called(ctx, t)
	return args.Get(0).([]market.Record), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, values, conditions market.Template) ([]market.Record, error) {
	args := m.Called(ctx, values, conditions)
	return args.Get(0).([]market.Record), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, t market.Template) ([]market.Record, error) {
	args := m.Called(ctx, t)
	return args.Get(0).([]market.Record), args.Error(1)
}

func (m *MockService) Stats(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func setupAPI(t *testing.T, svc market.Servicer) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewHandler(svc, slog.Default(), huma.Middlewares{}).SetupRoutes(api)
	return api
}

func decodeList(t *testing.T, body []byte) []Market {
	t.Helper()
	var resp listResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Markets
}

func TestHandler_Echo(t *testing.T) {
	svc := new(MockService)
	rec := market.Record{ID: 7, Name: "A", Zip: market.Some("99999")}
	svc.On("Echo", mock.Anything, rec).Return(rec)
	api := setupAPI(t, svc)

	resp := api.Post("/api/v1/markets/echo", map[string]any{"id": 7, "name": "A", "zip": "99999"})

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"id":7,"name":"A","zip":"99999"}`, resp.Body.String())
	svc.AssertExpectations(t)
}

func TestHandler_Create(t *testing.T) {
	tests := []struct {
		name         string
		body         map[string]any
		template     market.Template
		result       market.Record
		err          error
		expectedCode int
	}{
		{
			name:         "created",
			body:         map[string]any{"name": "Ferry Plaza", "city": "San Francisco", "lat": 37.7955},
			template:     market.Template{Name: market.Some("Ferry Plaza"), City: market.Some("San Francisco"), Lat: market.Some(37.7955)},
			result:       market.Record{ID: 1, Name: "Ferry Plaza", City: market.Some("San Francisco"), Lat: market.Some(37.7955)},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "null fields are unset",
			body:         map[string]any{"name": "B", "zip": nil},
			template:     market.Template{Name: market.Some("B")},
			result:       market.Record{ID: 2, Name: "B"},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "invalid argument",
			body:         map[string]any{"id": 5, "name": "C"},
			template:     market.Template{ID: market.Some[int64](5), Name: market.Some("C")},
			err:          &market.Error{Kind: market.ErrInvalidArgument, Message: "id must not be specified"},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "storage failure",
			body:         map[string]any{"name": "D"},
			template:     market.Template{Name: market.Some("D")},
			err:          &market.Error{Kind: market.ErrStorageFailure, Message: "create market", Cause: errors.New("disk full")},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			svc := new(MockService)
			svc.On("Create", mock.Anything, tt.template).Return(tt.result, tt.err)
			api := setupAPI(t, svc)

			// Act
			resp := api.Post("/api/v1/markets", tt.body)

			// Assert
			assert.Equal(t, tt.expectedCode, resp.Code)
			svc.AssertExpectations(t)
			if tt.err != nil {
				var model huma.ErrorModel
				require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &model))
				assert.NotEmpty(t, model.Detail)
				return
			}
			var got Market
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
			assert.Equal(t, tt.result, got.toDomain())
		})
	}
}

func TestHandler_Read(t *testing.T) {
	svc := new(MockService)
	records := []market.Record{
		{ID: 1, Name: "A", State: market.Some("CA")},
		{ID: 3, Name: "C", State: market.Some("CA")},
	}
	svc.On("Read", mock.Anything, market.Template{State: market.Some("CA")}).Return(records, nil)
	api := setupAPI(t, svc)

	resp := api.Post("/api/v1/markets/read", map[string]any{"state": "CA"})

	require.Equal(t, http.StatusOK, resp.Code)
	got := decodeList(t, resp.Body.Bytes())
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}

func TestHandler_ReadEmptyList(t *testing.T) {
	svc := new(MockService)
	svc.On("Read", mock.Anything, market.Template{Name: market.Some("nope")}).Return([]market.Record{}, nil)
	api := setupAPI(t, svc)

	resp := api.Post("/api/v1/markets/read", map[string]any{"name": "nope"})

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"markets":[]}`, resp.Body.String())
}

func TestHandler_Update(t *testing.T) {
	svc := new(MockService)
	values := market.Template{Zip: market.Some("10001")}
	conditions := market.Template{City: market.Some("NYC")}
	svc.On("Update", mock.Anything, values, conditions).
		Return([]market.Record{{ID: 4, Name: "X", City: market.Some("NYC"), Zip: market.Some("10001")}}, nil)
	api := setupAPI(t, svc)

	resp := api.Post("/api/v1/markets/update", map[string]any{
		"market":     map[string]any{"zip": "10001"},
		"conditions": map[string]any{"city": "NYC"},
	})

	require.Equal(t, http.StatusOK, resp.Code)
	got := decodeList(t, resp.Body.Bytes())
	require.Len(t, got, 1)
	require.NotNil(t, got[0].Zip)
	assert.Equal(t, "10001", *got[0].Zip)
	svc.AssertExpectations(t)
}

func TestHandler_UpdateInvalid(t *testing.T) {
	svc := new(MockService)
	svc.On("Update", mock.Anything, mock.Anything, mock.Anything).
		Return([]market.Record(nil), &market.Error{Kind: market.ErrInvalidArgument, Message: "id must not be specified"})
	api := setupAPI(t, svc)

	resp := api.Post("/api/v1/markets/update", map[string]any{
		"market":     map[string]any{"id": 9},
		"conditions": map[string]any{},
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "id must not be specified")
}

func TestHandler_Delete(t *testing.T) {
	svc := new(MockService)
	svc.On("Delete", mock.Anything, market.Template{ID: market.Some[int64](2)}).
		Return([]market.Record{{ID: 2, Name: "B"}}, nil)
	api := setupAPI(t, svc)

	resp := api.Post("/api/v1/markets/delete", map[string]any{"id": 2})

	require.Equal(t, http.StatusOK, resp.Code)
	got := decodeList(t, resp.Body.Bytes())
	require.Len(t, got, 1)
	assert.Equal(t, "B", got[0].Name)
}

func TestToHTTPError(t *testing.T) {
	err := toHTTPError(&market.Error{Kind: market.ErrInvalidArgument, Message: "name must be specified"})
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadRequest, se.GetStatus())
	assert.Equal(t, "name must be specified", se.Error())

	err = toHTTPError(errors.New("boom"))
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusInternalServerError, se.GetStatus())
}
