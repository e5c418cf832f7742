package check_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esh-b/salon-booking-service/internal/slot"
	checkAvailability "github.com/esh-b/salon-booking-service/internal/usecase/check_availability"
)

type mockUseCase struct {
	executeFunc func(ctx context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error)
}

func (m *mockUseCase) Execute(ctx context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
	return m.executeFunc(ctx, req)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, h *Handler, url string) (*httptest.ResponseRecorder, AvailabilityResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	var body AvailabilityResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestHandle_Available(t *testing.T) {
	h := NewHandler(&mockUseCase{
		executeFunc: func(ctx context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
			assert.Equal(t, "2030-04-23T16:00:00-04:00", req.StartDatetime)
			return &checkAvailability.Response{Available: true}, nil
		},
	}, noopLogger{})

	rec, body := doRequest(t, h, "/api/v1/availability?start=2030-04-23T16:00:00-04:00")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, StatusAvailable, body.Status)
	assert.Empty(t, body.Reason)
}

func TestHandle_Unavailable(t *testing.T) {
	h := NewHandler(&mockUseCase{
		executeFunc: func(ctx context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
			return &checkAvailability.Response{Available: false}, nil
		},
	}, noopLogger{})

	rec, body := doRequest(t, h, "/api/v1/availability?start=2030-04-23T16:00:00-04:00")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, StatusUnavailable, body.Status)
	assert.NotEmpty(t, body.Reason)
}

func TestHandle_ValidationErrorsAsStatusError(t *testing.T) {
	tests := []struct {
		name       string
		slotErr    error
		wantReason string
	}{
		{"invalid format", slot.ErrInvalidFormat, msgInvalidFormat},
		{"missing timezone", slot.ErrMissingTimezone, msgMissingTimezone},
		{"past slot", slot.ErrPastSlot, msgPastSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&mockUseCase{
				executeFunc: func(ctx context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
					return nil, tt.slotErr
				},
			}, noopLogger{})

			rec, body := doRequest(t, h, "/api/v1/availability?start=whatever")

			// Ошибка валидации это валидный результат проверки, не HTTP ошибка
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, StatusError, body.Status)
			assert.Equal(t, tt.wantReason, body.Reason)
		})
	}
}

func TestHandle_MissingStartParam(t *testing.T) {
	h := NewHandler(&mockUseCase{
		executeFunc: func(ctx context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
			t.Fatal("use case must not be called without 'start'")
			return nil, nil
		},
	}, noopLogger{})

	rec, _ := doRequest(t, h, "/api/v1/availability")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	h := NewHandler(&mockUseCase{
		executeFunc: func(ctx context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
			return nil, checkAvailability.ErrInternal
		},
	}, noopLogger{})

	rec, _ := doRequest(t, h, "/api/v1/availability?start=2030-04-23T16:00:00-04:00")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
