package worker

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	"storefront/internal/delivery/worker/handler"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestWorkerEcho(t *testing.T, bodyLimit string) (http.Handler, *mockUsecase.MockOrderEventUsecase) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvDevelop
	cfg.HTTP.MaxRequestBodySize = bodyLimit
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := mockUsecase.NewMockOrderEventUsecase(t)

	push := handler.NewPushHandler(handler.PushHandlerParams{Config: cfg, Logger: logger, OrderEventUC: uc})

	return newEcho(cfg, logger, push), uc
}

func TestWorkerServer_Health(t *testing.T) {
	e, _ := newTestWorkerEcho(t, "1M")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, HealthPath, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","service":"orderworker"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestWorkerServer_PushRoute(t *testing.T) {
	e, uc := newTestWorkerEcho(t, "1M")
	event := service.NewDomainEvent(constants.EventOrderPaid, "req-9")
	raw, err := json.Marshal(event)
	require.NoError(t, err)

	uc.EXPECT().HandleEvent(mock.Anything, mock.MatchedBy(func(got *service.DomainEvent) bool {
		return got.ID == event.ID
	})).Return(nil).Once()

	body := `{"message":{"data":"` + base64.StdEncoding.EncodeToString(raw) + `","messageId":"m-1"}}`
	req := httptest.NewRequest(http.MethodPost, PushPath, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWorkerServer_PushBodyLimit(t *testing.T) {
	e, _ := newTestWorkerEcho(t, "1K")
	req := httptest.NewRequest(http.MethodPost, PushPath, strings.NewReader(strings.Repeat("x", 4096)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestWorkerServer_UnknownRoute(t *testing.T) {
	e, _ := newTestWorkerEcho(t, "1M")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
