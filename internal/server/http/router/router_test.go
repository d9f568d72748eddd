package router

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/finbase/pointledger/internal/metrics"
	"github.com/finbase/pointledger/internal/server/http/handlers"
	testhelpers "github.com/finbase/pointledger/internal/test"
)

func newTestRouter(t *testing.T, health HealthChecker) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return Setup(testhelpers.LedgerFacadeStub{}, health, metrics.New(), logger)
}

func TestSetupRoutes(t *testing.T) {
	engine := newTestRouter(t, &testhelpers.FactoryStub{})

	req := httptest.NewRequest(http.MethodGet, "/api/points/42", nil)
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for balance, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/points/42/history", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for history, got %d", resp.Code)
	}

	body, _ := json.Marshal(map[string]int64{"amount": 100})
	req = httptest.NewRequest(http.MethodPost, "/api/points/42/charge", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for charge, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/points/42/use", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for use, got %d", resp.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	engine := newTestRouter(t, &testhelpers.FactoryStub{})

	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	engine = newTestRouter(t, &testhelpers.FactoryStub{HealthErr: errors.New("db down")})
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", resp.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	engine := newTestRouter(t, &testhelpers.FactoryStub{})

	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if !bytes.Contains(resp.Body.Bytes(), []byte("go_goroutines")) {
		t.Fatal("expected runtime metrics in output")
	}
}

var _ handlers.LedgerFacade = (*testhelpers.LedgerFacadeStub)(nil)
