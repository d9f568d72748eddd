package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordOperation(t *testing.T) {
	m := New()

	m.RecordOperation("charge", OutcomeOK)
	m.RecordOperation("charge", OutcomeOK)
	m.RecordOperation("use", OutcomeRejected)

	if got := testutil.ToFloat64(m.operationsTotal.WithLabelValues("charge", OutcomeOK)); got != 2 {
		t.Fatalf("expected 2 charge operations, got %v", got)
	}
	if got := testutil.ToFloat64(m.operationsTotal.WithLabelValues("use", OutcomeRejected)); got != 1 {
		t.Fatalf("expected 1 rejected use, got %v", got)
	}
}

func TestSetStorageUp(t *testing.T) {
	m := New()

	m.SetStorageUp(true)
	if got := testutil.ToFloat64(m.storageUp); got != 1 {
		t.Fatalf("expected gauge 1, got %v", got)
	}

	m.SetStorageUp(false)
	if got := testutil.ToFloat64(m.storageUp); got != 0 {
		t.Fatalf("expected gauge 0, got %v", got)
	}
}

func TestHandlerServesRegistry(t *testing.T) {
	m := New()
	m.RecordOperation("charge", OutcomeOK)
	m.ObserveRequest(http.MethodPost, "/api/points/:userID/charge", http.StatusOK, 5*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "ledger_operations_total") {
		t.Fatal("expected ledger_operations_total in output")
	}
	if !strings.Contains(body, "http_requests_latency_seconds") {
		t.Fatal("expected http_requests_latency_seconds in output")
	}
}

func TestInstancesAreIndependent(t *testing.T) {
	first := New()
	second := New()

	first.RecordOperation("charge", OutcomeOK)

	if got := testutil.ToFloat64(second.operationsTotal.WithLabelValues("charge", OutcomeOK)); got != 0 {
		t.Fatalf("expected independent registries, got %v", got)
	}
}
