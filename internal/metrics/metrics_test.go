package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareLabelsByRouteTemplate(t *testing.T) {
	m := New()

	r := mux.NewRouter()
	r.HandleFunc("/send/sol", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}).Methods(http.MethodPost)
	r.Use(m.Middleware)

	for i := 0; i < 3; i++ {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/send/sol", nil))
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("POST", "/send/sol", "400")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.httpInFlight))
}

func TestMiddlewareOutsideRouter(t *testing.T) {
	m := New()
	h := m.Middleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/anything/123", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "unmatched", "200")))
}

func TestRecorders(t *testing.T) {
	m := New()

	m.RecordInstruction("mint_to")
	m.RecordInstruction("mint_to")
	m.RecordFailure("decode")
	m.RecordAuditDropped()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.instructionsBuilt.WithLabelValues("mint_to")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.failures.WithLabelValues("decode")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.auditDropped))
}

func TestHandlerExposesRegistry(t *testing.T) {
	m := New()
	m.RecordInstruction("transfer_sol")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `solgate_instructions_built_total{kind="transfer_sol"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestInstancesAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.RecordFailure("range")

	assert.Equal(t, 1.0, testutil.ToFloat64(a.failures.WithLabelValues("range")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.failures.WithLabelValues("range")))
}
