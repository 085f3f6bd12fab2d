package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetricsIsolatedRegistries(t *testing.T) {
	// Each instance owns its registry, so repeated construction must not
	// panic with duplicate registration.
	m1 := NewMetrics()
	m2 := NewMetrics()
	require.NotNil(t, m1)
	require.NotNil(t, m2)
}

func TestRecordOpExposed(t *testing.T) {
	m := NewMetrics()
	m.RecordOp("write", "ok", 5*time.Millisecond)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	m.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "savestore_operations_total")
	assert.Contains(t, body, `op="write"`)
}

func TestTimer(t *testing.T) {
	m := NewMetrics()
	timer := NewTimer(m, "read")
	timer.Stop("error")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	m.Handler().ServeHTTP(w, req)
	assert.Contains(t, w.Body.String(), `status="error"`)
}
