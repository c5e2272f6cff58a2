package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/banking_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requestCount reads ledger_http_requests_total for one label set from the default registry.
func requestCount(t *testing.T, method, endpoint, status string) float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() != "ledger_http_requests_total" {
			continue
		}
		for _, m := range family.GetMetric() {
			labels := map[string]string{}
			for _, l := range m.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			if labels["method"] == method && labels["endpoint"] == endpoint && labels["status"] == status {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestPrometheusMiddleware_UsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.PrometheusMiddleware())
	r.GET("/things/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	before := requestCount(t, http.MethodGet, "/things/:id", "200")
	missBefore := requestCount(t, http.MethodGet, "unmatched", "404")

	for _, path := range []string{"/things/1", "/things/2", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, before+2, requestCount(t, http.MethodGet, "/things/:id", "200"))
	assert.Equal(t, missBefore+1, requestCount(t, http.MethodGet, "unmatched", "404"))
}
