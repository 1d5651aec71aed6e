package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountersAndHandler(t *testing.T) {
	m := New()
	m.PageViews.WithLabelValues("/").Inc()
	m.PageViews.WithLabelValues("/").Inc()
	m.Contact.WithLabelValues("succeeded").Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.PageViews.WithLabelValues("/")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Contact.WithLabelValues("succeeded")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `portfolio_page_views_total{route="/"} 2`)
}

func TestNewIsIndependent(t *testing.T) {
	// Separate registries must not collide on registration.
	a, b := New(), New()
	a.ContentReloads.Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(a.ContentReloads))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.ContentReloads))
}
