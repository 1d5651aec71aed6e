// Package metrics exposes the site's prometheus counters.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so tests can build as many as they like.
type Metrics struct {
	Registry *prometheus.Registry

	PageViews      *prometheus.CounterVec
	ProjectQueries *prometheus.CounterVec
	ServiceToggles *prometheus.CounterVec
	Contact        *prometheus.CounterVec
	ContentReloads prometheus.Counter
}

// New registers every collector on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		PageViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "page_views_total",
			Help:      "Rendered pages and fragments by route.",
		}, []string{"route"}),
		ProjectQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "project_queries_total",
			Help:      "Project grid renders by category.",
		}, []string{"category"}),
		ServiceToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "service_toggles_total",
			Help:      "Service detail panel toggles by resulting state.",
		}, []string{"state"}),
		Contact: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "contact_submissions_total",
			Help:      "Contact form submissions by outcome.",
		}, []string{"outcome"}),
		ContentReloads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "content_reloads_total",
			Help:      "Successful content hot reloads.",
		}),
	}
	m.Registry.MustRegister(
		m.PageViews,
		m.ProjectQueries,
		m.ServiceToggles,
		m.Contact,
		m.ContentReloads,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
