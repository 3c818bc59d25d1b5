// Package iometrics records counters of a curation pass and pushes them to
// a Prometheus Pushgateway. Batch passes end before any scrape could
// happen, so metrics are pushed once at the end of a pass.
package iometrics

import (
	"time"

	"github.com/gnames/npdb/pkg/npdb"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Job is the Pushgateway job name.
const Job = "npdb"

// Metrics of one pass.
type Metrics struct {
	url      string
	pass     string
	registry *prometheus.Registry

	read      prometheus.Counter
	malformed prometheus.Counter
	missing   prometheus.Counter
	changed   prometheus.Counter
	duration  prometheus.Gauge
}

// New creates metrics of a pass in a private registry. Empty url turns
// Push into a no-op.
func New(url, pass string) *Metrics {
	res := &Metrics{
		url:      url,
		pass:     pass,
		registry: prometheus.NewRegistry(),
		read: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Job,
			Name:      "rows_read_total",
			Help:      "Vendor rows or records read by the pass.",
		}),
		malformed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Job,
			Name:      "rows_malformed_total",
			Help:      "Vendor rows skipped because of parse errors.",
		}),
		missing: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Job,
			Name:      "records_missing_total",
			Help:      "Vendor rows with unknown accession ids.",
		}),
		changed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Job,
			Name:      "records_changed_total",
			Help:      "Records with at least one changed field.",
		}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Job,
			Name:      "pass_duration_seconds",
			Help:      "Duration of the pass.",
		}),
	}
	res.registry.MustRegister(
		res.read, res.malformed, res.missing, res.changed, res.duration,
	)
	return res
}

// Observe adds counts of a report and sets the duration.
func (m *Metrics) Observe(r npdb.Report, d time.Duration) {
	m.read.Add(float64(r.Read))
	m.malformed.Add(float64(r.Malformed))
	m.missing.Add(float64(r.Missing))
	m.changed.Add(float64(r.Changed))
	m.duration.Set(d.Seconds())
}

// Push sends metrics grouped by pass name.
func (m *Metrics) Push() error {
	if m.url == "" {
		return nil
	}
	err := push.New(m.url, Job).
		Gatherer(m.registry).
		Grouping("pass", m.pass).
		Push()
	if err != nil {
		return PushError(m.url, err)
	}
	return nil
}
