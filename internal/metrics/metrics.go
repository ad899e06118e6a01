package metrics

import "github.com/prometheus/client_golang/prometheus"

// Application outcome labels
const (
	StatusCreated     = "created"
	StatusRejected    = "rejected"
	StatusRateLimited = "rate_limited"
)

// Metrics exposes counters for specialization ingestion and applications.
type Metrics struct {
	ingestLines  prometheus.Counter
	ingestDrafts *prometheus.CounterVec
	applications *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ingestLines: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "eduportal",
			Subsystem: "ingest",
			Name:      "lines_total",
			Help:      "Non-blank lines read from pasted or imported specialization lists",
		}),
		ingestDrafts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "eduportal",
			Subsystem: "ingest",
			Name:      "drafts_total",
			Help:      "Parsed specialization drafts by eligibility",
		}, []string{"status"}),
		applications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "eduportal",
			Name:      "applications_total",
			Help:      "Student application submissions by outcome",
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.ingestLines, m.ingestDrafts, m.applications)
	return m
}

// ObserveIngest records one parse run
func (m *Metrics) ObserveIngest(lines, eligible, dropped int) {
	if m == nil {
		return
	}
	m.ingestLines.Add(float64(lines))
	m.ingestDrafts.WithLabelValues("eligible").Add(float64(eligible))
	m.ingestDrafts.WithLabelValues("dropped").Add(float64(dropped))
}

func (m *Metrics) ObserveApplication(status string) {
	if m == nil {
		return
	}
	m.applications.WithLabelValues(status).Inc()
}
