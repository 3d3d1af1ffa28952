package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder holds the service metrics
type Recorder struct {
	labelsGenerated *prom.CounterVec
	printJobs       *prom.CounterVec
	renderDuration  *prom.HistogramVec
	activeSessions  prom.Gauge
}

// NewRecorder constructs the metrics and registers them on reg
func NewRecorder(reg prom.Registerer) *Recorder {
	r := &Recorder{
		labelsGenerated: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "etiquetas",
			Name:      "labels_generated_total",
			Help:      "Labels built for print, by mode",
		}, []string{"mode"}),
		printJobs: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "etiquetas",
			Name:      "print_jobs_total",
			Help:      "Print requests by mode and output format",
		}, []string{"mode", "format"}),
		renderDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "etiquetas",
			Name:      "chrome_render_duration_seconds",
			Help:      "Time spent producing PDF/PNG output in headless Chrome",
			Buckets:   []float64{.5, 1, 2, 5, 10, 20, 30, 60, 120},
		}, []string{"format", "result"}),
		activeSessions: prom.NewGauge(prom.GaugeOpts{
			Namespace: "etiquetas",
			Name:      "form_sessions",
			Help:      "Form sessions currently held in memory",
		}),
	}
	reg.MustRegister(r.labelsGenerated, r.printJobs, r.renderDuration, r.activeSessions)
	return r
}

// Handler serves the metrics of reg
func Handler(reg *prom.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// LabelsPrinted counts one print request of n labels
func (r *Recorder) LabelsPrinted(mode, format string, n int) {
	if r == nil {
		return
	}
	r.printJobs.WithLabelValues(mode, format).Inc()
	r.labelsGenerated.WithLabelValues(mode).Add(float64(n))
}

// ChromeRender observes one headless Chrome run
func (r *Recorder) ChromeRender(format string, started time.Time, err error) {
	if r == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.renderDuration.WithLabelValues(format, result).Observe(time.Since(started).Seconds())
}

// Sessions sets the number of live form sessions
func (r *Recorder) Sessions(n int) {
	if r == nil {
		return
	}
	r.activeSessions.Set(float64(n))
}
