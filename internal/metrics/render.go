package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	documentsRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cvgen",
			Subsystem: "pdf",
			Name:      "documents_rendered_total",
			Help:      "Total number of CV documents rendered, by template.",
		},
		[]string{"template"},
	)

	renderDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "cvgen",
			Subsystem: "pdf",
			Name:      "render_duration_seconds",
			Help:      "Time spent producing one CV document.",
			Buckets:   prometheus.DefBuckets,
		},
	)

	photosSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "cvgen",
			Subsystem: "pdf",
			Name:      "photos_skipped_total",
			Help:      "Profile photos dropped because they could not be decoded or placed.",
		},
	)
)

// DocumentRendered records one successfully rendered document.
func DocumentRendered(template string, elapsed time.Duration) {
	documentsRendered.WithLabelValues(template).Inc()
	renderDuration.Observe(elapsed.Seconds())
}

// PhotoSkipped records one best-effort photo degradation.
func PhotoSkipped() {
	photosSkipped.Inc()
}
