package gpxitinerary

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the service metrics on a private registry.
type Collector struct {
	reg *prometheus.Registry

	Conversions      prometheus.Counter
	ConversionErrors *prometheus.CounterVec // reason label: upload|parse|build

	BuildDuration prometheus.Histogram
	UploadSize    prometheus.Histogram
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		Conversions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gpxitinerary_conversions_total",
			Help: "Total successful conversions.",
		}),
		ConversionErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gpxitinerary_conversion_errors_total",
			Help: "Total failed conversions.",
		}, []string{"reason"}),
		BuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gpxitinerary_build_duration_seconds",
			Help:    "Duration of itinerary assembly per upload.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 15),
		}),
		UploadSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gpxitinerary_upload_size_bytes",
			Help:    "Size of uploaded GPX files.",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 10),
		}),
	}

	reg.MustRegister(
		c.Conversions, c.ConversionErrors,
		c.BuildDuration, c.UploadSize,
	)
	return c
}

func (c *Collector) Handler() http.Handler { return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{}) }
