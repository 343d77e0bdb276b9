package stats

import (
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/pixelboard/pixelboard-go/lib"
	"github.com/pixelboard/pixelboard-go/lib/settings"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	pixelboardActiveCanvases = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "pixelboard",
			Name:      "active_canvases",
			Help:      "Number of canvases currently stored",
		},
	)

	pixelboardEditsApplied = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "pixelboard",
			Name:      "edits_applied_total",
			Help:      "Pixel edits applied since startup",
		},
	)

	pixelboardEditsRejected = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "pixelboard",
			Name:      "edits_rejected_total",
			Help:      "Pixel edits rejected since startup (cooldown, bounds, color)",
		},
	)
)

func Init(store *lib.InitStore) {
	checks := []Checker{
		DBChecker{store.Store},
		CanvasChecker{store.CanvasManager},
	}

	version, releaseID := settings.BuildInfo()
	store.C.Get("/health", Handler(
		version,
		releaseID,
		"pixelboard-api",
		checks,
	))

	if store.RetrievedSettings.EnableMetrics {
		go func() {
			ticker := time.NewTicker(10 * time.Second)
			defer ticker.Stop()

			for range ticker.C {
				stats, err := store.CanvasManager.GetStats()
				if err != nil {
					continue
				}

				pixelboardActiveCanvases.Set(float64(stats.ActiveCanvases))
				pixelboardEditsApplied.Set(float64(stats.EditsApplied))
				pixelboardEditsRejected.Set(float64(stats.EditsRejected))
			}
		}()
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			pixelboardActiveCanvases,
			pixelboardEditsApplied,
			pixelboardEditsRejected,
		)
		handler := promhttp.HandlerFor(
			reg,
			promhttp.HandlerOpts{},
		)
		store.C.Get("/metrics", adaptor.HTTPHandler(handler))
	}
}
