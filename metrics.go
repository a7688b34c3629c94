package yardcore

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "yardcore"

// PerformanceCollector exports a PerformanceController as Prometheus metrics.
//
// Gauges are read from a fresh snapshot on every scrape; tier transitions are
// counted through an OnTierChange listener.
//
//	reg := prometheus.NewRegistry()
//	reg.MustRegister(yardcore.NewPerformanceCollector(controller))
type PerformanceCollector struct {
	controller *PerformanceController

	tierDesc        *prometheus.Desc
	fpsDesc         *prometheus.Desc
	avgFPSDesc      *prometheus.Desc
	lowFPSDesc      *prometheus.Desc
	monitoringDesc  *prometheus.Desc
	contextLostDesc *prometheus.Desc

	transitions *prometheus.CounterVec
}

// NewPerformanceCollector creates a collector bound to c.
func NewPerformanceCollector(c *PerformanceController) *PerformanceCollector {
	pc := &PerformanceCollector{
		controller: c,
		tierDesc: prometheus.NewDesc(
			prometheus.BuildFQName(metricsNamespace, "render", "quality_tier"),
			"Current quality tier ordinal (0=low, 1=medium, 2=high, 3=ultra).",
			nil, nil,
		),
		fpsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(metricsNamespace, "render", "fps"),
			"Last recorded frame rate.",
			nil, nil,
		),
		avgFPSDesc: prometheus.NewDesc(
			prometheus.BuildFQName(metricsNamespace, "render", "avg_fps"),
			"Mean frame rate over the sample window.",
			nil, nil,
		),
		lowFPSDesc: prometheus.NewDesc(
			prometheus.BuildFQName(metricsNamespace, "render", "fps_p5"),
			"5th percentile frame rate over the sample window.",
			nil, nil,
		),
		monitoringDesc: prometheus.NewDesc(
			prometheus.BuildFQName(metricsNamespace, "render", "monitoring"),
			"1 if frame-rate monitoring is enabled.",
			nil, nil,
		),
		contextLostDesc: prometheus.NewDesc(
			prometheus.BuildFQName(metricsNamespace, "render", "context_lost"),
			"1 if the rendering context is lost.",
			nil, nil,
		),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "render",
				Name:      "tier_changes_total",
				Help:      "Quality tier changes by cause.",
			},
			[]string{"cause"},
		),
	}

	c.OnTierChange(func(change TierChange) {
		pc.transitions.WithLabelValues(string(change.Cause)).Inc()
	})

	return pc
}

// Describe implements prometheus.Collector.
func (pc *PerformanceCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- pc.tierDesc
	ch <- pc.fpsDesc
	ch <- pc.avgFPSDesc
	ch <- pc.lowFPSDesc
	ch <- pc.monitoringDesc
	ch <- pc.contextLostDesc
	pc.transitions.Describe(ch)
}

// Collect implements prometheus.Collector.
func (pc *PerformanceCollector) Collect(ch chan<- prometheus.Metric) {
	state := pc.controller.State()

	ch <- prometheus.MustNewConstMetric(pc.tierDesc, prometheus.GaugeValue, float64(state.Tier))
	ch <- prometheus.MustNewConstMetric(pc.fpsDesc, prometheus.GaugeValue, state.FPS)
	ch <- prometheus.MustNewConstMetric(pc.avgFPSDesc, prometheus.GaugeValue, state.AvgFPS)
	ch <- prometheus.MustNewConstMetric(pc.lowFPSDesc, prometheus.GaugeValue, state.LowFPS)
	ch <- prometheus.MustNewConstMetric(pc.monitoringDesc, prometheus.GaugeValue, boolToFloat(state.Monitoring))
	ch <- prometheus.MustNewConstMetric(pc.contextLostDesc, prometheus.GaugeValue, boolToFloat(state.ContextLost))
	pc.transitions.Collect(ch)
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
