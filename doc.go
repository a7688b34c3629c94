// Package yardcore holds the numeric core of the yard network site: the
// network-effect multiplier behind the ROI pages, and the adaptive render
// quality controller behind the 3D yard visualizations.
//
// # Overview
//
// Both pieces are leaf components. Neither does I/O, and neither returns
// errors: out-of-domain inputs are clamped to safe values, because their
// output feeds surfaces that are always on screen.
//
//   - networkeffect.go - Network-effect multiplier (closed form)
//   - performance.go   - Quality tier controller (hysteresis state machine)
//   - quality.go       - Tier → rendering settings table
//   - window.go        - Bounded FPS sample window
//   - metrics.go       - Prometheus collector for the controller
//   - scenario.go      - YAML frame-rate scenarios for replay
//   - assertions.go    - Test helpers for the invariants
//
// # Network Effect
//
// Value grows faster than linearly with the number of connected facilities,
// but a young network has not realized that value yet:
//
//	M(n) = 1 + β · (C(n) / C(n0)) · R(n)
//
// Where:
//   - C(n) = n(n-1)/2: potential pairwise connections
//   - n0 = 10: baseline network size (C(n0) = 45)
//   - R(n) = 1 - e^(-n/τ): realization, saturating toward 1
//   - β: connectivity weight, τ: maturity constant
//
// Usage:
//
//	res := yardcore.MetcalfeInspiredMultiplier(50, yardcore.DefaultNetworkEffectParams())
//	savings := res.Apply(baselineSavings)
//
// Properties (for β ≥ 0, τ > 0):
//   - M ≥ 1 and finite for every input, NaN included
//   - M is non-decreasing in n and in β
//   - R ∈ [0,1], larger for smaller τ
//
// # Quality Tiers
//
// The controller turns a stream of frame rates into one of four tiers
// (low < medium < high < ultra) without oscillating on borderline hardware:
//
//	controller := yardcore.NewPerformanceController(logger)
//
//	// Every animation frame
//	controller.RecordFPS(fps)
//	settings := controller.QualitySettings()
//
// Thresholds apply to the 60-sample mean relative to the current tier, so a
// change is always one level:
//
//	ultra → high    avg < 50
//	high  → medium  avg < 35
//	medium → low    avg < 20
//	low   → medium  avg ≥ 40
//	medium → high   avg ≥ 55
//	high  → ultra   avg ≥ 58
//
// A change needs 5 consecutive votes in the same direction. SetTier
// overrides, Reset restores defaults, SetMonitoring(false) freezes the
// controller. OnTierChange listeners are called after each change.
//
// # Testing
//
// Use assertions to validate the multiplier invariants:
//
//	func TestPricingPage(t *testing.T) {
//	    yardcore.AssertNetworkEffect(t)
//	}
//
// # See Also
//
//   - cmd/yardcore - CLI for multipliers, curves, tiers and scenario replay
//   - examples/frameloop - Render loop wired to the controller
package yardcore
