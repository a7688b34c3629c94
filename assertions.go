package yardcore

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

// AssertionConfig holds the inputs the multiplier assertions sweep over.
type AssertionConfig struct {
	// Facility counts, ascending
	Counts []float64

	// Betas, ascending
	Betas []float64

	// Maturity constants
	Taus []float64
}

// DefaultAssertionConfig sweeps the ranges the ROI pages display.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		Counts: []float64{1, 2, 5, 10, 25, 50, 100, 260, 1000, 100000, MaxFacilities},
		Betas:  []float64{0, 0.05, 0.15, 0.3, 1},
		Taus:   []float64{MinMaturity, 1, 10, 30, 100},
	}
}

// AssertMultiplierFloor verifies M(n) ≥ 1 and finite for every combination.
//
// Mathematical property:
//
//	β ≥ 0, R ∈ [0,1], C ≥ 0 ⇒ M = 1 + β·(C/C0)·R ≥ 1
func AssertMultiplierFloor(t *testing.T, cfg AssertionConfig) {
	t.Helper()

	var failures []string
	for _, n := range cfg.Counts {
		for _, beta := range cfg.Betas {
			for _, tau := range cfg.Taus {
				res := MetcalfeInspiredMultiplier(n, NetworkEffectParams{Beta: beta, Tau: tau})
				if !(res.Multiplier >= 1) || math.IsInf(res.Multiplier, 0) {
					failures = append(failures, fmt.Sprintf(
						"  n=%g β=%g τ=%g: M=%g", n, beta, tau, res.Multiplier))
				}
			}
		}
	}

	if len(failures) > 0 {
		t.Errorf("Multiplier below 1 or non-finite:\n%s", strings.Join(failures, "\n"))
		return
	}

	t.Logf("✓ Multiplier floor: M ≥ 1 over %d combinations",
		len(cfg.Counts)*len(cfg.Betas)*len(cfg.Taus))
}

// AssertMonotonicInN verifies more facilities never lower the multiplier.
//
// Mathematical property:
//
//	n₁ ≤ n₂ ⇒ M(n₁) ≤ M(n₂) for fixed β, τ
func AssertMonotonicInN(t *testing.T, cfg AssertionConfig) {
	t.Helper()

	var failures []string
	for _, beta := range cfg.Betas {
		for _, tau := range cfg.Taus {
			params := NetworkEffectParams{Beta: beta, Tau: tau}
			curve := MultiplierCurve(cfg.Counts, params)
			for i := 1; i < len(curve); i++ {
				if curve[i].Multiplier < curve[i-1].Multiplier {
					failures = append(failures, fmt.Sprintf(
						"  β=%g τ=%g: M(%g)=%g > M(%g)=%g",
						beta, tau, curve[i-1].N, curve[i-1].Multiplier, curve[i].N, curve[i].Multiplier))
				}
			}
		}
	}

	if len(failures) > 0 {
		t.Errorf("Multiplier decreased with facility count:\n%s", strings.Join(failures, "\n"))
		return
	}

	t.Logf("✓ Monotonic in n: %d counts", len(cfg.Counts))
}

// AssertMonotonicInBeta verifies a larger β never lowers the multiplier.
func AssertMonotonicInBeta(t *testing.T, cfg AssertionConfig) {
	t.Helper()

	var failures []string
	for _, n := range cfg.Counts {
		for _, tau := range cfg.Taus {
			prev := 0.0
			for i, beta := range cfg.Betas {
				m := MetcalfeInspiredMultiplier(n, NetworkEffectParams{Beta: beta, Tau: tau}).Multiplier
				if i > 0 && m < prev {
					failures = append(failures, fmt.Sprintf(
						"  n=%g τ=%g: β=%g gives M=%g < %g", n, tau, beta, m, prev))
				}
				prev = m
			}
		}
	}

	if len(failures) > 0 {
		t.Errorf("Multiplier decreased with β:\n%s", strings.Join(failures, "\n"))
		return
	}

	t.Logf("✓ Monotonic in β: %d betas", len(cfg.Betas))
}

// AssertNetworkEffect runs all multiplier assertions with the default config.
func AssertNetworkEffect(t *testing.T) {
	t.Helper()

	cfg := DefaultAssertionConfig()

	t.Run("Floor", func(t *testing.T) {
		AssertMultiplierFloor(t, cfg)
	})

	t.Run("MonotonicInN", func(t *testing.T) {
		AssertMonotonicInN(t, cfg)
	})

	t.Run("MonotonicInBeta", func(t *testing.T) {
		AssertMonotonicInBeta(t, cfg)
	})
}

// AssertTierBounded feeds samples to c and verifies the tier never leaves
// [low, ultra] and never moves more than one level per sample.
func AssertTierBounded(t *testing.T, c *PerformanceController, samples []float64) {
	t.Helper()

	prev := c.Tier()
	for i, fps := range samples {
		c.RecordFPS(fps)
		tier := c.Tier()

		if !tier.Valid() {
			t.Fatalf("sample %d (fps=%g): tier %v out of range", i, fps, tier)
		}
		if d := int(tier) - int(prev); d > 1 || d < -1 {
			t.Fatalf("sample %d (fps=%g): tier jumped %v → %v", i, fps, prev, tier)
		}
		prev = tier
	}

	t.Logf("✓ Tier bounded over %d samples, final tier %v", len(samples), prev)
}

// PrintTierTrace logs the tier after each sample, for debugging scenarios.
func PrintTierTrace(t *testing.T, c *PerformanceController, samples []float64) {
	t.Helper()

	t.Logf("\n=== Tier Trace ===")
	t.Logf("  #    fps       avg       tier     low high")
	for i, fps := range samples {
		c.RecordFPS(fps)
		s := c.State()
		t.Logf("  %-4d %-9.2f %-9.2f %-8v %-3d %d",
			i, fps, s.AvgFPS, s.Tier, s.LowFPSCount, s.HighFPSCount)
	}
}
