package yardcore

import (
	"log/slog"
	"sync"
)

// Controller defaults.
const (
	DefaultFPS        = 60.0
	DefaultTier       = TierHigh
	HysteresisSamples = 5    // Consecutive same-direction candidates before a tier change
	LowFPSPercentile  = 0.05 // PerformanceState.LowFPS: the "5% low" frame rate
)

// Downgrade thresholds: avg FPS strictly below → next lower tier.
const (
	UltraDowngradeFPS  = 50.0 // ultra → high
	HighDowngradeFPS   = 35.0 // high → medium
	MediumDowngradeFPS = 20.0 // medium → low
)

// Upgrade thresholds: avg FPS at or above → next higher tier.
const (
	LowUpgradeFPS    = 40.0 // low → medium
	MediumUpgradeFPS = 55.0 // medium → high
	HighUpgradeFPS   = 58.0 // high → ultra
)

// TierChangeCause says why a tier changed.
type TierChangeCause string

const (
	CauseDowngrade TierChangeCause = "downgrade" // Sustained low FPS
	CauseUpgrade   TierChangeCause = "upgrade"   // Sustained high FPS
	CauseManual    TierChangeCause = "manual"    // SetTier override
	CauseReset     TierChangeCause = "reset"     // Reset to defaults
)

// TierChange is delivered to listeners after the tier changes.
type TierChange struct {
	From   QualityTier
	To     QualityTier
	AvgFPS float64
	Cause  TierChangeCause
}

// PerformanceState is a snapshot of the controller.
type PerformanceState struct {
	FPS          float64     // Last recorded sample
	AvgFPS       float64     // Mean of FPSSamples
	LowFPS       float64     // LowFPSPercentile of FPSSamples, 0 when empty
	FPSSamples   []float64   // Oldest first, at most FPSWindowSize
	Tier         QualityTier // Current tier
	LowFPSCount  int         // Consecutive downgrade candidates
	HighFPSCount int         // Consecutive upgrade candidates
	Monitoring   bool        // RecordFPS has effect only when true
	ContextLost  bool        // Rendering context lost (informational)
}

// PerformanceController picks a rendering quality tier from a stream of
// frame-rate samples.
//
// Control loop (per sample):
//   - Append to a 60-sample window and recompute the mean
//   - Compare the mean against the thresholds of the CURRENT tier only, so a
//     candidate is always an adjacent tier
//   - Count consecutive same-direction candidates
//   - Change tier after HysteresisSamples in a row
//
// Hysteresis (prevents flicker on borderline hardware): one bad frame is one
// vote, and a vote in the other direction or no vote at all restarts the count.
//
// Create one per rendering session and pass it to whoever renders. It is safe
// for concurrent use; samples apply in arrival order.
type PerformanceController struct {
	mu     sync.Mutex
	logger *slog.Logger

	window       *FPSWindow
	fps          float64
	avgFPS       float64
	tier         QualityTier
	lowFPSCount  int
	highFPSCount int
	monitoring   bool
	contextLost  bool

	listeners []func(TierChange)
}

// NewPerformanceController creates a controller in its default state:
// tier high, 60 FPS, monitoring on. A nil logger uses slog.Default().
func NewPerformanceController(logger *slog.Logger) *PerformanceController {
	if logger == nil {
		logger = slog.Default()
	}

	c := &PerformanceController{
		logger: logger,
		window: NewFPSWindow(FPSWindowSize),
	}
	c.resetLocked()
	return c
}

// OnTierChange registers fn to be called after every tier change. Listeners
// run on the caller's goroutine, outside the controller lock.
func (c *PerformanceController) OnTierChange(fn func(TierChange)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.listeners = append(c.listeners, fn)
}

// RecordFPS ingests one frame-rate sample. It is a no-op while monitoring is
// off. Degenerate samples (negative, infinite) are averaged like any other.
func (c *PerformanceController) RecordFPS(fps float64) {
	c.mu.Lock()

	if !c.monitoring {
		c.mu.Unlock()
		return
	}

	c.window.Push(fps)
	c.fps = fps
	c.avgFPS = c.window.Mean()

	target, ok := candidateTier(c.tier, c.avgFPS)
	if !ok {
		c.lowFPSCount = 0
		c.highFPSCount = 0
		c.mu.Unlock()
		return
	}

	cause := CauseUpgrade
	if target < c.tier {
		cause = CauseDowngrade
		c.lowFPSCount++
		c.highFPSCount = 0
	} else {
		c.highFPSCount++
		c.lowFPSCount = 0
	}

	if c.lowFPSCount < HysteresisSamples && c.highFPSCount < HysteresisSamples {
		c.mu.Unlock()
		return
	}

	change := TierChange{From: c.tier, To: target, AvgFPS: c.avgFPS, Cause: cause}
	c.tier = target
	c.lowFPSCount = 0
	c.highFPSCount = 0
	listeners := c.listeners
	c.mu.Unlock()

	c.logger.Info("quality tier changed",
		"from", change.From,
		"to", change.To,
		"avg_fps", change.AvgFPS,
		"cause", change.Cause)
	notify(listeners, change)
}

// SetTier overrides the tier and zeroes both hysteresis counters. The sample
// window is left untouched. Out-of-range tiers are clamped.
func (c *PerformanceController) SetTier(tier QualityTier) {
	tier = clampTier(tier)

	c.mu.Lock()
	change := TierChange{From: c.tier, To: tier, AvgFPS: c.avgFPS, Cause: CauseManual}
	c.tier = tier
	c.lowFPSCount = 0
	c.highFPSCount = 0
	listeners := c.listeners
	c.mu.Unlock()

	if change.From == change.To {
		return
	}
	c.logger.Info("quality tier set", "from", change.From, "to", change.To)
	notify(listeners, change)
}

// SetMonitoring enables or disables RecordFPS.
func (c *PerformanceController) SetMonitoring(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.monitoring = enabled
}

// SetContextLost records whether the rendering context is lost. It does not
// affect the tier.
func (c *PerformanceController) SetContextLost(lost bool) {
	c.mu.Lock()
	changed := c.contextLost != lost
	c.contextLost = lost
	c.mu.Unlock()

	if !changed {
		return
	}
	if lost {
		c.logger.Warn("rendering context lost")
	} else {
		c.logger.Info("rendering context restored")
	}
}

// Reset restores the default state. Listeners stay registered.
func (c *PerformanceController) Reset() {
	c.mu.Lock()
	change := TierChange{From: c.tier, To: DefaultTier, AvgFPS: DefaultFPS, Cause: CauseReset}
	c.resetLocked()
	listeners := c.listeners
	c.mu.Unlock()

	if change.From != change.To {
		notify(listeners, change)
	}
}

// Tier returns the current tier.
func (c *PerformanceController) Tier() QualityTier {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.tier
}

// QualitySettings returns the rendering parameters for the current tier.
func (c *PerformanceController) QualitySettings() QualitySettings {
	return SettingsFor(c.Tier())
}

// State returns a snapshot of the controller.
func (c *PerformanceController) State() PerformanceState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return PerformanceState{
		FPS:          c.fps,
		AvgFPS:       c.avgFPS,
		LowFPS:       c.window.Percentile(LowFPSPercentile),
		FPSSamples:   c.window.Values(),
		Tier:         c.tier,
		LowFPSCount:  c.lowFPSCount,
		HighFPSCount: c.highFPSCount,
		Monitoring:   c.monitoring,
		ContextLost:  c.contextLost,
	}
}

func (c *PerformanceController) resetLocked() {
	c.window.Reset()
	c.fps = DefaultFPS
	c.avgFPS = DefaultFPS
	c.tier = DefaultTier
	c.lowFPSCount = 0
	c.highFPSCount = 0
	c.monitoring = true
	c.contextLost = false
}

// candidateTier returns the adjacent tier the average points to, if any.
// Downgrades are checked before upgrades.
func candidateTier(current QualityTier, avgFPS float64) (QualityTier, bool) {
	switch current {
	case TierUltra:
		if avgFPS < UltraDowngradeFPS {
			return TierHigh, true
		}
	case TierHigh:
		if avgFPS < HighDowngradeFPS {
			return TierMedium, true
		}
		if avgFPS >= HighUpgradeFPS {
			return TierUltra, true
		}
	case TierMedium:
		if avgFPS < MediumDowngradeFPS {
			return TierLow, true
		}
		if avgFPS >= MediumUpgradeFPS {
			return TierHigh, true
		}
	case TierLow:
		if avgFPS >= LowUpgradeFPS {
			return TierMedium, true
		}
	}
	return current, false
}

func notify(listeners []func(TierChange), change TierChange) {
	for _, fn := range listeners {
		fn(change)
	}
}
