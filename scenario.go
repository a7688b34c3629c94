package yardcore

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Scenario is a scripted sequence of frame-rate phases, used to replay
// degradation and recovery patterns against a controller.
//
//	name: sustained-degradation
//	start_tier: ultra
//	phases:
//	  - fps: 40
//	    count: 10
//	  - fps: 25
//	    count: 60
type Scenario struct {
	Name      string  `yaml:"name"`
	StartTier string  `yaml:"start_tier"` // Optional; controller default when empty
	Phases    []Phase `yaml:"phases"`
}

// Phase feeds Count identical samples of FPS.
type Phase struct {
	FPS   float64 `yaml:"fps"`
	Count int     `yaml:"count"`
}

// PhaseResult is the controller state after a phase.
type PhaseResult struct {
	Phase       Phase
	Tier        QualityTier
	AvgFPS      float64
	TierChanges int // Changes observed during this phase
}

// LoadScenario decodes and validates a YAML scenario.
func LoadScenario(r io.Reader) (Scenario, error) {
	var s Scenario
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return Scenario{}, fmt.Errorf("decode scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

// Validate checks that the scenario can be replayed.
func (s Scenario) Validate() error {
	if s.StartTier != "" {
		if _, err := ParseQualityTier(s.StartTier); err != nil {
			return fmt.Errorf("scenario %q: start_tier: %w", s.Name, err)
		}
	}
	if len(s.Phases) == 0 {
		return fmt.Errorf("scenario %q: no phases", s.Name)
	}
	for i, p := range s.Phases {
		if p.Count < 1 {
			return fmt.Errorf("scenario %q: phase %d: count must be at least 1, got %d", s.Name, i+1, p.Count)
		}
	}
	return nil
}

// Run resets c, applies the start tier and feeds every phase. Call Validate
// (or use LoadScenario) first; an unparsable start tier is ignored here.
func (s Scenario) Run(c *PerformanceController) []PhaseResult {
	c.Reset()
	if s.StartTier != "" {
		if tier, err := ParseQualityTier(s.StartTier); err == nil {
			c.SetTier(tier)
		}
	}

	results := make([]PhaseResult, 0, len(s.Phases))
	for _, p := range s.Phases {
		changes := 0
		before := c.Tier()
		for i := 0; i < p.Count; i++ {
			c.RecordFPS(p.FPS)
			if now := c.Tier(); now != before {
				changes++
				before = now
			}
		}

		state := c.State()
		results = append(results, PhaseResult{
			Phase:       p,
			Tier:        state.Tier,
			AvgFPS:      state.AvgFPS,
			TierChanges: changes,
		})
	}
	return results
}
