package yardcore

import (
	"fmt"
	"strings"
)

// QualityTier is a discrete rendering fidelity level. Tiers are ordered:
// TierLow < TierMedium < TierHigh < TierUltra.
type QualityTier int

const (
	TierLow    QualityTier = iota // Minimum fidelity, weakest devices
	TierMedium                    // Shadows on, no post-processing
	TierHigh                      // Default tier
	TierUltra                     // Everything on
)

// AllTiers lists every tier in ascending order.
var AllTiers = []QualityTier{TierLow, TierMedium, TierHigh, TierUltra}

var tierNames = [...]string{
	TierLow:    "low",
	TierMedium: "medium",
	TierHigh:   "high",
	TierUltra:  "ultra",
}

func (t QualityTier) String() string {
	if !t.Valid() {
		return fmt.Sprintf("QualityTier(%d)", int(t))
	}
	return tierNames[t]
}

// Valid reports whether t is one of the four defined tiers.
func (t QualityTier) Valid() bool {
	return t >= TierLow && t <= TierUltra
}

// ParseQualityTier parses "low", "medium", "high" or "ultra" (case-insensitive).
func ParseQualityTier(s string) (QualityTier, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range tierNames {
		if n == name {
			return QualityTier(i), nil
		}
	}
	return TierHigh, fmt.Errorf("unknown quality tier %q (want low, medium, high or ultra)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (t QualityTier) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid quality tier %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *QualityTier) UnmarshalText(text []byte) error {
	parsed, err := ParseQualityTier(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// clampTier pins t into [TierLow, TierUltra].
func clampTier(t QualityTier) QualityTier {
	if t < TierLow {
		return TierLow
	}
	if t > TierUltra {
		return TierUltra
	}
	return t
}

// ShaderComplexity labels the shader variant a renderer should compile.
type ShaderComplexity string

const (
	ShaderSimple   ShaderComplexity = "simple"
	ShaderStandard ShaderComplexity = "standard"
	ShaderComplex  ShaderComplexity = "complex"
)

// QualitySettings is what a tier means to a renderer.
type QualitySettings struct {
	Tier                  QualityTier      `json:"tier"`
	ParticleMultiplier    float64          `json:"particleMultiplier"`
	ShadowsEnabled        bool             `json:"shadowsEnabled"`
	ShadowMapSize         int              `json:"shadowMapSize"`
	PostProcessingEnabled bool             `json:"postProcessingEnabled"`
	ShaderComplexity      ShaderComplexity `json:"shaderComplexity"`
	Antialias             bool             `json:"antialias"`
	DPRCap                float64          `json:"dprCap"` // Max device pixel ratio
}

var qualityTable = [...]QualitySettings{
	TierLow: {
		Tier:               TierLow,
		ParticleMultiplier: 0.25,
		ShadowMapSize:      512,
		ShaderComplexity:   ShaderSimple,
		DPRCap:             1,
	},
	TierMedium: {
		Tier:               TierMedium,
		ParticleMultiplier: 0.5,
		ShadowsEnabled:     true,
		ShadowMapSize:      1024,
		ShaderComplexity:   ShaderStandard,
		Antialias:          true,
		DPRCap:             1.5,
	},
	TierHigh: {
		Tier:                  TierHigh,
		ParticleMultiplier:    1.0,
		ShadowsEnabled:        true,
		ShadowMapSize:         2048,
		PostProcessingEnabled: true,
		ShaderComplexity:      ShaderStandard,
		Antialias:             true,
		DPRCap:                2,
	},
	TierUltra: {
		Tier:                  TierUltra,
		ParticleMultiplier:    1.5,
		ShadowsEnabled:        true,
		ShadowMapSize:         4096,
		PostProcessingEnabled: true,
		ShaderComplexity:      ShaderComplex,
		Antialias:             true,
		DPRCap:                2,
	},
}

// SettingsFor returns the rendering parameters for a tier. Out-of-range tiers
// are clamped to the nearest defined one.
func SettingsFor(tier QualityTier) QualitySettings {
	return qualityTable[clampTier(tier)]
}
