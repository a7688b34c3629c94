package yardcore

import (
	"math"
)

// BaselineNetworkSize is n0: the facility count every network is normalized
// against. At n0 the connectivity ratio is exactly 1.
const BaselineNetworkSize = 10

// MinMaturity is the floor applied to the maturity constant τ so that n/τ is
// always defined.
const MinMaturity = 0.0001

// MaxFacilities caps the facility count. C(n) stays finite and exact well
// below it, so every result field can be encoded.
const MaxFacilities = 1e15

// NetworkEffectParams tunes the multiplier.
type NetworkEffectParams struct {
	Beta float64 `json:"beta" yaml:"beta"` // β: weight of connectivity on value (clamped ≥ 0)
	Tau  float64 `json:"tau" yaml:"tau"`   // τ: maturity constant (clamped ≥ MinMaturity)
}

// DefaultNetworkEffectParams returns the parameters used by the ROI pages.
func DefaultNetworkEffectParams() NetworkEffectParams {
	return NetworkEffectParams{
		Beta: 0.15,
		Tau:  10,
	}
}

// NetworkEffectResult exposes every intermediate quantity of the multiplier
// so that charts and reports can bind to them directly.
type NetworkEffectResult struct {
	N                   float64 `json:"n"`
	N0                  float64 `json:"n0"`
	Connections         float64 `json:"connections"`
	BaselineConnections float64 `json:"baselineConnections"`
	Realization         float64 `json:"realization"`
	Multiplier          float64 `json:"multiplier"`
	Beta                float64 `json:"beta"`
	Tau                 float64 `json:"tau"`
}

// ConnectionsPotential returns the number of unordered facility pairs in a
// fully connected network of n facilities.
//
// Formula: C(n) = n(n-1)/2, with n clamped to floor(max(0, n)).
//
// Negative, fractional, NaN and oversized counts are clamped; C(n) = 0 for
// n ≤ 1.
func ConnectionsPotential(n float64) float64 {
	k := facilityCount(n)
	return k * (k - 1) / 2
}

// RealizationFactor returns the share of theoretical network value a network
// of n facilities actually captures at maturity constant τ.
//
// Formula: R(n) = 1 - e^(-n/τ)
//
// R(0) = 0 and R → 1 as n → ∞. Smaller τ saturates faster. The result is
// always in [0, 1]; a non-finite computation yields 0.
func RealizationFactor(n, tau float64) float64 {
	k := facilityCount(n)
	tau = atLeast(tau, MinMaturity)

	r := 1 - math.Exp(-k/tau)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}

	return clamp(r, 0, 1)
}

// MetcalfeInspiredMultiplier computes the network value multiplier for n
// facilities.
//
// Formula:
//
//	M(n) = 1 + β · (C(n) / C(n0)) · R(n)
//
// Where:
//   - C(n): pairwise connections (ConnectionsPotential)
//   - n0: BaselineNetworkSize, so the ratio is 1 at ten facilities
//   - R(n): realization (RealizationFactor)
//
// Counts below one facility are treated as one and counts above
// MaxFacilities as MaxFacilities. β < 0 or +Inf is clamped to 0, τ to
// [MinMaturity, MaxFloat64]. M ≥ 1 always, and a non-finite M falls back
// to 1: this feeds display surfaces where a conservative number beats a NaN.
//
// Example:
//
//	res := MetcalfeInspiredMultiplier(10, NetworkEffectParams{Beta: 0.15, Tau: 10})
//	// res.Connections = 45, res.Realization ≈ 0.632, res.Multiplier ≈ 1.0948
func MetcalfeInspiredMultiplier(n float64, params NetworkEffectParams) NetworkEffectResult {
	count := math.Max(1, facilityCount(n))
	beta := atLeast(params.Beta, 0)
	if math.IsInf(beta, 1) {
		beta = 0
	}
	tau := math.Min(atLeast(params.Tau, MinMaturity), math.MaxFloat64)

	connections := ConnectionsPotential(count)
	baseline := math.Max(1, ConnectionsPotential(BaselineNetworkSize))
	realization := RealizationFactor(count, tau)

	multiplier := 1 + beta*(connections/baseline)*realization
	if math.IsNaN(multiplier) || math.IsInf(multiplier, 0) {
		multiplier = 1
	}

	return NetworkEffectResult{
		N:                   count,
		N0:                  BaselineNetworkSize,
		Connections:         connections,
		BaselineConnections: baseline,
		Realization:         realization,
		Multiplier:          multiplier,
		Beta:                beta,
		Tau:                 tau,
	}
}

// MultiplierCurve evaluates the multiplier at each facility count, in order.
// Used to feed "value grows with your network" charts.
func MultiplierCurve(ns []float64, params NetworkEffectParams) []NetworkEffectResult {
	curve := make([]NetworkEffectResult, 0, len(ns))
	for _, n := range ns {
		curve = append(curve, MetcalfeInspiredMultiplier(n, params))
	}
	return curve
}

// Apply scales a baseline economic estimate (e.g. annual savings) by the
// multiplier. A non-finite baseline or product yields 0.
func (r NetworkEffectResult) Apply(baseline float64) float64 {
	scaled := baseline * r.Multiplier
	if math.IsNaN(scaled) || math.IsInf(scaled, 0) {
		return 0
	}
	return scaled
}

// facilityCount clamps n to an integer in [0, MaxFacilities]. NaN counts as 0.
func facilityCount(n float64) float64 {
	if math.IsNaN(n) || n < 0 {
		return 0
	}
	return math.Floor(math.Min(n, MaxFacilities))
}

// atLeast returns x, or floor when x is below floor or NaN.
func atLeast(x, floor float64) float64 {
	if math.IsNaN(x) || x < floor {
		return floor
	}
	return x
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
