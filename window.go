package yardcore

import (
	"sort"
)

// FPSWindowSize is the number of recent frame-rate samples averaged.
const FPSWindowSize = 60

// FPSWindow is a fixed-capacity FIFO of frame-rate samples. Once full, each
// push overwrites the oldest sample.
//
// FPSWindow is not safe for concurrent use; PerformanceController guards it.
type FPSWindow struct {
	samples    []float64 // Ring buffer
	writeIndex int       // Next write position
	count      int       // Valid samples (≤ cap)
}

// NewFPSWindow creates a window holding at most capacity samples.
func NewFPSWindow(capacity int) *FPSWindow {
	if capacity <= 0 {
		capacity = FPSWindowSize
	}

	return &FPSWindow{
		samples: make([]float64, capacity),
	}
}

// Push appends a sample, dropping the oldest when full.
func (w *FPSWindow) Push(fps float64) {
	w.samples[w.writeIndex] = fps
	w.writeIndex = (w.writeIndex + 1) % len(w.samples)
	if w.count < len(w.samples) {
		w.count++
	}
}

// Len returns the number of samples held.
func (w *FPSWindow) Len() int {
	return w.count
}

// Cap returns the window capacity.
func (w *FPSWindow) Cap() int {
	return len(w.samples)
}

// Mean returns the arithmetic mean of the held samples, or 0 when empty.
//
// Non-finite samples propagate into the mean; callers own sample sanity.
func (w *FPSWindow) Mean() float64 {
	if w.count == 0 {
		return 0
	}

	var sum float64
	for _, s := range w.samples[:w.count] {
		sum += s
	}
	return sum / float64(w.count)
}

// Values returns a copy of the held samples, oldest first.
func (w *FPSWindow) Values() []float64 {
	out := make([]float64, 0, w.count)
	start := 0
	if w.count == len(w.samples) {
		start = w.writeIndex
	}
	for i := 0; i < w.count; i++ {
		out = append(out, w.samples[(start+i)%len(w.samples)])
	}
	return out
}

// Percentile returns the p-th percentile (0 ≤ p ≤ 1) of the held samples,
// or 0 when empty. Percentile(0.05) is the "5% low" frame rate.
func (w *FPSWindow) Percentile(p float64) float64 {
	if w.count == 0 {
		return 0
	}

	sorted := make([]float64, w.count)
	copy(sorted, w.samples[:w.count])
	sort.Float64s(sorted)

	index := int(float64(w.count-1) * p)
	if index < 0 {
		index = 0
	}
	if index >= w.count {
		index = w.count - 1
	}

	return sorted[index]
}

// Reset empties the window.
func (w *FPSWindow) Reset() {
	for i := range w.samples {
		w.samples[i] = 0
	}
	w.writeIndex = 0
	w.count = 0
}
