package yardcore

import (
	"math"
	"testing"
)

func TestFPSWindow_MeanAndEviction(t *testing.T) {
	w := NewFPSWindow(3)

	if w.Mean() != 0 || w.Len() != 0 {
		t.Fatalf("Expected empty window, got len=%d mean=%g", w.Len(), w.Mean())
	}

	w.Push(10)
	w.Push(20)
	if got := w.Mean(); got != 15 {
		t.Errorf("Expected mean 15, got %g", got)
	}

	w.Push(30)
	w.Push(40) // evicts 10

	if w.Len() != 3 {
		t.Errorf("Expected len 3, got %d", w.Len())
	}
	if got := w.Mean(); got != 30 {
		t.Errorf("Expected mean 30 after eviction, got %g", got)
	}

	want := []float64{20, 30, 40}
	got := w.Values()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Values() = %v, want %v (oldest first)", got, want)
		}
	}
}

func TestFPSWindow_DefaultCapacity(t *testing.T) {
	w := NewFPSWindow(0)
	if w.Cap() != FPSWindowSize {
		t.Errorf("Expected default capacity %d, got %d", FPSWindowSize, w.Cap())
	}

	for i := 0; i < 100; i++ {
		w.Push(float64(i))
	}
	if w.Len() != FPSWindowSize {
		t.Errorf("Expected %d samples, got %d", FPSWindowSize, w.Len())
	}

	// Holds 40..99
	if got, want := w.Mean(), 69.5; got != want {
		t.Errorf("Expected mean %g, got %g", want, got)
	}
	if v := w.Values(); v[0] != 40 || v[len(v)-1] != 99 {
		t.Errorf("Expected values 40..99, got first=%g last=%g", v[0], v[len(v)-1])
	}
}

func TestFPSWindow_Percentile(t *testing.T) {
	w := NewFPSWindow(100)
	for i := 1; i <= 100; i++ {
		w.Push(float64(i))
	}

	if got := w.Percentile(0); got != 1 {
		t.Errorf("P0 = %g, want 1", got)
	}
	if got := w.Percentile(1); got != 100 {
		t.Errorf("P100 = %g, want 100", got)
	}
	if got := w.Percentile(0.05); got != 5 {
		t.Errorf("P5 = %g, want 5", got)
	}

	if got := NewFPSWindow(10).Percentile(0.5); got != 0 {
		t.Errorf("Empty P50 = %g, want 0", got)
	}
}

func TestFPSWindow_NonFiniteSamples(t *testing.T) {
	w := NewFPSWindow(4)
	w.Push(60)
	w.Push(math.Inf(1))

	if !math.IsInf(w.Mean(), 1) {
		t.Errorf("Expected +Inf mean, got %g", w.Mean())
	}
}

func TestFPSWindow_Reset(t *testing.T) {
	w := NewFPSWindow(4)
	for i := 0; i < 6; i++ {
		w.Push(30)
	}
	w.Reset()

	if w.Len() != 0 || len(w.Values()) != 0 || w.Mean() != 0 {
		t.Errorf("Expected empty window after reset, got len=%d", w.Len())
	}

	w.Push(50)
	if v := w.Values(); len(v) != 1 || v[0] != 50 {
		t.Errorf("Expected [50] after reset+push, got %v", v)
	}
}
