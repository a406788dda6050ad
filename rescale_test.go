package lexcloud

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRescaleEndpoints(t *testing.T) {
	resize, err := Rescale([]float64{2, 10, 2}, []float64{75, 350})
	if err != nil {
		t.Fatalf("Rescale: %v", err)
	}
	assert.Equal(t, 75.0, resize(2))
	assert.Equal(t, 350.0, resize(10))
}

func TestRescaleDerivesEndpointsFromSamples(t *testing.T) {
	// Endpoints come from min/max over the whole collection, not the first
	// and last elements.
	resize, err := Rescale([]float64{5, 1, 9, 3}, []float64{100, 0, 200})
	if err != nil {
		t.Fatalf("Rescale: %v", err)
	}
	assert.Equal(t, 0.0, resize(1))
	assert.Equal(t, 200.0, resize(9))
	assert.Equal(t, 100.0, resize(5))
}

func TestRescaleMonotonic(t *testing.T) {
	resize, err := Rescale([]float64{0, 100}, []float64{10, 20})
	if err != nil {
		t.Fatalf("Rescale: %v", err)
	}
	prev := resize(0)
	for v := 1.0; v <= 100; v++ {
		cur := resize(v)
		if cur < prev {
			t.Fatalf("resize not monotonic: resize(%g)=%g < resize(%g)=%g", v, cur, v-1, prev)
		}
		prev = cur
	}
}

func TestRescaleLinearity(t *testing.T) {
	resize, err := Rescale([]float64{3, 17}, []float64{75, 350})
	if err != nil {
		t.Fatalf("Rescale: %v", err)
	}
	x1, x2, x3 := 4.0, 9.0, 16.0
	slope12 := (resize(x2) - resize(x1)) / (x2 - x1)
	slope23 := (resize(x3) - resize(x2)) / (x3 - x2)
	assert.InDelta(t, slope12, slope23, 1e-9)
}

func TestRescaleExtrapolates(t *testing.T) {
	// Values outside the source range project linearly, no clamping.
	resize, err := Rescale([]float64{0, 10}, []float64{0, 100})
	if err != nil {
		t.Fatalf("Rescale: %v", err)
	}
	assert.Equal(t, 200.0, resize(20))
	assert.Equal(t, -50.0, resize(-5))
}

func TestRescaleDegenerateRange(t *testing.T) {
	_, err := Rescale([]float64{5, 5, 5}, []float64{75, 350})
	var degenerate *DegenerateRangeError
	if !errors.As(err, &degenerate) {
		t.Fatalf("Rescale on constant samples: got %v, want DegenerateRangeError", err)
	}
	assert.Equal(t, 5.0, degenerate.Value)
}

func TestRescaleEmptyInput(t *testing.T) {
	if _, err := Rescale(nil, []float64{75, 350}); err == nil {
		t.Error("Rescale(nil, target) should fail")
	}
	if _, err := Rescale([]float64{1, 2}, nil); err == nil {
		t.Error("Rescale(source, nil) should fail")
	}
}
