package ingredientlibrary

import (
	"math"
	"math/rand"
	"testing"
)

func batchMeanStddev(xs []float64) (mean, stddev float64) {
	n := float64(len(xs))
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	mean = sum / n
	if len(xs) < 2 {
		return mean, 0
	}
	var sumSq float64
	for _, x := range xs {
		d := x - mean
		sumSq += d * d
	}
	stddev = math.Sqrt(sumSq / (n - 1))
	return mean, stddev
}

func TestWelford_RoundTripMatchesBatch(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.Intn(50)
		xs := make([]float64, n)
		for i := range xs {
			xs[i] = rng.Float64()*200 - 50
		}

		var state WelfordState
		for _, x := range xs {
			state = state.Update(x)
		}

		wantMean, wantStddev := batchMeanStddev(xs)
		if math.Abs(state.Mean-wantMean) > 1e-9*math.Max(1, math.Abs(wantMean)) {
			t.Fatalf("trial %d: mean mismatch got=%v want=%v", trial, state.Mean, wantMean)
		}
		if math.Abs(state.Stddev()-wantStddev) > 1e-6*math.Max(1, wantStddev) {
			t.Fatalf("trial %d: stddev mismatch got=%v want=%v", trial, state.Stddev(), wantStddev)
		}
		if state.N != n {
			t.Fatalf("trial %d: expected n=%d got=%d", trial, n, state.N)
		}
	}
}

func TestWelford_OrderIndependent(t *testing.T) {
	xs := []float64{65, 70, 68, 72, 66}
	orders := [][]float64{
		{65, 70, 68, 72, 66},
		{66, 72, 68, 70, 65},
		{70, 65, 66, 68, 72},
	}
	var reference WelfordState
	for _, x := range xs {
		reference = reference.Update(x)
	}
	for _, order := range orders {
		var s WelfordState
		for _, x := range order {
			s = s.Update(x)
		}
		if math.Abs(s.Mean-reference.Mean) > 1e-9 {
			t.Fatalf("mean depends on order: got %v want %v", s.Mean, reference.Mean)
		}
		if math.Abs(s.Stddev()-reference.Stddev()) > 1e-9 {
			t.Fatalf("stddev depends on order: got %v want %v", s.Stddev(), reference.Stddev())
		}
	}
}

func TestWelford_FirstObservation(t *testing.T) {
	var s WelfordState
	s = s.Update(136)
	if s.N != 1 || s.Mean != 136 || s.M2 != 0 || s.Stddev() != 0 {
		t.Fatalf("unexpected first-observation state: %+v stddev=%v", s, s.Stddev())
	}
}

func TestWelford_FiveObservationsScenario(t *testing.T) {
	// S2 — Welford over five observations.
	var s WelfordState
	for _, x := range []float64{65, 70, 68, 72, 66} {
		s = s.Update(x)
	}
	if s.N != 5 {
		t.Fatalf("expected sample_size=5, got %d", s.N)
	}
	if math.Abs(s.Mean-68.20) > 0.01 {
		t.Fatalf("expected mean ~68.20, got %v", s.Mean)
	}
	if math.Abs(s.Stddev()-2.86) > 0.01 {
		t.Fatalf("expected stddev ~2.86, got %v", s.Stddev())
	}
	conf := Confidence(s.N, s.Stddev(), 5)
	if math.Abs(conf-0.632) > 0.01 {
		t.Fatalf("expected confidence ~0.632, got %v", conf)
	}
}

func TestConfidence_MonotonicInN(t *testing.T) {
	sigma := 12.0
	prev := -1.0
	for n := 0; n <= 100; n++ {
		c := Confidence(n, sigma, 5)
		if c < prev-1e-12 {
			t.Fatalf("confidence decreased at n=%d: prev=%v now=%v", n, prev, c)
		}
		prev = c
	}
}

func TestConfidence_FirstObservationApproximatelyDocumented(t *testing.T) {
	c := Confidence(1, 0, 5)
	if math.Abs(c-0.18) > 0.01 {
		t.Fatalf("expected confidence ~0.18 for n=1, got %v", c)
	}
}

func TestConfidence_ClampedToUnitInterval(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		n := rng.Intn(1000)
		sigma := rng.Float64() * 100
		c := Confidence(n, sigma, 5)
		if c < 0 || c > 1 {
			t.Fatalf("confidence out of [0,1]: n=%d sigma=%v c=%v", n, sigma, c)
		}
	}
}
