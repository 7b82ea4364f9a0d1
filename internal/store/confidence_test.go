package store

import (
	"math"
	"testing"

	"priced/pkg/types"
)

func statsFor(mean, std float64) types.FeatureStats {
	return types.FeatureStats{Min: 0, Max: mean * 2, Mean: mean, Std: std}
}

func fullRanges() map[string]types.FeatureStats {
	return map[string]types.FeatureStats{
		"Square_Footage":  statsFor(2000, 500),
		"Bedrooms":        statsFor(3, 1),
		"Total_Bathrooms": statsFor(2, 0.75),
	}
}

func TestConfidence_NoMetadata(t *testing.T) {
	in := types.PredictionInputs{SquareFootage: 2000, Bedrooms: 3, TotalBathrooms: 2}
	if got := confidenceLabel(in, nil); got != ConfidenceUnknown {
		t.Fatalf("nil metadata: got %q", got)
	}
	if got := confidenceLabel(in, &types.ModelMetadata{}); got != ConfidenceUnknown {
		t.Fatalf("empty ranges: got %q", got)
	}
}

func TestConfidence_NoUsableStats(t *testing.T) {
	md := &types.ModelMetadata{FeatureRanges: map[string]types.FeatureStats{
		"Square_Footage": {Mean: math.NaN(), Std: 500},
		"Bedrooms":       {Mean: 3, Std: -1},
	}}
	in := types.PredictionInputs{SquareFootage: 2000, Bedrooms: 3, TotalBathrooms: 2}
	if got := confidenceLabel(in, md); got != ConfidenceUnknown {
		t.Fatalf("unusable stats: got %q", got)
	}
}

func TestConfidence_AllWithinOneSigma_High(t *testing.T) {
	md := &types.ModelMetadata{FeatureRanges: fullRanges()}
	in := types.PredictionInputs{SquareFootage: 2000, Bedrooms: 3, TotalBathrooms: 2}
	if got := confidenceLabel(in, md); got != ConfidenceHigh {
		t.Fatalf("got %q want High", got)
	}
}

func TestConfidence_FarOutlier_Low(t *testing.T) {
	md := &types.ModelMetadata{FeatureRanges: fullRanges()}
	// all three features beyond 3 sigma: each scores 0.3 -> avg 0.3 -> Low
	in := types.PredictionInputs{SquareFootage: 10000, Bedrooms: 20, TotalBathrooms: 15}
	if got := confidenceLabel(in, md); got != ConfidenceLow {
		t.Fatalf("got %q want Low", got)
	}
}

func TestConfidence_MixedMedium(t *testing.T) {
	md := &types.ModelMetadata{FeatureRanges: fullRanges()}
	// sqft at z=0 (0.9), bedrooms at z=1.5 (0.7), bathrooms at z=2.67 (0.5)
	// avg = 0.7 -> Medium
	in := types.PredictionInputs{SquareFootage: 2000, Bedrooms: 4.5, TotalBathrooms: 4}
	if got := confidenceLabel(in, md); got != ConfidenceMedium {
		t.Fatalf("got %q want Medium", got)
	}
}

func TestConfidence_PartialStatsAveragesAvailable(t *testing.T) {
	md := &types.ModelMetadata{FeatureRanges: map[string]types.FeatureStats{
		"Square_Footage": statsFor(2000, 500),
	}}
	// only sqft has stats; z=0 -> 0.9 -> High regardless of the other inputs
	in := types.PredictionInputs{SquareFootage: 2000, Bedrooms: 50, TotalBathrooms: 40}
	if got := confidenceLabel(in, md); got != ConfidenceHigh {
		t.Fatalf("got %q want High", got)
	}
}

func TestConfidence_ZeroStdTreatedAsZeroZ(t *testing.T) {
	md := &types.ModelMetadata{FeatureRanges: map[string]types.FeatureStats{
		"Square_Footage": statsFor(2000, 0),
	}}
	// any value scores as z=0 -> 0.9 -> High; never a division by zero
	in := types.PredictionInputs{SquareFootage: 999999, Bedrooms: 3, TotalBathrooms: 2}
	if got := confidenceLabel(in, md); got != ConfidenceHigh {
		t.Fatalf("got %q want High", got)
	}
}

func TestPointScore_Buckets(t *testing.T) {
	cases := []struct {
		z    float64
		want float64
	}{
		{0, 0.9},
		{1, 0.9},
		{1.01, 0.7},
		{2, 0.7},
		{2.5, 0.5},
		{3, 0.5},
		{3.2, 0.3},
		{100, 0.3},
	}
	for _, c := range cases {
		if got := pointScore(c.z); got != c.want {
			t.Fatalf("pointScore(%v)=%v want %v", c.z, got, c.want)
		}
	}
}

func TestPointScore_MonotonicInZ(t *testing.T) {
	// increasing |value-mean| with std fixed never increases the score
	const std = 500.0
	prev := math.Inf(1)
	for dev := 0.0; dev <= 5000; dev += 50 {
		got := pointScore(dev / std)
		if got > prev {
			t.Fatalf("score increased at dev=%v: %v > %v", dev, got, prev)
		}
		prev = got
	}
}

func TestConfidence_SpecExample(t *testing.T) {
	// mean=2000, std=500: input 2000 -> z=0 -> 0.9; input 3600 -> z=3.2 -> 0.3
	md := &types.ModelMetadata{FeatureRanges: map[string]types.FeatureStats{
		"Square_Footage": statsFor(2000, 500),
	}}
	in := types.PredictionInputs{SquareFootage: 2000}
	if got := confidenceLabel(in, md); got != ConfidenceHigh {
		t.Fatalf("z=0 case: got %q want High", got)
	}
	in.SquareFootage = 3600
	if got := confidenceLabel(in, md); got != ConfidenceLow {
		t.Fatalf("z=3.2 case: got %q want Low", got)
	}
}
