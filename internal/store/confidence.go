package store

import (
	"math"

	"priced/pkg/types"
)

// Confidence labels.
const (
	ConfidenceHigh    = "High"
	ConfidenceMedium  = "Medium"
	ConfidenceLow     = "Low"
	ConfidenceUnknown = "Unknown"
)

// confidenceLabel buckets how typical the inputs are relative to the training
// distribution. Per-feature |z| maps to a point score (z<=1: 0.9, z<=2: 0.7,
// z<=3: 0.5, else 0.3); the scores are averaged and bucketed (>=0.8 High,
// >=0.6 Medium, else Low). No metadata, or no usable per-feature statistics,
// yields Unknown. Malformed statistics are skipped, never an error.
func confidenceLabel(in types.PredictionInputs, md *types.ModelMetadata) string {
	if md == nil || len(md.FeatureRanges) == 0 {
		return ConfidenceUnknown
	}
	names := [3]string{"Square_Footage", "Bedrooms", "Total_Bathrooms"}
	values := [3]float64{in.SquareFootage, in.Bedrooms, in.TotalBathrooms}

	var sum float64
	var n int
	for i, name := range names {
		stats, ok := md.FeatureRanges[name]
		if !ok || !usableStats(stats) {
			continue
		}
		z := 0.0
		if stats.Std > 0 {
			z = math.Abs(values[i]-stats.Mean) / stats.Std
		}
		sum += pointScore(z)
		n++
	}
	if n == 0 {
		return ConfidenceUnknown
	}
	avg := sum / float64(n)
	switch {
	case avg >= 0.8:
		return ConfidenceHigh
	case avg >= 0.6:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

func pointScore(z float64) float64 {
	switch {
	case z <= 1:
		return 0.9
	case z <= 2:
		return 0.7
	case z <= 3:
		return 0.5
	default:
		return 0.3
	}
}

func usableStats(s types.FeatureStats) bool {
	if s.Std < 0 {
		return false
	}
	for _, v := range [2]float64{s.Mean, s.Std} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
