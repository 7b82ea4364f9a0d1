package model

import (
	"math"
	"testing"
)

func TestLinearPredict(t *testing.T) {
	m := &Linear{Coefficients: []float64{150, 10000, 5000}, Intercept: 50000}
	got, err := m.Predict([]float64{2000, 3, 2})
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	want := 50000 + 150*2000 + 10000*3 + 5000*2.0
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("predict=%v want=%v", got, want)
	}
}

func TestLinearPredict_DimensionMismatch(t *testing.T) {
	m := &Linear{Coefficients: []float64{1, 2, 3}}
	if _, err := m.Predict([]float64{1, 2}); err == nil {
		t.Fatalf("expected dimension mismatch error")
	}
}

func TestLinearPredict_NoCoefficients(t *testing.T) {
	m := &Linear{}
	if _, err := m.Predict([]float64{1, 2, 3}); err == nil {
		t.Fatalf("expected error for empty model")
	}
}

func TestLinearFeatures_Default(t *testing.T) {
	m := &Linear{Coefficients: []float64{1, 2, 3}}
	f := m.Features()
	if len(f) != 3 || f[0] != "Square_Footage" || f[1] != "Bedrooms" || f[2] != "Total_Bathrooms" {
		t.Fatalf("unexpected default features: %v", f)
	}
}

func TestLinearFeatures_Named(t *testing.T) {
	m := &Linear{Coefficients: []float64{1, 2}, FeatureNames: []string{"a", "b"}}
	f := m.Features()
	if len(f) != 2 || f[0] != "a" || f[1] != "b" {
		t.Fatalf("unexpected features: %v", f)
	}
	// mutation of the returned slice must not leak back
	f[0] = "x"
	if m.FeatureNames[0] != "a" {
		t.Fatalf("Features returned the internal slice")
	}
}
