package model

import "fmt"

// DefaultFeatures is the fixed feature order every artifact is trained with:
// square footage, bedrooms, total bathrooms.
var DefaultFeatures = []string{"Square_Footage", "Bedrooms", "Total_Bathrooms"}

// Linear is a trained linear regression artifact. The serialized forms
// (.json and .gob) both encode exactly these fields.
type Linear struct {
	ModelType    string    `json:"model_type"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
	FeatureNames []string  `json:"feature_names,omitempty"`
}

// Features returns the ordered feature names the model expects.
func (m *Linear) Features() []string {
	if len(m.FeatureNames) == len(m.Coefficients) && len(m.FeatureNames) > 0 {
		return append([]string(nil), m.FeatureNames...)
	}
	return append([]string(nil), DefaultFeatures...)
}

// Predict maps an ordered feature vector to a price estimate.
func (m *Linear) Predict(features []float64) (float64, error) {
	if len(m.Coefficients) == 0 {
		return 0, fmt.Errorf("model has no coefficients")
	}
	if len(features) != len(m.Coefficients) {
		return 0, fmt.Errorf("feature vector length %d does not match model dimension %d", len(features), len(m.Coefficients))
	}
	sum := m.Intercept
	for i, c := range m.Coefficients {
		sum += c * features[i]
	}
	return sum, nil
}
