package types

// ModelFile describes a discoverable model artifact in the models directory.
type ModelFile struct {
	// Artifact filename (including extension).
	// example: house_price_model.json
	Filename string `json:"filename" example:"house_price_model.json"`
	// Absolute path to the artifact on disk.
	// example: /home/user/saved_models/house_price_model.json
	Path string `json:"path" example:"/home/user/saved_models/house_price_model.json"`
	// Path to the paired metadata sidecar, empty when none exists.
	// example: /home/user/saved_models/house_price_model_metadata.json
	MetadataPath string `json:"metadata_path,omitempty" example:"/home/user/saved_models/house_price_model_metadata.json"`
	// Artifact size in bytes.
	// example: 412
	Size int64 `json:"size" example:"412"`
	// Last modification time, formatted "2006-01-02 15:04:05".
	// example: 2026-08-29 10:30:00
	Modified string `json:"modified" example:"2026-08-29 10:30:00"`
}

// FeatureStats holds training-time statistics for a single feature.
type FeatureStats struct {
	Min  float64 `json:"min" example:"500"`
	Max  float64 `json:"max" example:"6000"`
	Mean float64 `json:"mean" example:"2000"`
	Std  float64 `json:"std" example:"500"`
}

// ModelMetadata is the optional JSON sidecar describing a model artifact:
// per-feature training statistics plus aggregate quality metrics.
// Immutable once loaded; paired 1:1 with a loaded model.
type ModelMetadata struct {
	// Per-feature training statistics, keyed by feature name.
	FeatureRanges map[string]FeatureStats `json:"feature_ranges,omitempty"`
	// Coefficient of determination on the training set.
	// example: 0.87
	R2Score *float64 `json:"r2_score,omitempty" example:"0.87"`
	// Root mean squared error.
	// example: 24850.3
	RMSE *float64 `json:"rmse,omitempty" example:"24850.3"`
	// Mean absolute error.
	// example: 18210.5
	MAE *float64 `json:"mae,omitempty" example:"18210.5"`
	// Number of training samples.
	// example: 1460
	TrainingSamples *int `json:"training_samples,omitempty" example:"1460"`
}

// ModelInfo is a descriptive snapshot of the currently active model.
// It is regenerated on every successful load and always refers to the same
// model as the active slot.
type ModelInfo struct {
	// Path the model was loaded from.
	// example: saved_models/house_price_model.json
	ModelPath string `json:"model_path" example:"saved_models/house_price_model.json"`
	// Path the metadata sidecar was loaded from, empty when none.
	MetadataPath string `json:"metadata_path,omitempty"`
	// RFC 3339 load timestamp.
	// example: 2026-08-29T10:30:00Z
	LoadedAt string `json:"loaded_at" example:"2026-08-29T10:30:00Z"`
	// Model type tag.
	// example: LinearRegression
	ModelType string `json:"model_type" example:"LinearRegression"`
	// Ordered feature names the model expects.
	Features []string `json:"features"`
	// Quality metrics copied from the metadata sidecar when available.
	R2Score         *float64 `json:"r2_score,omitempty"`
	RMSE            *float64 `json:"rmse,omitempty"`
	MAE             *float64 `json:"mae,omitempty"`
	TrainingSamples *int     `json:"training_samples,omitempty"`
}

// PredictionInputs echoes the feature values a prediction was computed from.
type PredictionInputs struct {
	SquareFootage  float64 `json:"square_footage" example:"2100"`
	Bedrooms       float64 `json:"bedrooms" example:"3"`
	TotalBathrooms float64 `json:"total_bathrooms" example:"2"`
}

// PredictionResult is the outcome of a single prediction call. Created fresh
// per request; never persisted.
type PredictionResult struct {
	// Raw predicted price.
	// example: 452301.7
	PredictedPrice float64 `json:"predicted_price" example:"452301.7"`
	// Price formatted as US currency with thousands separators.
	// example: $452,301.70
	FormattedPrice string `json:"formatted_price" example:"$452,301.70"`
	// Confidence label: High, Medium, Low or Unknown.
	// example: High
	Confidence string `json:"confidence" example:"High"`
	// Echo of the request inputs.
	Inputs PredictionInputs `json:"inputs"`
}
