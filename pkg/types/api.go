package types

// LoadModelRequest is the payload for POST /api/load_model.
type LoadModelRequest struct {
	// Path to the model artifact (.json or .gob).
	// example: saved_models/house_price_model.json
	ModelPath string `json:"model_path" example:"saved_models/house_price_model.json"`
	// Optional path to the metadata sidecar.
	// example: saved_models/house_price_model_metadata.json
	MetadataPath string `json:"metadata_path,omitempty" example:"saved_models/house_price_model_metadata.json"`
}

// LoadModelResponse is returned by POST /api/load_model.
type LoadModelResponse struct {
	Success bool `json:"success" example:"true"`
	// Human-readable outcome message.
	// example: Model loaded successfully!
	Message   string     `json:"message" example:"Model loaded successfully!"`
	ModelInfo *ModelInfo `json:"model_info,omitempty"`
}

// PredictRequest is the payload for POST /api/predict.
type PredictRequest struct {
	SquareFootage  float64 `json:"square_footage" example:"2100"`
	Bedrooms       float64 `json:"bedrooms" example:"3"`
	TotalBathrooms float64 `json:"total_bathrooms" example:"2"`
}

// PredictResponse is returned by POST /api/predict.
type PredictResponse struct {
	Success bool `json:"success" example:"true"`
	// Failure message when Success is false.
	Message string            `json:"message,omitempty"`
	Result  *PredictionResult `json:"result,omitempty"`
}

// ModelInfoResponse is returned by GET /api/model_info.
type ModelInfoResponse struct {
	Success       bool           `json:"success" example:"true"`
	Message       string         `json:"message,omitempty"`
	ModelInfo     *ModelInfo     `json:"model_info,omitempty"`
	ModelMetadata *ModelMetadata `json:"model_metadata,omitempty"`
}

// ModelsResponse wraps the artifact listing returned by GET /api/models.
type ModelsResponse struct {
	Success bool `json:"success" example:"true"`
	// Available artifacts, newest first.
	Models []ModelFile `json:"models"`
}

// ErrorResponse is a consistent JSON failure payload.
type ErrorResponse struct {
	Success bool `json:"success" example:"false"`
	// Error message.
	// example: invalid JSON body
	Message string `json:"message" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}
