package store

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"priced/internal/model"
	"priced/pkg/types"
)

// bundle is an immutable model+metadata+info triple. It is built completely
// before publication, so readers always observe a self-consistent pair.
type bundle struct {
	model    *model.Linear
	metadata *types.ModelMetadata
	info     types.ModelInfo
}

// Store owns the single process-wide current-model slot. Load publishes a
// fully built bundle with one pointer swap under the write lock; Predict
// snapshots the pointer under the read lock and computes lock-free.
type Store struct {
	mu  sync.RWMutex
	cur *bundle

	log        zerolog.Logger
	startTime  time.Time
	loadsTotal uint64
}

// New constructs an empty Store.
func New(log zerolog.Logger) *Store {
	return &Store{log: log, startTime: time.Now()}
}

// Load replaces the current model with the artifact at modelPath, attaching
// the optional metadata sidecar. The previous model, if any, is discarded.
// A missing sidecar degrades confidence scoring to Unknown; a malformed one
// fails the load.
func (s *Store) Load(modelPath, metadataPath string) (*types.ModelInfo, error) {
	m, err := model.LoadArtifact(modelPath)
	if err != nil {
		s.log.Error().Err(err).Str("model_path", modelPath).Msg("model load failed")
		return nil, err
	}
	s.log.Info().Str("model_path", modelPath).Msg("model loaded")

	var md *types.ModelMetadata
	if metadataPath != "" {
		md, err = model.LoadMetadata(metadataPath)
		if err != nil {
			if !model.IsFileNotFound(err) {
				s.log.Error().Err(err).Str("metadata_path", metadataPath).Msg("metadata load failed")
				return nil, err
			}
			s.log.Warn().Str("metadata_path", metadataPath).Msg("metadata sidecar missing, confidence degraded to Unknown")
			md = nil
			metadataPath = ""
		} else {
			s.log.Info().Str("metadata_path", metadataPath).Msg("metadata loaded")
		}
	}

	info := types.ModelInfo{
		ModelPath:    modelPath,
		MetadataPath: metadataPath,
		LoadedAt:     time.Now().Format(time.RFC3339),
		ModelType:    "LinearRegression",
		Features:     m.Features(),
	}
	if md != nil {
		info.R2Score = md.R2Score
		info.RMSE = md.RMSE
		info.MAE = md.MAE
		info.TrainingSamples = md.TrainingSamples
	}

	b := &bundle{model: m, metadata: md, info: info}
	s.mu.Lock()
	s.cur = b
	s.loadsTotal++
	s.mu.Unlock()

	out := info
	return &out, nil
}

// Predict validates the three feature values, runs the model once and derives
// a confidence label from the training statistics. Inputs are validated
// before the model slot is consulted, so non-positive values are rejected
// regardless of model state.
func (s *Store) Predict(squareFootage, bedrooms, totalBathrooms float64) (*types.PredictionResult, error) {
	if squareFootage <= 0 || bedrooms <= 0 || totalBathrooms <= 0 {
		return nil, invalidInputError{msg: "all values must be positive numbers"}
	}
	b := s.snapshot()
	if b == nil {
		return nil, noModelLoadedError{}
	}

	inputs := types.PredictionInputs{
		SquareFootage:  squareFootage,
		Bedrooms:       bedrooms,
		TotalBathrooms: totalBathrooms,
	}
	price, err := b.model.Predict([]float64{squareFootage, bedrooms, totalBathrooms})
	if err != nil {
		s.log.Error().Err(err).Msg("prediction failed")
		return nil, computationError{err: err}
	}
	return &types.PredictionResult{
		PredictedPrice: price,
		FormattedPrice: FormatPrice(price),
		Confidence:     confidenceLabel(inputs, b.metadata),
		Inputs:         inputs,
	}, nil
}

// Info returns a copy of the active model's descriptive snapshot, or nil when
// no model is loaded.
func (s *Store) Info() *types.ModelInfo {
	b := s.snapshot()
	if b == nil {
		return nil
	}
	info := b.info
	return &info
}

// Metadata returns the active model's metadata sidecar, or nil.
func (s *Store) Metadata() *types.ModelMetadata {
	b := s.snapshot()
	if b == nil {
		return nil
	}
	return b.metadata
}

// Ready reports whether a model is currently loaded.
func (s *Store) Ready() bool { return s.snapshot() != nil }

// LoadsTotal returns the number of successful loads since startup.
func (s *Store) LoadsTotal() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadsTotal
}

// Uptime reports time since the store was constructed.
func (s *Store) Uptime() time.Duration { return time.Since(s.startTime) }

func (s *Store) snapshot() *bundle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}
