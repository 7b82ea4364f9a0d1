package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"priced/pkg/types"
)

// Service defines the model-slot operations required by the HTTP API layer.
type Service interface {
	Load(modelPath, metadataPath string) (*types.ModelInfo, error)
	Predict(squareFootage, bedrooms, totalBathrooms float64) (*types.PredictionResult, error)
	Info() *types.ModelInfo
	Metadata() *types.ModelMetadata
	Ready() bool
}

// Registry lists the model artifacts discoverable in the models directory.
type Registry interface {
	Models() []types.ModelFile
}

func NewMux(svc Service, reg Registry) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	r.Use(MetricsMiddleware)
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
		}))
	}

	r.Post("/api/load_model", func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeJSON[types.LoadModelRequest](w, r)
		if !ok {
			return
		}
		if strings.TrimSpace(req.ModelPath) == "" {
			writeJSONError(w, http.StatusBadRequest, "model path is required")
			return
		}
		start := time.Now()
		info, err := svc.Load(req.ModelPath, req.MetadataPath)
		if err != nil {
			ObserveModelLoad("error")
			status := statusForError(err)
			writeJSONError(w, status, err.Error())
			logRequest(r, "load_model", status, time.Since(start), err)
			return
		}
		ObserveModelLoad("ok")
		writeJSON(w, http.StatusOK, types.LoadModelResponse{
			Success:   true,
			Message:   "Model loaded successfully!",
			ModelInfo: info,
		})
		logRequest(r, "load_model", http.StatusOK, time.Since(start), nil)
	})

	r.Post("/api/predict", func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeJSON[types.PredictRequest](w, r)
		if !ok {
			return
		}
		start := time.Now()
		result, err := svc.Predict(req.SquareFootage, req.Bedrooms, req.TotalBathrooms)
		if err != nil {
			status := statusForError(err)
			writeJSONError(w, status, err.Error())
			logRequest(r, "predict", status, time.Since(start), err)
			return
		}
		ObservePrediction(result.Confidence)
		writeJSON(w, http.StatusOK, types.PredictResponse{Success: true, Result: result})
		logRequest(r, "predict", http.StatusOK, time.Since(start), nil)
	})

	r.Get("/api/model_info", func(w http.ResponseWriter, r *http.Request) {
		info := svc.Info()
		if info == nil {
			writeJSONError(w, http.StatusNotFound, "no model loaded")
			return
		}
		writeJSON(w, http.StatusOK, types.ModelInfoResponse{
			Success:       true,
			ModelInfo:     info,
			ModelMetadata: svc.Metadata(),
		})
	})

	r.Get("/api/models", func(w http.ResponseWriter, r *http.Request) {
		models := reg.Models()
		if models == nil {
			models = []types.ModelFile{}
		}
		writeJSON(w, http.StatusOK, types.ModelsResponse{Success: true, Models: models})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("no model"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)
	mountPages(r, svc, reg)

	return r
}

// decodeJSON enforces the JSON content type and body size limit, then decodes
// the request body. On failure it writes the error response and returns false.
func decodeJSON[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	var req T
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return req, false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// MaxBytesReader errors land here too; report 400 without size details
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return req, false
	}
	return req, true
}

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
