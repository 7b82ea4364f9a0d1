package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"priced/internal/common/fsutil"
	"priced/internal/model"
	"priced/pkg/types"
)

const sampleConfig = `# priced configuration
addr: ":8080"
models_dir: "saved_models"
auto_load: true
log_level: "info"
`

const readme = `# House Price Prediction Service

A small daemon that loads a pre-trained linear regression model and serves
price predictions over HTTP.

## Quick start

1. Put a model artifact (and optional metadata sidecar) in saved_models/,
   or generate a demo one:

       pricectl sample-model

2. Start the daemon:

       priced -config priced.yaml

3. Predict:

       pricectl predict 2100 3 2

## Model artifacts

Artifacts are JSON or gob files holding the regression coefficients,
intercept, and feature names. A sidecar named <name>_metadata.json next to
the artifact supplies per-feature training statistics (min/max/mean/std)
and quality metrics; it powers the confidence label on predictions.

## API

- POST /api/load_model  {"model_path": "...", "metadata_path": "..."}
- POST /api/predict     {"square_footage": 2100, "bedrooms": 3, "total_bathrooms": 2}
- GET  /api/model_info
- GET  /api/models
`

// fnInit scaffolds a working directory: the models dir, a sample config and
// a README. Existing files are left untouched.
func fnInit(out io.Writer, dir, modelsDir string) error {
	base, err := fsutil.ExpandHome(dir)
	if err != nil {
		return err
	}
	if err := fsutil.EnsureDir(filepath.Join(base, modelsDir)); err != nil {
		return fmt.Errorf("create models dir: %w", err)
	}
	fmt.Fprintf(out, "created %s/\n", filepath.Join(base, modelsDir))

	for _, f := range []struct {
		name, content string
	}{
		{"priced.yaml", sampleConfig},
		{"README.md", readme},
	} {
		path := filepath.Join(base, f.name)
		written, err := fsutil.WriteFileIfAbsent(path, []byte(f.content), 0o644)
		if err != nil {
			return fmt.Errorf("write %s: %w", f.name, err)
		}
		if written {
			fmt.Fprintf(out, "wrote %s\n", path)
		} else {
			fmt.Fprintf(out, "kept existing %s\n", path)
		}
	}
	return nil
}

// fnSampleModel writes a demo artifact plus metadata sidecar into modelsDir.
func fnSampleModel(out io.Writer, modelsDir, name string) error {
	base, err := fsutil.ExpandHome(modelsDir)
	if err != nil {
		return err
	}
	if err := fsutil.EnsureDir(base); err != nil {
		return fmt.Errorf("create models dir: %w", err)
	}

	artifactPath := filepath.Join(base, name+".json")
	m := &model.Linear{
		ModelType:    "LinearRegression",
		Coefficients: []float64{150, 10000, 5000},
		Intercept:    50000,
		FeatureNames: model.DefaultFeatures,
	}
	if err := model.SaveArtifact(artifactPath, m); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}
	fmt.Fprintf(out, "wrote %s\n", artifactPath)

	r2, rmse, mae, samples := 0.87, 24850.3, 18210.5, 1460
	md := types.ModelMetadata{
		FeatureRanges: map[string]types.FeatureStats{
			"Square_Footage":  {Min: 500, Max: 6000, Mean: 2000, Std: 500},
			"Bedrooms":        {Min: 1, Max: 6, Mean: 3, Std: 1},
			"Total_Bathrooms": {Min: 1, Max: 4, Mean: 2, Std: 0.75},
		},
		R2Score:         &r2,
		RMSE:            &rmse,
		MAE:             &mae,
		TrainingSamples: &samples,
	}
	b, err := json.MarshalIndent(md, "", "  ")
	if err != nil {
		return err
	}
	sidecarPath := filepath.Join(base, name+"_metadata.json")
	if err := os.WriteFile(sidecarPath, b, 0o644); err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}
	fmt.Fprintf(out, "wrote %s\n", sidecarPath)
	return nil
}
