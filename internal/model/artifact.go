package model

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"priced/pkg/types"
)

// LoadArtifact reads a serialized regression model from disk. The codec is
// chosen by extension: .json via encoding/json, .gob via encoding/gob.
func LoadArtifact(path string) (*Linear, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json", ".gob":
	default:
		return nil, unsupportedFormatError{path: path}
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fileNotFoundError{path: path}
		}
		return nil, deserializationError{path: path, err: err}
	}
	var m Linear
	switch ext {
	case ".json":
		if err := json.Unmarshal(b, &m); err != nil {
			return nil, deserializationError{path: path, err: err}
		}
	case ".gob":
		if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&m); err != nil {
			return nil, deserializationError{path: path, err: err}
		}
	}
	if len(m.Coefficients) == 0 {
		return nil, deserializationError{path: path, err: errors.New("artifact has no coefficients")}
	}
	return &m, nil
}

// SaveArtifact writes a model to disk using the codec implied by the path
// extension. Used by pricectl to produce demo artifacts.
func SaveArtifact(path string, m *Linear) error {
	var b []byte
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		var err error
		if b, err = json.MarshalIndent(m, "", "  "); err != nil {
			return err
		}
	case ".gob":
		var buf bytes.Buffer
		if err := gob.NewEncoder(&buf).Encode(m); err != nil {
			return err
		}
		b = buf.Bytes()
	default:
		return unsupportedFormatError{path: path}
	}
	return os.WriteFile(path, b, 0o644)
}

// LoadMetadata reads an optional metadata sidecar. Callers decide whether a
// missing sidecar is an error; this function reports it as file-not-found.
func LoadMetadata(path string) (*types.ModelMetadata, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fileNotFoundError{path: path}
		}
		return nil, metadataParseError{path: path, err: err}
	}
	var md types.ModelMetadata
	if err := json.Unmarshal(b, &md); err != nil {
		return nil, metadataParseError{path: path, err: err}
	}
	return &md, nil
}
