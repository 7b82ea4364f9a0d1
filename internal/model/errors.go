package model

import "fmt"

// unsupportedFormatError signals a model path without a recognized extension.
type unsupportedFormatError struct{ path string }

func (e unsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported model file format: %s (use .json or .gob)", e.path)
}

// IsUnsupportedFormat reports whether err indicates an unrecognized artifact extension.
func IsUnsupportedFormat(err error) bool {
	_, ok := err.(unsupportedFormatError)
	return ok
}

// fileNotFoundError signals a missing artifact or sidecar file.
type fileNotFoundError struct{ path string }

func (e fileNotFoundError) Error() string { return "model file not found: " + e.path }

// IsFileNotFound reports whether err indicates a missing file on disk.
func IsFileNotFound(err error) bool {
	_, ok := err.(fileNotFoundError)
	return ok
}

// deserializationError signals a corrupt or truncated model artifact.
type deserializationError struct {
	path string
	err  error
}

func (e deserializationError) Error() string {
	return fmt.Sprintf("failed to deserialize model %s: %v", e.path, e.err)
}

func (e deserializationError) Unwrap() error { return e.err }

// IsDeserialization reports whether err indicates a corrupt model artifact.
func IsDeserialization(err error) bool {
	_, ok := err.(deserializationError)
	return ok
}

// metadataParseError signals a malformed metadata sidecar.
type metadataParseError struct {
	path string
	err  error
}

func (e metadataParseError) Error() string {
	return fmt.Sprintf("failed to parse metadata %s: %v", e.path, e.err)
}

func (e metadataParseError) Unwrap() error { return e.err }

// IsMetadataParse reports whether err indicates malformed sidecar JSON.
func IsMetadataParse(err error) bool {
	_, ok := err.(metadataParseError)
	return ok
}
