package store

import "fmt"

// noModelLoadedError signals a prediction attempted before any load.
type noModelLoadedError struct{}

func (noModelLoadedError) Error() string {
	return "no model loaded, please load a model first"
}

// IsNoModelLoaded reports whether err indicates an empty model slot.
func IsNoModelLoaded(err error) bool {
	_, ok := err.(noModelLoadedError)
	return ok
}

// ErrNoModelLoaded constructs a noModelLoadedError.
func ErrNoModelLoaded() error { return noModelLoadedError{} }

// invalidInputError signals a non-positive feature value.
type invalidInputError struct{ msg string }

func (e invalidInputError) Error() string { return e.msg }

// IsInvalidInput reports whether err indicates rejected feature values.
func IsInvalidInput(err error) bool {
	_, ok := err.(invalidInputError)
	return ok
}

// computationError signals an unexpected failure inside the model call.
type computationError struct{ err error }

func (e computationError) Error() string { return fmt.Sprintf("prediction error: %v", e.err) }

func (e computationError) Unwrap() error { return e.err }

// IsComputation reports whether err originated inside the model computation.
func IsComputation(err error) bool {
	_, ok := err.(computationError)
	return ok
}
