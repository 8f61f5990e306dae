package model

import (
	"errors"
	"fmt"
)

// CompletionError reports a failed completion call: the request could not
// be sent, the service answered with an error, or the stream broke.
type CompletionError struct {
	Provider string
	Model    string
	Err      error
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("%s completion failed (model %s): %v", e.Provider, e.Model, e.Err)
}

func (e *CompletionError) Unwrap() error {
	return e.Err
}

// NewCompletionError wraps err unless it already is a *CompletionError.
func NewCompletionError(provider, modelName string, err error) error {
	if err == nil {
		return nil
	}
	var ce *CompletionError
	if errors.As(err, &ce) {
		return err
	}
	return &CompletionError{Provider: provider, Model: modelName, Err: err}
}
