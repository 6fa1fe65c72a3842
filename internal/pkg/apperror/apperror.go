package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies failures so the HTTP boundary can map them to a status
// code without string matching. Batch operations keep per-item kinds in
// their item status; single-item operations propagate the first failure.
type Kind int

const (
	KindValidation Kind = iota
	KindExtraction
	KindEmbedding
	KindGeneration
	KindStore
	KindConfiguration
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindExtraction:
		return "extraction"
	case KindEmbedding:
		return "embedding"
	case KindGeneration:
		return "generation"
	case KindStore:
		return "store"
	case KindConfiguration:
		return "configuration"
	default:
		return "unknown"
	}
}

type AppError struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func Validation(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func Extraction(message string, cause error) *AppError {
	return &AppError{Kind: KindExtraction, Message: message, Cause: cause}
}

func Embedding(message string, cause error) *AppError {
	return &AppError{Kind: KindEmbedding, Message: message, Cause: cause}
}

func Generation(message string, cause error) *AppError {
	return &AppError{Kind: KindGeneration, Message: message, Cause: cause}
}

func Store(message string, cause error) *AppError {
	return &AppError{Kind: KindStore, Message: message, Cause: cause}
}

func Configuration(message string, cause error) *AppError {
	return &AppError{Kind: KindConfiguration, Message: message, Cause: cause}
}

// KindOf extracts the kind from any error in the chain. The second return
// is false for errors that carry no AppError.
func KindOf(err error) (Kind, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind, true
	}
	return 0, false
}

func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
