package extractor

import (
	"fmt"

	"ai-policyintel-be/internal/pkg/apperror"
)

// ImageExtractor is a placeholder for scanned documents. Text recovery from
// images needs an OCR engine, which this deployment does not ship with.
type ImageExtractor struct{}

func (e *ImageExtractor) Extract(fileName string, data []byte) (string, error) {
	return "", apperror.Extraction(
		fmt.Sprintf("cannot extract text from %s: no OCR engine is configured for image files", fileName),
		nil,
	)
}
