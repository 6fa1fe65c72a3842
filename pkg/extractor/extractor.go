package extractor

import (
	"fmt"
	"path/filepath"
	"strings"

	"ai-policyintel-be/internal/pkg/apperror"
)

// Extractor converts one file format into plain text.
type Extractor interface {
	Extract(fileName string, data []byte) (string, error)
}

// Registry dispatches extraction by file extension. Only extensions in the
// allow-list are accepted; everything else is rejected before any parsing.
type Registry struct {
	extractors map[string]Extractor
}

func NewRegistry(allowedExts []string) *Registry {
	known := map[string]Extractor{
		".pdf":  &PdfExtractor{},
		".txt":  &PlainTextExtractor{},
		".docx": &DocxExtractor{},
		".eml":  &EmlExtractor{},
		".jpg":  &ImageExtractor{},
		".jpeg": &ImageExtractor{},
		".png":  &ImageExtractor{},
	}

	extractors := make(map[string]Extractor)
	for _, ext := range allowedExts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if e, ok := known[ext]; ok {
			extractors[ext] = e
		}
	}
	return &Registry{extractors: extractors}
}

func (r *Registry) Extract(fileName string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	e, ok := r.extractors[ext]
	if !ok {
		return "", apperror.Validation(fmt.Sprintf("unsupported file type: %s", ext))
	}

	text, err := e.Extract(fileName, data)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", apperror.Extraction(fmt.Sprintf("no text content found in %s", fileName), nil)
	}
	return text, nil
}

// Supported reports whether the registry accepts the file's extension.
func (r *Registry) Supported(fileName string) bool {
	_, ok := r.extractors[strings.ToLower(filepath.Ext(fileName))]
	return ok
}
