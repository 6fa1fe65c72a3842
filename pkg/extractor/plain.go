package extractor

import (
	"fmt"
	"unicode/utf8"

	"ai-policyintel-be/internal/pkg/apperror"
)

type PlainTextExtractor struct{}

func (e *PlainTextExtractor) Extract(fileName string, data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", apperror.Extraction(fmt.Sprintf("%s is not valid utf-8 text", fileName), nil)
	}
	return string(data), nil
}
