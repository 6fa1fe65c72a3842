package extractor

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"

	"ai-policyintel-be/internal/pkg/apperror"
)

type PdfExtractor struct{}

func (e *PdfExtractor) Extract(fileName string, data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", apperror.Extraction(fmt.Sprintf("failed to open pdf %s", fileName), err)
	}

	plainText, err := reader.GetPlainText()
	if err != nil {
		return "", apperror.Extraction(fmt.Sprintf("failed to read pdf text from %s", fileName), err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plainText); err != nil {
		return "", apperror.Extraction(fmt.Sprintf("failed to read pdf text from %s", fileName), err)
	}
	return buf.String(), nil
}
