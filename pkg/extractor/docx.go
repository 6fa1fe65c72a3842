package extractor

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"ai-policyintel-be/internal/pkg/apperror"
)

// DocxExtractor pulls text runs out of word/document.xml. A .docx is a zip
// archive; runs live in <w:t> elements and paragraphs end on </w:p>.
type DocxExtractor struct{}

func (e *DocxExtractor) Extract(fileName string, data []byte) (string, error) {
	zipReader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", apperror.Extraction(fmt.Sprintf("failed to open docx %s", fileName), err)
	}

	var documentXML io.ReadCloser
	for _, f := range zipReader.File {
		if f.Name == "word/document.xml" {
			documentXML, err = f.Open()
			if err != nil {
				return "", apperror.Extraction(fmt.Sprintf("failed to open docx %s", fileName), err)
			}
			break
		}
	}
	if documentXML == nil {
		return "", apperror.Extraction(fmt.Sprintf("%s has no word/document.xml", fileName), nil)
	}
	defer documentXML.Close()

	var sb strings.Builder
	decoder := xml.NewDecoder(documentXML)
	inText := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", apperror.Extraction(fmt.Sprintf("failed to parse docx %s", fileName), err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}

	return sb.String(), nil
}
