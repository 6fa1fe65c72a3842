package extractor

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"strings"

	"ai-policyintel-be/internal/pkg/apperror"
)

// EmlExtractor reads an RFC 5322 message, keeping the subject line and
// every text/plain body part.
type EmlExtractor struct{}

func (e *EmlExtractor) Extract(fileName string, data []byte) (string, error) {
	msg, err := mail.ReadMessage(bytes.NewReader(data))
	if err != nil {
		return "", apperror.Extraction(fmt.Sprintf("failed to parse email %s", fileName), err)
	}

	var sb strings.Builder
	if subject := msg.Header.Get("Subject"); subject != "" {
		sb.WriteString("Subject: " + subject + "\n\n")
	}

	contentType := msg.Header.Get("Content-Type")
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = "text/plain"
	}

	if strings.HasPrefix(mediaType, "multipart/") {
		boundary := params["boundary"]
		if boundary == "" {
			return "", apperror.Extraction(fmt.Sprintf("%s multipart message has no boundary", fileName), nil)
		}
		mr := multipart.NewReader(msg.Body, boundary)
		for {
			part, err := mr.NextPart()
			if err == io.EOF {
				break
			}
			if err != nil {
				return "", apperror.Extraction(fmt.Sprintf("failed to read email part in %s", fileName), err)
			}
			partType, _, _ := mime.ParseMediaType(part.Header.Get("Content-Type"))
			if partType != "" && partType != "text/plain" {
				continue
			}
			body, err := decodeBody(part, part.Header.Get("Content-Transfer-Encoding"))
			if err != nil {
				return "", apperror.Extraction(fmt.Sprintf("failed to decode email part in %s", fileName), err)
			}
			sb.WriteString(body)
			sb.WriteString("\n\n")
		}
	} else {
		body, err := decodeBody(msg.Body, msg.Header.Get("Content-Transfer-Encoding"))
		if err != nil {
			return "", apperror.Extraction(fmt.Sprintf("failed to decode email body in %s", fileName), err)
		}
		sb.WriteString(body)
	}

	return sb.String(), nil
}

func decodeBody(r io.Reader, encoding string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "quoted-printable":
		r = quotedprintable.NewReader(r)
	case "base64":
		r = base64.NewDecoder(base64.StdEncoding, r)
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
