// Package extraction talks to the AI document extraction service.
package extraction

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"scholarhub/apperror"

	"github.com/go-resty/resty/v2"
)

// Request is one document to read
type Request struct {
	Kind     string
	Filename string
	MimeType string
	Content  []byte
}

// Result is what the extractor read. GPA and Grades are only filled for transcripts.
type Result struct {
	Fields      map[string]interface{} `json:"fields"`
	Institution string                 `json:"institution"`
	GPA         *float64               `json:"gpa"`
	Grades      map[string]float64     `json:"grades"`
}

// Extractor turns a document into structured fields
type Extractor interface {
	Extract(ctx context.Context, req Request) (*Result, error)
}

var supportedMimeTypes = map[string]bool{
	"application/pdf": true,
	"image/png":       true,
	"image/jpeg":      true,
	"image/webp":      true,
}

// CheckFormat rejects formats the extractor cannot read before any call is made.
func CheckFormat(mimeType string) error {
	mt := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	if !supportedMimeTypes[mt] {
		return apperror.Extraction(fmt.Sprintf("unsupported document format %q, try a PDF", mimeType), true, nil)
	}
	return nil
}

// HTTPClient calls the extraction API over HTTP
type HTTPClient struct {
	client *resty.Client
}

func NewHTTPClient(baseURL, apiKey string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")
	if apiKey != "" {
		client.SetAuthToken(apiKey)
	}
	return &HTTPClient{client: client}
}

type extractRequest struct {
	Kind     string `json:"kind"`
	Filename string `json:"filename"`
	MimeType string `json:"mimeType"`
	Content  string `json:"content"`
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Extract posts the document to /v1/extract.
func (c *HTTPClient) Extract(ctx context.Context, req Request) (*Result, error) {
	if err := CheckFormat(req.MimeType); err != nil {
		return nil, err
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(extractRequest{
			Kind:     req.Kind,
			Filename: req.Filename,
			MimeType: req.MimeType,
			Content:  base64.StdEncoding.EncodeToString(req.Content),
		}).
		Post("/v1/extract")
	if err != nil {
		return nil, apperror.Extraction("extraction service unreachable", false, err)
	}

	if resp.StatusCode() != http.StatusOK {
		var body errorBody
		_ = json.Unmarshal(resp.Body(), &body)
		unsupported := resp.StatusCode() == http.StatusUnsupportedMediaType || body.Error.Code == "unsupported_format"
		msg := body.Error.Message
		if msg == "" {
			msg = fmt.Sprintf("extraction failed with status %d", resp.StatusCode())
		}
		return nil, apperror.Extraction(msg, unsupported, nil)
	}

	var result Result
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, apperror.Extraction("extraction service returned an unreadable response", false, err)
	}
	return &result, nil
}
