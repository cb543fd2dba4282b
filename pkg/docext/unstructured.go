package docext

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"
)

// UnstructuredClient talks to a hosted Unstructured-compatible partition
// endpoint. Element extraction stays external; this is just the wire call.
type UnstructuredClient struct {
	BaseURL string
	APIKey  string
	httpDo  *http.Client
}

func NewUnstructuredClient(baseURL, apiKey string) *UnstructuredClient {
	return &UnstructuredClient{
		BaseURL: baseURL,
		APIKey:  apiKey,
		httpDo: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// Configured reports whether a remote endpoint was provided.
func (c *UnstructuredClient) Configured() bool {
	return c != nil && c.BaseURL != ""
}

type apiElement struct {
	Type     string         `json:"type"`
	Text     string         `json:"text"`
	Metadata map[string]any `json:"metadata"`
}

// Partition uploads the file and returns the extracted elements.
func (c *UnstructuredClient) Partition(ctx context.Context, data []byte, filename string) ([]Element, error) {
	if !c.Configured() {
		return nil, errors.New("extraction api is not configured")
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("files", filename)
	if err != nil {
		return nil, err
	}
	if _, err := fw.Write(data); err != nil {
		return nil, err
	}
	if err := mw.WriteField("strategy", "auto"); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/general/v0/general", c.BaseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())
	httpReq.Header.Set("Accept", "application/json")
	if c.APIKey != "" {
		httpReq.Header.Set("unstructured-api-key", c.APIKey)
	}

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errMap map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&errMap)
		return nil, fmt.Errorf("extraction api http %d: %v", resp.StatusCode, errMap)
	}

	var raw []apiElement
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}
	return convertAPIElements(raw), nil
}

func convertAPIElements(raw []apiElement) []Element {
	elements := make([]Element, 0, len(raw))
	for _, el := range raw {
		text := normalizeWhitespace(el.Text)
		if text == "" {
			continue
		}
		out := Element{
			Type:     mapCategory(el.Type),
			Text:     text,
			Metadata: el.Metadata,
		}
		if el.Metadata != nil {
			if pn, ok := el.Metadata["page_number"].(float64); ok {
				out.PageNumber = int(pn)
			}
			// Only keep coordinates when they are flat numeric values.
			if coords, ok := el.Metadata["coordinates"].(map[string]any); ok {
				flat := make(map[string]float64, len(coords))
				numeric := true
				for k, v := range coords {
					f, ok := v.(float64)
					if !ok {
						numeric = false
						break
					}
					flat[k] = f
				}
				if numeric && len(flat) > 0 {
					out.Coordinates = flat
				}
			}
		}
		elements = append(elements, out)
	}
	return elements
}
