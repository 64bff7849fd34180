package ocr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client recognizes the text in a base64 data-URL image.
type Client interface {
	Recognize(ctx context.Context, image string) (string, error)
}

// RemoteClient talks to an OCR.space-compatible HTTP endpoint.
type RemoteClient struct {
	APIKey  string
	BaseURL string
	client  *http.Client
}

func NewRemoteClient(apiKey string) *RemoteClient {
	return &RemoteClient{
		APIKey:  apiKey,
		BaseURL: "https://api.ocr.space/parse/image",
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (c *RemoteClient) Recognize(ctx context.Context, image string) (string, error) {
	if c.APIKey == "" {
		return "", errors.New("missing OCR API key")
	}
	if image == "" {
		return "", errors.New("empty image")
	}

	form := url.Values{}
	form.Set("base64Image", image)
	form.Set("language", "eng")
	form.Set("scale", "true")

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.BaseURL,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("apikey", c.APIKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("OCR request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("OCR API error - Status: %d, Response: %s", resp.StatusCode, string(body))
		return "", fmt.Errorf("OCR API returned status %d", resp.StatusCode)
	}

	var parsed struct {
		ParsedResults []struct {
			ParsedText string `json:"ParsedText"`
		} `json:"ParsedResults"`
		IsErroredOnProcessing bool     `json:"IsErroredOnProcessing"`
		ErrorMessage          []string `json:"ErrorMessage"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse OCR response: %w", err)
	}

	if parsed.IsErroredOnProcessing {
		return "", fmt.Errorf("OCR processing failed: %s", strings.Join(parsed.ErrorMessage, "; "))
	}
	if len(parsed.ParsedResults) == 0 {
		return "", errors.New("empty OCR response")
	}

	return parsed.ParsedResults[0].ParsedText, nil
}
