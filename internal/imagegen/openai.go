package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// OpenAIClient generates dish photos through the OpenAI Images API.
type OpenAIClient struct {
	apiKey  string
	model   string
	BaseURL string
	client  *http.Client
}

func NewOpenAIClient() *OpenAIClient {
	model := os.Getenv("OPENAI_IMAGE_MODEL")
	if model == "" {
		model = "dall-e-3"
	}

	return &OpenAIClient{
		apiKey:  os.Getenv("OPENAI_API_KEY"),
		model:   model,
		BaseURL: "https://api.openai.com/v1/images/generations",
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Generate requests a single 1024x1024 image for the prompt and returns
// its URL.
func (o *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	if o.apiKey == "" {
		return "", errors.New("missing OPENAI_API_KEY")
	}
	if prompt == "" {
		return "", errors.New("empty prompt")
	}

	payload := map[string]any{
		"model":  o.model,
		"prompt": prompt,
		"n":      1,
		"size":   "1024x1024",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		o.BaseURL,
		bytes.NewBuffer(body),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Authorization", "Bearer "+o.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai api error: %s", string(raw))
	}

	var result struct {
		Data []struct {
			URL string `json:"url"`
		} `json:"data"`
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return "", err
	}

	if len(result.Data) == 0 || result.Data[0].URL == "" {
		return "", errors.New("empty openai response")
	}

	return result.Data[0].URL, nil
}
