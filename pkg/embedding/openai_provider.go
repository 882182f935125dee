package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// OpenAIProvider implements Provider against an OpenAI-compatible /embeddings endpoint.
type OpenAIProvider struct {
	BaseURL string
	ApiKey  string
	Model   string
	client  *http.Client
}

func NewOpenAIProvider(baseURL, apiKey, model string, timeout time.Duration) Provider {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	if model == "" {
		model = "text-embedding-3-large"
	}
	return &OpenAIProvider{
		BaseURL: baseURL,
		ApiKey:  apiKey,
		Model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

type openaiEmbeddingRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type openaiEmbeddingData struct {
	Index     int       `json:"index"`
	Embedding []float32 `json:"embedding"`
}

type openaiEmbeddingResponse struct {
	Data []openaiEmbeddingData `json:"data"`
}

func (p *OpenAIProvider) Generate(ctx context.Context, text string) (*Result, error) {
	results, err := p.GenerateBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return results[0], nil
}

func (p *OpenAIProvider) GenerateBatch(ctx context.Context, texts []string) ([]*Result, error) {
	reqBody := openaiEmbeddingRequest{
		Model: p.Model,
		Input: texts,
	}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/embeddings", p.BaseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+p.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("embedding error, code %d, body %s", resp.StatusCode, string(bodyBytes))
	}

	var embResp openaiEmbeddingResponse
	if err := json.Unmarshal(bodyBytes, &embResp); err != nil {
		return nil, err
	}

	if len(embResp.Data) != len(texts) {
		return nil, fmt.Errorf("embedding response size mismatch: asked %d, got %d", len(texts), len(embResp.Data))
	}

	// The API documents results in request order, but index is authoritative.
	results := make([]*Result, len(texts))
	for _, d := range embResp.Data {
		if d.Index < 0 || d.Index >= len(results) {
			return nil, fmt.Errorf("embedding response index out of range: %d", d.Index)
		}
		results[d.Index] = &Result{Values: d.Embedding}
	}
	return results, nil
}
