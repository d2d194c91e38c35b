package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"talent-search-be/pkg/apperror"
	"talent-search-be/pkg/embedding"
)

const defaultBaseURL = "https://api.openai.com/v1/embeddings"
const defaultModel = "text-embedding-3-small"

// maxErrorBody limits how much of an upstream error body is surfaced.
const maxErrorBody = 500

type OpenAIProvider struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func NewOpenAIProvider(apiKey string, model string) *OpenAIProvider {
	if model == "" {
		model = defaultModel
	}
	return &OpenAIProvider{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		model:   model,
		client:  &http.Client{},
	}
}

// WithBaseURL overrides the endpoint. Used by tests against httptest servers.
func (p *OpenAIProvider) WithBaseURL(url string) *OpenAIProvider {
	p.baseURL = url
	return p
}

func (p *OpenAIProvider) Name() string {
	return "openai"
}

func (p *OpenAIProvider) Dimensions() int {
	return embedding.Dimensions
}

type embeddingRequest struct {
	Input      string `json:"input"`
	Model      string `json:"model"`
	Dimensions int    `json:"dimensions"`
}

type embeddingResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
}

func (p *OpenAIProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	if p.apiKey == "" {
		return nil, apperror.Misconfigured("OpenAI embedding provider is not configured: missing EMBED_PROVIDER_API_KEY.").
			WithDetails(map[string]interface{}{"missing": "EMBED_PROVIDER_API_KEY"})
	}

	reqBody := embeddingRequest{
		Input:      text,
		Model:      p.model,
		Dimensions: p.Dimensions(),
	}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, apperror.Internal("failed to marshal embedding request").WithCause(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, apperror.Internal("failed to create embedding request").WithCause(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", p.apiKey))

	resp, err := p.client.Do(req)
	if err != nil {
		// Error message intentionally excludes the request body and key.
		return nil, apperror.Upstream("OpenAI embeddings API request failed.").WithCause(err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body := string(bodyBytes)
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return nil, apperror.Upstream(fmt.Sprintf("OpenAI embeddings API returned %d.", resp.StatusCode)).
			WithDetails(map[string]interface{}{"status": resp.StatusCode, "body": body})
	}

	var parsed embeddingResponse
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		return nil, apperror.Upstream("OpenAI embeddings API returned a malformed payload.").WithCause(err)
	}

	if len(parsed.Data) == 0 || len(parsed.Data[0].Embedding) != p.Dimensions() {
		got := 0
		if len(parsed.Data) > 0 {
			got = len(parsed.Data[0].Embedding)
		}
		return nil, apperror.Upstream(fmt.Sprintf(
			"OpenAI embeddings API returned unexpected shape (got %d dims, expected %d).", got, p.Dimensions()))
	}

	return parsed.Data[0].Embedding, nil
}
