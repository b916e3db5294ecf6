package genai

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-resty/resty/v2"
)

const systemPrompt = "You are a motivational coach."

// Options configures the OpenAI-compatible client.
type Options struct {
	BaseURL         string
	APIKey          string
	ChatModel       string
	EmbedModel      string
	TranscribeModel string
}

// OpenAIClient talks to an OpenAI-compatible HTTP API. Each call is attempted
// once; any transport error or non-2xx status is returned to the caller.
type OpenAIClient struct {
	http *resty.Client
	opts Options
}

var (
	_ Summarizer  = (*OpenAIClient)(nil)
	_ Embedder    = (*OpenAIClient)(nil)
	_ Transcriber = (*OpenAIClient)(nil)
)

// NewOpenAIClient builds a client for opts.BaseURL (e.g.
// "https://api.openai.com/v1").
func NewOpenAIClient(opts Options) *OpenAIClient {
	cl := resty.New().
		SetBaseURL(opts.BaseURL).
		SetAuthToken(opts.APIKey).
		SetTimeout(60 * time.Second)
	return &OpenAIClient{http: cl, opts: opts}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type embedRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type embedResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
}

type transcribeResponse struct {
	Text string `json:"text"`
}

type apiError struct {
	Message string `json:"message"`
}

// apiErrorEnvelope is the body shape OpenAI-compatible servers use for
// non-2xx responses.
type apiErrorEnvelope struct {
	Error *apiError `json:"error"`
}

// Summarize asks the chat model for a summary and feedback on the transcript.
func (c *OpenAIClient) Summarize(ctx context.Context, transcript string) (string, error) {
	req := chatRequest{
		Model: c.opts.ChatModel,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: "Summarize and provide feedback for: " + transcript},
		},
	}

	var out chatResponse
	var fail apiErrorEnvelope
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		SetError(&fail).
		Post("/chat/completions")
	if err != nil {
		return "", err
	}
	if err := checkStatus(resp, fail.Error); err != nil {
		return "", fmt.Errorf("chat completions: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("chat completions: empty response")
	}
	return out.Choices[0].Message.Content, nil
}

// Embed returns the embedding vector for text.
func (c *OpenAIClient) Embed(ctx context.Context, text string) ([]float32, error) {
	var out embedResponse
	var fail apiErrorEnvelope
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(embedRequest{Model: c.opts.EmbedModel, Input: text}).
		SetResult(&out).
		SetError(&fail).
		Post("/embeddings")
	if err != nil {
		return nil, err
	}
	if err := checkStatus(resp, fail.Error); err != nil {
		return nil, fmt.Errorf("embeddings: %w", err)
	}
	if len(out.Data) == 0 {
		return nil, fmt.Errorf("embeddings: empty response")
	}
	vec := make([]float32, len(out.Data[0].Embedding))
	for i, v := range out.Data[0].Embedding {
		vec[i] = float32(v)
	}
	return vec, nil
}

// Transcribe uploads audio to the speech-to-text endpoint and returns the
// transcript text.
func (c *OpenAIClient) Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error) {
	var out transcribeResponse
	var fail apiErrorEnvelope
	resp, err := c.http.R().
		SetContext(ctx).
		SetFileReader("file", filename, audio).
		SetFormData(map[string]string{"model": c.opts.TranscribeModel}).
		SetResult(&out).
		SetError(&fail).
		Post("/audio/transcriptions")
	if err != nil {
		return "", err
	}
	if err := checkStatus(resp, fail.Error); err != nil {
		return "", fmt.Errorf("audio transcriptions: %w", err)
	}
	return out.Text, nil
}

func checkStatus(resp *resty.Response, apiErr *apiError) error {
	if resp.IsSuccess() {
		return nil
	}
	if apiErr != nil && apiErr.Message != "" {
		return fmt.Errorf("status %d: %s", resp.StatusCode(), apiErr.Message)
	}
	return fmt.Errorf("status %d", resp.StatusCode())
}
