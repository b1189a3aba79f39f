package llm

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"mindmate-go/internal/config"
)

type geminiClient struct {
	cfg    config.LLMConfig
	client *genai.Client
}

// NewGeminiClient returns a Client backed by the Gemini API.
// System messages become the system instruction; assistant messages use the "model" role.
func NewGeminiClient(ctx context.Context, cfg config.LLMConfig, httpClient *http.Client) (Client, error) {
	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &geminiClient{cfg: cfg, client: client}, nil
}

func (c *geminiClient) Complete(ctx context.Context, r Request) (string, error) {
	ctx, cancel := withTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	gc := &genai.GenerateContentConfig{}
	var contents []*genai.Content
	for _, m := range r.Messages {
		part := &genai.Part{Text: m.Content}
		switch m.Role {
		case RoleSystem:
			if gc.SystemInstruction == nil {
				gc.SystemInstruction = &genai.Content{}
			}
			gc.SystemInstruction.Parts = append(gc.SystemInstruction.Parts, part)
		case RoleAssistant:
			contents = append(contents, &genai.Content{Role: "model", Parts: []*genai.Part{part}})
		default:
			contents = append(contents, &genai.Content{Role: "user", Parts: []*genai.Part{part}})
		}
	}
	if r.Generation.MaxTokens != nil {
		gc.MaxOutputTokens = int32(*r.Generation.MaxTokens)
	}
	if r.Generation.Temperature != nil {
		gc.Temperature = genai.Ptr(float32(*r.Generation.Temperature))
	}

	resp, err := c.client.Models.GenerateContent(ctx, r.Model, contents, gc)
	if err != nil {
		return "", fmt.Errorf("failed to call gemini api: %w", err)
	}
	if resp == nil {
		return "", nil
	}
	return resp.Text(), nil
}
