package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/docminder/docminder/internal/core/domain"
)

const defaultModel = "gemini-1.5-flash"

// Analyzer is the external structured-text analyzer backed by Gemini.
// It is constructed only when an API key is configured; without one the
// engine runs with a nil analyzer and uses the local pipeline exclusively.
type Analyzer struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	timeout time.Duration
}

func New(ctx context.Context, apiKey, modelName string, timeout time.Duration) (*Analyzer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is empty")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	if modelName == "" {
		modelName = defaultModel
	}
	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.2)

	return &Analyzer{client: client, model: model, timeout: timeout}, nil
}

func (a *Analyzer) Close() error {
	return a.client.Close()
}

// Analyze runs one request/response exchange for a single document. The call
// is a single attempt behind a bounded timeout: a timeout counts as any other
// failure and the caller falls back to the local pipeline. No retries, no
// partial results.
func (a *Analyzer) Analyze(ctx context.Context, text, filename string) (*domain.AnalyzerResult, error) {
	if text == "" {
		return nil, nil
	}
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	resp, err := a.model.GenerateContent(ctx,
		genai.Text(analyzerInstruction),
		genai.Text(buildUserPayload(text, filename)),
	)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}

	raw := collectText(resp)
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	result, err := parseAnalyzerResponse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse analyzer response: %w", err)
	}
	return result, nil
}

func collectText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String()
}
