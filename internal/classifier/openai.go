package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.openai.com/v1"

// systemPrompt describes the validation rule set sent with every batch.
const systemPrompt = "You are validating an English word list for a broad audience." +
	" Strictly apply the seven rules (real, readable, common, appropriate," +
	" no proper nouns, no abbreviations, no foreign words lacking adoption)." +
	" Return JSON matching the function schema."

// Engine calls the OpenAI chat completions API with a function-call schema
// so the verdicts come back as structured JSON rather than prose.
type Engine struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
	httpc       *http.Client
}

// NewEngine builds an OpenAI-backed checker.
func NewEngine(apiKey, model string) *Engine {
	return &Engine{
		APIKey:  apiKey,
		Model:   model,
		BaseURL: defaultBaseURL,
		httpc:   &http.Client{Timeout: 60 * time.Second},
	}
}

// assessSchema is the function-call contract: per word a keep flag, an
// optional reason, and up to three replacements.
var assessSchema = map[string]any{
	"name":        "assess_words",
	"description": "Assess each word against the validation rules.",
	"parameters": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"results": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"word":   map[string]any{"type": "string"},
						"keep":   map[string]any{"type": "boolean"},
						"reason": map[string]any{"type": "string"},
						"replacements": map[string]any{
							"type":     "array",
							"items":    map[string]any{"type": "string"},
							"maxItems": MaxReplacements,
						},
					},
					"required": []string{"word", "keep"},
				},
			},
		},
		"required": []string{"results"},
	},
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model        string         `json:"model"`
	Temperature  float64        `json:"temperature"`
	Messages     []chatMessage  `json:"messages"`
	Functions    []any          `json:"functions"`
	FunctionCall map[string]any `json:"function_call"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			FunctionCall *struct {
				Name      string `json:"name"`
				Arguments string `json:"arguments"`
			} `json:"function_call"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Check submits one batch and returns a validated verdict per word. Any
// transport failure, rate limit, or malformed/partial payload is returned
// as an error so the retry layer can back off and resubmit.
func (e *Engine) Check(ctx context.Context, batch []string) ([]Verdict, error) {
	if len(batch) == 0 {
		return nil, nil
	}
	payload := chatRequest{
		Model:       e.Model,
		Temperature: e.Temperature,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: strings.Join(batch, ", ")},
		},
		Functions:    []any{assessSchema},
		FunctionCall: map[string]any{"name": "assess_words"},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("classifier: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("classifier: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.APIKey)

	resp, err := e.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("classifier: call api: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, fmt.Errorf("classifier: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("classifier: api status %d: %s", resp.StatusCode, truncate(raw, 200))
	}

	var envelope chatResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("classifier: decode envelope: %w", err)
	}
	if envelope.Error != nil {
		return nil, fmt.Errorf("classifier: api error: %s", envelope.Error.Message)
	}
	if len(envelope.Choices) == 0 || envelope.Choices[0].Message.FunctionCall == nil {
		return nil, fmt.Errorf("classifier: response carries no function call")
	}

	var args struct {
		Results []rawResult `json:"results"`
	}
	if err := json.Unmarshal([]byte(envelope.Choices[0].Message.FunctionCall.Arguments), &args); err != nil {
		return nil, fmt.Errorf("classifier: decode arguments: %w", err)
	}
	return validateBatch(batch, args.Results)
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n]) + "..."
	}
	return string(b)
}
