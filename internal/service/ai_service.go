package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"verdant_backend/internal/config"
	"verdant_backend/internal/util"
	"verdant_backend/pkg/monitoring"
	"verdant_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// ImageInput is an optional image attached to a completion request.
type ImageInput struct {
	Data     []byte
	MIMEType string
}

// AIGateway sends one prompt to the external model and returns its raw text.
// The text is not validated; callers parse it.
type AIGateway interface {
	CompleteText(ctx context.Context, systemPrompt, userPrompt string, image *ImageInput) (string, error)
}

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// NewAIGateway 根据配置选择供应商，并统一加上超时、追踪和指标
func NewAIGateway(ctx context.Context, cfg config.AIConfig) (AIGateway, func() error, error) {
	var (
		inner   AIGateway
		closeFn = func() error { return nil }
	)

	switch cfg.Provider {
	case "", ProviderOpenAI:
		inner = NewAIService(cfg)
	case ProviderGemini:
		g, err := NewGeminiService(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		inner = g
		closeFn = g.Close
	default:
		return nil, nil, fmt.Errorf("unknown ai provider %q", cfg.Provider)
	}

	provider := cfg.Provider
	if provider == "" {
		provider = ProviderOpenAI
	}
	return &instrumentedGateway{inner: inner, provider: provider, timeout: cfg.Timeout()}, closeFn, nil
}

// instrumentedGateway bounds every call with a timeout. It does not retry.
type instrumentedGateway struct {
	inner    AIGateway
	provider string
	timeout  time.Duration
}

func (g *instrumentedGateway) CompleteText(ctx context.Context, systemPrompt, userPrompt string, image *ImageInput) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	ctx, span := tracing.Tracer.Start(ctx, "ai.complete_text")
	defer span.End()
	span.SetAttributes(
		attribute.String("ai.provider", g.provider),
		attribute.Bool("ai.has_image", image != nil),
	)

	start := time.Now()
	text, err := g.inner.CompleteText(ctx, systemPrompt, userPrompt, image)
	outcome := "ok"
	if err != nil {
		outcome = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	monitoring.AIRequestDuration.WithLabelValues(g.provider, outcome).Observe(time.Since(start).Seconds())

	if err != nil {
		return "", fmt.Errorf("%w: %v", util.ErrAIGateway, err)
	}
	return text, nil
}

// AIService talks to an OpenAI-compatible chat completions endpoint.
type AIService struct {
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{config: cfg, client: &http.Client{}}
}

type AIChatMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

type aiContentPart struct {
	Type     string      `json:"type"`
	Text     string      `json:"text,omitempty"`
	ImageURL *aiImageURL `json:"image_url,omitempty"`
}

type aiImageURL struct {
	URL string `json:"url"`
}

type ChatCompletionRequest struct {
	Model    string          `json:"model"`
	Messages []AIChatMessage `json:"messages"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (s *AIService) CompleteText(ctx context.Context, systemPrompt, userPrompt string, image *ImageInput) (string, error) {
	messages := []AIChatMessage{{Role: "system", Content: systemPrompt}}

	if image != nil {
		dataURL := fmt.Sprintf("data:%s;base64,%s", image.MIMEType, base64.StdEncoding.EncodeToString(image.Data))
		messages = append(messages, AIChatMessage{
			Role: "user",
			Content: []aiContentPart{
				{Type: "text", Text: userPrompt},
				{Type: "image_url", ImageURL: &aiImageURL{URL: dataURL}},
			},
		})
	} else {
		messages = append(messages, AIChatMessage{Role: "user", Content: userPrompt})
	}

	jsonData, err := json.Marshal(ChatCompletionRequest{
		Model:    s.config.Model,
		Messages: messages,
	})
	if err != nil {
		return "", err
	}

	endpoint := strings.TrimRight(s.config.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("decode AI response: %w", err)
	}
	if result.Error != nil {
		return "", fmt.Errorf("AI API error: %s", result.Error.Message)
	}

	if len(result.Choices) > 0 {
		return result.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("AI returned no choices")
}
