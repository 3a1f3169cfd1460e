package service

import (
	"context"
	"fmt"
	"strings"

	"verdant_backend/internal/config"
	"verdant_backend/pkg/logger"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const defaultGeminiModel = "gemini-1.5-flash-latest"

// GeminiService is the Gemini-backed AIGateway.
type GeminiService struct {
	client *genai.Client
	model  string
}

func NewGeminiService(ctx context.Context, cfg config.AIConfig) (*GeminiService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	model := cfg.Model
	if model == "" || strings.HasPrefix(model, "gpt-") {
		model = defaultGeminiModel
	}
	return &GeminiService{client: client, model: model}, nil
}

func (s *GeminiService) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

func (s *GeminiService) CompleteText(ctx context.Context, systemPrompt, userPrompt string, image *ImageInput) (string, error) {
	model := s.client.GenerativeModel(s.model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	parts := []genai.Part{genai.Text(userPrompt)}
	if image != nil {
		// genai expects the subtype only, e.g. "jpeg"
		format := strings.TrimPrefix(image.MIMEType, "image/")
		parts = append(parts, genai.ImageData(format, image.Data))
	}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			out.WriteString(string(txt))
		} else {
			logger.Log.Debug("Skipping non-text gemini part", zap.String("type", fmt.Sprintf("%T", part)))
		}
	}
	return out.String(), nil
}
