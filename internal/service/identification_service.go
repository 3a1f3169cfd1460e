package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"verdant_backend/internal/config"
	"verdant_backend/internal/model"
	"verdant_backend/internal/repository"
	"verdant_backend/internal/util"
	"verdant_backend/pkg/logger"
	"verdant_backend/pkg/monitoring"

	"go.uber.org/zap"
)

const (
	identifySystemPrompt = "You are a plant identification expert. Analyze plant images and provide detailed identification and care instructions. Respond in JSON format."

	identifyUserPrompt = `Identify this plant and provide care instructions. Respond in this exact JSON format:
{
  "plant_name": "common name",
  "botanical_name": "scientific name",
  "confidence": "high/medium/low",
  "care_instructions": {
    "sunlight": "detailed sunlight requirements",
    "water": "detailed watering requirements",
    "soil": "soil type and requirements",
    "temperature": "ideal temperature range",
    "tips": ["tip1", "tip2", "tip3"]
  }
}`

	defaultImageMIME = "image/jpeg"
)

type IdentificationService struct {
	Repo    *repository.IdentificationRepository
	AI      AIGateway
	Archive ImageArchive

	historyLimit int
	now          func() time.Time
}

func NewIdentificationService(repo *repository.IdentificationRepository, ai AIGateway, archive ImageArchive, cfg config.QuizConfig) *IdentificationService {
	limit := cfg.IdentifyHistLimit
	if limit <= 0 {
		limit = 50
	}
	return &IdentificationService{
		Repo:         repo,
		AI:           ai,
		Archive:      archive,
		historyLimit: limit,
		now:          time.Now,
	}
}

// DecodeImage accepts raw base64 or a data URL and sniffs the image type.
func DecodeImage(imageBase64 string) (*ImageInput, error) {
	payload := strings.TrimSpace(imageBase64)
	if strings.HasPrefix(payload, "data:") {
		if idx := strings.Index(payload, ","); idx >= 0 {
			payload = payload[idx+1:]
		}
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(payload)
	}
	if err != nil || len(data) == 0 {
		return nil, util.ErrInvalidImage
	}

	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, util.MimeImage) {
		mimeType = defaultImageMIME
	}
	return &ImageInput{Data: data, MIMEType: mimeType}, nil
}

// Identify sends the image to the AI, records the result and returns it.
// An unparseable reply still produces a record in fallback mode.
func (s *IdentificationService) Identify(ctx context.Context, userID, imageBase64 string) (*model.PlantIdentification, error) {
	image, err := DecodeImage(imageBase64)
	if err != nil {
		return nil, err
	}

	raw, err := s.AI.CompleteText(ctx, identifySystemPrompt, identifyUserPrompt, image)
	if err != nil {
		return nil, err
	}

	// 只归档识别成功的图片
	now := s.now().UTC()
	imageURL := s.archive(ctx, userID, image, now)

	result := ParseIdentification(raw)
	if result.Mode == model.ParseFallback {
		logger.Log.Warn("Identification reply was not JSON, using fallback",
			zap.String("user_id", userID),
			zap.Int("reply_len", len(raw)),
		)
	}

	identification := &model.PlantIdentification{
		ID:               model.GenerateUUID(),
		UserID:           userID,
		PlantName:        result.PlantName,
		BotanicalName:    result.BotanicalName,
		Confidence:       result.Confidence,
		CareInstructions: result.CareInstructions,
		ParseMode:        result.Mode,
		ImageURL:         imageURL,
		IdentifiedAt:     now,
	}
	if err := s.Repo.Create(ctx, identification); err != nil {
		return nil, fmt.Errorf("store identification: %w", err)
	}

	monitoring.PlantIdentifications.WithLabelValues(string(result.Mode)).Inc()
	return identification, nil
}

func (s *IdentificationService) archive(ctx context.Context, userID string, image *ImageInput, at time.Time) string {
	if s.Archive == nil {
		return ""
	}
	url, err := s.Archive.Put(ctx, imageKey(userID, image.MIMEType, at), image.Data, image.MIMEType)
	if err != nil {
		logger.Log.Warn("Failed to archive identification image",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return ""
	}
	return url
}

func (s *IdentificationService) History(ctx context.Context, userID string) ([]model.PlantIdentification, error) {
	return s.Repo.ListByUser(ctx, userID, s.historyLimit)
}
