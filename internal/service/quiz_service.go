package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"verdant_backend/internal/config"
	"verdant_backend/internal/model"
	"verdant_backend/internal/repository"
	"verdant_backend/internal/util"
	"verdant_backend/pkg/logger"
	"verdant_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	quizSystemPrompt = "You are a gardening education expert. Generate quiz questions about soil types, plant care, and general gardening knowledge. Respond only in valid JSON format."

	quizUserPromptFormat = `Generate %d multiple-choice questions about gardening, focusing on soil types and general plant care.
Respond in this exact JSON format:
{
  "questions": [
    {
      "question": "question text",
      "options": ["option1", "option2", "option3", "option4"],
      "correct_answer": "correct option"
    }
  ]
}`
)

const maxQuizHistory = 100

// QuizResult is returned to the client after a submission.
type QuizResult struct {
	Score          int      `json:"score"`
	TotalQuestions int      `json:"total_questions"`
	Percentage     float64  `json:"percentage"`
	CorrectAnswers []string `json:"correct_answers"`
	AttemptID      string   `json:"attempt_id"`
}

type QuizService struct {
	Repo   *repository.QuizRepository
	Active repository.ActiveQuizStore
	AI     AIGateway

	questionCount int
	historyLimit  int
	now           func() time.Time
}

func NewQuizService(repo *repository.QuizRepository, active repository.ActiveQuizStore, ai AIGateway, cfg config.QuizConfig) *QuizService {
	s := &QuizService{
		Repo:          repo,
		Active:        active,
		AI:            ai,
		questionCount: cfg.QuestionCount,
		historyLimit:  cfg.HistoryLimit,
		now:           time.Now,
	}
	if s.questionCount <= 0 {
		s.questionCount = 5
	}
	// 历史记录最多 100 条
	if s.historyLimit <= 0 || s.historyLimit > maxQuizHistory {
		s.historyLimit = maxQuizHistory
	}
	return s
}

// Generate asks the AI for a fresh quiz, stores it with its answer key and
// makes it the user's active quiz. The returned questions carry no answers.
func (s *QuizService) Generate(ctx context.Context, userID string) ([]model.QuizQuestion, error) {
	raw, err := s.AI.CompleteText(ctx, quizSystemPrompt, fmt.Sprintf(quizUserPromptFormat, s.questionCount), nil)
	if err != nil {
		monitoring.QuizGenerated.WithLabelValues("ai_error").Inc()
		return nil, err
	}

	questions, err := ParseQuizQuestions(raw)
	if err != nil {
		monitoring.QuizGenerated.WithLabelValues("malformed").Inc()
		logger.Log.Warn("Discarding malformed quiz reply",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return nil, err
	}
	if len(questions) != s.questionCount {
		logger.Log.Warn("Quiz reply has unexpected question count",
			zap.Int("expected", s.questionCount),
			zap.Int("got", len(questions)),
		)
	}

	session := &model.QuizSession{
		UserID:    userID,
		Questions: questions,
	}
	session.CreatedAt = s.now().UTC()
	if err := s.Repo.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("store quiz session: %w", err)
	}

	if err := s.Active.Replace(ctx, userID, session.ID); err != nil {
		return nil, fmt.Errorf("set active quiz: %w", err)
	}

	monitoring.QuizGenerated.WithLabelValues("ok").Inc()
	logger.Log.Info("Quiz generated",
		zap.String("user_id", userID),
		zap.String("session_id", session.ID),
		zap.Int("questions", len(questions)),
	)

	public := make([]model.QuizQuestion, len(questions))
	for i, q := range questions {
		public[i] = model.QuizQuestion{
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: "",
		}
	}
	return public, nil
}

// ScoreAnswers compares answers position by position against the key.
// Extra answers are ignored and missing ones count as wrong.
func ScoreAnswers(answers, correct []string) (int, float64) {
	score := 0
	for i, answer := range answers {
		if i < len(correct) && answer == correct[i] {
			score++
		}
	}
	if len(correct) == 0 {
		return score, 0
	}
	return score, float64(score) / float64(len(correct)) * 100
}

// Submit scores answers against the user's active quiz, records the attempt
// and clears the active pointer.
func (s *QuizService) Submit(ctx context.Context, userID string, answers []string) (*QuizResult, error) {
	sessionID, found, err := s.Active.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load active quiz: %w", err)
	}
	if !found {
		return nil, util.ErrNoActiveQuiz
	}

	session, err := s.Repo.FindSessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizSessionMissing
		}
		return nil, fmt.Errorf("load quiz session: %w", err)
	}

	if answers == nil {
		answers = []string{}
	}
	correct := session.CorrectAnswers()
	score, percentage := ScoreAnswers(answers, correct)

	attempt := &model.QuizAttempt{
		UserID:         userID,
		Score:          score,
		TotalQuestions: len(correct),
		Percentage:     percentage,
		Answers:        answers,
		CorrectAnswers: correct,
	}
	attempt.CreatedAt = s.now().UTC()
	if err := s.Repo.CreateAttempt(ctx, attempt); err != nil {
		return nil, fmt.Errorf("store quiz attempt: %w", err)
	}

	// 答卷已落库，清理失败只记录日志
	if err := s.Active.Delete(ctx, userID); err != nil {
		logger.Log.Error("Failed to clear active quiz",
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}

	monitoring.QuizSubmitted.Inc()
	return &QuizResult{
		Score:          score,
		TotalQuestions: len(correct),
		Percentage:     percentage,
		CorrectAnswers: correct,
		AttemptID:      attempt.ID,
	}, nil
}

func (s *QuizService) History(ctx context.Context, userID string) ([]model.QuizAttemptSummary, error) {
	return s.Repo.ListAttemptSummaries(ctx, userID, s.historyLimit)
}
