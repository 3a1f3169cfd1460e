package model

import "time"

type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// QuizSession 保存生成的完整题目（含正确答案），提交后仍保留
type QuizSession struct {
	UUIDBase
	UserID    string         `gorm:"type:varchar(36);index;not null" json:"user_id"`
	Questions []QuizQuestion `gorm:"type:text;serializer:json" json:"questions"`
}

func (QuizSession) TableName() string {
	return "quiz_sessions"
}

// CorrectAnswers returns the answer key in question order.
func (s *QuizSession) CorrectAnswers() []string {
	answers := make([]string, len(s.Questions))
	for i, q := range s.Questions {
		answers[i] = q.CorrectAnswer
	}
	return answers
}

// ActiveQuizSession points a user at their single in-flight quiz.
// UserID is the primary key, so a user can never hold two.
type ActiveQuizSession struct {
	UserID    string    `gorm:"primaryKey;type:varchar(36)" json:"user_id"`
	SessionID string    `gorm:"type:varchar(36);not null" json:"session_id"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ActiveQuizSession) TableName() string {
	return "active_quiz_sessions"
}

type QuizAttempt struct {
	UUIDBase
	UserID         string   `gorm:"type:varchar(36);index;not null" json:"user_id"`
	Score          int      `gorm:"not null" json:"score"`
	TotalQuestions int      `gorm:"not null" json:"total_questions"`
	Percentage     float64  `gorm:"not null" json:"percentage"`
	Answers        []string `gorm:"type:text;serializer:json" json:"answers"`
	CorrectAnswers []string `gorm:"type:text;serializer:json" json:"correct_answers"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

// QuizAttemptSummary is the history projection of a QuizAttempt.
type QuizAttemptSummary struct {
	ID             string    `json:"id"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	Percentage     float64   `json:"percentage"`
	CreatedAt      time.Time `json:"created_at"`
}
