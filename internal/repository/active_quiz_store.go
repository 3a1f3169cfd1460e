package repository

import (
	"context"
	"errors"
	"time"

	"verdant_backend/internal/model"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ActiveQuizStore keeps at most one in-flight quiz pointer per user.
// Replace is last-write-wins; no cross-document transaction is implied.
type ActiveQuizStore interface {
	Replace(ctx context.Context, userID, sessionID string) error
	Get(ctx context.Context, userID string) (sessionID string, found bool, err error)
	Delete(ctx context.Context, userID string) error
}

// GormActiveQuizStore 使用 active_quiz_sessions 表，user_id 为主键
type GormActiveQuizStore struct {
	DB *gorm.DB
}

func NewGormActiveQuizStore(db *gorm.DB) *GormActiveQuizStore {
	return &GormActiveQuizStore{DB: db}
}

func (s *GormActiveQuizStore) Replace(ctx context.Context, userID, sessionID string) error {
	active := &model.ActiveQuizSession{
		UserID:    userID,
		SessionID: sessionID,
		UpdatedAt: time.Now().UTC(),
	}
	return s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"session_id", "updated_at"}),
	}).Create(active).Error
}

func (s *GormActiveQuizStore) Get(ctx context.Context, userID string) (string, bool, error) {
	var active model.ActiveQuizSession
	err := s.DB.WithContext(ctx).Where("user_id = ?", userID).First(&active).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return active.SessionID, true, nil
}

func (s *GormActiveQuizStore) Delete(ctx context.Context, userID string) error {
	return s.DB.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.ActiveQuizSession{}).Error
}

// RedisActiveQuizStore 使用 SET 的原子覆盖语义保存指针
type RedisActiveQuizStore struct {
	Redis *redis.Client
	TTL   time.Duration
}

func NewRedisActiveQuizStore(rdb *redis.Client, ttl time.Duration) *RedisActiveQuizStore {
	return &RedisActiveQuizStore{Redis: rdb, TTL: ttl}
}

func activeQuizKey(userID string) string {
	return "quiz:active:" + userID
}

func (s *RedisActiveQuizStore) Replace(ctx context.Context, userID, sessionID string) error {
	return s.Redis.Set(ctx, activeQuizKey(userID), sessionID, s.TTL).Err()
}

func (s *RedisActiveQuizStore) Get(ctx context.Context, userID string) (string, bool, error) {
	sessionID, err := s.Redis.Get(ctx, activeQuizKey(userID)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return sessionID, true, nil
}

func (s *RedisActiveQuizStore) Delete(ctx context.Context, userID string) error {
	return s.Redis.Del(ctx, activeQuizKey(userID)).Err()
}
