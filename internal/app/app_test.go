package app

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"verdant_backend/internal/config"
	"verdant_backend/internal/service"
	"verdant_backend/pkg/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const quizJSON = `{"questions": [
 {"question": "Q1?", "options": ["A", "b", "c", "d"], "correct_answer": "A"},
 {"question": "Q2?", "options": ["B", "b", "c", "d"], "correct_answer": "B"},
 {"question": "Q3?", "options": ["C", "b", "c", "d"], "correct_answer": "C"},
 {"question": "Q4?", "options": ["D", "b", "c", "d"], "correct_answer": "D"},
 {"question": "Q5?", "options": ["E", "b", "c", "d"], "correct_answer": "E"}
]}`

type stubAI struct {
	reply string
}

func (s stubAI) CompleteText(ctx context.Context, systemPrompt, userPrompt string, image *service.ImageInput) (string, error) {
	if image != nil {
		return `{"plant_name": "Basil", "botanical_name": "Ocimum basilicum", "confidence": "high", "care_instructions": {}}`, nil
	}
	return s.reply, nil
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	return newTestAppWith(t, func(*config.Config) {}, nil)
}

func newTestAppWith(t *testing.T, mutate func(cfg *config.Config), archive service.ImageArchive) *App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { sqlDB.Close() })

	cfg := &config.Config{
		Server:    config.ServerConfig{Port: "0", Mode: gin.TestMode},
		JWT:       config.JWTConfig{Secret: "test-secret", ExpireHours: 7 * 24},
		Quiz:      config.QuizConfig{ActiveStore: config.ActiveStoreDatabase, QuestionCount: 5, HistoryLimit: 100},
		CORS:      config.CORSConfig{AllowedOrigins: []string{"*"}},
		RateLimit: config.RateLimitConfig{MaxRequests: 10000, WindowMinutes: 1},
	}

	mutate(cfg)

	a := New(cfg, db, nil, stubAI{reply: quizJSON}, archive)
	_, err = a.services.plant.SeedIfEmpty(context.Background())
	require.NoError(t, err)
	return a
}

func doJSON(t *testing.T, a *App, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func signup(t *testing.T, a *App, email string) string {
	t.Helper()
	w := doJSON(t, a, http.MethodPost, "/api/auth/signup", "", gin.H{"name": "Ada", "email": email, "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	decode(t, w, &resp)
	require.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	return resp.AccessToken
}

func TestRootAndHealth(t *testing.T) {
	a := newTestApp(t)

	w := doJSON(t, a, http.MethodGet, "/api/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var msg map[string]string
	decode(t, w, &msg)
	assert.Equal(t, "Verdant API - Home Gardening Management System", msg["message"])

	w = doJSON(t, a, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthFlow(t *testing.T) {
	a := newTestApp(t)
	token := signup(t, a, "ada@example.com")

	w := doJSON(t, a, http.MethodPost, "/api/auth/signup", "", gin.H{"name": "Ada", "email": "ada@example.com", "password": "secret1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var errBody map[string]interface{}
	decode(t, w, &errBody)
	assert.Equal(t, "Email already registered", errBody["detail"])
	assert.EqualValues(t, http.StatusBadRequest, errBody["code"])

	w = doJSON(t, a, http.MethodPost, "/api/auth/signup", "", gin.H{"name": "Bob", "email": "bob@example.com", "password": "123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, a, http.MethodPost, "/api/auth/login", "", gin.H{"email": "ada@example.com", "password": "wrong!"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, a, http.MethodPost, "/api/auth/login", "", gin.H{"email": "ada@example.com", "password": "secret1"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, a, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var me map[string]interface{}
	decode(t, w, &me)
	assert.Equal(t, "ada@example.com", me["email"])
	assert.NotContains(t, me, "password")

	w = doJSON(t, a, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, a, http.MethodGet, "/api/auth/me", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPlantRoutes(t *testing.T) {
	a := newTestApp(t)

	w := doJSON(t, a, http.MethodGet, "/api/plants?category=Herb", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var herbs []map[string]interface{}
	decode(t, w, &herbs)
	require.Len(t, herbs, 2)
	assert.Equal(t, "Basil", herbs[0]["name"])

	w = doJSON(t, a, http.MethodGet, "/api/plants/"+herbs[0]["id"].(string), "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, a, http.MethodGet, "/api/plants/unknown", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestIdentifyRoutes(t *testing.T) {
	a := newTestApp(t)
	token := signup(t, a, "ada@example.com")

	w := doJSON(t, a, http.MethodPost, "/api/identify-plant", token, gin.H{"image_base64": "!!!"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	image := base64.StdEncoding.EncodeToString([]byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10})
	w = doJSON(t, a, http.MethodPost, "/api/identify-plant", token, gin.H{"image_base64": image})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var result map[string]interface{}
	decode(t, w, &result)
	assert.Equal(t, "Basil", result["plant_name"])
	assert.Equal(t, "strict", result["parse_mode"])

	w = doJSON(t, a, http.MethodGet, "/api/identifications", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var items []map[string]interface{}
	decode(t, w, &items)
	assert.Len(t, items, 1)

	w = doJSON(t, a, http.MethodPost, "/api/identify-plant", "", gin.H{"image_base64": image})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestQuizFlow(t *testing.T) {
	a := newTestApp(t)
	token := signup(t, a, "ada@example.com")

	w := doJSON(t, a, http.MethodPost, "/api/quiz/submit", token, gin.H{"answers": []string{"A"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, a, http.MethodGet, "/api/quiz/generate", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var generated struct {
		Questions []struct {
			Question      string   `json:"question"`
			Options       []string `json:"options"`
			CorrectAnswer string   `json:"correct_answer"`
		} `json:"questions"`
	}
	decode(t, w, &generated)
	require.Len(t, generated.Questions, 5)
	for _, q := range generated.Questions {
		assert.Empty(t, q.CorrectAnswer)
	}

	w = doJSON(t, a, http.MethodPost, "/api/quiz/submit", token, gin.H{"answers": []string{"A", "X", "C", "D"}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var result struct {
		Score          int      `json:"score"`
		TotalQuestions int      `json:"total_questions"`
		Percentage     float64  `json:"percentage"`
		CorrectAnswers []string `json:"correct_answers"`
		AttemptID      string   `json:"attempt_id"`
	}
	decode(t, w, &result)
	assert.Equal(t, 3, result.Score)
	assert.Equal(t, 5, result.TotalQuestions)
	assert.InDelta(t, 60.0, result.Percentage, 1e-9)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, result.CorrectAnswers)

	w = doJSON(t, a, http.MethodPost, "/api/quiz/submit", token, gin.H{"answers": []string{"A"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, a, http.MethodGet, "/api/quiz/history", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history []map[string]interface{}
	decode(t, w, &history)
	require.Len(t, history, 1)
	assert.Equal(t, result.AttemptID, history[0]["id"])
	assert.EqualValues(t, 3, history[0]["score"])
}

func TestUploadsRequireOwner(t *testing.T) {
	root := t.TempDir()
	a := newTestAppWith(t, func(cfg *config.Config) {
		cfg.Storage = config.StorageConfig{Type: "local", ArchiveUploads: true, LocalPath: root}
	}, &service.LocalImageArchive{Root: root})

	owner := signup(t, a, "ada@example.com")
	other := signup(t, a, "bob@example.com")

	image := base64.StdEncoding.EncodeToString([]byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10})
	w := doJSON(t, a, http.MethodPost, "/api/identify-plant", owner, gin.H{"image_base64": image})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var result struct {
		ImageURL string `json:"image_url"`
	}
	decode(t, w, &result)
	require.True(t, strings.HasPrefix(result.ImageURL, "/uploads/identifications/"), result.ImageURL)

	w = doJSON(t, a, http.MethodGet, result.ImageURL, "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, a, http.MethodGet, result.ImageURL, other, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, a, http.MethodGet, result.ImageURL, owner, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, a, http.MethodGet, "/uploads/../../etc/passwd", owner, nil)
	assert.NotEqual(t, http.StatusOK, w.Code)
}

func TestApplyConfigUpdatesCORSAndRateLimit(t *testing.T) {
	a := newTestApp(t)

	newCfg := *a.Config
	newCfg.CORS = config.CORSConfig{AllowedOrigins: []string{"http://a.example.com"}}
	newCfg.RateLimit = config.RateLimitConfig{MaxRequests: 2, WindowMinutes: 60}
	a.applyConfig(&newCfg)

	get := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/", nil)
		req.Header.Set("Origin", origin)
		w := httptest.NewRecorder()
		a.Router.ServeHTTP(w, req)
		return w
	}

	w := get("http://a.example.com")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://a.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	w = get("http://b.example.com")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	w = get("http://a.example.com")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
