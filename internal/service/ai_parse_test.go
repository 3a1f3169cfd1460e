package service

import (
	"strings"
	"testing"

	"verdant_backend/internal/model"
	"verdant_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuizQuestions(t *testing.T) {
	valid := quizReply("A", "B")

	t.Run("plain json", func(t *testing.T) {
		questions, err := ParseQuizQuestions(valid)
		require.NoError(t, err)
		require.Len(t, questions, 2)
		assert.Equal(t, "Question 1?", questions[0].Question)
		assert.Equal(t, []string{"A", "X", "Y", "Z"}, questions[0].Options)
		assert.Equal(t, "B", questions[1].CorrectAnswer)
	})

	t.Run("fenced with prose", func(t *testing.T) {
		raw := "Here is your quiz:\n```json\n" + valid + "\n```\nGood luck!"
		questions, err := ParseQuizQuestions(raw)
		require.NoError(t, err)
		assert.Len(t, questions, 2)
	})

	malformed := map[string]string{
		"not json":           "I am not JSON",
		"no questions":       `{"items": []}`,
		"empty questions":    `{"questions": []}`,
		"questions not list": `{"questions": "five"}`,
		"three options":      `{"questions": [{"question": "Q?", "options": ["a","b","c"], "correct_answer": "a"}]}`,
		"non string option":  `{"questions": [{"question": "Q?", "options": ["a","b","c",4], "correct_answer": "a"}]}`,
		"missing answer":     `{"questions": [{"question": "Q?", "options": ["a","b","c","d"]}]}`,
		"empty question":     `{"questions": [{"question": " ", "options": ["a","b","c","d"], "correct_answer": "a"}]}`,
		"truncated":          `{"questions": [{"question": "Q?", "options": ["a","b"`,
	}
	for name, raw := range malformed {
		t.Run(name, func(t *testing.T) {
			_, err := ParseQuizQuestions(raw)
			assert.ErrorIs(t, err, util.ErrMalformedAIResponse)
		})
	}
}

func TestParseIdentificationStrict(t *testing.T) {
	raw := `{
  "plant_name": "Basil",
  "botanical_name": "Ocimum basilicum",
  "confidence": "high",
  "care_instructions": {"sunlight": "Full sun", "tips": ["Pinch flowers"]}
}`
	res := ParseIdentification(raw)
	assert.Equal(t, model.ParseStrict, res.Mode)
	assert.Equal(t, "Basil", res.PlantName)
	assert.Equal(t, "Ocimum basilicum", res.BotanicalName)
	assert.Equal(t, "high", res.Confidence)
	assert.Equal(t, "Full sun", res.CareInstructions["sunlight"])
	assert.Equal(t, []interface{}{"Pinch flowers"}, res.CareInstructions["tips"])
}

func TestParseIdentificationDefaults(t *testing.T) {
	res := ParseIdentification(`{"confidence": null}`)
	assert.Equal(t, model.ParseStrict, res.Mode)
	assert.Equal(t, "Unknown", res.PlantName)
	assert.Equal(t, "N/A", res.BotanicalName)
	assert.Equal(t, "medium", res.Confidence)
	assert.NotNil(t, res.CareInstructions)
	assert.Empty(t, res.CareInstructions)
}

func TestParseIdentificationFallback(t *testing.T) {
	raw := strings.Repeat("This looks like a healthy basil plant. ", 10)
	res := ParseIdentification(raw)

	assert.Equal(t, model.ParseFallback, res.Mode)
	assert.Equal(t, "Unknown Plant", res.PlantName)
	assert.Equal(t, "Analysis in progress", res.BotanicalName)
	assert.Equal(t, "medium", res.Confidence)
	assert.Equal(t, raw[:100], res.CareInstructions["sunlight"])
	assert.Equal(t, "Keep soil moderately moist", res.CareInstructions["water"])
	assert.Equal(t, "Well-draining potting mix", res.CareInstructions["soil"])
	assert.Equal(t, "65-75°F (18-24°C)", res.CareInstructions["temperature"])
	assert.Len(t, res.CareInstructions["tips"], 2)
}

func TestParseIdentificationFallbackShortText(t *testing.T) {
	res := ParseIdentification("a fern")
	assert.Equal(t, model.ParseFallback, res.Mode)
	assert.Equal(t, "a fern", res.CareInstructions["sunlight"])
}
