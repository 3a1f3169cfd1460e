package service

import (
	"fmt"
	"strings"

	"verdant_backend/internal/model"
	"verdant_backend/internal/util"

	"github.com/tidwall/gjson"
)

const quizOptionCount = 4

// extractJSONObject pulls the outermost {...} out of a model reply, dropping
// markdown fences and any prose around it.
func extractJSONObject(raw string) (string, bool) {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```JSON")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", false
	}
	candidate := text[start : end+1]
	if !gjson.Valid(candidate) {
		return "", false
	}
	return candidate, true
}

// ParseQuizQuestions validates a quiz reply. Any structural problem is
// reported as ErrMalformedAIResponse.
func ParseQuizQuestions(raw string) ([]model.QuizQuestion, error) {
	doc, ok := extractJSONObject(raw)
	if !ok {
		return nil, fmt.Errorf("%w: reply is not a JSON object", util.ErrMalformedAIResponse)
	}

	list := gjson.Get(doc, "questions")
	if !list.IsArray() || len(list.Array()) == 0 {
		return nil, fmt.Errorf("%w: missing questions array", util.ErrMalformedAIResponse)
	}

	items := list.Array()
	questions := make([]model.QuizQuestion, 0, len(items))
	for i, item := range items {
		q, err := parseQuizQuestion(item)
		if err != nil {
			return nil, fmt.Errorf("%w: question %d: %v", util.ErrMalformedAIResponse, i, err)
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func parseQuizQuestion(item gjson.Result) (model.QuizQuestion, error) {
	if !item.IsObject() {
		return model.QuizQuestion{}, fmt.Errorf("not an object")
	}

	text := item.Get("question")
	if text.Type != gjson.String || strings.TrimSpace(text.Str) == "" {
		return model.QuizQuestion{}, fmt.Errorf("empty question text")
	}

	opts := item.Get("options")
	if !opts.IsArray() {
		return model.QuizQuestion{}, fmt.Errorf("options is not an array")
	}
	optItems := opts.Array()
	if len(optItems) != quizOptionCount {
		return model.QuizQuestion{}, fmt.Errorf("expected %d options, got %d", quizOptionCount, len(optItems))
	}
	options := make([]string, 0, quizOptionCount)
	for _, o := range optItems {
		if o.Type != gjson.String {
			return model.QuizQuestion{}, fmt.Errorf("option is not a string")
		}
		options = append(options, o.Str)
	}

	answer := item.Get("correct_answer")
	if answer.Type != gjson.String || answer.Str == "" {
		return model.QuizQuestion{}, fmt.Errorf("missing correct_answer")
	}

	return model.QuizQuestion{
		Question:      text.Str,
		Options:       options,
		CorrectAnswer: answer.Str,
	}, nil
}

// IdentificationResult is the parsed form of an identification reply.
type IdentificationResult struct {
	PlantName        string
	BotanicalName    string
	Confidence       string
	CareInstructions map[string]interface{}
	Mode             model.ParseMode
}

const fallbackSnippetRunes = 100

// ParseIdentification never fails: a reply that is not a JSON object yields a
// fallback result built around the raw text.
func ParseIdentification(raw string) IdentificationResult {
	doc, ok := extractJSONObject(raw)
	if !ok {
		return fallbackIdentification(raw)
	}

	res := IdentificationResult{
		PlantName:        stringOr(doc, "plant_name", "Unknown"),
		BotanicalName:    stringOr(doc, "botanical_name", "N/A"),
		Confidence:       stringOr(doc, "confidence", "medium"),
		CareInstructions: map[string]interface{}{},
		Mode:             model.ParseStrict,
	}
	if care := gjson.Get(doc, "care_instructions"); care.IsObject() {
		if m, ok := care.Value().(map[string]interface{}); ok {
			res.CareInstructions = m
		}
	}
	return res
}

func stringOr(doc, path, def string) string {
	v := gjson.Get(doc, path)
	if !v.Exists() || v.Type == gjson.Null {
		return def
	}
	return v.String()
}

func fallbackIdentification(raw string) IdentificationResult {
	snippet := raw
	if r := []rune(raw); len(r) > fallbackSnippetRunes {
		snippet = string(r[:fallbackSnippetRunes])
	}
	return IdentificationResult{
		PlantName:     "Unknown Plant",
		BotanicalName: "Analysis in progress",
		Confidence:    "medium",
		CareInstructions: map[string]interface{}{
			"sunlight":    snippet,
			"water":       "Keep soil moderately moist",
			"soil":        "Well-draining potting mix",
			"temperature": "65-75°F (18-24°C)",
			"tips":        []interface{}{"Monitor plant health regularly", "Adjust care based on plant response"},
		},
		Mode: model.ParseFallback,
	}
}
