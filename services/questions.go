package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"studyhub/config"
	"studyhub/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var (
	geminiClient *genai.Client
	geminiModel  string
)

// Question is one generated practice question.
type Question struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// InitQuestionService creates the Gemini client used for practice-question
// generation. The service degrades gracefully when no API key is configured.
func InitQuestionService(cfg *config.Config) {
	if cfg.Gemini.ApiKey == "" {
		log.Println("Gemini API key not configured; question generation disabled")
		return
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.Gemini.ApiKey))
	if err != nil {
		log.Printf("Failed to init Gemini client: %v", err)
		return
	}
	geminiClient = client
	geminiModel = cfg.Gemini.Model
}

// GenerateQuestions asks Gemini for practice questions over uploaded note
// text and parses the JSON it returns.
func GenerateQuestions(ctx context.Context, subject models.Subject, noteText string, count int) ([]Question, error) {
	if geminiClient == nil {
		return nil, errors.New("question service not initialized")
	}
	if count < 1 || count > 20 {
		count = 5
	}

	prompt := fmt.Sprintf(`You are a study assistant for a high-school %s student.
Generate exactly %d practice questions from the study notes below.
Respond with a JSON array only, each element {"question": "...", "answer": "..."}.

Notes:
%s`, subject, count, noteText)

	model := geminiClient.GenerativeModel(geminiModel)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	raw := cleanModelOutput(responseText(resp))
	var questions []Question
	if err := json.Unmarshal([]byte(raw), &questions); err != nil {
		return nil, fmt.Errorf("failed to parse generated questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, errors.New("model returned no questions")
	}
	return questions, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return sb.String()
}

func cleanModelOutput(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
