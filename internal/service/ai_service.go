package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"sync"

	"solo_quiz_backend/internal/config"
	"solo_quiz_backend/internal/model"
)

// FeedbackGenerator is the generative-text collaborator the quiz flow depends
// on. Every method is a best-effort remote call; callers substitute a fixed
// fallback on failure and keep going.
type FeedbackGenerator interface {
	Hint(ctx context.Context, questionText string, level model.SOLOLevel, topic string) (string, error)
	Feedback(ctx context.Context, q *model.Question, selectedOption string, isCorrect bool) (string, error)
	Analysis(ctx context.Context, answers []model.AnswerRecord, perf map[model.SOLOLevel]model.LevelPerformance) (string, error)
	GenerateQuestion(ctx context.Context, topic string, level model.SOLOLevel) (*model.Question, error)
}

// AIService talks to an OpenAI 兼容的 /chat/completions 接口.
type AIService struct {
	mu     sync.RWMutex
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// SetConfig swaps the endpoint settings, used by config hot reload.
func (s *AIService) SetConfig(cfg config.AIConfig) {
	s.mu.Lock()
	s.config = cfg
	s.client = &http.Client{Timeout: cfg.Timeout}
	s.mu.Unlock()
}

func (s *AIService) snapshot() (config.AIConfig, *http.Client) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config, s.client
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model    string          `json:"model"`
	Messages []AIChatMessage `json:"messages"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (s *AIService) chat(ctx context.Context, system, prompt string) (string, error) {
	cfg, client := s.snapshot()

	reqBody := ChatCompletionRequest{
		Model: cfg.Model,
		Messages: []AIChatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", cfg.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}
	if result.Error != nil {
		return "", fmt.Errorf("AI API error: %s", result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("AI returned no choices")
	}

	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}

func (s *AIService) Hint(ctx context.Context, questionText string, level model.SOLOLevel, topic string) (string, error) {
	prompt := fmt.Sprintf(`As an expert Knowledge Graph educator, provide a subtle hint for this SOLO %s level question about %s:

Question: %s

Provide a brief, encouraging hint that guides thinking without giving away the answer. Keep it under 50 words and make it engaging.`,
		level, topic, questionText)

	return s.chat(ctx, "You are an expert Knowledge Graph educator.", prompt)
}

func (s *AIService) Feedback(ctx context.Context, q *model.Question, selectedOption string, isCorrect bool) (string, error) {
	opts, err := q.OptionList()
	if err != nil {
		return "", err
	}

	result := "Incorrect"
	if isCorrect {
		result = "Correct"
	}

	prompt := fmt.Sprintf(`As a Knowledge Graph learning expert, provide personalized feedback for this student response:

Question: %s
SOLO Level: %s
Topic: %s
Options: %s
Student Selected: %s
Correct Answer: %s
Result: %s

Provide encouraging, specific feedback that:
1. Acknowledges their thinking process
2. Explains why the answer is correct/incorrect
3. Connects to SOLO taxonomy level
4. Suggests next learning steps

Keep it conversational and under 100 words.`,
		q.Question, q.Level, q.Topic, strings.Join(opts, ", "), selectedOption, q.CorrectOption, result)

	return s.chat(ctx, "You are a Knowledge Graph learning expert.", prompt)
}

func (s *AIService) Analysis(ctx context.Context, answers []model.AnswerRecord, perf map[model.SOLOLevel]model.LevelPerformance) (string, error) {
	var summary []string
	for _, level := range model.AllSOLOLevels {
		p := perf[level]
		if p.Total > 0 {
			summary = append(summary, fmt.Sprintf("%s: %d/%d (%.0f%%)", level, p.Correct, p.Total, p.Percentage))
		}
	}

	prompt := fmt.Sprintf(`As an expert educational psychologist specializing in SOLO Taxonomy and Knowledge Graphs, analyze this student's learning journey:

Performance Summary:
%s

Total Questions: %d

Provide a comprehensive analysis including:
1. SOLO taxonomy progression insights
2. Knowledge Graph concept mastery
3. Learning strengths and growth areas
4. Specific recommendations for advancement
5. Motivational encouragement

Structure as: **Strengths** | **Growth Areas** | **Next Steps** | **Encouragement**
Keep each section concise but meaningful.`,
		strings.Join(summary, "\n"), len(answers))

	return s.chat(ctx, "You are an expert educational psychologist.", prompt)
}

var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

type generatedQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption string   `json:"correct_option"`
	Explanation   string   `json:"explanation"`
}

func (s *AIService) GenerateQuestion(ctx context.Context, topic string, level model.SOLOLevel) (*model.Question, error) {
	prompt := fmt.Sprintf(`Create a %s level Knowledge Graph question about %s following SOLO Taxonomy principles:

SOLO Level Guidelines:
- Pre-structural: Test misconceptions
- Uni-structural: Single concept focus
- Multi-structural: Multiple related concepts
- Relational: Connections between concepts
- Extended Abstract: Real-world applications

Return a JSON object with:
{
    "question": "Question text",
    "options": ["Option 1", "Option 2", "Option 3", "Option 4"],
    "correct_option": "Exact text of correct option",
    "explanation": "Detailed explanation"
}

Ensure the question is educationally sound and appropriate for the SOLO level.`,
		level, topic)

	raw, err := s.chat(ctx, "You are an expert question author for SOLO taxonomy quizzes.", prompt)
	if err != nil {
		return nil, err
	}

	// 模型可能在 JSON 外包裹说明文字，取第一个对象
	match := jsonObjectPattern.FindString(raw)
	if match == "" {
		return nil, fmt.Errorf("no JSON object in AI response")
	}

	var gen generatedQuestion
	if err := json.Unmarshal([]byte(match), &gen); err != nil {
		return nil, fmt.Errorf("decode generated question: %w", err)
	}

	return model.NewQuestion(topic, level, gen.Question, gen.Options, gen.CorrectOption, gen.Explanation)
}
