package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"solo_quiz_backend/internal/config"
	"solo_quiz_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newChatServer serves a canned chat-completion reply and records the last
// request for assertions.
func newChatServer(t *testing.T, content string, status int) (*httptest.Server, *ChatCompletionRequest) {
	t.Helper()

	var lastReq ChatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&lastReq))

		w.WriteHeader(status)
		resp := ChatCompletionResponse{}
		resp.Choices = []struct {
			Message AIChatMessage `json:"message"`
		}{
			{Message: AIChatMessage{Role: "assistant", Content: content}},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(server.Close)
	return server, &lastReq
}

func newAIServiceFor(server *httptest.Server) *AIService {
	return NewAIService(config.AIConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Model:   "test-model",
		Timeout: 2 * time.Second,
	})
}

func TestAIServiceHint(t *testing.T) {
	server, lastReq := newChatServer(t, "  think about nodes and edges  ", http.StatusOK)
	svc := newAIServiceFor(server)

	hint, err := svc.Hint(context.Background(), "What is a triple?", model.UniStructural, "RDF")
	require.NoError(t, err)
	assert.Equal(t, "think about nodes and edges", hint)

	assert.Equal(t, "test-model", lastReq.Model)
	require.Len(t, lastReq.Messages, 2)
	assert.Equal(t, "system", lastReq.Messages[0].Role)
	assert.Contains(t, lastReq.Messages[1].Content, "What is a triple?")
	assert.Contains(t, lastReq.Messages[1].Content, "Uni-structural")
}

func TestAIServiceErrorStatus(t *testing.T) {
	server, _ := newChatServer(t, "irrelevant", http.StatusTooManyRequests)
	svc := newAIServiceFor(server)

	_, err := svc.Hint(context.Background(), "q?", model.PreStructural, "RDF")
	assert.Error(t, err)
}

func TestAIServiceUnreachableEndpoint(t *testing.T) {
	svc := NewAIService(config.AIConfig{
		BaseURL: "http://127.0.0.1:1",
		APIKey:  "test-key",
		Model:   "test-model",
		Timeout: 200 * time.Millisecond,
	})

	_, err := svc.Hint(context.Background(), "q?", model.PreStructural, "RDF")
	assert.Error(t, err)
}

func TestGenerateQuestionExtractsWrappedJSON(t *testing.T) {
	content := "Here is your question:\n" +
		`{"question":"What does RDF stand for?","options":["Resource Description Framework","Relational Data Format","Recursive Document Frame","Rapid Data Flow"],"correct_option":"Resource Description Framework","explanation":"RDF is the W3C standard."}` +
		"\nHope that helps!"
	server, _ := newChatServer(t, content, http.StatusOK)
	svc := newAIServiceFor(server)

	q, err := svc.GenerateQuestion(context.Background(), "RDF", model.UniStructural)
	require.NoError(t, err)
	assert.Equal(t, "What does RDF stand for?", q.Question)
	assert.Equal(t, "Resource Description Framework", q.CorrectOption)
	assert.Equal(t, model.UniStructural, q.Level)
	assert.Equal(t, 2, q.LevelOrder)

	opts, err := q.OptionList()
	require.NoError(t, err)
	assert.Len(t, opts, 4)
}

func TestGenerateQuestionRejectsNonJSONReply(t *testing.T) {
	server, _ := newChatServer(t, "I cannot produce a question right now.", http.StatusOK)
	svc := newAIServiceFor(server)

	_, err := svc.GenerateQuestion(context.Background(), "RDF", model.UniStructural)
	assert.Error(t, err)
}

func TestGenerateQuestionRejectsInvalidQuestion(t *testing.T) {
	// three options only: catalog invariants reject it
	content := `{"question":"q?","options":["a","b","c"],"correct_option":"a","explanation":"e"}`
	server, _ := newChatServer(t, content, http.StatusOK)
	svc := newAIServiceFor(server)

	_, err := svc.GenerateQuestion(context.Background(), "RDF", model.UniStructural)
	assert.Error(t, err)
}

func TestSetConfigSwapsEndpoint(t *testing.T) {
	first, _ := newChatServer(t, "from first", http.StatusOK)
	second, _ := newChatServer(t, "from second", http.StatusOK)
	svc := newAIServiceFor(first)

	hint, err := svc.Hint(context.Background(), "q?", model.PreStructural, "RDF")
	require.NoError(t, err)
	assert.Equal(t, "from first", hint)

	svc.SetConfig(config.AIConfig{
		BaseURL: second.URL,
		APIKey:  "test-key",
		Model:   "test-model",
		Timeout: 2 * time.Second,
	})

	hint, err = svc.Hint(context.Background(), "q?", model.PreStructural, "RDF")
	require.NoError(t, err)
	assert.Equal(t, "from second", hint)
}
