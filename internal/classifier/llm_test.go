package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
)

type mockMessager struct {
	response *anthropic.Message
	err      error
	params   anthropic.MessageNewParams
}

func (m *mockMessager) New(_ context.Context, params anthropic.MessageNewParams, _ ...option.RequestOption) (*anthropic.Message, error) {
	m.params = params
	return m.response, m.err
}

func TestParseAnswer(t *testing.T) {
	p := NewAnthropicProviderWithClient(&mockMessager{}, "", 0)
	tests := []struct {
		name string
		raw  string
		want Result
	}{
		{
			name: "plain",
			raw:  `{"requires_response":"yes","reason":"direct ask"}`,
			want: Result{RequiresResponse: Yes, Confidence: High, Reason: "direct ask", Method: MethodLLM},
		},
		{
			name: "fenced",
			raw:  "```json\n{\"requires_response\":\"no\",\"reason\":\"status\"}\n```",
			want: Result{RequiresResponse: No, Confidence: High, Reason: "status", Method: MethodLLM},
		},
		{
			name: "surrounding prose",
			raw:  "Here you go: {\"requires_response\": \"No\"} hope that helps",
			want: Result{RequiresResponse: No, Confidence: High, Reason: "Claude analysis", Method: MethodLLM},
		},
		{
			name: "unknown answer",
			raw:  `{"requires_response":"perhaps"}`,
			want: Result{RequiresResponse: Maybe, Confidence: High, Reason: "Claude analysis", Method: MethodLLM},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAnswer(p, tt.raw)
			if err != nil {
				t.Fatalf("parseAnswer: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %+v want %+v", got, tt.want)
			}
		})
	}
	for _, raw := range []string{"", "no json here", "{not json}", "} {"} {
		if _, err := parseAnswer(p, raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestClassifyTransportError(t *testing.T) {
	tests := []struct {
		err  error
		want failureClass
	}{
		{context.Canceled, failureCanceled},
		{context.DeadlineExceeded, failureTimeout},
		{&openai.APIError{HTTPStatusCode: 429}, failureRateLimit},
		{&openai.APIError{HTTPStatusCode: 401}, failureClient},
		{&openai.RequestError{HTTPStatusCode: 502}, failureServer},
		{errors.New("POST: status code: 404"), failureClient},
		{errors.New("rate limit exceeded"), failureRateLimit},
		{errors.New("connection reset"), failureServer},
	}
	for _, tt := range tests {
		if got := classifyTransportError(tt.err); got != tt.want {
			t.Fatalf("classifyTransportError(%v)=%s want=%s", tt.err, got, tt.want)
		}
	}
}

func TestAnthropicProviderComplete(t *testing.T) {
	mock := &mockMessager{response: &anthropic.Message{Content: []anthropic.ContentBlockUnion{
		{Type: "text", Text: `{"requires_response":`},
		{Type: "text", Text: `"yes"}`},
	}}}
	p := NewAnthropicProviderWithClient(mock, "", 0)
	got, err := p.Complete(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got != `{"requires_response":"yes"}` {
		t.Fatalf("unexpected text %q", got)
	}
	if string(mock.params.Model) != DefaultAnthropicModel || mock.params.MaxTokens != DefaultAnthropicMaxTokens {
		t.Fatalf("unexpected params model=%s max=%d", mock.params.Model, mock.params.MaxTokens)
	}
	if p.Confidence() != High {
		t.Fatalf("expected high confidence, got %s", p.Confidence())
	}

	mock.err = errors.New("unauthorized")
	if _, err := p.Complete(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error")
	}
}

func TestOpenAIProviderComplete(t *testing.T) {
	var req openai.ChatCompletionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			http.NotFound(w, r)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: `{"requires_response":"no"}`}}},
		})
	}))
	defer srv.Close()

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = srv.URL + "/v1"
	p := NewOpenAIProviderWithClient(openai.NewClientWithConfig(cfg), "", 0)
	got, err := p.Complete(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got != `{"requires_response":"no"}` {
		t.Fatalf("unexpected content %q", got)
	}
	if req.Model != DefaultOpenAIModel || req.MaxTokens != DefaultOpenAIMaxTokens || len(req.Messages) != 1 || req.Messages[0].Content != "hello" {
		t.Fatalf("unexpected request: %+v", req)
	}
	if p.Confidence() != Medium {
		t.Fatalf("expected medium confidence, got %s", p.Confidence())
	}
}

func TestOpenAIProviderServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":{"message":"overloaded","type":"server_error"}}`))
	}))
	defer srv.Close()

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = srv.URL + "/v1"
	p := NewOpenAIProviderWithClient(openai.NewClientWithConfig(cfg), "", 0)
	_, err := p.Complete(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected error")
	}
	if got := classifyTransportError(err); got != failureServer {
		t.Fatalf("expected server failure class, got %s", got)
	}
}

type countingProvider struct {
	calls atomic.Int32
	err   error
}

func (c *countingProvider) Name() string           { return "flaky" }
func (c *countingProvider) Confidence() Confidence { return Medium }
func (c *countingProvider) Complete(context.Context, string) (string, error) {
	c.calls.Add(1)
	return "", c.err
}

func TestBreakerProviderOpensAfterConsecutiveFailures(t *testing.T) {
	inner := &countingProvider{err: errors.New("status code: 500")}
	b := NewBreakerProvider(inner, BreakerSettings{ConsecutiveFailures: 2, OpenTimeout: time.Minute}, nil)
	for i := 0; i < 3; i++ {
		if _, err := b.Complete(context.Background(), "p"); err == nil {
			t.Fatal("expected error")
		}
	}
	if b.State() != gobreaker.StateOpen {
		t.Fatalf("expected open breaker, got %s", b.State())
	}
	_, err := b.Complete(context.Background(), "p")
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("expected ErrOpenState, got %v", err)
	}
	if inner.calls.Load() != 3 {
		t.Fatalf("expected open breaker to short-circuit, got %d calls", inner.calls.Load())
	}
	if b.Name() != "flaky" || b.Confidence() != Medium {
		t.Fatal("breaker should expose the wrapped provider identity")
	}
}

func TestBreakerProviderIgnoresClientErrors(t *testing.T) {
	inner := &countingProvider{err: errors.New("status code: 400")}
	b := NewBreakerProvider(inner, BreakerSettings{ConsecutiveFailures: 1}, nil)
	for i := 0; i < 4; i++ {
		_, _ = b.Complete(context.Background(), "p")
	}
	if b.State() != gobreaker.StateClosed {
		t.Fatalf("client errors should not trip the breaker, got %s", b.State())
	}
}
