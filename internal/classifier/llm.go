package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net"
	"regexp"
	"strconv"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	openai "github.com/sashabaranov/go-openai"

	"github.com/joelkehle/assistant-desk/internal/messages"
)

const (
	DefaultAnthropicModel     = "claude-3-haiku-20240307"
	DefaultAnthropicMaxTokens = 150
	DefaultOpenAIModel        = "gpt-4o-mini"
	DefaultOpenAIMaxTokens    = 100
)

// Provider is a generative text backend consulted when rules are inconclusive.
type Provider interface {
	// Name is a short stable label used in logs and metrics.
	Name() string
	// Confidence is attached to every answer this provider parses successfully.
	Confidence() Confidence
	Complete(ctx context.Context, prompt string) (string, error)
}

func buildPrompt(m messages.Message) string {
	subject := m.Subject
	if subject == "" {
		subject = "(no subject)"
	}
	return fmt.Sprintf(`Analyze this message and determine if it requires a response from the recipient (a busy executive).

From: %s
Subject: %s
Message: %s

Respond with JSON only:
{"requires_response": "yes" or "no" or "maybe", "reason": "brief explanation"}`, m.SenderName, subject, m.Preview)
}

var errNoJSON = errors.New("no JSON object in response")

type llmAnswer struct {
	RequiresResponse string `json:"requires_response"`
	Reason           string `json:"reason"`
}

var providerLabels = map[string]string{"anthropic": "Claude", "openai": "GPT"}

// parseAnswer extracts the outermost {...} span of a completion and maps it to
// a Result. Unknown answers collapse to maybe.
func parseAnswer(p Provider, raw string) (Result, error) {
	raw = stripCodeFences(raw)
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end < start {
		return Result{}, errNoJSON
	}
	var ans llmAnswer
	if err := json.Unmarshal([]byte(raw[start:end+1]), &ans); err != nil {
		return Result{}, fmt.Errorf("decode answer: %w", err)
	}
	rr := RequiresResponse(strings.ToLower(strings.TrimSpace(ans.RequiresResponse)))
	switch rr {
	case Yes, No, Maybe:
	default:
		rr = Maybe
	}
	reason := strings.TrimSpace(ans.Reason)
	if reason == "" {
		label, ok := providerLabels[p.Name()]
		if !ok {
			label = p.Name()
		}
		reason = label + " analysis"
	}
	return Result{RequiresResponse: rr, Confidence: p.Confidence(), Reason: reason, Method: MethodLLM}, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		parts := strings.SplitN(s, "\n", 2)
		if len(parts) == 2 {
			s = parts[1]
		}
		s = strings.TrimPrefix(s, "json")
		s = strings.TrimSpace(strings.TrimSuffix(s, "```"))
	}
	return s
}

type failureClass string

const (
	failureTimeout   failureClass = "timeout"
	failureRateLimit failureClass = "rate_limit"
	failureServer    failureClass = "server"
	failureClient    failureClass = "client"
	failureCanceled  failureClass = "canceled"
)

var statusCodeRe = regexp.MustCompile(`(?:status(?:\s+code)?[:=\s]+)(\d{3})`)

func classifyTransportError(err error) failureClass {
	if errors.Is(err, context.Canceled) {
		return failureCanceled
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return failureTimeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return failureTimeout
	}
	var ae *anthropic.Error
	if errors.As(err, &ae) {
		return classifyStatus(ae.StatusCode)
	}
	var oe *openai.APIError
	if errors.As(err, &oe) {
		return classifyStatus(oe.HTTPStatusCode)
	}
	var re *openai.RequestError
	if errors.As(err, &re) {
		return classifyStatus(re.HTTPStatusCode)
	}
	msg := strings.ToLower(err.Error())
	if m := statusCodeRe.FindStringSubmatch(msg); len(m) == 2 {
		code, _ := strconv.Atoi(m[1])
		return classifyStatus(code)
	}
	if strings.Contains(msg, "rate limit") {
		return failureRateLimit
	}
	return failureServer
}

func classifyStatus(code int) failureClass {
	switch {
	case code == 429:
		return failureRateLimit
	case code >= 500:
		return failureServer
	case code >= 400:
		return failureClient
	default:
		return failureServer
	}
}

// AnthropicMessager is the subset of the Anthropic client the provider uses.
type AnthropicMessager interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

type AnthropicProvider struct {
	messages  AnthropicMessager
	model     string
	maxTokens int64
}

func NewAnthropicProvider(apiKey, model string, maxTokens int) *AnthropicProvider {
	c := anthropic.NewClient(option.WithAPIKey(apiKey))
	return NewAnthropicProviderWithClient(&c.Messages, model, maxTokens)
}

func NewAnthropicProviderWithClient(m AnthropicMessager, model string, maxTokens int) *AnthropicProvider {
	if model == "" {
		model = DefaultAnthropicModel
	}
	if maxTokens <= 0 {
		maxTokens = DefaultAnthropicMaxTokens
	}
	return &AnthropicProvider{messages: m, model: model, maxTokens: int64(maxTokens)}
}

func (a *AnthropicProvider) Name() string           { return "anthropic" }
func (a *AnthropicProvider) Confidence() Confidence { return High }

func (a *AnthropicProvider) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := a.messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(a.model),
		MaxTokens:   a.maxTokens,
		Messages:    []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(prompt))},
		Temperature: anthropic.Float(0),
	})
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, b := range resp.Content {
		if b.Type == "text" {
			sb.WriteString(b.Text)
		}
	}
	return sb.String(), nil
}

// ChatCompleter is the subset of the OpenAI client the provider uses.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type OpenAIProvider struct {
	client    ChatCompleter
	model     string
	maxTokens int
}

func NewOpenAIProvider(apiKey, model string, maxTokens int) *OpenAIProvider {
	return NewOpenAIProviderWithClient(openai.NewClient(apiKey), model, maxTokens)
}

func NewOpenAIProviderWithClient(c ChatCompleter, model string, maxTokens int) *OpenAIProvider {
	if model == "" {
		model = DefaultOpenAIModel
	}
	if maxTokens <= 0 {
		maxTokens = DefaultOpenAIMaxTokens
	}
	return &OpenAIProvider{client: c, model: model, maxTokens: maxTokens}
}

func (o *OpenAIProvider) Name() string           { return "openai" }
func (o *OpenAIProvider) Confidence() Confidence { return Medium }

func (o *OpenAIProvider) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     o.model,
		MaxTokens: o.maxTokens,
		// A literal zero is dropped by omitempty.
		Temperature: math.SmallestNonzeroFloat32,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
