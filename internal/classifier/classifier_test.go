package classifier

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/joelkehle/assistant-desk/internal/messages"
)

type fakeProvider struct {
	name       string
	confidence Confidence
	response   string
	err        error
	delay      time.Duration

	calls   atomic.Int32
	active  atomic.Int32
	mu      sync.Mutex
	maxSeen int32
	prompts []string
}

func (f *fakeProvider) Name() string           { return f.name }
func (f *fakeProvider) Confidence() Confidence { return f.confidence }

func (f *fakeProvider) Complete(ctx context.Context, prompt string) (string, error) {
	f.calls.Add(1)
	n := f.active.Add(1)
	defer f.active.Add(-1)
	f.mu.Lock()
	f.maxSeen = max(f.maxSeen, n)
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.response, f.err
}

type failingCache struct{}

func (failingCache) Get(context.Context, string) (Result, bool, error) {
	return Result{}, false, errors.New("cache down")
}

func (failingCache) Set(context.Context, string, Result) error {
	return errors.New("cache down")
}

var ambiguous = messages.Message{ID: "m-1", Source: messages.SourceEmailPersonal, SenderName: "Pat", Subject: "Quarterly numbers", Preview: "Attached are the figures"}

func TestClassifyRuleMatchSkipsProvider(t *testing.T) {
	p := &fakeProvider{name: "anthropic", confidence: High, response: `{"requires_response":"yes"}`}
	c := New(Options{Providers: []Provider{p}})
	got := c.Classify(context.Background(), messages.Message{ID: "n-1", Subject: "Weekly newsletter", Preview: "Top stories"})
	if got.RequiresResponse != No || got.Confidence != High || got.Method != MethodRule {
		t.Fatalf("unexpected result: %+v", got)
	}
	got = c.Classify(context.Background(), messages.Message{ID: "q-1", Preview: "Can you send the deck?"})
	if got.RequiresResponse != Yes || got.Confidence != Medium || got.Method != MethodRule {
		t.Fatalf("unexpected result: %+v", got)
	}
	if p.calls.Load() != 0 {
		t.Fatalf("expected no provider calls, got %d", p.calls.Load())
	}
}

func TestClassifyUsesProviderWhenInconclusive(t *testing.T) {
	p := &fakeProvider{name: "anthropic", confidence: High, response: "Sure.\n{\"requires_response\": \"yes\", \"reason\": \"asks for numbers\"}"}
	c := New(Options{Providers: []Provider{p}})
	got := c.Classify(context.Background(), ambiguous)
	want := Result{RequiresResponse: Yes, Confidence: High, Reason: "asks for numbers", Method: MethodLLM}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
	if len(p.prompts) != 1 {
		t.Fatalf("expected one prompt, got %d", len(p.prompts))
	}
	for _, part := range []string{"From: Pat", "Subject: Quarterly numbers", "Message: Attached are the figures"} {
		if !strings.Contains(p.prompts[0], part) {
			t.Fatalf("prompt missing %q:\n%s", part, p.prompts[0])
		}
	}
}

func TestClassifyDirectMessageStillAsksProvider(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	p := &fakeProvider{name: "openai", confidence: Medium, response: `{"requires_response":"no","reason":"greeting"}`}
	c := New(Options{Providers: []Provider{p}, Metrics: metrics})
	got := c.Classify(context.Background(), messages.Message{ID: "dm-1", Source: messages.SourceTeamsDM, IsDirectMessage: true, Preview: "hey there"})
	if got.RequiresResponse != No || got.Confidence != Medium || got.Method != MethodLLM {
		t.Fatalf("provider result should supersede the direct message heuristic: %+v", got)
	}
	if n := testutil.ToFloat64(metrics.RuleMatches.WithLabelValues("direct_message")); n != 1 {
		t.Fatalf("expected direct_message rule match to be counted, got %v", n)
	}
	if n := testutil.ToFloat64(metrics.ProviderCalls.WithLabelValues("openai", "ok")); n != 1 {
		t.Fatalf("expected one ok provider call, got %v", n)
	}
}

func TestClassifyFallsBackToNextProvider(t *testing.T) {
	for name, first := range map[string]*fakeProvider{
		"transport error": {name: "anthropic", confidence: High, err: errors.New("status code: 503")},
		"unparsable":      {name: "anthropic", confidence: High, response: "I think so"},
	} {
		t.Run(name, func(t *testing.T) {
			second := &fakeProvider{name: "openai", confidence: Medium, response: `{"requires_response":"maybe"}`}
			c := New(Options{Providers: []Provider{first, second}})
			got := c.Classify(context.Background(), ambiguous)
			want := Result{RequiresResponse: Maybe, Confidence: Medium, Reason: "GPT analysis", Method: MethodLLM}
			if got != want {
				t.Fatalf("got %+v want %+v", got, want)
			}
			if first.calls.Load() != 1 || second.calls.Load() != 1 {
				t.Fatalf("unexpected calls first=%d second=%d", first.calls.Load(), second.calls.Load())
			}
		})
	}
}

func TestClassifyDegradesWhenProvidersFail(t *testing.T) {
	want := Result{RequiresResponse: Maybe, Confidence: Low, Reason: "Unable to classify", Method: MethodRule}
	c := New(Options{})
	if got := c.Classify(context.Background(), ambiguous); got != want {
		t.Fatalf("unconfigured: got %+v", got)
	}
	bad := &fakeProvider{name: "anthropic", confidence: High, err: errors.New("connection refused")}
	c = New(Options{Providers: []Provider{bad}})
	if got := c.Classify(context.Background(), ambiguous); got != want {
		t.Fatalf("failing provider: got %+v", got)
	}
}

func TestClassifyTimeoutDegrades(t *testing.T) {
	slow := &fakeProvider{name: "anthropic", confidence: High, response: `{"requires_response":"yes"}`, delay: time.Second}
	c := New(Options{Providers: []Provider{slow}, Timeout: 10 * time.Millisecond})
	got := c.Classify(context.Background(), ambiguous)
	if got.Reason != "Unable to classify" || got.Method != MethodRule {
		t.Fatalf("expected degraded result on timeout, got %+v", got)
	}
}

func TestClassifyIsIdempotent(t *testing.T) {
	p := &fakeProvider{name: "anthropic", confidence: High, response: `{"requires_response":"yes","reason":"first"}`}
	cache := NewMemoryCache()
	c := New(Options{Providers: []Provider{p}, Cache: cache})
	first := c.Classify(context.Background(), ambiguous)
	p.response = `{"requires_response":"no","reason":"second"}`
	second := c.Classify(context.Background(), ambiguous)
	if first != second {
		t.Fatalf("expected cached result, got %+v then %+v", first, second)
	}
	if p.calls.Load() != 1 {
		t.Fatalf("expected one provider call, got %d", p.calls.Load())
	}
	if cache.Len() != 1 {
		t.Fatalf("expected one cache entry, got %d", cache.Len())
	}
}

func TestMemoryCacheDeleteAndReset(t *testing.T) {
	ctx := context.Background()
	p := &fakeProvider{name: "anthropic", confidence: High, response: `{"requires_response":"yes"}`}
	cache := NewMemoryCache()
	c := New(Options{Providers: []Provider{p}, Cache: cache})
	c.Classify(ctx, ambiguous)
	if err := cache.Delete(ctx, ambiguous.ID); err != nil {
		t.Fatal(err)
	}
	c.Classify(ctx, ambiguous)
	if p.calls.Load() != 2 {
		t.Fatalf("expected delete to force a provider call, got %d", p.calls.Load())
	}
	other := ambiguous
	other.ID = "other"
	c.Classify(ctx, other)
	if n, _ := cache.Count(ctx); n != 2 {
		t.Fatalf("expected two entries, got %d", n)
	}
	if err := cache.Reset(ctx); err != nil {
		t.Fatal(err)
	}
	if cache.Len() != 0 {
		t.Fatalf("expected empty cache after reset, got %d", cache.Len())
	}
}

func TestClassifyCachesDegradedResults(t *testing.T) {
	bad := &fakeProvider{name: "anthropic", confidence: High, err: errors.New("boom")}
	c := New(Options{Providers: []Provider{bad}})
	c.Classify(context.Background(), ambiguous)
	c.Classify(context.Background(), ambiguous)
	if bad.calls.Load() != 1 {
		t.Fatalf("expected degraded result to be cached, got %d calls", bad.calls.Load())
	}
}

func TestClassifyCacheErrorsAreMisses(t *testing.T) {
	p := &fakeProvider{name: "anthropic", confidence: High, response: `{"requires_response":"yes"}`}
	c := New(Options{Providers: []Provider{p}, Cache: failingCache{}})
	got := c.Classify(context.Background(), ambiguous)
	if got.Method != MethodLLM || got.Reason != "Claude analysis" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestClassifyWithoutIDBypassesCache(t *testing.T) {
	p := &fakeProvider{name: "anthropic", confidence: High, response: `{"requires_response":"yes"}`}
	cache := NewMemoryCache()
	c := New(Options{Providers: []Provider{p}, Cache: cache})
	m := ambiguous
	m.ID = ""
	c.Classify(context.Background(), m)
	c.Classify(context.Background(), m)
	if p.calls.Load() != 2 || cache.Len() != 0 {
		t.Fatalf("expected uncached calls, got calls=%d entries=%d", p.calls.Load(), cache.Len())
	}
}

func TestClassifyBatchBoundsConcurrency(t *testing.T) {
	p := &fakeProvider{name: "anthropic", confidence: High, response: `{"requires_response":"no"}`, delay: 20 * time.Millisecond}
	c := New(Options{Providers: []Provider{p}})
	var msgs []messages.Message
	for i := 0; i < 12; i++ {
		m := ambiguous
		m.ID = fmt.Sprintf("m-%d", i)
		msgs = append(msgs, m)
	}
	msgs = append(msgs, messages.Message{ID: "rule-1", Preview: "FYI only"})
	got := c.ClassifyBatch(context.Background(), msgs)
	if len(got) != len(msgs) {
		t.Fatalf("expected %d results, got %d", len(msgs), len(got))
	}
	for _, m := range msgs {
		if _, ok := got[m.ID]; !ok {
			t.Fatalf("missing result for %s", m.ID)
		}
	}
	if got["rule-1"].Method != MethodRule {
		t.Fatalf("expected rule result, got %+v", got["rule-1"])
	}
	if p.calls.Load() != 12 {
		t.Fatalf("expected 12 provider calls, got %d", p.calls.Load())
	}
	if p.maxSeen > DefaultBatchSize {
		t.Fatalf("expected at most %d concurrent calls, saw %d", DefaultBatchSize, p.maxSeen)
	}
}

func TestClassifyBatchDuplicateIDsCallOnce(t *testing.T) {
	p := &fakeProvider{name: "anthropic", confidence: High, response: `{"requires_response":"yes"}`, delay: 10 * time.Millisecond}
	c := New(Options{Providers: []Provider{p}})
	msgs := []messages.Message{ambiguous, ambiguous, ambiguous, ambiguous}
	got := c.ClassifyBatch(context.Background(), msgs)
	if len(got) != 1 {
		t.Fatalf("expected one distinct id, got %d", len(got))
	}
	if p.calls.Load() != 1 {
		t.Fatalf("expected one provider call for duplicate ids, got %d", p.calls.Load())
	}
}

func TestClassifyBatchEmpty(t *testing.T) {
	got := New(Options{}).ClassifyBatch(context.Background(), nil)
	if len(got) != 0 {
		t.Fatalf("expected empty map, got %v", got)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(map[string]Result{
		"a": {RequiresResponse: Yes, Method: MethodRule},
		"b": {RequiresResponse: No, Method: MethodRule},
		"c": {RequiresResponse: Maybe, Method: MethodLLM},
		"d": {RequiresResponse: No, Method: MethodLLM},
	})
	if s.Total != 4 || s.Yes != 1 || s.No != 2 || s.Maybe != 1 {
		t.Fatalf("unexpected counts: %+v", s)
	}
	if s.ByMethod[MethodRule] != 2 || s.ByMethod[MethodLLM] != 2 {
		t.Fatalf("unexpected method counts: %+v", s.ByMethod)
	}
	if empty := Summarize(nil); empty.Total != 0 || empty.ByMethod[MethodLLM] != 0 {
		t.Fatalf("unexpected empty summary: %+v", empty)
	}
}
