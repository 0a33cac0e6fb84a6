package classifier

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/joelkehle/assistant-desk/internal/messages"
)

const (
	DefaultBatchSize = 5
	DefaultTimeout   = 20 * time.Second
)

type Options struct {
	// Providers are tried in order until one yields a parsable answer.
	Providers []Provider
	// Cache defaults to a process-local MemoryCache.
	Cache   Cache
	Logger  *zap.Logger
	Metrics *Metrics
	// BatchSize bounds concurrent classifications in ClassifyBatch.
	BatchSize int
	// Timeout bounds each provider call. Zero means DefaultTimeout.
	Timeout time.Duration
}

type Classifier struct {
	providers []Provider
	cache     Cache
	logger    *zap.Logger
	metrics   *Metrics
	batchSize int
	timeout   time.Duration
	tracer    trace.Tracer
	inflight  singleflight.Group
}

func New(opts Options) *Classifier {
	c := &Classifier{
		providers: opts.Providers,
		cache:     opts.Cache,
		logger:    opts.Logger,
		metrics:   opts.Metrics,
		batchSize: opts.BatchSize,
		timeout:   opts.Timeout,
		tracer:    otel.Tracer("github.com/joelkehle/assistant-desk/internal/classifier"),
	}
	if c.cache == nil {
		c.cache = NewMemoryCache()
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	if c.batchSize <= 0 {
		c.batchSize = DefaultBatchSize
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	return c
}

// ProviderNames lists the configured providers in fallback order.
func (c *Classifier) ProviderNames() []string {
	out := make([]string, 0, len(c.providers))
	for _, p := range c.providers {
		out = append(out, p.Name())
	}
	return out
}

// Classify never fails. A cached result for the message id is returned as is;
// otherwise the result is computed, cached and returned. Messages without an
// id bypass the cache.
func (c *Classifier) Classify(ctx context.Context, m messages.Message) Result {
	if m.ID == "" {
		r := c.evaluate(ctx, m)
		c.metrics.observeResult(r)
		return r
	}
	if r, ok := c.lookup(ctx, m.ID); ok {
		return r
	}
	v, _, _ := c.inflight.Do(m.ID, func() (interface{}, error) {
		if r, ok := c.lookup(ctx, m.ID); ok {
			return r, nil
		}
		r := c.evaluate(ctx, m)
		c.metrics.observeResult(r)
		if err := c.cache.Set(ctx, m.ID, r); err != nil {
			c.logger.Warn("classify_cache_set_error", zap.String("message_id", m.ID), zap.Error(err))
		}
		return r, nil
	})
	return v.(Result)
}

// ClassifyBatch classifies msgs in groups of BatchSize. Messages within a
// group run concurrently; groups run one after another. The result holds one
// entry per distinct message id.
func (c *Classifier) ClassifyBatch(ctx context.Context, msgs []messages.Message) map[string]Result {
	out := make(map[string]Result, len(msgs))
	for start := 0; start < len(msgs); start += c.batchSize {
		batch := msgs[start:min(start+c.batchSize, len(msgs))]
		results := make([]Result, len(batch))
		var g errgroup.Group
		for i, m := range batch {
			g.Go(func() error {
				results[i] = c.Classify(ctx, m)
				return nil
			})
		}
		_ = g.Wait()
		for i, m := range batch {
			out[m.ID] = results[i]
		}
	}
	return out
}

func (c *Classifier) lookup(ctx context.Context, id string) (Result, bool) {
	r, ok, err := c.cache.Get(ctx, id)
	switch {
	case err != nil:
		c.metrics.observeCache("error")
		c.logger.Warn("classify_cache_get_error", zap.String("message_id", id), zap.Error(err))
		return Result{}, false
	case ok:
		c.metrics.observeCache("hit")
		return r, true
	default:
		c.metrics.observeCache("miss")
		return Result{}, false
	}
}

func (c *Classifier) evaluate(ctx context.Context, m messages.Message) Result {
	if r, family, ok := ApplyRules(m); ok {
		c.metrics.observeRule(family)
		if r.Final() {
			return r
		}
	}
	return c.askProviders(ctx, m)
}

func (c *Classifier) askProviders(ctx context.Context, m messages.Message) Result {
	if len(c.providers) == 0 {
		return unableToClassify()
	}
	prompt := buildPrompt(m)
	for _, p := range c.providers {
		r, err := c.ask(ctx, p, prompt)
		if err == nil {
			return r
		}
		c.logger.Warn("classify_llm_error",
			zap.String("message_id", m.ID),
			zap.String("provider", p.Name()),
			zap.Error(err))
	}
	return unableToClassify()
}

func (c *Classifier) ask(ctx context.Context, p Provider, prompt string) (Result, error) {
	ctx, span := c.tracer.Start(ctx, "classifier.provider", trace.WithAttributes(attribute.String("llm.provider", p.Name())))
	defer span.End()
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	raw, err := p.Complete(ctx, prompt)
	if err != nil {
		class := classifyTransportError(err)
		c.metrics.observeProvider(p.Name(), string(class), time.Since(start))
		span.RecordError(err)
		span.SetStatus(codes.Error, string(class))
		return Result{}, fmt.Errorf("%s transport failure (%s): %w", p.Name(), class, err)
	}
	r, err := parseAnswer(p, raw)
	if err != nil {
		c.metrics.observeProvider(p.Name(), "unparsable", time.Since(start))
		span.RecordError(err)
		span.SetStatus(codes.Error, "unparsable")
		return Result{}, fmt.Errorf("%s answer: %w", p.Name(), err)
	}
	c.metrics.observeProvider(p.Name(), "ok", time.Since(start))
	span.SetAttributes(attribute.String("classifier.requires_response", string(r.RequiresResponse)))
	return r, nil
}
