// Package httpapi exposes message classification, response metrics and
// prior-art scoring over JSON HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/joelkehle/assistant-desk/internal/classifier"
	"github.com/joelkehle/assistant-desk/internal/messages"
	"github.com/joelkehle/assistant-desk/internal/priorart"
	"github.com/joelkehle/assistant-desk/internal/report"
	"github.com/joelkehle/assistant-desk/internal/scoring"
)

// MaxClassifyMessages caps a single classify request.
const MaxClassifyMessages = 500

const maxBodyBytes = 4 << 20

// Classifier is the subset of *classifier.Classifier the API calls.
type Classifier interface {
	ClassifyBatch(ctx context.Context, msgs []messages.Message) map[string]classifier.Result
	ProviderNames() []string
}

// Scorer is the subset of *scoring.Engine the API calls.
type Scorer interface {
	Score(patentID string) (scoring.PatentScore, bool)
	ScoreAll() []scoring.PatentScore
}

// PDFRenderer turns report Markdown into a PDF document.
type PDFRenderer interface {
	Render(ctx context.Context, title, md string) ([]byte, error)
}

// CacheAdmin invalidates cached classifications. Every classifier cache in
// this module implements it.
type CacheAdmin interface {
	Delete(ctx context.Context, id string) error
	Reset(ctx context.Context) error
}

type cacheCounter interface {
	Count(ctx context.Context) (int, error)
}

type classifiedLister interface {
	ClassifiedSince(ctx context.Context, t time.Time) ([]string, error)
}

type Options struct {
	Classifier Classifier
	Scorer     Scorer
	Catalogue  *priorart.Catalogue
	// Cache backs the reset routes; without it they answer 503.
	Cache CacheAdmin
	// PDF is optional; without it pdf reports answer 503.
	PDF PDFRenderer
	// Gatherer backs GET /metrics when set.
	Gatherer prometheus.Gatherer
	Logger   *zap.Logger
	Clock    func() time.Time
}

type Server struct {
	classifier Classifier
	scorer     Scorer
	catalogue  *priorart.Catalogue
	cache      CacheAdmin
	pdf        PDFRenderer
	logger     *zap.Logger
	clock      func() time.Time
	tracer     trace.Tracer
	issues     int
}

func NewServer(opts Options) http.Handler {
	s := &Server{
		classifier: opts.Classifier,
		scorer:     opts.Scorer,
		catalogue:  opts.Catalogue,
		cache:      opts.Cache,
		pdf:        opts.PDF,
		logger:     opts.Logger,
		clock:      opts.Clock,
		tracer:     otel.Tracer("github.com/joelkehle/assistant-desk/internal/httpapi"),
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	if s.catalogue == nil {
		s.catalogue = priorart.Default()
	}
	if s.scorer == nil {
		s.scorer = scoring.NewEngine(s.catalogue)
	}
	if s.classifier == nil {
		s.classifier = classifier.New(classifier.Options{Logger: s.logger})
	}
	for _, issue := range s.catalogue.Validate() {
		s.logger.Warn("catalogue_issue", zap.String("issue", issue.String()))
		s.issues++
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/health", s.handleHealth)
	mux.HandleFunc("/v1/messages/classify", s.handleClassify)
	mux.HandleFunc("/v1/messages/classified", s.handleClassified)
	mux.HandleFunc("/v1/messages/reset", s.handleReset)
	mux.HandleFunc("/v1/messages/reset/", s.handleReset)
	mux.HandleFunc("/v1/metrics", s.handleMetrics)
	mux.HandleFunc("/v1/patents", s.handlePatents)
	mux.HandleFunc("/v1/patents/", s.handlePatent)
	mux.HandleFunc("/v1/prior-art", s.handlePriorArtList)
	mux.HandleFunc("/v1/prior-art/", s.handlePriorArt)
	if opts.Gatherer != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}
	return s.withRequestLog(mux)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := strings.TrimSpace(r.Header.Get("X-Request-ID"))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		s.logger.Info("http_request",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	var ae *Error
	if !errors.As(err, &ae) {
		ae = newError(CodeInternal, err.Error())
	}
	writeJSON(w, ae.Status, map[string]any{
		"ok": false,
		"error": map[string]any{
			"code":    ae.Code,
			"message": ae.Message,
		},
	})
}

func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	blob, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return validationJSONError(err)
	}
	if len(blob) == 0 {
		return nil
	}
	if err := json.Unmarshal(blob, dst); err != nil {
		return validationJSONError(err)
	}
	return nil
}

func methodOnly(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	body := map[string]any{
		"ok":               true,
		"providers":        s.classifier.ProviderNames(),
		"patents":          len(s.catalogue.Patents()),
		"references":       len(s.catalogue.References()),
		"catalogue_issues": s.issues,
		"pdf":              s.pdf != nil,
	}
	if counter, ok := s.cache.(cacheCounter); ok {
		if n, err := counter.Count(r.Context()); err == nil {
			body["cached"] = n
		} else {
			s.logger.Warn("cache_count_error", zap.Error(err))
		}
	}
	writeJSON(w, http.StatusOK, body)
}

type messagesRequest struct {
	Messages []messages.Message `json:"messages"`
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodPost) {
		return
	}
	var req messagesRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if len(req.Messages) > MaxClassifyMessages {
		writeError(w, newError(CodeValidation, fmt.Sprintf("at most %d messages per request", MaxClassifyMessages)))
		return
	}
	ids := make([]string, len(req.Messages))
	for i := range req.Messages {
		if strings.TrimSpace(req.Messages[i].ID) == "" {
			req.Messages[i].ID = uuid.NewString()
		}
		ids[i] = req.Messages[i].ID
	}

	results := s.classifier.ClassifyBatch(r.Context(), req.Messages)
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":              true,
		"ids":             ids,
		"classifications": results,
		"summary":         classifier.Summarize(results),
	})
}

// handleReset serves /v1/messages/reset and /v1/messages/reset/{id}.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodPost) {
		return
	}
	if s.cache == nil {
		writeError(w, newError(CodeUnavailable, "classification cache does not support reset"))
		return
	}
	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/messages/reset"), "/")
	if strings.Contains(id, "/") {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var err error
	if id == "" {
		err = s.cache.Reset(r.Context())
	} else {
		err = s.cache.Delete(r.Context(), id)
	}
	if err != nil {
		s.logger.Error("cache_reset_error", zap.String("message_id", id), zap.Error(err))
		writeError(w, newError(CodeUnavailable, "classification cache reset failed"))
		return
	}
	s.logger.Info("cache_reset", zap.String("message_id", id))
	body := map[string]any{"ok": true, "reset_at": s.clock().UTC()}
	if id != "" {
		body["id"] = id
	}
	writeJSON(w, http.StatusOK, body)
}

// handleClassified lists ids classified since the RFC 3339 "since" query
// parameter, for caches that keep classification times.
func (s *Server) handleClassified(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	lister, ok := s.cache.(classifiedLister)
	if !ok {
		writeError(w, newError(CodeUnavailable, "classification cache does not record times"))
		return
	}
	since := time.Time{}
	if raw := strings.TrimSpace(r.URL.Query().Get("since")); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(w, newError(CodeValidation, "since must be an RFC 3339 timestamp"))
			return
		}
		since = t
	}
	ids, err := lister.ClassifiedSince(r.Context(), since)
	if err != nil {
		s.logger.Error("cache_list_error", zap.Error(err))
		writeError(w, newError(CodeUnavailable, "classification cache listing failed"))
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "ids": ids})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodPost) {
		return
	}
	var req messagesRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	msgs := messages.Merge(req.Messages)
	now := s.clock()
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":                  true,
		"summary":             messages.Summarize(msgs),
		"by_source":           messages.BySource(msgs, now),
		"response_by_channel": messages.ResponseByChannel(msgs, now),
	})
}

func (s *Server) handlePatents(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	_, span := s.tracer.Start(r.Context(), "scoring.score_all")
	scores := s.scorer.ScoreAll()
	span.SetAttributes(attribute.Int("scoring.patents", len(scores)))
	span.End()
	writeJSON(w, http.StatusOK, map[string]any{"patents": scores})
}

// handlePatent serves /v1/patents/{id} and /v1/patents/{id}/report.
func (s *Server) handlePatent(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/patents/"), "/")
	id, rest, _ := strings.Cut(path, "/")
	if id == "" || (rest != "" && rest != "report") {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	ctx, span := s.tracer.Start(r.Context(), "scoring.score")
	span.SetAttributes(attribute.String("scoring.patent_id", id))
	score, ok := s.scorer.Score(id)
	span.End()
	if !ok {
		writeError(w, notFound("patent %s is not in the catalogue", id))
		return
	}

	if rest == "report" {
		s.writeReport(ctx, w, score, r.URL.Query().Get("format"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"patent":     score,
		"references": s.catalogue.ReferencesForPatent(id),
	})
}

func (s *Server) writeReport(ctx context.Context, w http.ResponseWriter, score scoring.PatentScore, format string) {
	md := report.PatentMarkdown(score, s.catalogue)
	title := "Patent " + score.PatentID + " Invalidity Analysis"
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "md", "markdown":
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, md)
	case "html":
		doc, err := report.HTMLDocument(title, md)
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, doc)
	case "pdf":
		if s.pdf == nil {
			writeError(w, newError(CodeUnavailable, "pdf rendering is not configured"))
			return
		}
		pdf, err := s.pdf.Render(ctx, title, md)
		if err != nil {
			s.logger.Error("report_pdf_error", zap.String("patent_id", score.PatentID), zap.Error(err))
			writeError(w, newError(CodeUnavailable, "pdf rendering failed"))
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "patent-"+score.PatentID+"-invalidity.pdf"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(pdf)
	default:
		writeError(w, newError(CodeValidation, "format must be md, html or pdf"))
	}
}

func (s *Server) handlePriorArtList(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	refs := s.catalogue.References()
	if element := strings.TrimSpace(r.URL.Query().Get("element")); element != "" {
		refs = s.catalogue.ReferencesForElement(element)
	}
	if refs == nil {
		refs = []priorart.Reference{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"references": refs})
}

func (s *Server) handlePriorArt(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/prior-art/"), "/")
	if id == "" {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	ref, ok := s.catalogue.Reference(id)
	if !ok {
		writeError(w, notFound("reference %s is not in the catalogue", id))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reference": ref})
}
