// Package report renders prior-art scoring results as Markdown, HTML and PDF.
package report

import (
	"fmt"
	"strings"

	"github.com/joelkehle/assistant-desk/internal/priorart"
	"github.com/joelkehle/assistant-desk/internal/scoring"
)

const Disclaimer = "_Scores are computed from a curated coverage table and indicate relative evidentiary strength only. They are not a legal opinion._"

// ConfidenceLabel buckets a 0-100 confidence for display.
func ConfidenceLabel(confidence int) string {
	switch {
	case confidence >= 90:
		return "Very Strong"
	case confidence >= 80:
		return "Strong"
	case confidence >= 70:
		return "Moderate"
	default:
		return "Weak"
	}
}

// Catalogue is the lookup surface the renderer needs for names and citations.
type Catalogue interface {
	Reference(id string) (priorart.Reference, bool)
	Element(id string) (priorart.ElementType, bool)
}

// PatentMarkdown renders one patent's scoring result.
func PatentMarkdown(score scoring.PatentScore, cat Catalogue) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Invalidity Analysis: Patent %s\n\n", score.PatentID)
	fmt.Fprintf(&b, "**Overall confidence:** %d%% (%s)\n\n", score.Confidence, ConfidenceLabel(score.Confidence))
	fmt.Fprintf(&b, "%s\n\n", Disclaimer)

	buildClaimSummary(&b, score)
	for _, c := range score.Claims {
		buildClaimDetail(&b, c, cat)
	}
	buildCitedPriorArt(&b, score, cat)
	return b.String()
}

func buildClaimSummary(b *strings.Builder, score scoring.PatentScore) {
	fmt.Fprintf(b, "## Claim Summary\n\n")
	if len(score.Claims) == 0 {
		fmt.Fprintf(b, "No claims mapped for this patent.\n\n")
		return
	}
	fmt.Fprintf(b, "| Claim | Confidence | Assessment | Elements |\n")
	fmt.Fprintf(b, "|---|---:|---|---:|\n")
	for _, c := range score.Claims {
		fmt.Fprintf(b, "| %s | %d%% | %s | %d |\n", cell(c.Label), c.Confidence, ConfidenceLabel(c.Confidence), len(c.Elements))
	}
	b.WriteString("\n")
}

func buildClaimDetail(b *strings.Builder, c scoring.ClaimScore, cat Catalogue) {
	fmt.Fprintf(b, "## %s\n\n", c.Label)
	fmt.Fprintf(b, "**Claim confidence:** %d%%\n\n", c.Confidence)
	fmt.Fprintf(b, "| Element | Description | Confidence | Best Reference | Corroborating |\n")
	fmt.Fprintf(b, "|---|---|---:|---|---|\n")
	for _, e := range c.Elements {
		desc := ""
		if et, ok := cat.Element(e.ElementType); ok {
			desc = et.Description
		}
		best := "none"
		if e.BestReference != "" {
			best = referenceName(cat, e.BestReference)
		}
		others := make([]string, 0, len(e.References))
		for _, id := range e.References {
			if id != e.BestReference {
				others = append(others, id)
			}
		}
		fmt.Fprintf(b, "| `%s` | %s | %d%% | %s | %s |\n", e.ElementType, cell(safe(desc)), e.Confidence, cell(best), cell(joinOrDash(others)))
	}
	b.WriteString("\n")
}

func buildCitedPriorArt(b *strings.Builder, score scoring.PatentScore, cat Catalogue) {
	fmt.Fprintf(b, "## Cited Prior Art\n\n")
	if len(score.PriorArt) == 0 {
		fmt.Fprintf(b, "No prior art curated for this patent.\n")
		return
	}
	for _, id := range score.PriorArt {
		ref, ok := cat.Reference(id)
		if !ok {
			fmt.Fprintf(b, "- `%s` (not in catalogue)\n", id)
			continue
		}
		fmt.Fprintf(b, "- **%s** (%s): %s\n", ref.Name, ref.Type, safe(ref.Citation))
		if ref.Relevance != "" {
			fmt.Fprintf(b, "  - Relevance: %s\n", ref.Relevance)
		}
		if ref.FilingDate != "" {
			fmt.Fprintf(b, "  - Filed: %s\n", ref.FilingDate)
		}
	}
}

// SummaryMarkdown renders the portfolio overview, one row per patent, in the
// order given.
func SummaryMarkdown(scores []scoring.PatentScore) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio Invalidity Summary\n\n")
	fmt.Fprintf(&b, "%s\n\n", Disclaimer)
	fmt.Fprintf(&b, "| Patent | Confidence | Assessment | Claims | References |\n")
	fmt.Fprintf(&b, "|---|---:|---|---:|---:|\n")
	for _, s := range scores {
		fmt.Fprintf(&b, "| %s | %d%% | %s | %d | %d |\n", s.PatentID, s.Confidence, ConfidenceLabel(s.Confidence), len(s.Claims), len(s.PriorArt))
	}
	if len(scores) > 0 {
		fmt.Fprintf(&b, "\n**Portfolio mean:** %d%%\n", scoring.PatentConfidence(confidences(scores)))
	}
	return b.String()
}

func confidences(scores []scoring.PatentScore) []int {
	out := make([]int, 0, len(scores))
	for _, s := range scores {
		out = append(out, s.Confidence)
	}
	return out
}

func referenceName(cat Catalogue, id string) string {
	if ref, ok := cat.Reference(id); ok {
		return ref.Name
	}
	return id
}

func joinOrDash(ids []string) string {
	if len(ids) == 0 {
		return "-"
	}
	return strings.Join(ids, ", ")
}

func safe(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "n/a"
	}
	return s
}

// cell keeps pipes and newlines from breaking a table row.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}
