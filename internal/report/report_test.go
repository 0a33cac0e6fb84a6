package report

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/joelkehle/assistant-desk/internal/priorart"
	"github.com/joelkehle/assistant-desk/internal/scoring"
)

func score550(t *testing.T) scoring.PatentScore {
	t.Helper()
	s, ok := scoring.NewEngine(priorart.Default()).Score("550")
	if !ok {
		t.Fatal("missing 550")
	}
	return s
}

func TestConfidenceLabel(t *testing.T) {
	for in, want := range map[int]string{100: "Very Strong", 90: "Very Strong", 89: "Strong", 80: "Strong", 70: "Moderate", 69: "Weak", 0: "Weak"} {
		if got := ConfidenceLabel(in); got != want {
			t.Fatalf("ConfidenceLabel(%d)=%s want=%s", in, got, want)
		}
	}
}

func TestPatentMarkdownSections(t *testing.T) {
	md := PatentMarkdown(score550(t), priorart.Default())
	for _, want := range []string{
		"# Invalidity Analysis: Patent 550",
		"**Overall confidence:** 98% (Very Strong)",
		"## Claim Summary",
		"| Claim 27 | ",
		"## Claim 27",
		"| `docking_connector` | Docking connector to mate with contactors |",
		"## Cited Prior Art",
		Disclaimer,
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("markdown missing %q:\n%s", want, md)
		}
	}
	if strings.Count(md, "\n## Claim ") != 9 { // 8 claim sections plus the summary
		t.Fatalf("expected 8 claim sections and a summary, got %d", strings.Count(md, "\n## Claim "))
	}
}

func TestPatentMarkdownUnknownPatent(t *testing.T) {
	md := PatentMarkdown(scoring.PatentScore{PatentID: "999"}, priorart.Default())
	if !strings.Contains(md, "No claims mapped") || !strings.Contains(md, "No prior art curated") {
		t.Fatalf("expected empty-state text:\n%s", md)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	all := scoring.NewEngine(priorart.Default()).ScoreAll()
	md := SummaryMarkdown(all)
	if !strings.Contains(md, "| 550 | 98% | Very Strong | 8 | 12 |") {
		t.Fatalf("missing 550 row:\n%s", md)
	}
	if strings.Index(md, "| 140 |") > strings.Index(md, "| 884 |") {
		t.Fatal("expected catalogue order")
	}
	if !strings.Contains(md, "**Portfolio mean:**") {
		t.Fatal("missing portfolio mean")
	}
}

func TestHTMLDocumentRendersTables(t *testing.T) {
	doc, err := HTMLDocument("Patent 550 <draft>", PatentMarkdown(score550(t), priorart.Default()))
	if err != nil {
		t.Fatalf("HTMLDocument: %v", err)
	}
	for _, want := range []string{
		"<title>Patent 550 &lt;draft&gt;</title>",
		"<table>",
		`<h2 data-claim-heading="true">Claim 27</h2>`,
		`<h2 data-page-break-before="true">Cited Prior Art</h2>`,
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("html missing %q", want)
		}
	}
}

func TestApplyPrintLayoutHooksNoopWhenHeadingMissing(t *testing.T) {
	in := "<h2>Claim Summary</h2><p>x</p>"
	if out := applyPrintLayoutHooks(in); out != in {
		t.Fatalf("expected no change, got: %s", out)
	}
}

func TestLayoutForPaper(t *testing.T) {
	for name, want := range map[string]PageLayout{"": A4, "A4": A4, " letter ": Letter} {
		got, ok := LayoutForPaper(name)
		if !ok || got != want {
			t.Fatalf("LayoutForPaper(%q)=%+v ok=%v", name, got, ok)
		}
	}
	if _, ok := LayoutForPaper("legal"); ok {
		t.Fatal("expected legal to be unknown")
	}
}

func TestPrintParamsCarryLayout(t *testing.T) {
	p := Letter.printParams()
	if p.PaperWidth != 8.5 || p.PaperHeight != 11 || p.MarginLeft != 0.5 || p.MarginBottom != 0.75 {
		t.Fatalf("unexpected paper: %+v", p)
	}
	if !p.DisplayHeaderFooter || !strings.Contains(p.FooterTemplate, `class="pageNumber"`) {
		t.Fatalf("expected page counter footer: %q", p.FooterTemplate)
	}
	r := NewChromiumPDFRenderer("/nonexistent/chrome")
	if r.layout != A4 || r.WithLayout(Letter).layout != Letter {
		t.Fatalf("unexpected renderer layout: %+v", r.layout)
	}
}

func TestChromiumPDFRenderer(t *testing.T) {
	if os.Getenv("CHROME_PDF_TEST") == "" {
		t.Skip("CHROME_PDF_TEST not set")
	}
	pdf, err := NewChromiumPDFRenderer(os.Getenv("CHROME_PATH")).Render(context.Background(), "Patent 550", PatentMarkdown(score550(t), priorart.Default()))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.HasPrefix(string(pdf), "%PDF") {
		t.Fatal("expected PDF header")
	}
}
