package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joelkehle/assistant-desk/internal/priorart"
	"github.com/joelkehle/assistant-desk/internal/report"
	"github.com/joelkehle/assistant-desk/internal/scoring"
)

func main() {
	patentID := flag.String("patent", "", "Patent id to score (defaults to every patent in the catalogue)")
	format := flag.String("format", "", "Write a report instead of JSON: md, html or pdf")
	outputPath := flag.String("output", "", "Path to write output (defaults to stdout; required for pdf)")
	chromePath := flag.String("chrome", os.Getenv("CHROME_PATH"), "Chromium binary used for pdf output")
	paper := flag.String("paper", "a4", "Paper size for pdf output: a4 or letter")
	flag.Parse()

	cat := priorart.Default()
	for _, issue := range cat.Validate() {
		log.Printf("warning: catalogue issue: %s", issue)
	}
	engine := scoring.NewEngine(cat)

	var scores []scoring.PatentScore
	if *patentID != "" {
		s, ok := engine.Score(*patentID)
		if !ok {
			log.Fatalf("patent %s is not in the catalogue", *patentID)
		}
		scores = []scoring.PatentScore{s}
	} else {
		scores = engine.ScoreAll()
	}

	f := strings.ToLower(strings.TrimSpace(*format))
	if f == "" {
		if err := writeJSON(*outputPath, scores, *patentID != ""); err != nil {
			log.Fatalf("write json: %v", err)
		}
		return
	}

	title, md := "Portfolio Invalidity Summary", report.SummaryMarkdown(scores)
	if *patentID != "" {
		title, md = "Patent "+*patentID+" Invalidity Analysis", report.PatentMarkdown(scores[0], cat)
	}

	var out []byte
	switch f {
	case "md", "markdown":
		out = []byte(md)
	case "html":
		doc, err := report.HTMLDocument(title, md)
		if err != nil {
			log.Fatalf("render html: %v", err)
		}
		out = []byte(doc)
	case "pdf":
		if *outputPath == "" {
			log.Fatal("-output is required for pdf")
		}
		layout, ok := report.LayoutForPaper(*paper)
		if !ok {
			log.Fatalf("unknown -paper %q (want a4 or letter)", *paper)
		}
		pdf, err := report.NewChromiumPDFRenderer(*chromePath).WithLayout(layout).Render(context.Background(), title, md)
		if err != nil {
			log.Fatalf("render pdf: %v", err)
		}
		out = pdf
	default:
		log.Fatalf("unknown -format %q (want md, html or pdf)", *format)
	}
	if err := writeOutput(*outputPath, out); err != nil {
		log.Fatalf("write output: %v", err)
	}
}

func writeJSON(path string, scores []scoring.PatentScore, single bool) error {
	var payload any = scores
	if single {
		payload = scores[0]
	}
	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	return writeOutput(path, append(b, '\n'))
}

func writeOutput(path string, b []byte) error {
	if path == "" {
		_, err := fmt.Print(string(b))
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
