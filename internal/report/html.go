package report

import (
	"bytes"
	"fmt"
	"html"
	"regexp"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

const reportCSS = "body{font-family:-apple-system,'Segoe UI',Helvetica,Arial,sans-serif;color:#1c1917;background:#fff;margin:0;padding:0.6rem;} " +
	"html,body,*{-webkit-print-color-adjust:exact !important;print-color-adjust:exact !important;} " +
	".report-wrap{max-width:1000px;margin:0 auto;border-left:3px solid #00a3e1;border-right:3px solid #00a3e1;padding:0 0.65rem;} " +
	".report-html h1{font-size:1.5rem;} .report-html h2{font-size:1.15rem;margin-top:1.4rem;} " +
	".report-html h2[data-claim-heading='true']{border-bottom:1px solid #d6d3d1;padding-bottom:0.2rem;} " +
	".report-html table{width:100%;border-collapse:collapse;border:1px solid #a8a29e;font-size:0.8rem;} " +
	".report-html th,.report-html td{border:1px solid #a8a29e;padding:0.35rem 0.45rem;text-align:left;vertical-align:top;} " +
	".report-html thead th{background:#f1f5f9;font-weight:700;} " +
	".report-html code{font-size:0.75rem;} " +
	`h2[data-page-break-before="true"]{break-before:page;page-break-before:always;} ` +
	"@media print{ @page{size:auto;margin:12mm;} body{padding:0;} .report-wrap{max-width:none;} }"

// HTMLFragment converts report Markdown to an HTML fragment with print hooks
// applied.
func HTMLFragment(md string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	return applyPrintLayoutHooks(buf.String()), nil
}

// HTMLDocument wraps the rendered Markdown in a standalone, styled page.
func HTMLDocument(title, md string) (string, error) {
	content, err := HTMLFragment(md)
	if err != nil {
		return "", err
	}
	return "<!doctype html><html><head><meta charset='utf-8'><title>" + html.EscapeString(title) + "</title>" +
		"<style>" + reportCSS + "</style></head><body>" +
		"<div class='report-wrap'><div class='report-html'>" + content + "</div></div>" +
		"</body></html>", nil
}

var (
	reCitedPriorArt = regexp.MustCompile(`(?i)<h2([^>]*)>\s*Cited Prior Art\s*</h2>`)
	reClaimHeading  = regexp.MustCompile(`(?i)<h2([^>]*)>\s*(Claim\s+[0-9]+[^<]*)\s*</h2>`)
)

func applyPrintLayoutHooks(contentHTML string) string {
	out := reCitedPriorArt.ReplaceAllString(contentHTML, `<h2$1 data-page-break-before="true">Cited Prior Art</h2>`)
	return reClaimHeading.ReplaceAllString(out, `<h2$1 data-claim-heading="true">$2</h2>`)
}
