package report

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

const defaultPDFTimeout = 30 * time.Second

// pageCounterFooter is the Chromium footer template; the span classes are
// filled in by the print engine.
const pageCounterFooter = `<div style="width:100%;text-align:center;font-size:9px;color:#666;">` +
	`<span class="title"></span> &middot; page <span class="pageNumber"></span> of <span class="totalPages"></span></div>`

// PageLayout is a paper size and its margins, all in inches.
type PageLayout struct {
	Width, Height            float64
	Top, Bottom, Left, Right float64
}

var (
	// A4 leaves a deeper bottom margin for the page counter.
	A4     = PageLayout{Width: 8.27, Height: 11.69, Top: 0.5, Bottom: 0.75, Left: 0.45, Right: 0.45}
	Letter = PageLayout{Width: 8.5, Height: 11, Top: 0.5, Bottom: 0.75, Left: 0.5, Right: 0.5}
)

// LayoutForPaper maps a paper name to its layout. Empty means A4.
func LayoutForPaper(name string) (PageLayout, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "a4":
		return A4, true
	case "letter":
		return Letter, true
	default:
		return PageLayout{}, false
	}
}

func (l PageLayout) printParams() *page.PrintToPDFParams {
	return page.PrintToPDF().
		WithPrintBackground(true).
		WithDisplayHeaderFooter(true).
		WithHeaderTemplate(`<div></div>`).
		WithFooterTemplate(pageCounterFooter).
		WithPaperWidth(l.Width).
		WithPaperHeight(l.Height).
		WithMarginTop(l.Top).
		WithMarginBottom(l.Bottom).
		WithMarginLeft(l.Left).
		WithMarginRight(l.Right)
}

// ChromiumPDFRenderer prints report HTML to PDF through headless Chromium.
type ChromiumPDFRenderer struct {
	chromePath string
	timeout    time.Duration
	layout     PageLayout
}

// NewChromiumPDFRenderer prints on A4. It uses chromePath when set and
// otherwise looks in the usual install locations, falling back to chromedp's
// own lookup.
func NewChromiumPDFRenderer(chromePath string) *ChromiumPDFRenderer {
	if chromePath == "" {
		chromePath = detectChromePath()
	}
	return &ChromiumPDFRenderer{chromePath: chromePath, timeout: defaultPDFTimeout, layout: A4}
}

// WithLayout switches the paper size and margins.
func (r *ChromiumPDFRenderer) WithLayout(l PageLayout) *ChromiumPDFRenderer {
	r.layout = l
	return r
}

func (r *ChromiumPDFRenderer) Render(ctx context.Context, title, md string) ([]byte, error) {
	doc, err := HTMLDocument(title, md)
	if err != nil {
		return nil, err
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	opts := []chromedp.ExecAllocatorOption{
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("disable-dev-shm-usage", true),
	}
	if r.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(timeoutCtx, append(chromedp.DefaultExecAllocatorOptions[:], opts...)...)
	defer allocCancel()

	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	var pdf []byte
	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(doc))
	if err := chromedp.Run(taskCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			out, _, err := r.layout.printParams().Do(ctx)
			if err != nil {
				return err
			}
			pdf = out
			return nil
		}),
	); err != nil {
		return nil, fmt.Errorf("print pdf: %w", err)
	}
	return pdf, nil
}

func detectChromePath() string {
	candidates := []string{
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/usr/bin/google-chrome",
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
