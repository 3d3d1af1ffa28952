package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"semar-etiquetas/form"
	"semar-etiquetas/metrics"
	"semar-etiquetas/models"
)

const (
	// A4 in inches
	a4Width  = 8.27
	a4Height = 11.69

	// A4 at 96 DPI
	a4WidthPx  = 794
	a4HeightPx = 1123

	pdfTimeout = 30 * time.Second
	maxTimeout = 3 * time.Minute
)

// PrintService renders label sheets to PDF and PNG with headless Chrome
// Chrome loads the sheet from the service's own render endpoint
type PrintService struct {
	baseURL    string // e.g. "http://localhost:8080"
	chromePath string
	log        *zap.SugaredLogger
	metrics    *metrics.Recorder
}

// NewPrintService creates a new PrintService
func NewPrintService(baseURL, chromePath string, log *zap.SugaredLogger, rec *metrics.Recorder) *PrintService {
	return &PrintService{
		baseURL:    baseURL,
		chromePath: chromePath,
		log:        log,
		metrics:    rec,
	}
}

// Ensure PrintService implements PrinterInterface
var _ PrinterInterface = (*PrintService)(nil)

// detectChromePath returns the configured Chrome binary if it exists,
// otherwise the first common install path found, or "" to let chromedp look
func detectChromePath(configured string) string {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			return configured
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// renderURL is the sheet page for state
func (s *PrintService) renderURL(state form.State) string {
	return fmt.Sprintf("%s/labels/render?%s", s.baseURL, state.Query().Encode())
}

// newBrowser starts a headless Chrome bound to ctx
func (s *PrintService) newBrowser(ctx context.Context) (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // required in Docker/containers
	)
	if path := detectChromePath(s.chromePath); path != "" {
		opts = append(opts, chromedp.ExecPath(path))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	return browserCtx, func() {
		browserCancel()
		allocCancel()
	}
}

// viewport is the A4 page in pixels for the mode's orientation
func viewport(mode models.LabelMode) (int64, int64) {
	if mode == models.LabelModePlaca {
		return a4HeightPx, a4WidthPx
	}
	return a4WidthPx, a4HeightPx
}

// loadSheet navigates to the sheet and waits for fonts
func (s *PrintService) loadSheet(state form.State) chromedp.Tasks {
	w, h := viewport(state.Mode)
	var fontsReady bool
	return chromedp.Tasks{
		chromedp.EmulateViewport(w, h),
		chromedp.Navigate(s.renderURL(state)),
		chromedp.WaitReady("body"),
		chromedp.Evaluate(`document.fonts.ready.then(() => true)`, &fontsReady,
			func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
				return p.WithAwaitPromise(true)
			}),
	}
}

// GeneratePDF prints the sheet to an A4 PDF (landscape for placards)
func (s *PrintService) GeneratePDF(ctx context.Context, state form.State) (pdf []byte, err error) {
	started := time.Now()
	defer func() { s.metrics.ChromeRender("pdf", started, err) }()

	ctx, cancel := context.WithTimeout(ctx, pdfTimeout)
	defer cancel()

	browserCtx, closeBrowser := s.newBrowser(ctx)
	defer closeBrowser()

	landscape := state.Mode == models.LabelModePlaca
	err = chromedp.Run(browserCtx,
		s.loadSheet(state),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				WithLandscape(landscape).
				WithPaperWidth(a4Width).
				WithPaperHeight(a4Height).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		s.log.Errorf("❌ GeneratePDF: mode=%s: %v", state.Mode, err)
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	s.log.Infof("📄 GeneratePDF: mode=%s bytes=%d took=%s", state.Mode, len(pdf), time.Since(started))
	return pdf, nil
}

// pngTimeout grows with the number of labels, capped so requests stay bounded
func pngTimeout(count int) time.Duration {
	timeout := time.Duration(20+count*5) * time.Second
	if timeout > maxTimeout {
		timeout = maxTimeout
	}
	return timeout
}

// GeneratePNG screenshots each label card of the sheet
func (s *PrintService) GeneratePNG(ctx context.Context, state form.State, count int) (pngs map[int][]byte, err error) {
	started := time.Now()
	defer func() { s.metrics.ChromeRender("png", started, err) }()

	timeout := pngTimeout(count)
	s.log.Infof("📸 GeneratePNG: mode=%s expectedCards=%d timeout=%s", state.Mode, count, timeout)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	browserCtx, closeBrowser := s.newBrowser(ctx)
	defer closeBrowser()

	var cardCount int
	err = chromedp.Run(browserCtx,
		s.loadSheet(state),
		chromedp.Evaluate(`document.querySelectorAll('article.label-card').length`, &cardCount),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load label sheet: %w", err)
	}
	if cardCount == 0 {
		return nil, fmt.Errorf("no labels found in sheet")
	}
	if cardCount != count {
		s.log.Warnf("⚠️ GeneratePNG: sheet has %d cards, expected %d", cardCount, count)
	}

	pngs = make(map[int][]byte, cardCount)
	for i := 1; i <= cardCount; i++ {
		var buf []byte
		sel := fmt.Sprintf("article.label-card:nth-of-type(%d)", i)
		if err := chromedp.Run(browserCtx, chromedp.Screenshot(sel, &buf, chromedp.NodeVisible, chromedp.ByQuery)); err != nil {
			return nil, fmt.Errorf("failed to capture label %d: %w", i, err)
		}
		pngs[i] = buf
	}

	s.log.Infof("✓ GeneratePNG: mode=%s pages=%d took=%s", state.Mode, len(pngs), time.Since(started))
	return pngs, nil
}
