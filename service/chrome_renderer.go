package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"github.com/sirupsen/logrus"

	"tesouraria-ibs/config"
)

const (
	// 210mm = 794px at 96 DPI, 297mm = 1123px
	a4WidthPx  = 794
	a4HeightPx = 1123
	// A4 in inches for PrintToPDF
	a4WidthIn  = 8.27
	a4HeightIn = 11.69
)

// ChromeConfig configures the headless browser used for export
type ChromeConfig struct {
	ExecPath   string
	NoSandbox  bool
	Timeout    time.Duration
	PixelRatio float64
}

// ChromeRenderer rasterizes .pdf-page containers and assembles the images into a PDF
type ChromeRenderer struct {
	config ChromeConfig
	log    *logrus.Logger
}

// NewChromeRenderer creates a ChromeRenderer. A missing exec path is detected.
func NewChromeRenderer(cfg ChromeConfig) *ChromeRenderer {
	if cfg.ExecPath == "" {
		cfg.ExecPath = detectChromePath()
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.PixelRatio <= 0 {
		cfg.PixelRatio = 1.5
	}
	return &ChromeRenderer{config: cfg, log: config.GetLogger()}
}

// Ensure ChromeRenderer implements the export collaborators
var (
	_ RasterizerInterface   = (*ChromeRenderer)(nil)
	_ PDFAssemblerInterface = (*ChromeRenderer)(nil)
)

// detectChromePath detects the path to Chrome/Chromium executable
// Checks CHROME_PATH env var first, then common installation paths
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
		"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
		`C:\Program Files\Google\Chrome\Application\chrome.exe`,
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// newBrowser starts a headless browser bound to ctx
func (r *ChromeRenderer) newBrowser(ctx context.Context) (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("font-render-hinting", "none"),
	)
	if r.config.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(r.config.ExecPath))
	}
	if r.config.NoSandbox {
		opts = append(opts, chromedp.NoSandbox)
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(func(format string, args ...interface{}) {
			r.log.Debugf(format, args...)
		}),
	)
	return browserCtx, func() {
		browserCancel()
		allocCancel()
	}
}

// setContent loads html into the current tab without a server round trip
func setContent(html string) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		frameTree, err := page.GetFrameTree().Do(ctx)
		if err != nil {
			return err
		}
		return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
	})
}

const waitForFonts = `document.fonts ? document.fonts.ready.then(() => true) : true`

// hideExcluded removes interactive affordances from the captured pages
const hideExcluded = `(function() {
	const style = document.createElement('style');
	style.textContent = '.pdf-exclude { display: none !important; } body { background: #fff !important; } .pdf-page { margin: 0 !important; box-shadow: none !important; }';
	document.head.appendChild(style);
	return document.querySelectorAll('.pdf-page').length;
})()`

// RasterizePages captures every .pdf-page container as a PNG, in data-page-index order
func (r *ChromeRenderer) RasterizePages(ctx context.Context, html string) ([][]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	browserCtx, closeBrowser := r.newBrowser(ctx)
	defer closeBrowser()

	var pageCount float64
	var fontsReady bool
	err := chromedp.Run(browserCtx,
		chromedp.EmulateViewport(a4WidthPx, a4HeightPx, chromedp.EmulateScale(r.config.PixelRatio)),
		chromedp.Navigate("about:blank"),
		setContent(html),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Evaluate(waitForFonts, &fontsReady, func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
			return p.WithAwaitPromise(true)
		}),
		chromedp.Evaluate(hideExcluded, &pageCount),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	if pageCount < 1 {
		return nil, ErrNoPages
	}

	total := int(pageCount)
	r.log.WithField("pages", total).Debug("📸 RasterizePages: capturing pages")

	images := make([][]byte, 0, total)
	for i := 1; i <= total; i++ {
		var buf []byte
		sel := fmt.Sprintf(`.pdf-page[data-page-index="%d"]`, i)
		if err := chromedp.Run(browserCtx,
			chromedp.ScrollIntoView(sel, chromedp.ByQuery),
			chromedp.Screenshot(sel, &buf, chromedp.ByQuery),
		); err != nil {
			return nil, fmt.Errorf("failed to capture page %d/%d: %w", i, total, err)
		}
		if len(buf) == 0 {
			return nil, fmt.Errorf("failed to capture page %d/%d: empty image", i, total)
		}
		images = append(images, buf)
	}
	return images, nil
}

var assemblyTemplate = template.Must(template.New("assembly").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  @page { size: 210mm 297mm; margin: 0; }
  html, body { margin: 0; padding: 0; }
  .sheet { width: 210mm; height: 297mm; overflow: hidden; page-break-after: always; }
  .sheet:last-child { page-break-after: auto; }
  .sheet img { display: block; width: 210mm; height: auto; }
</style>
</head>
<body>
{{range .}}<div class="sheet"><img src="{{.}}"></div>
{{end}}</body>
</html>`))

// AssemblePDF places one image per A4 portrait page, scaled to the page width
func (r *ChromeRenderer) AssemblePDF(ctx context.Context, images [][]byte) ([]byte, error) {
	if len(images) == 0 {
		return nil, ErrNoPages
	}

	sources := make([]template.URL, len(images))
	for i, img := range images {
		sources[i] = template.URL("data:" + imageMIME(img) + ";base64," + base64.StdEncoding.EncodeToString(img))
	}

	var html bytes.Buffer
	if err := assemblyTemplate.Execute(&html, sources); err != nil {
		return nil, fmt.Errorf("failed to build assembly page: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	browserCtx, closeBrowser := r.newBrowser(ctx)
	defer closeBrowser()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		setContent(html.String()),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				WithPaperWidth(a4WidthIn).
				WithPaperHeight(a4HeightIn).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("PDF assembly timed out after %v: %w", r.config.Timeout, err)
		}
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return pdf, nil
}

// imageMIME sniffs PNG and JPEG headers
func imageMIME(data []byte) string {
	if bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}) {
		return "image/jpeg"
	}
	return "image/png"
}
