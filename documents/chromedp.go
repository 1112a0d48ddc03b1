package documents

import (
	"context"
	"errors"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

const defaultChromeTimeout = 30 * time.Second

// ChromeConfig configures the headless-Chrome PDF renderer.
type ChromeConfig struct {
	// RemoteURL points at an already-running Chrome instance; when empty a
	// local browser is launched.
	RemoteURL string
	// Timeout bounds one render. Zero means defaultChromeTimeout.
	Timeout time.Duration
	// NoSandbox is required when running as root in a container.
	NoSandbox bool
	Logger    *zap.Logger
}

// ChromeRenderer renders HTML to A4 PDF through the Chrome DevTools
// protocol.
type ChromeRenderer struct {
	cfg         ChromeConfig
	log         *zap.Logger
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

func NewChromeRenderer(cfg ChromeConfig) *ChromeRenderer {
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultChromeTimeout
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	r := &ChromeRenderer{cfg: cfg, log: log}

	if cfg.RemoteURL != "" {
		r.allocCtx, r.allocCancel = chromedp.NewRemoteAllocator(context.Background(), cfg.RemoteURL)
		return r
	}
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("font-render-hinting", "none"),
	)
	if cfg.NoSandbox {
		opts = append(opts, chromedp.Flag("no-sandbox", true))
	}
	r.allocCtx, r.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)
	return r
}

// Close releases the browser allocator.
func (r *ChromeRenderer) Close() {
	if r.allocCancel != nil {
		r.allocCancel()
	}
}

func (r *ChromeRenderer) ContentType() string { return "application/pdf" }

// Render loads the HTML into a fresh tab and prints it to PDF.
func (r *ChromeRenderer) Render(ctx context.Context, html string) ([]byte, error) {
	browserCtx, browserCancel := chromedp.NewContext(r.allocCtx)
	defer browserCancel()

	runCtx, cancel := context.WithTimeout(browserCtx, r.cfg.Timeout)
	defer cancel()
	// caller cancellation tears the tab down early
	go func() {
		select {
		case <-ctx.Done():
			browserCancel()
		case <-runCtx.Done():
		}
	}()

	var pdf []byte
	err := chromedp.Run(runCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				// A4 in inches
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = data
			return nil
		}),
	)
	if err != nil {
		r.log.Error("pdf rendering failed", zap.Error(err))
		return nil, err
	}
	if len(pdf) == 0 {
		return nil, errors.New("generated PDF is empty")
	}
	return pdf, nil
}
