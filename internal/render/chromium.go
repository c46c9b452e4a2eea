package render

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/abhisek/papersmith/internal/logging"
	"github.com/abhisek/papersmith/internal/paper"
)

// A4 in inches, as Chromium's print API expects.
const (
	a4WidthInches  = 8.27
	a4HeightInches = 11.69
)

// ChromiumEngine prints the HTML preview to PDF with a headless Chromium.
// The browser is started lazily and shared until Close.
type ChromiumEngine struct {
	BrowserPath string
	Timeout     time.Duration
	HTML        HTMLRenderer
	Log         *logging.Logger

	initOnce      sync.Once
	initErr       error
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc
}

// Export renders doc via Chromium. Page count is not reported.
func (e *ChromiumEngine) Export(ctx context.Context, doc paper.Document, layout Layout) (*File, error) {
	html, err := e.HTML.Render(doc, layout)
	if err != nil {
		return nil, exportErr(StageCompose, err)
	}

	if err := e.ensureBrowser(); err != nil {
		return nil, exportErr(StageRasterize, err)
	}

	tabCtx, cancelTab := chromedp.NewContext(e.browserCtx)
	defer cancelTab()

	// Propagate caller cancellation into the tab.
	stop := context.AfterFunc(ctx, cancelTab)
	defer stop()

	if e.Timeout > 0 {
		var cancel context.CancelFunc
		tabCtx, cancel = context.WithTimeout(tabCtx, e.Timeout)
		defer cancel()
	}

	var pdf []byte
	err = chromedp.Run(tabCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, string(html)).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(a4WidthInches).
				WithPaperHeight(a4HeightInches).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, exportErr(StageAssemble, err)
	}
	if len(pdf) == 0 {
		return nil, exportErr(StageAssemble, errors.New("chromium returned an empty document"))
	}

	logging.OrNop(e.Log).Debug("chromium export done", "bytes", len(pdf))
	return &File{
		Name:        FileName(doc.Title),
		ContentType: ContentTypePDF,
		Data:        pdf,
	}, nil
}

// Close shuts the shared browser down.
func (e *ChromiumEngine) Close() error {
	if e.browserCancel != nil {
		e.browserCancel()
	}
	if e.allocCancel != nil {
		e.allocCancel()
	}
	return nil
}

func (e *ChromiumEngine) ensureBrowser() error {
	e.initOnce.Do(func() {
		opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
		if e.BrowserPath != "" {
			opts = append(opts, chromedp.ExecPath(e.BrowserPath))
		}
		var allocCtx context.Context
		allocCtx, e.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)
		e.browserCtx, e.browserCancel = chromedp.NewContext(allocCtx)
		// Start the browser now so every tab shares it.
		if err := chromedp.Run(e.browserCtx); err != nil {
			e.initErr = fmt.Errorf("start chromium: %w", err)
			e.browserCancel()
			e.allocCancel()
		}
	})
	if e.initErr != nil {
		return e.initErr
	}
	if e.browserCtx == nil {
		return errors.New("chromium allocator unavailable")
	}
	return nil
}
