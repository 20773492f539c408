package export

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Options controls PDF pagination. The defaults match the editor's export:
// US-Letter portrait with no extra margin and backgrounds printed.
type Options struct {
	PaperWidthInches  float64
	PaperHeightInches float64
	MarginInches      float64
	Landscape         bool
	Timeout           time.Duration
}

// DefaultOptions returns the fixed page setup used by the editor.
func DefaultOptions() Options {
	return Options{
		PaperWidthInches:  8.5,
		PaperHeightInches: 11,
		MarginInches:      0,
		Landscape:         false,
		Timeout:           60 * time.Second,
	}
}

// PrintHTML rasterizes the given HTML document into a paginated PDF using a
// headless Chrome instance. Requires Chrome/Chromium to be installed on the
// system; rendering itself is entirely delegated to the browser.
func PrintHTML(ctx context.Context, html string, opts Options) ([]byte, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(html))

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := PrintParams(opts).Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("pdf export failed: %w", err)
	}

	return pdf, nil
}

// PrintParams assembles the Page.printToPDF parameters for the given options.
func PrintParams(opts Options) *page.PrintToPDFParams {
	return page.PrintToPDF().
		WithLandscape(opts.Landscape).
		WithPrintBackground(true).
		WithPaperWidth(opts.PaperWidthInches).
		WithPaperHeight(opts.PaperHeightInches).
		WithMarginTop(opts.MarginInches).
		WithMarginBottom(opts.MarginInches).
		WithMarginLeft(opts.MarginInches).
		WithMarginRight(opts.MarginInches)
}
