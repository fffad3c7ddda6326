package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

const (
	// 500mm x 350mm landscape ticket (1mm = 0.03937 inches)
	ticketPaperWidth  = 19.69
	ticketPaperHeight = 13.78
	printTimeout      = 60 * time.Second
)

// ChromePrinter prints HTML documents to PDF with a headless Chrome/Chromium
type ChromePrinter struct {
	chromePath string
}

// NewChromePrinter creates a printer. An empty chromePath falls back to
// CHROME_PATH and the usual installation paths.
func NewChromePrinter(chromePath string) *ChromePrinter {
	if chromePath == "" {
		chromePath = detectChromePath()
	}
	return &ChromePrinter{chromePath: chromePath}
}

// Ensure ChromePrinter implements TicketPrinterInterface
var _ TicketPrinterInterface = (*ChromePrinter)(nil)

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
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// PrintPDF loads html into a blank page and prints it on the ticket paper size
func (p *ChromePrinter) PrintPDF(ctx context.Context, html string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, printTimeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if p.chromePath != "" {
		log.Printf("🌐 PrintPDF: Using Chrome at %s", p.chromePath)
		opts = append(opts, chromedp.ExecPath(p.chromePath))
	} else {
		log.Printf("⚠️  PrintPDF: Chrome not found, letting chromedp auto-detect")
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	var pdfBuf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(ticketPaperWidth).
				WithPaperHeight(ticketPaperHeight).
				WithMarginTop(0.4).
				WithMarginBottom(0.4).
				WithMarginLeft(0.4).
				WithMarginRight(0.4).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	log.Printf("✓ PrintPDF: Generated %d bytes", len(pdfBuf))
	return pdfBuf, nil
}
