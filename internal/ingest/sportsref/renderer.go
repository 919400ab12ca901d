package sportsref

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// Renderer fetches pages through headless Chrome for responses the plain HTTP
// client cannot get past.
type Renderer struct {
	allocCtx context.Context
	cancel   context.CancelFunc
}

// NewRenderer starts a headless Chrome allocator.
func NewRenderer() (*Renderer, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(UserAgent),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)

	return &Renderer{
		allocCtx: allocCtx,
		cancel:   cancel,
	}, nil
}

// Close releases the browser.
func (r *Renderer) Close() {
	if r.cancel != nil {
		r.cancel()
	}
}

// FetchHTML navigates to the URL and returns the rendered document.
func (r *Renderer) FetchHTML(ctx context.Context, url string) (string, error) {
	browserCtx, cancel := chromedp.NewContext(r.allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, 30*time.Second)
	defer cancel()

	var htmlContent string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitVisible(`body`, chromedp.ByQuery),
		chromedp.OuterHTML(`html`, &htmlContent, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("chromedp error: %w", err)
	}

	if htmlContent == "" {
		return "", fmt.Errorf("empty page rendered for %s", url)
	}

	return htmlContent, nil
}
