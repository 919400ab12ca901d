// Package sportsref retrieves NCAA men's basketball box scores from
// sports-reference.com and normalizes them into raw game tables.
package sportsref

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const (
	// BaseURL for sports-reference college basketball pages
	BaseURL = "https://www.sports-reference.com"

	// UserAgent for requests; the site rejects Go's default client fingerprint
	UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// MinRequestInterval keeps us under the site's rate limit
	MinRequestInterval = 3 * time.Second
)

// Client fetches box score pages with rate limiting. When a Renderer is
// attached, bot-blocked responses are retried through a headless browser.
type Client struct {
	baseURL    string
	httpClient *http.Client
	renderer   *Renderer

	lastRequest time.Time
	interval    time.Duration
}

// NewClient creates a client against the given base URL ("" for the default).
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		interval:   MinRequestInterval,
	}
}

// SetRenderer attaches a headless-browser fallback for blocked responses.
func (c *Client) SetRenderer(r *Renderer) {
	c.renderer = r
}

// FetchBoxScore returns the raw HTML of one game's box score page.
func (c *Client) FetchBoxScore(ctx context.Context, gameID string) (string, error) {
	url := fmt.Sprintf("%s/cbb/boxscores/%s.html", c.baseURL, gameID)
	return c.fetchWithRateLimit(ctx, url)
}

func (c *Client) fetchWithRateLimit(ctx context.Context, url string) (string, error) {
	if !c.lastRequest.IsZero() {
		elapsed := time.Since(c.lastRequest)
		if elapsed < c.interval {
			wait := c.interval - elapsed
			log.Printf("[sportsref] Rate limiting: waiting %v before next request", wait)
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
	}

	html, err := c.fetch(ctx, url)
	c.lastRequest = time.Now()

	return html, err
}

func (c *Client) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests {
		if c.renderer != nil {
			log.Printf("[sportsref] HTTP %d for %s, retrying with headless browser", resp.StatusCode, url)
			return c.renderer.FetchHTML(ctx, url)
		}
		return "", fmt.Errorf("blocked with HTTP %d fetching %s", resp.StatusCode, url)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected HTTP %d fetching %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", url, err)
	}

	return string(body), nil
}
