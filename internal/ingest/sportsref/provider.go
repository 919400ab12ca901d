package sportsref

import (
	"context"
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jakesingi/ncaamb-four-factors/internal/boxscore"
	"github.com/jakesingi/ncaamb-four-factors/internal/cache"
	"github.com/jakesingi/ncaamb-four-factors/internal/season"
)

// Provider implements season.TableProvider on top of the sports-reference
// client, with an optional Redis cache in front of the network.
type Provider struct {
	client *Client
	cache  *cache.TableCache
}

// NewProvider wires a provider. tableCache may be nil to disable caching.
func NewProvider(client *Client, tableCache *cache.TableCache) *Provider {
	return &Provider{
		client: client,
		cache:  tableCache,
	}
}

// FetchGameTable returns the raw table for one game. Any HTML-layer failure
// comes back as a *season.RetrievalError carrying the game ID.
func (p *Provider) FetchGameTable(ctx context.Context, gameID string) (*boxscore.GameTable, error) {
	if p.cache != nil {
		if table, ok := p.cache.GetTable(ctx, gameID); ok {
			log.Printf("[sportsref] Cache hit for game %s", gameID)
			return table, nil
		}
	}

	html, err := p.client.FetchBoxScore(ctx, gameID)
	if err != nil {
		return nil, &season.RetrievalError{GameID: gameID, Err: err}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &season.RetrievalError{GameID: gameID, Err: err}
	}

	table, err := ParseBoxScorePage(doc, gameID)
	if err != nil {
		return nil, &season.RetrievalError{GameID: gameID, Err: err}
	}

	if p.cache != nil {
		p.cache.PutTable(ctx, table)
	}

	return table, nil
}
