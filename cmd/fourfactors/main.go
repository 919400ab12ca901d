package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jakesingi/ncaamb-four-factors/internal/cache"
	"github.com/jakesingi/ncaamb-four-factors/internal/ingest/sportsref"
	"github.com/jakesingi/ncaamb-four-factors/internal/regress"
	"github.com/jakesingi/ncaamb-four-factors/internal/roster"
	"github.com/jakesingi/ncaamb-four-factors/internal/season"
)

const (
	appName    = "fourfactors"
	appVersion = "1.0.0"
)

// Named model specifications selectable via --models.
var modelSpecs = map[string][]regress.Predictor{
	"full": regress.AllPredictors,
	"efg":  {regress.EFGDiff},
	"to":   {regress.TODiff},
	"reb":  {regress.RebDiff},
	"ftr":  {regress.FTRDiff},
}

func main() {
	log.Printf("=== %s v%s ===", appName, appVersion)

	var (
		rosterFile = flag.String("roster", getEnv("ROSTER_FILE", "roster.yaml"), "YAML `file` mapping team labels to game IDs")
		baseURL    = flag.String("base-url", getEnv("SR_BASE_URL", ""), "sports-reference base URL override")
		redisURL   = flag.String("redis-url", getEnv("REDIS_URL", ""), "Redis URL for the raw-table cache (empty disables caching)")
		cacheTTL   = flag.Duration("cache-ttl", 7*24*time.Hour, "TTL for cached raw tables")
		render     = flag.Bool("render", false, "Use headless Chrome for bot-blocked responses")
		skipBad    = flag.Bool("skip-bad-games", false, "Skip games that fail retrieval or parsing instead of aborting")
		models     = flag.String("models", "full,efg,to,reb,ftr", "Comma-separated model specs to fit (full, efg, to, reb, ftr)")
	)

	flag.Parse()

	teams, err := roster.FromFile(*rosterFile)
	if err != nil {
		log.Fatalf("Failed to load roster: %v", err)
	}
	log.Printf("✓ Loaded roster: %d teams, %d distinct games", len(teams), teams.GameCount())

	client := sportsref.NewClient(*baseURL)

	if *render {
		renderer, err := sportsref.NewRenderer()
		if err != nil {
			log.Fatalf("Failed to start headless browser: %v", err)
		}
		defer renderer.Close()
		client.SetRenderer(renderer)
		log.Println("✓ Headless browser fallback enabled")
	}

	var tableCache *cache.TableCache
	if *redisURL != "" {
		tableCache, err = cache.NewTableCache(*redisURL, *cacheTTL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer tableCache.Close()
		log.Println("✓ Connected to Redis raw-table cache")
	} else {
		log.Println("Raw-table cache disabled (no Redis URL)")
	}

	policy := season.AbortOnGameError
	if *skipBad {
		policy = season.SkipBadGames
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	provider := sportsref.NewProvider(client, tableCache)
	pipeline := season.NewPipeline(provider, policy)

	summaries, err := pipeline.Run(ctx, teams)
	if err != nil {
		log.Fatalf("Pipeline failed: %v", err)
	}
	log.Printf("✓ Pipeline complete: %d teams", len(summaries))

	printFactorsTable(summaries)

	dataset := buildDataset(summaries)
	if len(dataset.Rows) < len(summaries) {
		log.Printf("⚠️  %d team(s) excluded from regression input", len(summaries)-len(dataset.Rows))
	}

	for _, name := range strings.Split(*models, ",") {
		name = strings.TrimSpace(name)
		predictors, ok := modelSpecs[name]
		if !ok {
			log.Fatalf("Unknown model spec %q (want full, efg, to, reb, or ftr)", name)
		}

		result, err := regress.Fit(dataset, predictors...)
		if err != nil {
			log.Printf("⚠️  Model %s failed: %v", name, err)
			continue
		}
		fmt.Println()
		fmt.Print(result.Summary())
	}
}

func printFactorsTable(summaries []season.TeamSummary) {
	fmt.Printf("\n%-16s %5s %5s %7s %7s %7s %7s %7s %7s %7s %7s\n",
		"team", "gp", "wins", "efg", "tpp", "orp", "ftr", "oefg", "dtpp", "drp", "oftr")
	for _, s := range summaries {
		if s.Factors == nil {
			fmt.Printf("%-16s %5d %5d  (factors undefined: %v)\n", s.Team, s.Totals.GamesPlayed, s.Wins, s.FactorsErr)
			continue
		}
		f := s.Factors
		fmt.Printf("%-16s %5d %5d %7.4f %7.4f %7.4f %7.4f %7.4f %7.4f %7.4f %7.4f\n",
			s.Team, s.Totals.GamesPlayed, s.Wins,
			f.EffectiveFGPct, f.TurnoverPct, f.OffReboundPct, f.FreeThrowRate,
			f.OppEffectiveFGPct, f.OppTurnoverPct, f.DefReboundPct, f.OppFreeThrowRate)
	}
}

// buildDataset turns summaries into regression rows of factor differentials,
// leaving out any team whose factors were undefined.
func buildDataset(summaries []season.TeamSummary) regress.Dataset {
	var ds regress.Dataset
	for _, s := range summaries {
		if s.Factors == nil {
			continue
		}
		f := s.Factors
		ds.Rows = append(ds.Rows, regress.Observation{
			Team:    s.Team,
			EFGDiff: f.EffectiveFGPct - f.OppEffectiveFGPct,
			TODiff:  f.TurnoverPct - f.OppTurnoverPct,
			RebDiff: f.OffReboundPct - f.DefReboundPct,
			FTRDiff: f.FreeThrowRate - f.OppFreeThrowRate,
			Wins:    float64(s.Wins),
		})
	}
	return ds
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
