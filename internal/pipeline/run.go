// Package pipeline sequences one full comparison run: ensure datasets,
// resolve the actor pair, index credits, load ratings and movie titles, and
// build the comparison groups. Everything is synchronous; each stage either
// completes or aborts the run.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"costar/internal/config"
	"costar/internal/datasets"
	"costar/internal/imdb"
	"costar/internal/logging"
	"costar/internal/report"
)

// Result carries everything the command layer needs to render a report.
type Result struct {
	Comparison report.Comparison
	Paths      map[datasets.Dataset]string
	Elapsed    time.Duration
}

// Run executes the comparison pipeline for the two named actors.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger, actorA, actorB string) (*Result, error) {
	start := time.Now()
	logger = logging.NewComponentLogger(logger, "pipeline").
		With(logging.String(logging.FieldRunID, uuid.NewString()))

	manifest, err := datasets.OpenManifest(cfg.Paths.DataDir)
	if err != nil {
		// The manifest only feeds the status command; a broken one must not
		// block a comparison.
		logger.Warn("fetch manifest unavailable",
			logging.Error(err),
			logging.String(logging.FieldEventType, "manifest_open_failed"),
			logging.String(logging.FieldErrorHint, "delete manifest.db in the data directory to rebuild it"),
		)
		manifest = nil
	} else {
		defer manifest.Close()
	}

	provider := datasets.NewProvider(cfg, logger, manifest)

	finish := stageTimer(logger, "ensure-datasets")
	paths, err := provider.EnsureAll(ctx)
	if err != nil {
		return nil, err
	}
	finish(logging.Int("datasets", len(paths)))

	finish = stageTimer(logger, "resolve-actors")
	resolved, err := imdb.ResolveActors(paths[datasets.NameBasics], []string{actorA, actorB})
	if err != nil {
		return nil, err
	}
	identityA, identityB := resolved[actorA], resolved[actorB]
	finish(
		logging.String("actor_a", identityA.ID),
		logging.String("actor_b", identityB.ID),
	)

	finish = stageTimer(logger, "build-credits")
	credits, err := imdb.BuildCredits(paths[datasets.TitlePrincipals], []string{identityA.ID, identityB.ID})
	if err != nil {
		return nil, err
	}
	creditsA, creditsB := credits[identityA.ID], credits[identityB.ID]
	finish(
		logging.Int("credits_a", creditsA.Len()),
		logging.Int("credits_b", creditsB.Len()),
	)

	finish = stageTimer(logger, "load-titles")
	titles, err := imdb.LoadMovieTitles(paths[datasets.TitleBasics], imdb.Union(creditsA, creditsB))
	if err != nil {
		return nil, err
	}
	finish(logging.Int("movies", len(titles)))

	movieIDs := make(imdb.TitleSet, len(titles))
	for id := range titles {
		movieIDs.Add(id)
	}

	finish = stageTimer(logger, "load-ratings")
	ratings, err := imdb.LoadRatings(paths[datasets.TitleRatings], movieIDs)
	if err != nil {
		return nil, err
	}
	finish(logging.Int("ratings", len(ratings)))

	comparison := report.Build(identityA, identityB, creditsA, creditsB, titles, ratings)

	result := &Result{
		Comparison: comparison,
		Paths:      paths,
		Elapsed:    time.Since(start),
	}
	logger.Info("comparison complete",
		logging.Int("together", len(comparison.Together.Entries)),
		logging.Int("a_only", len(comparison.AOnly.Entries)),
		logging.Int("b_only", len(comparison.BOnly.Entries)),
		logging.Duration("elapsed", result.Elapsed),
	)
	return result, nil
}

func stageTimer(logger *slog.Logger, stage string) func(attrs ...logging.Attr) {
	started := time.Now()
	return func(attrs ...logging.Attr) {
		attrs = append(attrs,
			logging.String(logging.FieldStage, stage),
			logging.Duration("elapsed", time.Since(started)),
		)
		logger.Info("stage complete", logging.Args(attrs...)...)
	}
}
