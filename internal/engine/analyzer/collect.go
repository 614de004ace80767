package analyzer

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/resweep/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// collect extracts the declared resources of every artifact and populates the catalog.
// It returns every artifact found, excluded ones included, so the scan phase can skip
// them and their generated companions.
func (a *Analyzer) collect(ctx context.Context, s *runState) ([]string, []domain.ResourceKey, error) {
	ctx, span := a.tracer.Start(ctx, PhaseCollect)
	defer span.End()

	s.sink.OnStatus("Collecting resources...")

	all, err := a.tree.ListFiles(s.root, []string{domain.ResourceArtifactExt}, s.cfg.Settings.ExcludeFolders)
	if err != nil {
		span.RecordError(err)
		return nil, nil, err
	}

	active := make([]string, 0, len(all))
	for _, artifact := range all {
		if s.excluded(artifact) {
			a.logger.Info(fmt.Sprintf("excluding %s", s.relPath(artifact)))
			continue
		}
		active = append(active, artifact)
	}
	span.SetAttribute("artifacts", len(active))

	// Results are merged in artifact order after the barrier so duplicate
	// resolution does not depend on scheduling.
	results := make([][]domain.ResourceEntry, len(active))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.parallelism(s))
	for i, artifact := range active {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			source := s.cfg.Extractor.SourcePath(artifact)
			text, err := a.tree.ReadFile(source)
			if err != nil {
				a.fileError(s, source, err)
				return nil
			}

			entries, err := s.cfg.Extractor.Extract(gctx, text, artifact)
			if err != nil {
				return zerr.With(err, "artifact", s.relPath(artifact))
			}
			results[i] = entries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	var duplicates []domain.ResourceKey
	for i, entries := range results {
		dups := s.catalog.Populate(entries)
		for _, key := range dups {
			a.logger.Warn(fmt.Sprintf("duplicate resource %s in %s, keeping the last definition", key, s.relPath(active[i])))
		}
		duplicates = append(duplicates, dups...)
	}
	span.SetAttribute("resources", s.catalog.Len())

	return all, duplicates, nil
}

// fileError records an unreadable file and keeps going.
func (a *Analyzer) fileError(s *runState, path string, err error) {
	rel := s.relPath(path)
	s.recordFileError(rel, zerr.With(errors.Join(domain.ErrFileAccess, err), "path", rel))
	a.logger.Warn(fmt.Sprintf("skipping %s: %v", rel, err))
}
