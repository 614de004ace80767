package analyzer

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"go.trai.ch/resweep/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

// scan reads every candidate code file and records its references in the catalog.
// It returns the number of files processed.
func (a *Analyzer) scan(ctx context.Context, s *runState, artifacts []string) (int, error) {
	ctx, span := a.tracer.Start(ctx, PhaseScan)
	defer span.End()

	s.sink.OnStatus("Scanning files...")

	files, err := a.candidates(s, artifacts)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	total := len(files)
	span.SetAttribute("files", total)
	s.sink.OnProgress(0, total)

	known := s.catalog.Keys()
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.parallelism(s))
	for _, file := range files {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := a.scanFile(gctx, s, file, known); err != nil {
				return err
			}
			s.sink.OnProgress(int(completed.Add(1)), total)
			return nil
		})
	}
	err = g.Wait()

	done := int(completed.Load())
	s.sink.OnProgress(done, total)

	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		span.RecordError(err)
		return done, err
	}

	s.sink.OnStatus(fmt.Sprintf("Analysed %s", plural(done, "file")))
	return done, nil
}

func (a *Analyzer) scanFile(ctx context.Context, s *runState, file string, known []domain.ResourceKey) error {
	text, err := a.tree.ReadFile(file)
	if err != nil {
		a.fileError(s, file, err)
		return nil
	}

	usages, err := s.cfg.Scanner.Scan(ctx, text, known)
	if err != nil {
		return err
	}

	rel := s.relPath(file)
	for key, n := range usages {
		s.catalog.RecordUsage(rel, key, n)
	}
	return nil
}

// candidates lists the code files, dropping resource artifacts and their generated
// companions so a resource is never counted as used by its own accessor.
func (a *Analyzer) candidates(s *runState, artifacts []string) ([]string, error) {
	settings := s.cfg.Settings

	files, err := a.tree.ListFiles(s.root, settings.FileExtensions, settings.ExcludeFolders)
	if err != nil {
		return nil, err
	}

	skip := make(map[string]bool, 2*len(artifacts))
	for _, artifact := range artifacts {
		skip[strings.ToLower(artifact)] = true
		skip[strings.ToLower(domain.CompanionPath(artifact))] = true
	}

	out := files[:0]
	for _, f := range files {
		if skip[strings.ToLower(f)] || domain.IsResourceArtifact(f) {
			continue
		}
		if settings.ExcludeReadOnly && a.tree.IsReadOnly(f) {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}
