// Package analyzer runs the resource usage analysis: it builds the catalog from the
// resource artifacts, scans the code files in parallel and aggregates the references.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"github.com/gobwas/glob"
	"go.trai.ch/resweep/internal/core/domain"
	"go.trai.ch/resweep/internal/core/ports"
	"go.trai.ch/zerr"
)

// Phase names reported as spans.
const (
	PhaseCollect = "Collecting resources"
	PhaseScan    = "Scanning files"
)

// RunConfig selects what to analyze and with which strategies.
type RunConfig struct {
	Settings  *domain.Settings
	Extractor ports.IdentifierExtractor
	Scanner   ports.ReferenceScanner
}

// Analyzer orchestrates one analysis run over a source tree.
type Analyzer struct {
	tree   ports.SourceTree
	logger ports.Logger
	tracer ports.Tracer
}

// New creates a new Analyzer with the given dependencies.
func New(tree ports.SourceTree, logger ports.Logger, tracer ports.Tracer) *Analyzer {
	return &Analyzer{
		tree:   tree,
		logger: logger,
		tracer: tracer,
	}
}

// runState carries the per-run data shared by the phases.
type runState struct {
	cfg      RunConfig
	root     string
	sink     ports.ProgressSink
	catalog  *domain.Catalog
	excludes []glob.Glob

	mu         sync.Mutex
	fileErrors []domain.FileError
}

func (s *runState) recordFileError(path string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fileErrors = append(s.fileErrors, domain.FileError{Path: path, Err: err})
}

// Run executes the analysis. On cancellation it returns domain.ErrCancelled and no result;
// partially aggregated counts are discarded.
func (a *Analyzer) Run(ctx context.Context, cfg RunConfig, sink ports.ProgressSink) (*domain.AnalysisResult, error) {
	state, err := a.newRunState(cfg, sink)
	if err != nil {
		return nil, err
	}

	artifacts, duplicates, err := a.collect(ctx, state)
	if err != nil {
		return nil, cancelled(ctx, err)
	}

	scanned, err := a.scan(ctx, state, artifacts)
	if err != nil {
		return nil, cancelled(ctx, err)
	}

	slices.SortFunc(state.fileErrors, func(x, y domain.FileError) int {
		return strings.Compare(x.Path, y.Path)
	})

	return &domain.AnalysisResult{
		Root:         state.root,
		Entries:      state.catalog.Snapshot(),
		FilesScanned: scanned,
		FileErrors:   state.fileErrors,
		Duplicates:   duplicates,
	}, nil
}

func (a *Analyzer) newRunState(cfg RunConfig, sink ports.ProgressSink) (*runState, error) {
	if cfg.Settings == nil || cfg.Extractor == nil || cfg.Scanner == nil {
		return nil, zerr.Wrap(domain.ErrInvalidConfiguration, "incomplete run configuration")
	}
	if err := cfg.Settings.Validate(); err != nil {
		return nil, err
	}

	root := cfg.Settings.SourceRoot
	if root == "" {
		return nil, errors.Join(domain.ErrInvalidConfiguration, zerr.New("source root is not set"))
	}
	if !a.tree.IsDir(root) {
		return nil, errors.Join(domain.ErrInvalidConfiguration,
			zerr.With(zerr.New("source root is not a directory"), "root", root))
	}

	excludes := make([]glob.Glob, 0, len(cfg.Settings.ExcludeResourceArtifacts))
	for _, pattern := range cfg.Settings.ExcludeResourceArtifacts {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, errors.Join(domain.ErrInvalidConfiguration,
				zerr.With(zerr.Wrap(err, "invalid resource artifact pattern"), "pattern", pattern))
		}
		excludes = append(excludes, g)
	}

	if sink == nil {
		sink = nopSink{}
	}

	return &runState{
		cfg:      cfg,
		root:     filepath.Clean(root),
		sink:     sink,
		catalog:  domain.NewCatalog(),
		excludes: excludes,
	}, nil
}

func (a *Analyzer) parallelism(s *runState) int {
	if n := s.cfg.Settings.Parallelism; n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// relPath returns path relative to the source root with forward slashes.
func (s *runState) relPath(path string) string {
	rel, err := filepath.Rel(s.root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// excluded reports whether an artifact matches one of the exclusion globs, either by
// its file name or by its path relative to the root.
func (s *runState) excluded(artifact string) bool {
	name := filepath.Base(artifact)
	rel := s.relPath(artifact)
	for _, g := range s.excludes {
		if g.Match(name) || g.Match(rel) {
			return true
		}
	}
	return false
}

// cancelled maps any failure observed after the context ended to domain.ErrCancelled.
func cancelled(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return errors.Join(domain.ErrCancelled, ctxErr)
	}
	return err
}

type nopSink struct{}

func (nopSink) OnProgress(int, int) {}
func (nopSink) OnStatus(string)     {}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
