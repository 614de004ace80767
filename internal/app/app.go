// Package app implements the application layer for resweep.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/resweep/internal/adapters/detector"
	"go.trai.ch/resweep/internal/adapters/linear"
	"go.trai.ch/resweep/internal/adapters/report"
	"go.trai.ch/resweep/internal/adapters/telemetry"
	"go.trai.ch/resweep/internal/adapters/tui"
	"go.trai.ch/resweep/internal/core/domain"
	"go.trai.ch/resweep/internal/core/ports"
	"go.trai.ch/resweep/internal/engine/analyzer"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Strategies holds one implementation per extraction and scanning strategy.
type Strategies struct {
	PatternExtractor    ports.IdentifierExtractor
	StructuralExtractor ports.IdentifierExtractor
	SubstringScanner    ports.ReferenceScanner
	QualifiedScanner    ports.ReferenceScanner
	StructuralScanner   ports.ReferenceScanner
}

// App represents the main application logic.
type App struct {
	store       ports.SettingsStore
	tree        ports.SourceTree
	logger      ports.Logger
	strategies  Strategies
	stdout      io.Writer
	stderr      io.Writer
	teaOptions  []tea.ProgramOption
	disableTick bool
}

// New creates a new App instance.
func New(store ports.SettingsStore, tree ports.SourceTree, log ports.Logger, strategies Strategies) *App {
	return &App{
		store:      store,
		tree:       tree,
		logger:     log,
		strategies: strategies,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}
}

// WithOutput redirects the report and the progress display.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithDisableTick disables the TUI spinner animation.
func (a *App) WithDisableTick() *App {
	a.disableTick = true
	return a
}

// ConfigureLogging switches the logger to JSON output when supported.
func (a *App) ConfigureLogging(json bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(json)
	}
}

// AnalyzeOptions configuration for the Analyze method.
type AnalyzeOptions struct {
	SettingsPath string
	Root         string
	Extraction   string
	Scanning     string
	Format       string
	OutputMode   string
	Save         bool
	UnusedOnly   bool
}

// Analyze loads the settings, runs the analysis and prints the report.
func (a *App) Analyze(ctx context.Context, opts AnalyzeOptions) error {
	settings, path, err := a.loadSettings(opts.SettingsPath)
	if err != nil {
		return err
	}

	if err := a.applyOverrides(settings, opts); err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	if opts.Save {
		if err := a.store.Save(path, settings); err != nil {
			return err
		}
		a.logger.Info(fmt.Sprintf("saved settings to %s", path))
	}

	if settings.SourceRoot == "" {
		_, _ = fmt.Fprintf(a.stderr, "No source root configured. Set sourceRoot in %s or pass --root.\n", path)
		return nil
	}

	formatter, err := report.New(opts.Format, report.WithUnusedOnly(opts.UnusedOnly))
	if err != nil {
		return err
	}

	cfg := analyzer.RunConfig{
		Settings:  settings,
		Extractor: a.extractor(settings),
		Scanner:   a.scanner(settings),
	}

	result, err := a.run(ctx, cfg, opts.OutputMode)
	if err != nil {
		return err
	}

	return formatter.Format(a.stdout, result)
}

// run drives one analysis with a progress renderer attached.
func (a *App) run(ctx context.Context, cfg analyzer.RunConfig, outputMode string) (*domain.AnalysisResult, error) {
	renderer := a.newRenderer(ctx, outputMode)

	provider := telemetry.NewProvider(renderer)
	defer func() {
		_ = provider.Shutdown(context.WithoutCancel(ctx))
	}()

	az := analyzer.New(a.tree, a.logger, telemetry.NewOTelTracer(provider))

	var result *domain.AnalysisResult
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := renderer.Start(gctx); err != nil {
			return err
		}
		return renderer.Wait()
	})

	g.Go(func() error {
		defer func() {
			_ = renderer.Stop()
		}()

		res, err := az.Run(gctx, cfg, renderer)
		if err != nil {
			return err
		}
		result = res
		return nil
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, domain.ErrCancelled) || ctx.Err() != nil {
			return nil, domain.ErrCancelled
		}
		return nil, err
	}
	return result, nil
}

func (a *App) newRenderer(ctx context.Context, outputMode string) ports.Renderer {
	mode := detector.ResolveMode(detector.DetectEnvironment(), outputMode)
	if mode != detector.ModeTUI {
		return linear.NewRenderer(a.stderr)
	}

	model := tui.NewModel(a.stderr)
	if a.disableTick {
		model = model.WithDisableTick()
	}
	opts := append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(a.stderr),
	}, a.teaOptions...)
	return tui.NewRenderer(&model, opts...)
}

func (a *App) extractor(s *domain.Settings) ports.IdentifierExtractor {
	if s.Extraction == domain.ExtractionStructural {
		return a.strategies.StructuralExtractor
	}
	return a.strategies.PatternExtractor
}

func (a *App) scanner(s *domain.Settings) ports.ReferenceScanner {
	switch {
	case s.Scanning == domain.ScanStructural:
		return a.strategies.StructuralScanner
	case s.ScanQualifiedNames:
		return a.strategies.QualifiedScanner
	default:
		return a.strategies.SubstringScanner
	}
}

// loadSettings returns the settings and the path they were loaded from.
// A missing or unreadable settings file falls back to resweep.yaml in the working
// directory, which is created with defaults when absent.
func (a *App) loadSettings(path string) (*domain.Settings, string, error) {
	if path != "" && path != domain.SettingsFileName {
		if !a.store.Exists(path) {
			a.logger.Warn(fmt.Sprintf("settings file %s not found, using %s", path, domain.SettingsFileName))
		} else {
			settings, err := a.store.Load(path)
			if err == nil {
				return settings, path, nil
			}
			a.logger.Warn(fmt.Sprintf("cannot use settings file %s, using %s: %v", path, domain.SettingsFileName, err))
		}
	}

	path = domain.SettingsFileName
	if !a.store.Exists(path) {
		if err := a.store.Save(path, domain.DefaultSettings()); err != nil {
			return nil, "", err
		}
		a.logger.Info(fmt.Sprintf("created %s with default settings", path))
	}

	settings, err := a.store.Load(path)
	if err != nil {
		return nil, "", err
	}
	return settings, path, nil
}

func (a *App) applyOverrides(s *domain.Settings, opts AnalyzeOptions) error {
	if opts.Root != "" {
		root, err := filepath.Abs(opts.Root)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to resolve source root"), "root", opts.Root)
		}
		s.SourceRoot = root
	}
	if opts.Extraction != "" {
		s.Extraction = domain.ExtractionStrategy(opts.Extraction)
	}
	if opts.Scanning != "" {
		s.Scanning = domain.ScanStrategy(opts.Scanning)
	}
	return nil
}

// Init writes a settings file with default values.
func (a *App) Init(path string, force bool) error {
	if path == "" {
		path = domain.SettingsFileName
	}
	if a.store.Exists(path) && !force {
		return zerr.With(domain.ErrSettingsExists, "path", path)
	}
	if err := a.store.Save(path, domain.DefaultSettings()); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("wrote default settings to %s", path))
	return nil
}
