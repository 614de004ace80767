package analyzer_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/resweep/internal/adapters/csharp"
	"go.trai.ch/resweep/internal/adapters/fs"
	"go.trai.ch/resweep/internal/adapters/resx"
	"go.trai.ch/resweep/internal/adapters/telemetry"
	"go.trai.ch/resweep/internal/adapters/textscan"
	"go.trai.ch/resweep/internal/core/domain"
	"go.trai.ch/resweep/internal/core/ports"
	"go.trai.ch/resweep/internal/core/ports/mocks"
	"go.trai.ch/resweep/internal/engine/analyzer"
	"go.uber.org/mock/gomock"
)

const root = "/work/app"

const stringsResx = `<?xml version="1.0" encoding="utf-8"?>
<root>
  <data name="Greeting" xml:space="preserve">
    <value>Hello</value>
  </data>
  <data name="Farewell" xml:space="preserve">
    <value>Goodbye</value>
  </data>
</root>
`

const stringsDesigner = `namespace App.Properties {
    internal class Strings {
        internal static string Greeting {
            get { return ResourceManager.GetString("Greeting"); }
        }
        internal static string Farewell {
            get { return ResourceManager.GetString("Farewell"); }
        }
    }
}
`

func file(data string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(data), Mode: 0o644}
}

func abs(rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}

func quietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()
	return logger
}

func settings(mutate ...func(*domain.Settings)) *domain.Settings {
	s := domain.DefaultSettings()
	s.SourceRoot = root
	for _, m := range mutate {
		m(s)
	}
	s.ApplyDefaults()
	return s
}

func patternConfig(s *domain.Settings) analyzer.RunConfig {
	return analyzer.RunConfig{
		Settings:  s,
		Extractor: resx.New(),
		Scanner:   textscan.New(),
	}
}

func newAnalyzer(t *testing.T, tree ports.SourceTree) *analyzer.Analyzer {
	t.Helper()
	return analyzer.New(tree, quietLogger(t), telemetry.NewNoOpTracer())
}

func appTree() *fs.MapTree {
	return fs.NewMapTree(root, fstest.MapFS{
		"Properties/Strings.resx":        file(stringsResx),
		"Properties/Strings.Designer.cs": file(stringsDesigner),
		"src/App.cs":                     file("var a = Strings.Greeting;\n\nvar b = Strings.Greeting;\n"),
		"obj/Debug/App.g.cs":             file("Strings.Farewell"),
	})
}

type progressRecorder struct {
	mu       sync.Mutex
	calls    [][2]int
	statuses []string
}

func (p *progressRecorder) OnProgress(completed, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, [2]int{completed, total})
}

func (p *progressRecorder) OnStatus(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.statuses = append(p.statuses, text)
}

func TestRun_ReportsUnusedAndUsed(t *testing.T) {
	a := newAnalyzer(t, appTree())

	result, err := a.Run(context.Background(), patternConfig(settings()), nil)

	require.NoError(t, err)
	assert.Equal(t, root, result.Root)
	assert.Equal(t, 1, result.FilesScanned)
	assert.Empty(t, result.FileErrors)
	assert.Empty(t, result.Duplicates)

	require.Len(t, result.Unused(), 1)
	assert.Equal(t, domain.ResourceKey{ClassName: "Strings", Name: "Farewell"}, result.Unused()[0].Key)

	used := result.Used()
	require.Len(t, used, 1)
	assert.Equal(t, domain.ResourceKey{ClassName: "Strings", Name: "Greeting"}, used[0].Key)
	assert.Equal(t, []domain.ReferenceRecord{{FileName: "src/App.cs", Count: 2}}, used[0].References)
	assert.Equal(t, 2, used[0].Total())
}

func TestRun_IsIdempotent(t *testing.T) {
	a := newAnalyzer(t, appTree())
	cfg := patternConfig(settings())

	first, err := a.Run(context.Background(), cfg, nil)
	require.NoError(t, err)
	second, err := a.Run(context.Background(), cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, first.Entries, second.Entries)
	assert.Equal(t, first.Fingerprint(), second.Fingerprint())
}

func TestRun_CountsReferencesAcrossFiles(t *testing.T) {
	const files = 12
	const linesPerFile = 3

	fsys := fstest.MapFS{"Properties/Strings.resx": file(stringsResx)}
	for i := range files {
		body := ""
		for range linesPerFile {
			body += "Show(Strings.Greeting);\n"
		}
		fsys[fmt.Sprintf("src/File%02d.cs", i)] = file(body)
	}
	a := newAnalyzer(t, fs.NewMapTree(root, fsys))

	result, err := a.Run(context.Background(), patternConfig(settings(func(s *domain.Settings) {
		s.Parallelism = 4
	})), nil)

	require.NoError(t, err)
	assert.Equal(t, files, result.FilesScanned)
	used := result.Used()
	require.Len(t, used, 1)
	assert.Equal(t, files*linesPerFile, used[0].Total())
	require.Len(t, used[0].References, files)
	for i, ref := range used[0].References {
		assert.Equal(t, fmt.Sprintf("src/File%02d.cs", i), ref.FileName)
		assert.Equal(t, linesPerFile, ref.Count)
	}
}

func TestRun_ExcludesArtifactsByPattern(t *testing.T) {
	tree := fs.NewMapTree(root, fstest.MapFS{
		"Properties/Strings.resx":       file(stringsResx),
		"Properties/Legacy.resx":        file(`<data name="Old" xml:space="preserve"><value>x</value></data>`),
		"Properties/Legacy.Designer.cs": file("Greeting Farewell"),
		"Properties/Strings.fr.resx":    file(`<data name="Greeting"><value>Bonjour</value></data>`),
		"src/App.cs":                    file("Strings.Farewell\n"),
	})
	a := newAnalyzer(t, tree)

	result, err := a.Run(context.Background(), patternConfig(settings(func(s *domain.Settings) {
		s.ExcludeResourceArtifacts = []string{"Legacy.resx", "Properties/*.fr.resx"}
	})), nil)

	require.NoError(t, err)
	keys := make([]string, 0, len(result.Entries))
	for _, e := range result.Entries {
		keys = append(keys, e.Key.String())
	}
	assert.Equal(t, []string{"Strings.Greeting", "Strings.Farewell"}, keys)
	assert.Equal(t, 1, result.FilesScanned, "excluded artifacts and their companions are not scanned")
}

func TestRun_InvalidConfiguration(t *testing.T) {
	tree := appTree()

	tests := []struct {
		name string
		cfg  analyzer.RunConfig
	}{
		{
			name: "missing extractor",
			cfg:  analyzer.RunConfig{Settings: settings(), Scanner: textscan.New()},
		},
		{
			name: "invalid glob",
			cfg: patternConfig(settings(func(s *domain.Settings) {
				s.ExcludeResourceArtifacts = []string{"[unclosed"}
			})),
		},
		{
			name: "empty root",
			cfg: patternConfig(settings(func(s *domain.Settings) {
				s.SourceRoot = ""
			})),
		},
		{
			name: "missing root",
			cfg: patternConfig(settings(func(s *domain.Settings) {
				s.SourceRoot = abs("does/not/exist")
			})),
		},
		{
			name: "root is a file",
			cfg: patternConfig(settings(func(s *domain.Settings) {
				s.SourceRoot = abs("src/App.cs")
			})),
		},
		{
			name: "unknown strategy",
			cfg: patternConfig(settings(func(s *domain.Settings) {
				s.Scanning = "regex"
			})),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newAnalyzer(t, tree)

			result, err := a.Run(context.Background(), tt.cfg, nil)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
			assert.Nil(t, result)
		})
	}
}

func TestRun_StructuralExtractionRecordsMissingCompanion(t *testing.T) {
	tree := fs.NewMapTree(root, fstest.MapFS{
		"Properties/Strings.resx":        file(stringsResx),
		"Properties/Strings.Designer.cs": file(stringsDesigner),
		"Properties/Orphan.resx":         file(stringsResx),
		"src/App.cs":                     file("Label(Strings.Farewell);\n"),
	})
	a := newAnalyzer(t, tree)

	result, err := a.Run(context.Background(), analyzer.RunConfig{
		Settings:  settings(func(s *domain.Settings) { s.Extraction = domain.ExtractionStructural }),
		Extractor: csharp.NewExtractor(),
		Scanner:   textscan.New(textscan.WithQualifiedNames(true)),
	}, nil)

	require.NoError(t, err)
	require.Len(t, result.FileErrors, 1)
	assert.Equal(t, "Properties/Orphan.Designer.cs", result.FileErrors[0].Path)
	assert.ErrorIs(t, result.FileErrors[0].Err, domain.ErrFileAccess)

	require.Len(t, result.Unused(), 1)
	assert.Equal(t, "Strings.Greeting", result.Unused()[0].Key.String())
	require.Len(t, result.Used(), 1)
	assert.Equal(t, "Strings.Farewell", result.Used()[0].Key.String())
}

func TestRun_MalformedArtifactAborts(t *testing.T) {
	tree := fs.NewMapTree(root, fstest.MapFS{
		"Properties/Strings.resx":        file(stringsResx),
		"Properties/Strings.Designer.cs": file("class A {}\nclass B {}\n"),
		"src/App.cs":                     file("Strings.Greeting\n"),
	})
	a := newAnalyzer(t, tree)

	result, err := a.Run(context.Background(), analyzer.RunConfig{
		Settings:  settings(func(s *domain.Settings) { s.Extraction = domain.ExtractionStructural }),
		Extractor: csharp.NewExtractor(),
		Scanner:   textscan.New(),
	}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedArtifact)
	assert.Nil(t, result)
}

func TestRun_DuplicatesKeepLastDefinition(t *testing.T) {
	tree := fs.NewMapTree(root, fstest.MapFS{
		"a/Strings.resx": file(`<data name="Greeting"><value>a</value></data>`),
		"b/Strings.resx": file(`<data name="Greeting"><value>b</value></data>`),
		"src/App.cs":     file("Greeting\n"),
	})
	a := newAnalyzer(t, tree)

	result, err := a.Run(context.Background(), patternConfig(settings()), nil)

	require.NoError(t, err)
	assert.Equal(t, []domain.ResourceKey{{ClassName: "Strings", Name: "Greeting"}}, result.Duplicates)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, abs("b/Strings.resx"), result.Entries[0].Origin)
	assert.Equal(t, 1, result.Entries[0].Total())
}

type unreadableTree struct {
	*fs.MapTree
	path string
}

func (u unreadableTree) ReadFile(path string) ([]byte, error) {
	if path == u.path {
		return nil, errors.New("permission denied")
	}
	return u.MapTree.ReadFile(path)
}

func TestRun_UnreadableCodeFileDoesNotAbort(t *testing.T) {
	tree := unreadableTree{
		MapTree: fs.NewMapTree(root, fstest.MapFS{
			"Properties/Strings.resx": file(stringsResx),
			"src/App.cs":              file("Strings.Greeting\n"),
			"src/Locked.cs":           file("Strings.Farewell\n"),
		}),
		path: abs("src/Locked.cs"),
	}
	a := newAnalyzer(t, tree)

	result, err := a.Run(context.Background(), patternConfig(settings()), nil)

	require.NoError(t, err)
	require.Len(t, result.FileErrors, 1)
	assert.Equal(t, "src/Locked.cs", result.FileErrors[0].Path)
	assert.ErrorIs(t, result.FileErrors[0].Err, domain.ErrFileAccess)
	assert.ErrorContains(t, result.FileErrors[0].Err, "permission denied")
	require.Len(t, result.Unused(), 1)
	assert.Equal(t, "Strings.Farewell", result.Unused()[0].Key.String())
}

func TestRun_SkipsReadOnlyFiles(t *testing.T) {
	tree := fs.NewMapTree(root, fstest.MapFS{
		"Properties/Strings.resx": file(stringsResx),
		"src/App.cs":              file("Strings.Greeting\n"),
		"src/Vendor.cs":           {Data: []byte("Strings.Farewell\n"), Mode: 0o444},
	})
	a := newAnalyzer(t, tree)

	result, err := a.Run(context.Background(), patternConfig(settings(func(s *domain.Settings) {
		s.ExcludeReadOnly = true
	})), nil)

	require.NoError(t, err)
	assert.Equal(t, 1, result.FilesScanned)
	require.Len(t, result.Unused(), 1)
	assert.Equal(t, "Strings.Farewell", result.Unused()[0].Key.String())
}

func TestRun_ReportsProgress(t *testing.T) {
	fsys := fstest.MapFS{"Properties/Strings.resx": file(stringsResx)}
	for i := range 5 {
		fsys[fmt.Sprintf("src/F%d.cs", i)] = file("Greeting\n")
	}
	a := newAnalyzer(t, fs.NewMapTree(root, fsys))
	sink := &progressRecorder{}

	_, err := a.Run(context.Background(), patternConfig(settings()), sink)

	require.NoError(t, err)
	require.NotEmpty(t, sink.calls)
	assert.Equal(t, [2]int{0, 5}, sink.calls[0])
	assert.Equal(t, [2]int{5, 5}, sink.calls[len(sink.calls)-1])
	for i := 1; i < len(sink.calls); i++ {
		assert.LessOrEqual(t, sink.calls[i][0], sink.calls[i][1])
	}
	assert.Equal(t, []string{"Collecting resources...", "Scanning files...", "Analysed 5 files"}, sink.statuses)
}

// cancellingScanner cancels the run once it has scanned a file.
type cancellingScanner struct {
	ports.ReferenceScanner
	cancel context.CancelFunc
	once   sync.Once
}

func (c *cancellingScanner) Scan(ctx context.Context, text []byte, known []domain.ResourceKey) (domain.UsageSet, error) {
	usages, err := c.ReferenceScanner.Scan(ctx, text, known)
	c.once.Do(c.cancel)
	return usages, err
}

func TestRun_Cancelled(t *testing.T) {
	fsys := fstest.MapFS{"Properties/Strings.resx": file(stringsResx)}
	for i := range 10 {
		fsys[fmt.Sprintf("src/F%d.cs", i)] = file("Greeting\n")
	}
	a := newAnalyzer(t, fs.NewMapTree(root, fsys))
	sink := &progressRecorder{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := patternConfig(settings(func(s *domain.Settings) { s.Parallelism = 1 }))
	cfg.Scanner = &cancellingScanner{ReferenceScanner: textscan.New(), cancel: cancel}

	result, err := a.Run(ctx, cfg, sink)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCancelled)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
	last := sink.calls[len(sink.calls)-1]
	assert.Less(t, last[0], 10)
	assert.NotContains(t, sink.statuses, "Analysed 10 files")
}

func TestRun_AlreadyCancelled(t *testing.T) {
	a := newAnalyzer(t, appTree())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := a.Run(ctx, patternConfig(settings()), nil)

	assert.ErrorIs(t, err, domain.ErrCancelled)
	assert.Nil(t, result)
}

func TestRun_EmitsPhaseSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tracer := telemetry.NewOTelTracer(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
	a := analyzer.New(appTree(), quietLogger(t), tracer)

	_, err := a.Run(context.Background(), patternConfig(settings()), nil)

	require.NoError(t, err)
	ended := recorder.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, analyzer.PhaseCollect, ended[0].Name())
	assert.Equal(t, analyzer.PhaseScan, ended[1].Name())
}
