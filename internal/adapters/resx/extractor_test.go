package resx_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/resweep/internal/adapters/resx"
	"go.trai.ch/resweep/internal/core/domain"
)

func keys(entries []domain.ResourceEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Key.String())
	}
	return out
}

func TestExtractor_Extract(t *testing.T) {
	text, err := os.ReadFile("testdata/Strings.resx")
	require.NoError(t, err)

	entries, err := resx.New().Extract(context.Background(), text, "/src/Properties/Strings.resx")

	require.NoError(t, err)
	assert.Equal(t, []string{"Strings.Greeting", "Strings.Farewell", "Strings.Spaced", "Strings.Icon"}, keys(entries))
	for _, e := range entries {
		assert.Equal(t, "/src/Properties/Strings.resx", e.Origin)
		assert.Empty(t, e.References)
	}
}

func TestExtractor_ClassNameFromCultureArtifact(t *testing.T) {
	text := []byte(`<root><data name="Greeting"><value>Bonjour</value></data></root>`)

	entries, err := resx.New().Extract(context.Background(), text, "Strings.fr-FR.resx")

	require.NoError(t, err)
	assert.Equal(t, []string{"Strings.Greeting"}, keys(entries))
}

func TestExtractor_NoMatchesIsEmpty(t *testing.T) {
	entries, err := resx.New().Extract(context.Background(), []byte("<root></root>"), "Empty.resx")

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExtractor_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := resx.New().Extract(ctx, []byte(`<data name="A"></data>`), "A.resx")

	require.ErrorIs(t, err, context.Canceled)
}

func TestExtractor_SourcePath(t *testing.T) {
	assert.Equal(t, "a/Strings.resx", resx.New().SourcePath("a/Strings.resx"))
}

func TestExtractor_UnicodeNames(t *testing.T) {
	text := []byte(`<root>
  <data name="Größe"><value>Size</value></data>
  <data name="Заголовок"><value>Title</value></data>
  <data name="Plain"><value>Plain</value></data>
  <data name="With space"><value>x</value></data>
</root>`)

	entries, err := resx.New().Extract(context.Background(), text, "Strings.resx")

	require.NoError(t, err)
	assert.Equal(t, []string{"Strings.Größe", "Strings.Заголовок", "Strings.Plain"}, keys(entries))
}
