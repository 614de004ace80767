package csharp_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/resweep/internal/adapters/csharp"
	"go.trai.ch/resweep/internal/core/domain"
)

func readTestdata(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return data
}

func TestExtractor_Extract(t *testing.T) {
	text := readTestdata(t, "Strings.Designer.cs")

	entries, err := csharp.NewExtractor().Extract(context.Background(), text, "Properties/Strings.resx")

	require.NoError(t, err)
	var got []domain.ResourceKey
	for _, e := range entries {
		got = append(got, e.Key)
		assert.Equal(t, "Properties/Strings.resx", e.Origin)
	}
	assert.Equal(t, []domain.ResourceKey{
		{ClassName: "Strings", Name: "Greeting"},
		{ClassName: "Strings", Name: "Farewell"},
		{ClassName: "Strings", Name: "Qualified"},
	}, got)
}

func TestExtractor_MultipleTopLevelTypes(t *testing.T) {
	text := readTestdata(t, "TwoTypes.Designer.cs")

	_, err := csharp.NewExtractor().Extract(context.Background(), text, "Strings.resx")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedArtifact)
}

func TestExtractor_NoTypeDeclaration(t *testing.T) {
	_, err := csharp.NewExtractor().Extract(context.Background(), []byte("// empty\n"), "Strings.resx")

	assert.ErrorIs(t, err, domain.ErrMalformedArtifact)
}

func TestExtractor_CountsQualifyingProperties(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		src := "internal class Res {\n"
		for i := range n {
			src += "    internal static string P" + string(rune('a'+i)) + " { get { return \"\"; } }\n"
		}
		src += "    internal static int NotString { get { return 0; } }\n}\n"

		entries, err := csharp.NewExtractor().Extract(context.Background(), []byte(src), "Res.resx")

		require.NoError(t, err)
		assert.Len(t, entries, n)
	}
}

func TestExtractor_SourcePath(t *testing.T) {
	assert.Equal(t, "a/Strings.Designer.cs", csharp.NewExtractor().SourcePath("a/Strings.resx"))
}

func TestExtractor_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := csharp.NewExtractor().Extract(ctx, readTestdata(t, "Strings.Designer.cs"), "Strings.resx")

	assert.ErrorIs(t, err, context.Canceled)
}
