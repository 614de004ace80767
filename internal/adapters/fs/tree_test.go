package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/resweep/internal/adapters/fs"
	"go.trai.ch/resweep/internal/core/domain"
)

const root = "/work/app"

func newMapTree() *fs.MapTree {
	return fs.NewMapTree(root, fstest.MapFS{
		"Program.cs":                     {Data: []byte("class Program {}"), Mode: 0o644},
		"Properties/Strings.resx":        {Data: []byte("<root/>"), Mode: 0o644},
		"Properties/Strings.Designer.cs": {Data: []byte("class Strings {}"), Mode: 0o444},
		"Views/Main.XAML":                {Data: []byte("<Window/>"), Mode: 0o644},
		"obj/Debug/Generated.cs":         {Data: []byte("x"), Mode: 0o644},
		"bin/Release/App.cs":             {Data: []byte("x"), Mode: 0o644},
		"src/gen/out/Skipped.cs":         {Data: []byte("x"), Mode: 0o644},
		"src/out/Kept.cs":                {Data: []byte("x"), Mode: 0o644},
		".git/objects/cs.cs":             {Data: []byte("x"), Mode: 0o644},
		"README":                         {Data: []byte("x"), Mode: 0o644},
	})
}

func abs(rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}

func TestMapTree_ListFilesByExtension(t *testing.T) {
	tree := newMapTree()

	files, err := tree.ListFiles(root, []string{".CS"}, []string{`\obj\`, "/bin/", "gen/out"})

	require.NoError(t, err)
	assert.Equal(t, []string{
		abs("Program.cs"),
		abs("Properties/Strings.Designer.cs"),
		abs("src/out/Kept.cs"),
	}, files)
}

func TestMapTree_ListFilesExtensionForms(t *testing.T) {
	tree := newMapTree()

	for _, ext := range []string{"xaml", "*.xaml", ".Xaml"} {
		files, err := tree.ListFiles(root, []string{ext}, nil)
		require.NoError(t, err, ext)
		assert.Equal(t, []string{abs("Views/Main.XAML")}, files, ext)
	}
}

func TestMapTree_ListFilesWildcard(t *testing.T) {
	tree := newMapTree()

	for _, ext := range []string{domain.AllExtensions, "*", "*.*"} {
		files, err := tree.ListFiles(root, []string{ext}, []string{"obj", "bin", "src"})
		require.NoError(t, err, ext)
		assert.Equal(t, []string{
			abs("Program.cs"),
			abs("Properties/Strings.Designer.cs"),
			abs("Properties/Strings.resx"),
			abs("README"),
			abs("Views/Main.XAML"),
		}, files, ext)
	}
}

func TestMapTree_ListFilesSubdirectory(t *testing.T) {
	tree := newMapTree()

	files, err := tree.ListFiles(abs("Properties"), []string{".resx"}, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{abs("Properties/Strings.resx")}, files)
}

func TestMapTree_ListFilesOutsideRoot(t *testing.T) {
	tree := newMapTree()

	_, err := tree.ListFiles("/elsewhere", []string{".cs"}, nil)

	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrListFilesFailed.Error())
}

func TestMapTree_ReadAndStat(t *testing.T) {
	tree := newMapTree()

	data, err := tree.ReadFile(abs("Program.cs"))
	require.NoError(t, err)
	assert.Equal(t, "class Program {}", string(data))

	_, err = tree.ReadFile(abs("Missing.cs"))
	require.ErrorIs(t, err, os.ErrNotExist)

	assert.True(t, tree.IsDir(root))
	assert.True(t, tree.IsDir(abs("Properties")))
	assert.False(t, tree.IsDir(abs("Program.cs")))
	assert.False(t, tree.IsDir("/nowhere"))

	assert.True(t, tree.IsReadOnly(abs("Properties/Strings.Designer.cs")))
	assert.False(t, tree.IsReadOnly(abs("Program.cs")))
}

func TestOSTree(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "obj"), domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.cs"), []byte("b"), domain.FilePerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.cs"), []byte("a"), 0o444))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "obj", "c.cs"), []byte("c"), domain.FilePerm))

	tree := fs.NewOSTree()
	files, err := tree.ListFiles(dir, []string{".cs"}, []string{"obj"})

	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.cs"), filepath.Join(dir, "b.cs")}, files)
	assert.True(t, tree.IsDir(dir))
	assert.True(t, tree.IsReadOnly(files[0]))
	assert.False(t, tree.IsReadOnly(files[1]))

	data, err := tree.ReadFile(files[1])
	require.NoError(t, err)
	assert.Equal(t, "b", string(data))
}

func TestOSTree_MissingRoot(t *testing.T) {
	_, err := fs.NewOSTree().ListFiles(filepath.Join(t.TempDir(), "missing"), []string{".cs"}, nil)

	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrListFilesFailed.Error())
}
