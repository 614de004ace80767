package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/resweep/internal/adapters/config"
	"go.trai.ch/resweep/internal/core/domain"
	"go.trai.ch/resweep/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
}

func TestStore_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf", domain.SettingsFileName)
	writeFile(t, path, `
sourceRoot: ../src
fileExtensions: [".cs", ".xaml"]
excludeFolders: ["obj"]
excludeResourceArtifacts: ["Legacy*.resx"]
extraction: structural
scanning: structural
scanQualifiedNames: true
excludeReadOnly: true
parallelism: 3
`)

	store := config.NewStore(nil)
	s, err := store.Load(path)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "src"), s.SourceRoot)
	assert.Equal(t, []string{".cs", ".xaml"}, s.FileExtensions)
	assert.Equal(t, []string{"obj"}, s.ExcludeFolders)
	assert.Equal(t, []string{"Legacy*.resx"}, s.ExcludeResourceArtifacts)
	assert.Equal(t, domain.ExtractionStructural, s.Extraction)
	assert.Equal(t, domain.ScanStructural, s.Scanning)
	assert.True(t, s.ScanQualifiedNames)
	assert.True(t, s.ExcludeReadOnly)
	assert.Equal(t, 3, s.Parallelism)
}

func TestStore_LoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.SettingsFileName)
	writeFile(t, path, "scanning: structural\n")

	s, err := config.NewStore(nil).Load(path)

	require.NoError(t, err)
	assert.Empty(t, s.SourceRoot)
	assert.Equal(t, domain.ExtractionPattern, s.Extraction)
	assert.Equal(t, []string{".cs"}, s.FileExtensions)
}

func TestStore_LoadLegacyJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	path := filepath.Join(t.TempDir(), "settings.json")
	writeFile(t, path, `{
  "SourceFilePath": "/abs/project",
  "ExcludeFolders": ["\\obj\\", "\\bin\\"],
  "FileExtensions": [".*"],
  "ExcludeFiles": ["Old.resx"]
}`)

	s, err := config.NewStore(log).Load(path)

	require.NoError(t, err)
	assert.Equal(t, filepath.Clean("/abs/project"), s.SourceRoot)
	assert.Equal(t, []string{`\obj\`, `\bin\`}, s.ExcludeFolders)
	assert.Equal(t, []string{".*"}, s.FileExtensions)
	assert.Equal(t, []string{"Old.resx"}, s.ExcludeResourceArtifacts)
}

func TestStore_LoadErrors(t *testing.T) {
	dir := t.TempDir()
	store := config.NewStore(nil)

	_, err := store.Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrSettingsReadFailed.Error())
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "sourceRoot: [unclosed")
	_, err = store.Load(bad)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrSettingsParseFailed.Error())
}

func TestStore_SaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", domain.SettingsFileName)
	store := config.NewStore(nil)

	want := domain.DefaultSettings()
	want.SourceRoot = filepath.Join(dir, "src")
	want.ExcludeResourceArtifacts = []string{"Generated*.resx"}

	require.False(t, store.Exists(path))
	require.NoError(t, store.Save(path, want))
	require.True(t, store.Exists(path))

	got, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestStore_ExistsRejectsDirectory(t *testing.T) {
	assert.False(t, config.NewStore(nil).Exists(t.TempDir()))
}
