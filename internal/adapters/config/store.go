// Package config persists the analysis settings as YAML.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/resweep/internal/core/domain"
	"go.trai.ch/resweep/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Store implements ports.SettingsStore using YAML files.
type Store struct {
	Logger ports.Logger
}

// NewStore creates a new Store with the given logger.
func NewStore(logger ports.Logger) *Store {
	return &Store{Logger: logger}
}

// Load reads the settings file at path.
// A relative source root is resolved against the directory containing the file.
func (s *Store) Load(path string) (*domain.Settings, error) {
	// #nosec G304 -- path is chosen by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsReadFailed.Error()), "path", path)
	}

	var file SettingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsParseFailed.Error()), "path", path)
	}

	settings := s.toDomain(&file)
	settings.SourceRoot = resolveRoot(path, settings.SourceRoot)
	settings.ApplyDefaults()
	return settings, nil
}

// Save writes settings to path atomically, creating parent directories as needed.
func (s *Store) Save(path string, settings *domain.Settings) error {
	data, err := yaml.Marshal(fromDomain(settings))
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSettingsWriteFailed.Error()), "path", path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSettingsWriteFailed.Error()), "path", path)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSettingsWriteFailed.Error()), "path", path)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrSettingsWriteFailed.Error()), "path", path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSettingsWriteFailed.Error()), "path", path)
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSettingsWriteFailed.Error()), "path", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSettingsWriteFailed.Error()), "path", path)
	}
	return nil
}

// Exists reports whether a regular file is present at path.
func (s *Store) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func (s *Store) toDomain(f *SettingsFile) *domain.Settings {
	settings := &domain.Settings{
		SourceRoot:               f.SourceRoot,
		FileExtensions:           f.FileExtensions,
		ExcludeFolders:           f.ExcludeFolders,
		ExcludeResourceArtifacts: f.ExcludeResourceArtifacts,
		Extraction:               domain.ExtractionStrategy(f.Extraction),
		Scanning:                 domain.ScanStrategy(f.Scanning),
		ScanQualifiedNames:       f.ScanQualifiedNames,
		ExcludeReadOnly:          f.ExcludeReadOnly,
		Parallelism:              f.Parallelism,
	}

	legacy := false
	if settings.SourceRoot == "" {
		settings.SourceRoot = firstNonEmpty(f.LegacySourceFilePath, f.LegacySourceCodeFolderPath)
		legacy = legacy || settings.SourceRoot != ""
	}
	if len(settings.FileExtensions) == 0 && len(f.LegacyFileExtensions) > 0 {
		settings.FileExtensions, legacy = f.LegacyFileExtensions, true
	}
	if settings.ExcludeFolders == nil && f.LegacyExcludeFolders != nil {
		settings.ExcludeFolders, legacy = f.LegacyExcludeFolders, true
	}
	if len(settings.ExcludeResourceArtifacts) == 0 {
		if files := append(f.LegacyExcludeFiles, f.LegacyExcludeResxFiles...); len(files) > 0 {
			settings.ExcludeResourceArtifacts, legacy = files, true
		}
	}
	if legacy && s.Logger != nil {
		s.Logger.Warn("settings file uses legacy keys, run with --save to rewrite it")
	}
	return settings
}

func fromDomain(s *domain.Settings) *SettingsFile {
	return &SettingsFile{
		SourceRoot:               s.SourceRoot,
		FileExtensions:           s.FileExtensions,
		ExcludeFolders:           s.ExcludeFolders,
		ExcludeResourceArtifacts: s.ExcludeResourceArtifacts,
		Extraction:               string(s.Extraction),
		Scanning:                 string(s.Scanning),
		ScanQualifiedNames:       s.ScanQualifiedNames,
		ExcludeReadOnly:          s.ExcludeReadOnly,
		Parallelism:              s.Parallelism,
	}
}

// resolveRoot makes a relative source root absolute against the settings file directory.
// An empty root stays empty so callers can detect an unconfigured file.
func resolveRoot(settingsPath, configuredRoot string) string {
	if configuredRoot == "" {
		return ""
	}
	if filepath.IsAbs(configuredRoot) {
		return filepath.Clean(configuredRoot)
	}
	dir, err := filepath.Abs(filepath.Dir(settingsPath))
	if err != nil {
		dir = filepath.Dir(settingsPath)
	}
	return filepath.Clean(filepath.Join(dir, configuredRoot))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
