// Package fs provides the source tree adapters used to enumerate and read files.
package fs

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/resweep/internal/core/domain"
	"go.trai.ch/zerr"
)

// OSTree implements ports.SourceTree on the operating system's file system.
type OSTree struct{}

// NewOSTree creates a new OSTree.
func NewOSTree() *OSTree {
	return &OSTree{}
}

// ListFiles walks root and returns the matching files as sorted absolute paths.
func (t *OSTree) ListFiles(root string, extensions, excludeFolders []string) ([]string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrListFilesFailed.Error()), "root", root)
	}
	return listFS(os.DirFS(abs), abs, extensions, excludeFolders)
}

// ReadFile reads the entire file at path.
func (t *OSTree) ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- paths come from ListFiles
	return os.ReadFile(path)
}

// IsDir reports whether path is an existing directory.
func (t *OSTree) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsReadOnly reports whether path has no write permission bits.
func (t *OSTree) IsReadOnly(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().Perm()&0o222 == 0
}

// MapTree implements ports.SourceTree on an fs.FS mounted at a simulated root path.
// It is used by tests together with fstest.MapFS.
type MapTree struct {
	FS   fs.FS
	Root string
}

// NewMapTree creates a MapTree serving fsys under root.
func NewMapTree(root string, fsys fs.FS) *MapTree {
	return &MapTree{FS: fsys, Root: filepath.Clean(root)}
}

// ListFiles walks the mounted file system below root.
func (m *MapTree) ListFiles(root string, extensions, excludeFolders []string) ([]string, error) {
	rel, ok := m.rel(root)
	if !ok {
		return nil, zerr.With(zerr.Wrap(fs.ErrNotExist, domain.ErrListFilesFailed.Error()), "root", root)
	}
	sub, err := fs.Sub(m.FS, rel)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrListFilesFailed.Error()), "root", root)
	}
	return listFS(sub, filepath.Clean(root), extensions, excludeFolders)
}

// ReadFile reads the entire file at path.
func (m *MapTree) ReadFile(path string) ([]byte, error) {
	rel, ok := m.rel(path)
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return fs.ReadFile(m.FS, rel)
}

// IsDir reports whether path is an existing directory.
func (m *MapTree) IsDir(path string) bool {
	info, err := m.stat(path)
	return err == nil && info.IsDir()
}

// IsReadOnly reports whether path has no write permission bits.
func (m *MapTree) IsReadOnly(path string) bool {
	info, err := m.stat(path)
	return err == nil && info.Mode().Perm()&0o222 == 0
}

func (m *MapTree) stat(path string) (fs.FileInfo, error) {
	rel, ok := m.rel(path)
	if !ok {
		return nil, fs.ErrNotExist
	}
	return fs.Stat(m.FS, rel)
}

// rel converts an absolute path below Root into an fs.FS path.
func (m *MapTree) rel(p string) (string, bool) {
	r, err := filepath.Rel(m.Root, filepath.Clean(p))
	if err != nil || r == ".." || strings.HasPrefix(r, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(r), true
}

// listFS walks fsys and returns matching files joined onto root.
func listFS(fsys fs.FS, root string, extensions, excludeFolders []string) ([]string, error) {
	m := newMatcher(extensions, excludeFolders)

	var files []string
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != "." && m.skipDir(p, d.Name()) {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !m.matchExt(path.Base(p)) {
			return nil
		}
		files = append(files, filepath.Join(root, filepath.FromSlash(p)))
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrListFilesFailed.Error()), "root", root)
	}

	slices.Sort(files)
	return files, nil
}
