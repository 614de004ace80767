package domain

import (
	"path/filepath"
	"strings"
)

const (
	// SettingsFileName is the name of the default settings file.
	SettingsFileName = "resweep.yaml"

	// ResourceArtifactExt is the extension of resource-definition artifacts.
	ResourceArtifactExt = ".resx"

	// GeneratedAccessorSuffix replaces ResourceArtifactExt to name the generated accessor.
	GeneratedAccessorSuffix = ".Designer.cs"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// CompanionPath returns the generated accessor path for a resource artifact.
// Foo.resx becomes Foo.Designer.cs in the same directory.
func CompanionPath(artifactPath string) string {
	ext := filepath.Ext(artifactPath)
	if !strings.EqualFold(ext, ResourceArtifactExt) {
		return artifactPath
	}
	return strings.TrimSuffix(artifactPath, ext) + GeneratedAccessorSuffix
}

// IsResourceArtifact reports whether path names a resource-definition artifact.
func IsResourceArtifact(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ResourceArtifactExt)
}

// ResourceClassName derives the accessor class name from an artifact path.
// The class name is the file name up to its first dot, so Strings.fr.resx yields Strings.
func ResourceClassName(artifactPath string) string {
	base := filepath.Base(artifactPath)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		return base[:i]
	}
	return base
}
