package ports

// SourceTree enumerates and reads the files under analysis.
//
//go:generate mockgen -source=source_tree.go -destination=mocks/mock_source_tree.go -package=mocks
type SourceTree interface {
	// ListFiles returns the sorted paths under root whose extension matches one of
	// extensions, skipping directories matched by excludeFolders.
	ListFiles(root string, extensions, excludeFolders []string) ([]string, error)

	// ReadFile returns the contents of path.
	ReadFile(path string) ([]byte, error)

	// IsDir reports whether path exists and is a directory.
	IsDir(path string) bool

	// IsReadOnly reports whether path has no write permission bits set.
	IsReadOnly(path string) bool
}
