package domain

// ResourceKey identifies a resource by the accessor class that declares it and its name.
type ResourceKey struct {
	ClassName string
	Name      string
}

// String returns the canonical "ClassName.Name" form.
func (k ResourceKey) String() string {
	return k.ClassName + "." + k.Name
}

// ReferenceRecord counts the references to a resource found in one file.
type ReferenceRecord struct {
	FileName string
	Count    int
}

// ResourceEntry is a declared resource together with the references recorded against it.
type ResourceEntry struct {
	Key        ResourceKey
	Origin     string
	References []ReferenceRecord
}

// Total returns the sum of all reference counts.
func (e ResourceEntry) Total() int {
	total := 0
	for _, r := range e.References {
		total += r.Count
	}
	return total
}

// Unused reports whether no reference was recorded.
func (e ResourceEntry) Unused() bool {
	return len(e.References) == 0
}

// UsageSet is the multiset of resource references found in a single file.
type UsageSet map[ResourceKey]int

// Add records n occurrences of key. Non-positive counts are ignored.
func (u UsageSet) Add(key ResourceKey, n int) {
	if n <= 0 {
		return
	}
	u[key] += n
}

// FileError records a per-file failure that did not abort the analysis.
type FileError struct {
	Path string
	Err  error
}
