package domain

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// AnalysisResult is the outcome of a completed analysis run.
type AnalysisResult struct {
	Root         string
	Entries      []ResourceEntry
	FilesScanned int
	FileErrors   []FileError
	Duplicates   []ResourceKey
}

// Unused returns the entries without any reference, in snapshot order.
func (r *AnalysisResult) Unused() []ResourceEntry {
	out := make([]ResourceEntry, 0, len(r.Entries))
	for _, e := range r.Entries {
		if e.Unused() {
			out = append(out, e)
		}
	}
	return out
}

// Used returns the entries with at least one reference, in snapshot order.
func (r *AnalysisResult) Used() []ResourceEntry {
	out := make([]ResourceEntry, 0, len(r.Entries))
	for _, e := range r.Entries {
		if !e.Unused() {
			out = append(out, e)
		}
	}
	return out
}

// Fingerprint hashes the resource entries and their references.
// Two runs over an unchanged tree produce the same fingerprint.
func (r *AnalysisResult) Fingerprint() uint64 {
	d := xxhash.New()
	var buf []byte
	for _, e := range r.Entries {
		buf = buf[:0]
		buf = append(buf, e.Key.ClassName...)
		buf = append(buf, 0)
		buf = append(buf, e.Key.Name...)
		buf = append(buf, 0)
		for _, ref := range e.References {
			buf = append(buf, ref.FileName...)
			buf = append(buf, 0)
			buf = strconv.AppendInt(buf, int64(ref.Count), 10)
			buf = append(buf, 0)
		}
		buf = append(buf, '\n')
		_, _ = d.Write(buf)
	}
	return d.Sum64()
}
