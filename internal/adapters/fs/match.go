package fs

import (
	"strings"

	"go.trai.ch/resweep/internal/core/domain"
)

// matcher applies extension and folder filters during a walk.
type matcher struct {
	all      bool
	exts     []string
	excludes [][]string
}

func newMatcher(extensions, excludeFolders []string) *matcher {
	m := &matcher{}
	for _, e := range extensions {
		e = strings.TrimSpace(e)
		switch e {
		case "*", "*.*", domain.AllExtensions:
			m.all = true
			continue
		case "", ".", "*.":
			continue
		}
		e = strings.TrimPrefix(e, "*")
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		m.exts = append(m.exts, strings.ToLower(e))
	}
	for _, f := range excludeFolders {
		if segs := segments(f); len(segs) > 0 {
			m.excludes = append(m.excludes, segs)
		}
	}
	return m
}

// matchExt reports whether a file name carries one of the configured extensions.
// Multi-dot extensions such as .Designer.cs are matched as suffixes.
func (m *matcher) matchExt(name string) bool {
	if m.all {
		return true
	}
	lower := strings.ToLower(name)
	for _, e := range m.exts {
		if strings.HasSuffix(lower, e) {
			return true
		}
	}
	return false
}

// skipDir reports whether the directory at the slash path p must be pruned.
// Parents are checked before their children, so only sequences ending at p are tested.
func (m *matcher) skipDir(p, name string) bool {
	if name == ".git" || name == ".jj" {
		return true
	}
	dir := strings.Split(p, "/")
	for _, ex := range m.excludes {
		if len(ex) > len(dir) {
			continue
		}
		tail := dir[len(dir)-len(ex):]
		match := true
		for i := range ex {
			if !strings.EqualFold(tail[i], ex[i]) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// segments splits a folder pattern such as `\obj\` or `gen/out` into path components.
func segments(pattern string) []string {
	fields := strings.FieldsFunc(pattern, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	out := fields[:0]
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" && f != "." {
			out = append(out, f)
		}
	}
	return out
}
