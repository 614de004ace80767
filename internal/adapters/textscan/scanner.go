// Package textscan finds resource references by plain substring matching.
package textscan

import (
	"bytes"
	"context"

	"go.trai.ch/resweep/internal/core/domain"
)

// lineBatch is the number of lines scanned between context checks.
const lineBatch = 256

// Scanner implements ports.ReferenceScanner by counting, for every known resource,
// the non-blank lines that contain its name. Matching is case-sensitive and ignores
// word boundaries, so Greeting also matches GreetingTitle.
type Scanner struct {
	qualified bool
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithQualifiedNames matches ClassName.Name instead of the bare Name.
func WithQualifiedNames(enable bool) Option {
	return func(s *Scanner) {
		s.qualified = enable
	}
}

// New creates a new Scanner.
func New(opts ...Option) *Scanner {
	s := &Scanner{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan returns the per-key count of matching lines.
func (s *Scanner) Scan(ctx context.Context, text []byte, known []domain.ResourceKey) (domain.UsageSet, error) {
	needles := make([][]byte, len(known))
	for i, k := range known {
		if s.qualified {
			needles[i] = []byte(k.String())
		} else {
			needles[i] = []byte(k.Name)
		}
	}

	usages := domain.UsageSet{}
	for n := 0; len(text) > 0; n++ {
		if n%lineBatch == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		var line []byte
		if i := bytes.IndexByte(text, '\n'); i >= 0 {
			line, text = text[:i], text[i+1:]
		} else {
			line, text = text, nil
		}
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		for i, needle := range needles {
			if len(needle) > 0 && bytes.Contains(line, needle) {
				usages.Add(known[i], 1)
			}
		}
	}
	return usages, nil
}
