// Package resx extracts declared resources from .resx markup by pattern matching.
package resx

import (
	"bytes"
	"context"
	"regexp"

	"go.trai.ch/resweep/internal/core/domain"
)

var (
	commentPattern = regexp.MustCompile(`(?s)<!--.*?-->`)
	namePattern    = regexp.MustCompile(`<data\s+name="([\p{L}\p{Mn}\p{Nd}\p{Pc}]+)"`)
	dataClose      = []byte("</data>")
)

// Extractor implements ports.IdentifierExtractor over the .resx XML text.
// It does not parse XML: comments are stripped, the text is split on closing data
// tags and the first name attribute of each fragment is captured.
type Extractor struct{}

// New creates a new Extractor.
func New() *Extractor {
	return &Extractor{}
}

// SourcePath returns the artifact itself.
func (e *Extractor) SourcePath(artifactPath string) string {
	return artifactPath
}

// Extract returns one entry per data element. The class name is the artifact's
// file name up to the first dot. It never reports a malformed artifact.
func (e *Extractor) Extract(ctx context.Context, text []byte, artifactPath string) ([]domain.ResourceEntry, error) {
	className := domain.ResourceClassName(artifactPath)
	text = commentPattern.ReplaceAll(text, nil)

	var entries []domain.ResourceEntry
	for i, fragment := range bytes.Split(text, dataClose) {
		if i%256 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		m := namePattern.FindSubmatch(fragment)
		if m == nil {
			continue
		}
		entries = append(entries, domain.ResourceEntry{
			Key:    domain.ResourceKey{ClassName: className, Name: string(m[1])},
			Origin: artifactPath,
		})
	}
	return entries, nil
}
