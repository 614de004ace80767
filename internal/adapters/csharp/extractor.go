package csharp

import (
	"context"
	"errors"

	sitter "github.com/smacker/go-tree-sitter"
	"go.trai.ch/resweep/internal/core/domain"
	"go.trai.ch/zerr"
)

// Extractor implements ports.IdentifierExtractor over generated resource accessors.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// SourcePath maps Foo.resx to its generated Foo.Designer.cs accessor.
func (e *Extractor) SourcePath(artifactPath string) string {
	return domain.CompanionPath(artifactPath)
}

// Extract returns every internal static string property of the single top-level type
// declared in text.
func (e *Extractor) Extract(ctx context.Context, text []byte, artifactPath string) ([]domain.ResourceEntry, error) {
	root, err := parse(ctx, text)
	if err != nil {
		return nil, err
	}

	var types []*sitter.Node
	err = walk(ctx, root, func(n *sitter.Node) bool {
		if typeDeclarations[n.Type()] {
			types = append(types, n)
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	if len(types) != 1 {
		return nil, errors.Join(domain.ErrMalformedArtifact, zerr.With(
			zerr.With(zerr.New("expected exactly one top-level type declaration"), "path", artifactPath),
			"declarations", len(types),
		))
	}

	decl := types[0]
	className := fieldText(decl, "name", text)

	var entries []domain.ResourceEntry
	err = walk(ctx, decl, func(n *sitter.Node) bool {
		if n != decl && typeDeclarations[n.Type()] {
			return false
		}
		if n.Type() != "property_declaration" {
			return true
		}
		mods := modifiers(n, text)
		name := fieldText(n, "name", text)
		if name != "" && mods["internal"] && mods["static"] && isStringType(n.ChildByFieldName("type"), text) {
			entries = append(entries, domain.ResourceEntry{
				Key:    domain.ResourceKey{ClassName: className, Name: name},
				Origin: artifactPath,
			})
		}
		return false
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}
