package ports

import (
	"context"

	"go.trai.ch/resweep/internal/core/domain"
)

// IdentifierExtractor reads the declared resources out of a resource-definition artifact.
//
//go:generate mockgen -source=extractor.go -destination=mocks/mock_extractor.go -package=mocks
type IdentifierExtractor interface {
	// SourcePath returns the file whose text Extract consumes for the given .resx artifact.
	SourcePath(artifactPath string) string

	// Extract returns one entry per declared resource, with Origin set to artifactPath.
	// It fails with domain.ErrMalformedArtifact when the text violates the strategy's
	// structural expectations.
	Extract(ctx context.Context, text []byte, artifactPath string) ([]domain.ResourceEntry, error)
}
