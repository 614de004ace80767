package ports

import (
	"context"

	"go.trai.ch/resweep/internal/core/domain"
)

// ReferenceScanner finds resource references in the text of one code file.
//
//go:generate mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type ReferenceScanner interface {
	// Scan returns the references found in text. known lists the catalog keys; strategies
	// that recognise references syntactically may ignore it.
	// The only error returned is the context's.
	Scan(ctx context.Context, text []byte, known []domain.ResourceKey) (domain.UsageSet, error)
}
