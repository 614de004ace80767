package ports

import (
	"io"

	"go.trai.ch/resweep/internal/core/domain"
)

// ReportFormatter renders an analysis result.
type ReportFormatter interface {
	Format(w io.Writer, result *domain.AnalysisResult) error
}
