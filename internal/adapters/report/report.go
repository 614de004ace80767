// Package report renders analysis results as text or JSON.
package report

import (
	"strings"

	"go.trai.ch/resweep/internal/core/domain"
	"go.trai.ch/resweep/internal/core/ports"
	"go.trai.ch/zerr"
)

// Report formats accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

type options struct {
	unusedOnly bool
}

// Option configures a formatter.
type Option func(*options)

// WithUnusedOnly limits the report to unused resources.
func WithUnusedOnly(enable bool) Option {
	return func(o *options) {
		o.unusedOnly = enable
	}
}

// New returns the formatter for format. An empty format selects text.
func New(format string, opts ...Option) (ports.ReportFormatter, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	switch strings.ToLower(format) {
	case "", FormatText:
		return &TextFormatter{unusedOnly: o.unusedOnly}, nil
	case FormatJSON:
		return &JSONFormatter{unusedOnly: o.unusedOnly}, nil
	default:
		return nil, zerr.With(domain.ErrUnknownFormat, "format", format)
	}
}

// errorText flattens joined error messages onto one line.
func errorText(err error) string {
	if err == nil {
		return ""
	}
	return strings.ReplaceAll(err.Error(), "\n", "; ")
}
