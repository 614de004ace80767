package domain

import (
	"errors"
	"slices"

	"go.trai.ch/zerr"
)

// ExtractionStrategy selects how declared resources are read from artifacts.
type ExtractionStrategy string

const (
	// ExtractionPattern reads resource names from the .resx markup.
	ExtractionPattern ExtractionStrategy = "pattern"
	// ExtractionStructural parses the generated accessor class.
	ExtractionStructural ExtractionStrategy = "structural"
)

// ScanStrategy selects how references are found in code files.
type ScanStrategy string

const (
	// ScanSubstring counts lines containing a resource name.
	ScanSubstring ScanStrategy = "substring"
	// ScanStructural counts Receiver.Member expressions in parsed C# code.
	ScanStructural ScanStrategy = "structural"
)

// AllExtensions is the wildcard extension matching every file.
const AllExtensions = ".*"

// Settings is the configuration record driving an analysis.
type Settings struct {
	SourceRoot               string
	FileExtensions           []string
	ExcludeFolders           []string
	ExcludeResourceArtifacts []string
	Extraction               ExtractionStrategy
	Scanning                 ScanStrategy
	ScanQualifiedNames       bool
	ExcludeReadOnly          bool
	Parallelism              int
}

// DefaultSettings returns the settings written when no settings file exists.
func DefaultSettings() *Settings {
	s := &Settings{
		ExcludeFolders: []string{"obj", "bin"},
		Extraction:     ExtractionPattern,
		Scanning:       ScanSubstring,
	}
	s.ApplyDefaults()
	return s
}

// ApplyDefaults fills in empty fields.
// File extensions default to every file for substring scanning and to .cs otherwise.
func (s *Settings) ApplyDefaults() {
	if s.Extraction == "" {
		s.Extraction = ExtractionPattern
	}
	if s.Scanning == "" {
		s.Scanning = ScanSubstring
	}
	if len(s.FileExtensions) == 0 {
		if s.Scanning == ScanStructural {
			s.FileExtensions = []string{".cs"}
		} else {
			s.FileExtensions = []string{AllExtensions}
		}
	}
}

// Validate checks the strategy names. It does not touch the file system.
func (s *Settings) Validate() error {
	if !slices.Contains([]ExtractionStrategy{ExtractionPattern, ExtractionStructural}, s.Extraction) {
		return errors.Join(ErrInvalidConfiguration, zerr.With(ErrUnknownStrategy, "extraction", string(s.Extraction)))
	}
	if !slices.Contains([]ScanStrategy{ScanSubstring, ScanStructural}, s.Scanning) {
		return errors.Join(ErrInvalidConfiguration, zerr.With(ErrUnknownStrategy, "scanning", string(s.Scanning)))
	}
	if s.Parallelism < 0 {
		return errors.Join(ErrInvalidConfiguration, zerr.With(zerr.New("parallelism must not be negative"), "parallelism", s.Parallelism))
	}
	return nil
}

// Clone returns a deep copy.
func (s *Settings) Clone() *Settings {
	c := *s
	c.FileExtensions = slices.Clone(s.FileExtensions)
	c.ExcludeFolders = slices.Clone(s.ExcludeFolders)
	c.ExcludeResourceArtifacts = slices.Clone(s.ExcludeResourceArtifacts)
	return &c
}
