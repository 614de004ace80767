package report

import (
	"encoding/json"
	"fmt"
	"io"

	"go.trai.ch/resweep/internal/core/domain"
	"go.trai.ch/zerr"
)

// JSONFormatter renders the machine-readable report.
type JSONFormatter struct {
	unusedOnly bool
}

type jsonReport struct {
	Root         string          `json:"root"`
	Fingerprint  string          `json:"fingerprint"`
	FilesScanned int             `json:"filesScanned"`
	Unused       []string        `json:"unused"`
	Used         []jsonResource  `json:"used,omitempty"`
	FileErrors   []jsonFileError `json:"fileErrors"`
	Duplicates   []string        `json:"duplicates"`
}

type jsonResource struct {
	Resource string     `json:"resource"`
	Total    int        `json:"total"`
	Files    []jsonFile `json:"files"`
}

type jsonFile struct {
	File  string `json:"file"`
	Count int    `json:"count"`
}

type jsonFileError struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

// Format writes the report to w as indented JSON.
func (f *JSONFormatter) Format(w io.Writer, result *domain.AnalysisResult) error {
	doc := jsonReport{
		Root:         result.Root,
		Fingerprint:  fmt.Sprintf("%016x", result.Fingerprint()),
		FilesScanned: result.FilesScanned,
		Unused:       []string{},
		FileErrors:   []jsonFileError{},
		Duplicates:   []string{},
	}

	for _, e := range result.Unused() {
		doc.Unused = append(doc.Unused, e.Key.String())
	}
	if !f.unusedOnly {
		doc.Used = []jsonResource{}
		for _, e := range result.Used() {
			files := make([]jsonFile, 0, len(e.References))
			for _, ref := range e.References {
				files = append(files, jsonFile{File: ref.FileName, Count: ref.Count})
			}
			doc.Used = append(doc.Used, jsonResource{Resource: e.Key.String(), Total: e.Total(), Files: files})
		}
	}
	for _, fe := range result.FileErrors {
		doc.FileErrors = append(doc.FileErrors, jsonFileError{File: fe.Path, Error: errorText(fe.Err)})
	}
	for _, k := range result.Duplicates {
		doc.Duplicates = append(doc.Duplicates, k.String())
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return zerr.Wrap(err, domain.ErrReportWriteFailed.Error())
	}
	return nil
}
