package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidConfiguration is returned when the settings record cannot drive an analysis,
	// for example when the source root is empty or missing.
	ErrInvalidConfiguration = zerr.New("invalid configuration")

	// ErrMalformedArtifact is returned when a resource-definition artifact violates its
	// structural expectations, such as a generated accessor declaring more than one type.
	ErrMalformedArtifact = zerr.New("malformed resource artifact")

	// ErrFileAccess is returned when a candidate file cannot be read.
	ErrFileAccess = zerr.New("failed to access file")

	// ErrCancelled is returned when an analysis is stopped before completion.
	ErrCancelled = zerr.New("analysis cancelled")

	// ErrListFilesFailed is returned when the source tree cannot be enumerated.
	ErrListFilesFailed = zerr.New("failed to list files")

	// ErrSettingsReadFailed is returned when the settings file cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings file")

	// ErrSettingsParseFailed is returned when the settings file cannot be parsed.
	ErrSettingsParseFailed = zerr.New("failed to parse settings file")

	// ErrSettingsWriteFailed is returned when the settings file cannot be written.
	ErrSettingsWriteFailed = zerr.New("failed to write settings file")

	// ErrSettingsExists is returned when init would overwrite an existing settings file.
	ErrSettingsExists = zerr.New("settings file already exists")

	// ErrUnknownStrategy is returned when a strategy name is not recognised.
	ErrUnknownStrategy = zerr.New("unknown strategy")

	// ErrUnknownFormat is returned when a report format is not recognised.
	ErrUnknownFormat = zerr.New("unknown report format, expected 'text' or 'json'")

	// ErrReportWriteFailed is returned when the report cannot be written.
	ErrReportWriteFailed = zerr.New("failed to write report")
)
