package config

// SettingsFile represents the structure of the resweep.yaml settings file.
//
// The PascalCase fields accept settings.json files written by earlier releases;
// YAML is a superset of JSON, so those files load unchanged.
type SettingsFile struct {
	SourceRoot               string   `yaml:"sourceRoot"`
	FileExtensions           []string `yaml:"fileExtensions"`
	ExcludeFolders           []string `yaml:"excludeFolders"`
	ExcludeResourceArtifacts []string `yaml:"excludeResourceArtifacts"`
	Extraction               string   `yaml:"extraction"`
	Scanning                 string   `yaml:"scanning"`
	ScanQualifiedNames       bool     `yaml:"scanQualifiedNames"`
	ExcludeReadOnly          bool     `yaml:"excludeReadOnly"`
	Parallelism              int      `yaml:"parallelism"`

	LegacySourceFilePath       string   `yaml:"SourceFilePath,omitempty"`
	LegacySourceCodeFolderPath string   `yaml:"SourceCodeFolderPath,omitempty"`
	LegacyFileExtensions       []string `yaml:"FileExtensions,omitempty"`
	LegacyExcludeFolders       []string `yaml:"ExcludeFolders,omitempty"`
	LegacyExcludeFiles         []string `yaml:"ExcludeFiles,omitempty"`
	LegacyExcludeResxFiles     []string `yaml:"ExcludeResxFiles,omitempty"`
}
