package config

import (
	"os"
	"path/filepath"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	SonarDir    string

	// Output settings
	OutputXMLFile string
	SuitesName    string
	RunJSONFile   string
	RunJSONDir    string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Output     string
	SuiteName  string
	Record     bool
	SonarDir   string
	ProjectKey string
	Severity   string
	Type       string
	Rule       string
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectPath:   DefaultProjectPath,
		SonarDir:      DefaultSonarDir,
		OutputXMLFile: DefaultOutputXMLFile,
		SuitesName:    DefaultSuitesName,
		RunJSONFile:   DefaultRunJSONFile,
		RunJSONDir:    DefaultRunJSONDir,
	}
}

// GetOutputXMLPath returns the JUnit XML output path, using the flag if provided.
func (c *Config) GetOutputXMLPath() string {
	if c.Flags.Output != "" {
		return c.Flags.Output
	}
	return c.OutputXMLFile
}

// GetSuitesName returns the testsuites root name, using the flag if provided.
func (c *Config) GetSuitesName() string {
	if c.Flags.SuiteName != "" {
		return c.Flags.SuiteName
	}
	return c.SuitesName
}

// GetSonarDir returns the SonarCloud export directory, using the flag if
// provided. Relative paths are resolved against the project path.
func (c *Config) GetSonarDir() string {
	dir := c.SonarDir
	if c.Flags.SonarDir != "" {
		dir = c.Flags.SonarDir
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(c.ProjectPath, dir)
}

// GetIssuesPath returns the path to the SonarCloud issue export file.
func (c *Config) GetIssuesPath() string {
	return filepath.Join(c.GetSonarDir(), DefaultIssuesFile)
}

// GetFindingsPath returns the path the findings report is written to.
func (c *Config) GetFindingsPath() string {
	return filepath.Join(c.GetSonarDir(), DefaultFindingsFile)
}

// GetLintPath returns the path to the SwiftLint JSON report.
func (c *Config) GetLintPath() string {
	return filepath.Join(c.GetSonarDir(), DefaultLintFile)
}

// GetRunPath returns the full path to the persisted run results file.
// Resolves to an absolute path so junit and failures always read/write the
// same file regardless of cwd.
func (c *Config) GetRunPath() string {
	p := filepath.Join(c.ProjectPath, c.RunJSONDir, c.RunJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetProjectKey returns the SonarCloud project key: the flag if provided,
// then the SONAR_PROJECT_KEY environment variable, then "unknown".
func (c *Config) GetProjectKey() string {
	if c.Flags.ProjectKey != "" {
		return c.Flags.ProjectKey
	}
	if key := os.Getenv("SONAR_PROJECT_KEY"); key != "" {
		return key
	}
	return "unknown"
}
