package cli

import "swiftci/internal/config"

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

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Output:     f.Output,
		SuiteName:  f.SuiteName,
		Record:     f.Record,
		SonarDir:   f.SonarDir,
		ProjectKey: f.ProjectKey,
		Severity:   f.Severity,
		Type:       f.Type,
		Rule:       f.Rule,
	}
}
