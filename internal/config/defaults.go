package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultOutputXMLFile is the default JUnit XML output file name
	DefaultOutputXMLFile = "test-results.xml"
	// DefaultSuitesName is the default name of the JUnit testsuites root
	DefaultSuitesName = "Swift Tests"
	// DefaultRunJSONFile is the persisted run results file name
	DefaultRunJSONFile = "test-run.json"
	// DefaultRunJSONDir is the directory holding persisted run results
	DefaultRunJSONDir = ".swiftci"
	// DefaultSonarDir is the directory holding SonarCloud/SwiftLint exports
	DefaultSonarDir = ".sonarcloud"
	// DefaultIssuesFile is the SonarCloud issue export file name
	DefaultIssuesFile = "sonarcloud-issues.json"
	// DefaultFindingsFile is the findings report file name
	DefaultFindingsFile = "sonarcloud-findings.txt"
	// DefaultLintFile is the SwiftLint JSON report file name
	DefaultLintFile = "swiftlint-output.json"
)
