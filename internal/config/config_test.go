package config

import (
	"path/filepath"
	"testing"
)

func TestConfig_GetOutputXMLPath(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name:     "default path",
			config:   &Config{OutputXMLFile: DefaultOutputXMLFile},
			expected: "test-results.xml",
		},
		{
			name: "with output flag",
			config: &Config{
				OutputXMLFile: DefaultOutputXMLFile,
				Flags:         Flags{Output: "reports/junit.xml"},
			},
			expected: "reports/junit.xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetOutputXMLPath()
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestConfig_GetSonarDir(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name:     "default dir",
			config:   &Config{ProjectPath: "/project", SonarDir: DefaultSonarDir},
			expected: filepath.Join("/project", ".sonarcloud"),
		},
		{
			name: "with dir flag",
			config: &Config{
				ProjectPath: "/project",
				SonarDir:    DefaultSonarDir,
				Flags:       Flags{SonarDir: "exports"},
			},
			expected: filepath.Join("/project", "exports"),
		},
		{
			name: "absolute dir flag",
			config: &Config{
				ProjectPath: "/project",
				SonarDir:    DefaultSonarDir,
				Flags:       Flags{SonarDir: "/absolute/exports"},
			},
			expected: "/absolute/exports",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetSonarDir()
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestConfig_GetIssuesPath(t *testing.T) {
	cfg := New()
	expected := filepath.Join(".", ".sonarcloud", "sonarcloud-issues.json")
	if got := cfg.GetIssuesPath(); got != expected {
		t.Errorf("expected %s, got %s", expected, got)
	}
}

func TestConfig_GetProjectKey(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		cfg := New()
		cfg.Flags.ProjectKey = "myproj"
		if got := cfg.GetProjectKey(); got != "myproj" {
			t.Errorf("expected myproj, got %s", got)
		}
	})

	t.Run("environment fallback", func(t *testing.T) {
		t.Setenv("SONAR_PROJECT_KEY", "envproj")
		cfg := New()
		if got := cfg.GetProjectKey(); got != "envproj" {
			t.Errorf("expected envproj, got %s", got)
		}
	})

	t.Run("unknown default", func(t *testing.T) {
		t.Setenv("SONAR_PROJECT_KEY", "")
		cfg := New()
		if got := cfg.GetProjectKey(); got != "unknown" {
			t.Errorf("expected unknown, got %s", got)
		}
	})
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.ProjectPath != DefaultProjectPath {
		t.Errorf("expected ProjectPath %s, got %s", DefaultProjectPath, cfg.ProjectPath)
	}
	if cfg.OutputXMLFile != DefaultOutputXMLFile {
		t.Errorf("expected OutputXMLFile %s, got %s", DefaultOutputXMLFile, cfg.OutputXMLFile)
	}
	if cfg.SuitesName != DefaultSuitesName {
		t.Errorf("expected SuitesName %s, got %s", DefaultSuitesName, cfg.SuitesName)
	}
	if cfg.RunJSONDir != DefaultRunJSONDir {
		t.Errorf("expected RunJSONDir %s, got %s", DefaultRunJSONDir, cfg.RunJSONDir)
	}
}
