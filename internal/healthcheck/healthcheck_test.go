package healthcheck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/l3aro/go-katas/internal/config"
)

func TestCheckWithNilConfig(t *testing.T) {
	_, err := Check(nil, "")
	if err == nil {
		t.Error("Expected error for nil config, got nil")
	}
}

func TestCheckAllPropertiesPass(t *testing.T) {
	result, err := Check(config.DefaultConfig(), "")
	if err != nil {
		t.Fatalf("Check() failed: %v", err)
	}

	if len(result.Checks) != len(properties()) {
		t.Errorf("len(Checks) = %d, want %d", len(result.Checks), len(properties()))
	}

	for _, c := range result.Checks {
		if c.Status != StatusOK {
			t.Errorf("check %q = %s (%s), want ok", c.Name, c.Status, c.Error)
		}
	}

	if result.Failed() != 0 {
		t.Errorf("Failed() = %d, want 0", result.Failed())
	}
	if result.Overflow != string(config.OverflowTruncate) {
		t.Errorf("Overflow = %q, want %q", result.Overflow, config.OverflowTruncate)
	}
	if result.ConfigScope != "defaults" {
		t.Errorf("ConfigScope = %q, want defaults", result.ConfigScope)
	}
}

func TestFailedCountsErrors(t *testing.T) {
	result := &HealthCheckResult{
		Checks: []CheckStatus{
			{Name: "a", Status: StatusOK},
			{Name: "b", Status: StatusError, Error: "boom"},
			{Name: "c", Status: StatusError, Error: "boom"},
		},
	}
	if got := result.Failed(); got != 2 {
		t.Errorf("Failed() = %d, want 2", got)
	}
}

func TestExpectSquaresReportsMismatch(t *testing.T) {
	if err := expectSquares(5, 225, 55, 170); err != nil {
		t.Errorf("expectSquares(5) = %v, want nil", err)
	}
	if err := expectSquares(5, 1, 2, 3); err == nil {
		t.Error("expectSquares with wrong values should fail")
	}
}

func TestScopeFromPath(t *testing.T) {
	home, _ := os.UserHomeDir()
	globalPath := ""
	if home != "" {
		globalPath = filepath.Join(home, ".kata", "config.yaml")
	}

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"empty path", "", "defaults"},
		{"global path", globalPath, "global"},
		{"project path", "/project/.kata/config.yaml", "project"},
		{"relative project path", ".kata/config.yaml", "project"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.path == "" && tt.expected == "global" {
				t.Skip("home directory unavailable")
			}
			result := scopeFromPath(tt.path)
			if result != tt.expected {
				t.Errorf("scopeFromPath(%q) = %q, want %q", tt.path, result, tt.expected)
			}
		})
	}
}
