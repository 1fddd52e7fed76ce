package healthcheck

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/l3aro/go-katas/internal/config"
	"github.com/l3aro/go-katas/pkg/grains"
	"github.com/l3aro/go-katas/pkg/lasagna"
	"github.com/l3aro/go-katas/pkg/squares"
)

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// CheckStatus is the outcome of a single property check.
type CheckStatus struct {
	Name   string `json:"name" yaml:"name" msgpack:"name"`
	Status string `json:"status" yaml:"status" msgpack:"status"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty" msgpack:"error,omitempty"`
}

// HealthCheckResult contains the full health check output for display.
type HealthCheckResult struct {
	ConfigPath  string        `json:"config_path" yaml:"config_path" msgpack:"config_path"`
	ConfigScope string        `json:"config_scope" yaml:"config_scope" msgpack:"config_scope"`
	Overflow    string        `json:"overflow" yaml:"overflow" msgpack:"overflow"`
	Checks      []CheckStatus `json:"checks" yaml:"checks" msgpack:"checks"`
}

// Failed returns the number of checks that did not pass.
func (r *HealthCheckResult) Failed() int {
	n := 0
	for _, c := range r.Checks {
		if c.Status != StatusOK {
			n++
		}
	}
	return n
}

type property struct {
	name string
	run  func() error
}

// Check evaluates every documented property of the kata formulas against the
// running build. configPath is the config file in effect (may be empty).
func Check(cfg *config.Config, configPath string) (*HealthCheckResult, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	result := &HealthCheckResult{
		ConfigPath:  configPath,
		ConfigScope: scopeFromPath(configPath),
		Overflow:    string(cfg.Overflow),
	}

	for _, p := range properties() {
		status := CheckStatus{Name: p.name, Status: StatusOK}
		if err := p.run(); err != nil {
			status.Status = StatusError
			status.Error = err.Error()
		}
		result.Checks = append(result.Checks, status)
	}

	return result, nil
}

// scopeFromPath determines "global" or "project" scope from a config file path.
// Returns "defaults" if no file was used.
func scopeFromPath(path string) string {
	if path == "" {
		return "defaults"
	}

	home, err := os.UserHomeDir()
	if err == nil {
		globalDir := filepath.Join(home, ".kata")
		if strings.HasPrefix(path, globalDir) {
			return "global"
		}
	}

	return "project"
}

func properties() []property {
	return []property{
		{"squares n=5", func() error { return expectSquares(5, 225, 55, 170) }},
		{"squares n=10", func() error { return expectSquares(10, 3025, 385, 2640) }},
		{"difference identity", checkDifferenceIdentity},
		{"checked overflow boundary", checkOverflowBoundary},
		{"grains on squares 1, 2, 64", checkGrainsValues},
		{"grains outside the board", checkGrainsBoundary},
		{"total grains", checkTotal},
		{"board sums to total", checkBoard},
		{"lasagna timings", checkLasagna},
		{"idempotence", checkIdempotence},
	}
}

func expectSquares(n, sq, ss, diff uint32) error {
	got := squares.Compute(n)
	if got.SquareOfSum != sq || got.SumOfSquares != ss || got.Difference != diff {
		return fmt.Errorf("n=%d: got (%d, %d, %d), want (%d, %d, %d)",
			n, got.SquareOfSum, got.SumOfSquares, got.Difference, sq, ss, diff)
	}
	return nil
}

func checkDifferenceIdentity() error {
	for n := uint32(0); n <= 1000; n++ {
		if squares.DifferenceOfSquares(n) != squares.SquareOfSum(n)-squares.SumOfSquares(n) {
			return fmt.Errorf("identity does not hold for n=%d", n)
		}
	}
	return nil
}

func checkOverflowBoundary() error {
	if _, err := squares.ComputeChecked(squares.MaxExactBound); err != nil {
		return fmt.Errorf("n=%d should be exact: %v", squares.MaxExactBound, err)
	}
	if _, err := squares.ComputeChecked(squares.MaxExactBound + 1); err == nil {
		return fmt.Errorf("n=%d should overflow", squares.MaxExactBound+1)
	}
	return nil
}

func checkGrainsValues() error {
	want := map[uint8]uint64{1: 1, 2: 2, 64: 9223372036854775808}
	for index, grainCount := range want {
		if got := grains.Square(index); got != grainCount {
			return fmt.Errorf("square %d: got %d, want %d", index, got, grainCount)
		}
	}
	return nil
}

func checkGrainsBoundary() error {
	for _, index := range []uint8{0, 65} {
		if got := grains.Square(index); got != 0 {
			return fmt.Errorf("square %d: got %d, want 0", index, got)
		}
	}
	return nil
}

func checkTotal() error {
	if got := grains.Total(); got != 18446744073709551615 {
		return fmt.Errorf("got %d, want 18446744073709551615", got)
	}
	return nil
}

func checkBoard() error {
	var sum uint64
	for i, g := range grains.Board() {
		sum += g
		if through := grains.TotalThrough(uint8(i + 1)); through != sum {
			return fmt.Errorf("through square %d: got %d, want %d", i+1, through, sum)
		}
	}
	if sum != grains.Total() {
		return fmt.Errorf("board sums to %d, want %d", sum, grains.Total())
	}
	return nil
}

func checkLasagna() error {
	if got := lasagna.BakeTimeRemaining(30); got != 10 {
		return fmt.Errorf("bake time remaining after 30: got %d, want 10", got)
	}
	if got := lasagna.ElapsedTimeInMinutes(3, 20); got != 26 {
		return fmt.Errorf("elapsed for 3 layers and 20 minutes: got %d, want 26", got)
	}
	return nil
}

func checkIdempotence() error {
	first := squares.Compute(123)
	firstGrains := grains.Square(33)
	for i := 0; i < 10; i++ {
		if squares.Compute(123) != first || grains.Square(33) != firstGrains {
			return fmt.Errorf("repeated call %d returned a different value", i)
		}
	}
	return nil
}
