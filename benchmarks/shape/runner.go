// ABOUTME: Runner for shape benchmarks - generates paragraphs and collects metrics
// ABOUTME: Resolves scenario vocabularies, drives IpsumService, and exports JSON results

package shape

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/sophiekoonin/anything-ipsum/internal/core"
	"github.com/sophiekoonin/anything-ipsum/internal/vocab"
)

// BenchmarkRunner executes shape benchmark scenarios
type BenchmarkRunner struct {
	verbose bool
	out     io.Writer
}

// NewBenchmarkRunner creates a new benchmark runner writing progress to out
func NewBenchmarkRunner(out io.Writer, verbose bool) *BenchmarkRunner {
	if out == nil {
		out = io.Discard
	}
	return &BenchmarkRunner{verbose: verbose, out: out}
}

// RunScenario executes a single scenario
func (r *BenchmarkRunner) RunScenario(s Scenario) (Result, error) {
	if r.verbose {
		fmt.Fprintf(r.out, "Running %s (%d paragraphs, seed %d)\n", s.ID, s.Paragraphs, s.Seed)
	}

	words := s.Words
	if len(words) == 0 {
		builtin, err := vocab.Builtin(s.Vocabulary, vocab.DefaultSize, s.Seed)
		if err != nil {
			return Result{}, fmt.Errorf("resolving vocabulary: %w", err)
		}
		words = builtin
	}

	logger := log.New(io.Discard, "", 0)
	if r.verbose {
		logger = log.New(r.out, "  ", 0)
	}
	svc := core.NewIpsumService(core.WithSeed(s.Seed), core.WithLogger(logger))
	calc := NewMetricsCalculator()

	start := time.Now()
	for i := 0; i < s.Paragraphs; i++ {
		p, err := svc.Compose(words)
		if err != nil {
			return Result{
				ScenarioID:   s.ID,
				ScenarioName: s.Name,
				Status:       "FAIL",
				ErrorMessage: err.Error(),
			}, nil
		}
		calc.Add(p)
	}
	elapsed := time.Since(start)

	metrics := calc.Result()
	status, details := Evaluate(s, metrics)
	details["elapsed_ms"] = elapsed.Milliseconds()
	details["vocabulary_size"] = len(words)

	return Result{
		ScenarioID:   s.ID,
		ScenarioName: s.Name,
		Metrics:      metrics,
		Status:       status,
		Details:      details,
	}, nil
}

// RunAllScenarios executes every scenario
func (r *BenchmarkRunner) RunAllScenarios() ([]Result, error) {
	scenarios := GetAllScenarios()
	results := make([]Result, 0, len(scenarios))

	for _, s := range scenarios {
		result, err := r.RunScenario(s)
		if err != nil {
			return nil, fmt.Errorf("scenario %s failed: %w", s.ID, err)
		}
		results = append(results, result)
	}

	return results, nil
}

// ExportResults writes results with a pass/fail summary as JSON
func (r *BenchmarkRunner) ExportResults(results []Result, outputPath string) error {
	passed := 0
	for _, result := range results {
		if result.Status == "PASS" {
			passed++
		}
	}

	summary := map[string]interface{}{
		"timestamp":       time.Now().Format(time.RFC3339),
		"total_scenarios": len(results),
		"passed":          passed,
		"failed":          len(results) - passed,
		"results":         results,
	}

	jsonData, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write results file: %w", err)
	}

	fmt.Fprintf(r.out, "✓ Results exported to: %s\n", outputPath)
	return nil
}
