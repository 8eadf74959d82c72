// ABOUTME: Command-line runner for shape benchmarks
// ABOUTME: Generates many paragraphs per scenario and outputs JSON statistics

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/sophiekoonin/anything-ipsum/benchmarks/shape"
)

func main() {
	// Command-line flags
	scenarioID := flag.String("scenario", "", "Run specific scenario (greek, lorem, fake). If empty, runs all scenarios.")
	outputPath := flag.String("output", "benchmark_results.json", "Output path for JSON results")
	paragraphs := flag.Int("paragraphs", 0, "Override paragraphs per scenario")
	verbose := flag.Bool("verbose", false, "Enable verbose output")
	flag.Parse()

	// Load .env file
	if err := godotenv.Load(); err != nil && *verbose {
		log.Printf("No .env file found (continuing anyway): %v", err)
	}

	fmt.Println("========================================")
	fmt.Println("Anything Ipsum Shape Benchmarks")
	fmt.Println("========================================")
	fmt.Println()

	runner := shape.NewBenchmarkRunner(os.Stdout, *verbose)

	var scenarios []shape.Scenario
	if *scenarioID == "" {
		scenarios = shape.GetAllScenarios()
	} else {
		for _, s := range shape.GetAllScenarios() {
			if s.ID == *scenarioID {
				scenarios = append(scenarios, s)
			}
		}
		if len(scenarios) == 0 {
			log.Fatalf("Unknown scenario: %s (valid options: greek, lorem, fake)", *scenarioID)
		}
	}

	results := make([]shape.Result, 0, len(scenarios))
	for _, s := range scenarios {
		if *paragraphs > 0 {
			s.Paragraphs = *paragraphs
		}
		result, err := runner.RunScenario(s)
		if err != nil {
			log.Fatalf("Scenario failed: %v", err)
		}
		results = append(results, result)
	}

	// Print summary
	fmt.Println("\n========================================")
	fmt.Println("BENCHMARK SUMMARY")
	fmt.Println("========================================")

	failed := 0
	for _, result := range results {
		m := result.Metrics
		fmt.Printf("\n%s: %s\n", result.ScenarioID, result.ScenarioName)
		if result.ErrorMessage != "" {
			fmt.Printf("  Error: %s\n", result.ErrorMessage)
		} else {
			fmt.Printf("  Paragraphs: %d (%d sentences)\n", m.Paragraphs, m.Sentences)
			fmt.Printf("  Sentence length: %.2f ± %.2f (min %d, max %d)\n",
				m.MeanSentenceLength, m.StdDevSentenceLength, m.MinSentenceLength, m.MaxSentenceLength)
			fmt.Printf("  Commas per sentence: %.2f\n", m.MeanCommasPerSentence)
			fmt.Printf("  Paragraph words: %d-%d\n", m.MinParagraphWords, m.MaxParagraphWords)
			fmt.Printf("  Violations: %d\n", m.Violations)
		}
		fmt.Printf("  Status: %s\n", result.Status)

		if result.Status != "PASS" {
			failed++
		}
	}

	fmt.Println("\n========================================")
	fmt.Printf("Total Scenarios: %d\n", len(results))
	fmt.Printf("Passed: %d\n", len(results)-failed)
	fmt.Printf("Failed: %d\n", failed)
	fmt.Println("========================================")

	if err := runner.ExportResults(results, *outputPath); err != nil {
		log.Fatalf("Failed to export results: %v", err)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
