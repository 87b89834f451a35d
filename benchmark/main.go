// Package main provides a performance benchmarking tool for the Beacon CLI.
// It generates synthetic report documents of increasing size, measures render
// times across command types, running each test multiple times and averaging,
// generating CSV output for performance analysis and documentation.
//
// Prerequisites:
// - beacon binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory to write the generated report documents to
package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (average without
// history tracking, and cold/warm averages with the sqlite store).
type BenchmarkResult struct {
	Report        string
	Command       string
	NoHistoryTime string
	ColdTime      string
	WarmTime      string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir       string
	Timeout       time.Duration
	NoHistoryRuns int
	HistoryRuns   int
	ReportSizes   map[string]int
}

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		WorkDir:       os.Args[1],
		Timeout:       time.Minute,
		NoHistoryRuns: 3,
		HistoryRuns:   4,
		ReportSizes: map[string]int{
			"small":  50,
			"medium": 500,
			"large":  5000,
		},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	reports, err := generateReports(config)
	if err != nil {
		fmt.Printf("Failed to generate reports: %v\n", err)
		os.Exit(1)
	}

	// Clear the history store so cold runs really are cold
	fmt.Printf("Clearing history...\n")
	clearCmd := exec.Command("beacon", "history", "clear")
	if output, err := clearCmd.CombinedOutput(); err != nil {
		fmt.Printf("Warning: failed to clear history: %v\nOutput: %s\n", err, string(output))
	} else {
		fmt.Printf("History cleared successfully\n")
	}

	results := runBenchmarks(config, reports)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the beacon binary and work directory exist.
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("beacon"); err != nil {
		return fmt.Errorf("beacon binary not found in PATH")
	}
	if info, err := os.Stat(config.WorkDir); err != nil || !info.IsDir() {
		return fmt.Errorf("work directory %s not found", config.WorkDir)
	}
	return nil
}

// generateReports writes one synthetic report document per configured size
// and returns their names mapped to file paths.
func generateReports(config BenchmarkConfig) (map[string]string, error) {
	reports := make(map[string]string)
	for name, auditCount := range config.ReportSizes {
		path := filepath.Join(config.WorkDir, fmt.Sprintf("beacon_bench_%s.json", name))
		doc := buildSyntheticReport(auditCount)
		data, err := json.Marshal(doc)
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, err
		}
		reports[name] = path
		fmt.Printf("Generated %s report with %d audits at %s\n", name, auditCount, path)
	}
	return reports, nil
}

// buildSyntheticReport constructs a report document with the given number of
// audits spread across metrics, opportunities, diagnostics and passed checks.
func buildSyntheticReport(auditCount int) map[string]any {
	audits := make(map[string]any, auditCount)
	refs := make([]map[string]any, 0, auditCount)

	for i := range auditCount {
		id := fmt.Sprintf("synthetic-audit-%d", i)
		var group string
		audit := map[string]any{
			"id":               id,
			"title":            fmt.Sprintf("Synthetic audit %d", i),
			"scoreDisplayMode": "numeric",
		}
		switch i % 4 {
		case 0:
			group = "metrics"
			audit["score"] = 0.95
			audit["displayValue"] = "1.2 s"
		case 1:
			group = "load-opportunities"
			audit["score"] = 0.3
			audit["details"] = map[string]any{
				"type":             "opportunity",
				"overallSavingsMs": float64(100 + i),
			}
		case 2:
			group = "diagnostics"
			audit["score"] = 0.4
			audit["displayValue"] = "3.1 s"
		default:
			group = "diagnostics"
			audit["score"] = 1.0
		}
		audits[id] = audit
		refs = append(refs, map[string]any{"id": id, "weight": 1, "group": group})
	}

	return map[string]any{
		"requestedUrl": "https://bench.example.com/",
		"finalUrl":     "https://bench.example.com/",
		"fetchTime":    time.Now().UTC().Format(time.RFC3339),
		"audits":       audits,
		"categories": map[string]any{
			"performance": map[string]any{
				"id":        "performance",
				"title":     "Performance",
				"score":     0.8,
				"auditRefs": refs,
			},
		},
		"categoryGroups": map[string]any{
			"metrics":            map[string]any{"title": "Metrics"},
			"load-opportunities": map[string]any{"title": "Opportunities"},
			"diagnostics":        map[string]any{"title": "Diagnostics"},
		},
	}
}

// runBenchmarks executes all benchmark tests across generated reports.
func runBenchmarks(config BenchmarkConfig, reports map[string]string) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d reports, %v timeout, no-history: %d runs, history: %d runs\n",
		len(reports), config.Timeout, config.NoHistoryRuns, config.HistoryRuns)

	for _, name := range []string{"small", "medium", "large"} {
		path, ok := reports[name]
		if !ok {
			continue
		}
		fmt.Printf("Benchmarking %s report\n", name)

		for _, command := range []string{"render", "opportunities", "budgets"} {
			results = append(results, runBenchmarkSuite(config, name, path, command))
		}
	}

	return results
}

// runBenchmarkSuite runs both no-history and history benchmarks for a command.
func runBenchmarkSuite(config BenchmarkConfig, name, reportPath, command string) BenchmarkResult {
	fmt.Printf("Running %s on %s report\n", command, name)

	runPhase := func(historyBackend string, numRuns int, phaseName string) (coldTime float64, avgTime string) {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, numRuns)
		cold, times := runBenchmark(config, reportPath, command, historyBackend, numRuns)
		if len(times) == 0 {
			avgTime = "TIMEOUT"
		} else {
			var sum float64
			for _, t := range times {
				sum += t
			}
			avgTime = fmt.Sprintf("%.3fs", sum/float64(len(times)))
		}
		return cold, avgTime
	}

	// Phase 1: No-history runs
	_, noHistoryAvg := runPhase("none", config.NoHistoryRuns, "No-history")

	// Phase 2: History runs
	coldTime, warmAvg := runPhase("sqlite", config.HistoryRuns, "History")

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	fmt.Printf("  No-history average: %s, Cold time: %s, Warm average: %s\n", noHistoryAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		Report:        name,
		Command:       command,
		NoHistoryTime: noHistoryAvg,
		ColdTime:      coldTimeStr,
		WarmTime:      warmAvg,
	}
}

// runBenchmark executes a beacon command multiple times with the specified
// history backend and returns the cold time and warm times.
func runBenchmark(config BenchmarkConfig, reportPath, command, historyBackend string, numRuns int) (coldTime float64, warmTimes []float64) {
	args := []string{command, reportPath, "--history-backend", historyBackend, "--color", "no", "--emoji", "no"}

	var times []float64
	for run := 1; run <= numRuns; run++ {
		start := time.Now()

		cmd := exec.Command("beacon", args...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output, command) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks if command output indicates successful completion.
func isSuccess(output []byte, command string) bool {
	outputStr := string(output)
	if command == "budgets" {
		// Budget output has no duration footer; any table or the empty
		// notice counts as success.
		return strings.Contains(outputStr, "budget") || strings.Contains(outputStr, "No budget tables")
	}
	return strings.Contains(outputStr, "Render completed in")
}

// saveResults writes benchmark results to a timestamped CSV file.
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/beacon_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"report", "cmd", "no_history_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, result := range results {
		if err := writer.Write([]string{result.Report, result.Command, result.NoHistoryTime, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary.
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	printCommandSummary(results, "render", "Full Render:")
	printCommandSummary(results, "opportunities", "Opportunities:")
	printCommandSummary(results, "budgets", "Budgets:")

	fmt.Printf("Benchmark script completed successfully\n")
}

// printCommandSummary displays results for a specific command type.
func printCommandSummary(results []BenchmarkResult, command, title string) {
	fmt.Printf("%s\n", title)
	for _, result := range results {
		if result.Command == command {
			fmt.Printf("  %-8s: No-history: %s, Cold: %s, Warm: %s\n", result.Report, result.NoHistoryTime, result.ColdTime, result.WarmTime)
		}
	}
}
