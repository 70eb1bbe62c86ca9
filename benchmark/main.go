// Package main provides a performance benchmarking tool for the statgrid CLI.
// It generates synthetic rosters of increasing size, then times each command
// when the roster is read from a file and when it is loaded from the SQLite
// store. The first store run is treated as cold and the rest are averaged as
// warm. Results are written to a CSV file for documentation.
//
// Prerequisites:
// - statgrid binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory for generated rosters and the benchmark store
package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (file average, cold store run and average of warm store runs).
type BenchmarkResult struct {
	Roster   string
	Command  string
	FileTime string
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir    string
	Timeout    time.Duration
	FileRuns   int
	StoreRuns  int
	RosterSize map[string]int
	Rosters    []string
	Commands   []string
}

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		WorkDir:   os.Args[1],
		Timeout:   2 * time.Minute,
		FileRuns:  3,
		StoreRuns: 4,
		Rosters:   []string{"league", "deep", "universe"},
		RosterSize: map[string]int{
			"league":   23,
			"deep":     400,
			"universe": 5000,
		},
		Commands: []string{"grid", "totals"},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(config, results)
}

// checkPrerequisites verifies that the statgrid binary exists and the work dir is usable
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("statgrid"); err != nil {
		return fmt.Errorf("statgrid binary not found in PATH")
	}
	return os.MkdirAll(config.WorkDir, 0o755)
}

// runBenchmarks executes all benchmark tests across the generated rosters
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d rosters, %v timeout, file: %d runs, store: %d runs\n",
		len(config.Rosters), config.Timeout, config.FileRuns, config.StoreRuns)

	for _, name := range config.Rosters {
		size := config.RosterSize[name]
		fmt.Printf("Benchmarking %s (%d slots)\n", name, size)

		rosterPath := filepath.Join(config.WorkDir, name+".json")
		if err := writeRoster(rosterPath, size); err != nil {
			fmt.Printf("  Failed to generate roster: %v\n", err)
			continue
		}

		env := benchmarkEnv(config.WorkDir)
		if _, err := run(config, env, "import", rosterPath, "--team", name); err != nil {
			fmt.Printf("  Failed to import roster: %v\n", err)
			continue
		}

		for _, command := range config.Commands {
			results = append(results, runBenchmarkSuite(config, env, name, rosterPath, command))
		}
	}

	return results
}

// runBenchmarkSuite runs both file and store benchmarks for a command
func runBenchmarkSuite(config BenchmarkConfig, env []string, name, rosterPath, command string) BenchmarkResult {
	fmt.Printf("Running %s on %s\n", command, name)

	fileTimes := runBenchmark(config, env, config.FileRuns, command, rosterPath, "--output", "csv")
	storeTimes := runBenchmark(config, env, config.StoreRuns, command, "--team", name, "--output", "csv")

	coldTime := "TIMEOUT"
	var warmTimes []float64
	if len(storeTimes) > 0 {
		coldTime = fmt.Sprintf("%.3fs", storeTimes[0])
		warmTimes = storeTimes[1:]
	}

	result := BenchmarkResult{
		Roster:   name,
		Command:  command,
		FileTime: average(fileTimes),
		ColdTime: coldTime,
		WarmTime: average(warmTimes),
	}
	fmt.Printf("  File average: %s, Cold store: %s, Warm store average: %s\n", result.FileTime, result.ColdTime, result.WarmTime)
	return result
}

// runBenchmark executes a statgrid command numRuns times and returns the successful durations in seconds
func runBenchmark(config BenchmarkConfig, env []string, numRuns int, args ...string) []float64 {
	var times []float64
	for i := 0; i < numRuns; i++ {
		start := time.Now()
		if _, err := run(config, env, args...); err == nil {
			times = append(times, time.Since(start).Seconds())
		}
	}
	return times
}

// run executes statgrid with a timeout and returns its combined output
func run(config BenchmarkConfig, env []string, args ...string) ([]byte, error) {
	cmd := exec.Command("statgrid", args...)
	cmd.Env = env

	done := make(chan struct{})
	var output []byte
	var cmdErr error

	go func() {
		output, cmdErr = cmd.CombinedOutput()
		close(done)
	}()

	select {
	case <-done:
		return output, cmdErr
	case <-time.After(config.Timeout):
		_ = cmd.Process.Kill()
		<-done
		return nil, fmt.Errorf("statgrid %s timed out", strings.Join(args, " "))
	}
}

// benchmarkEnv keeps the benchmark store apart from the user's own.
func benchmarkEnv(workDir string) []string {
	return append(os.Environ(),
		"STATGRID_STORE_BACKEND=sqlite",
		"STATGRID_STORE_DB_CONNECT="+filepath.Join(workDir, "benchmark_rosters.db"),
		"STATGRID_COLOR=no",
	)
}

// writeRoster writes a roster of size hitters with random season, rolling and accrued lines
func writeRoster(path string, size int) error {
	positions := []string{"C", "1B", "2B", "3B", "SS", "OF", "OF", "OF", "UT", "BN"}
	type slot struct {
		Position string         `json:"position"`
		Entity   map[string]any `json:"entity"`
	}

	r := rand.New(rand.NewPCG(uint64(size), 42))
	line := func(games int) map[string]float64 {
		ab := float64(games * (3 + r.IntN(2)))
		h := float64(int(ab * (0.2 + r.Float64()*0.12)))
		return map[string]float64{
			"G": float64(games), "AB": ab, "H": h,
			"R": float64(r.IntN(games + 1)), "HR": float64(r.IntN(games/4 + 1)),
			"RBI": float64(r.IntN(games + 1)), "SB": float64(r.IntN(games/5 + 1)),
		}
	}

	slots := make([]slot, size)
	for i := range slots {
		slots[i] = slot{
			Position: positions[i%len(positions)],
			Entity: map[string]any{
				"id":         fmt.Sprintf("bench-%d", i),
				"first_name": fmt.Sprintf("Player%d", i),
				"last_name":  fmt.Sprintf("Bench%d", i),
				"team":       "BEN",
				"stats": map[string]any{
					"season":         line(100 + r.IntN(60)),
					"rolling_14_day": line(8 + r.IntN(6)),
					"accrued":        line(40 + r.IntN(40)),
				},
			},
		}
	}

	data, err := json.Marshal(slots)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// average formats the mean of times, or TIMEOUT when nothing succeeded
func average(times []float64) string {
	if len(times) == 0 {
		return "TIMEOUT"
	}
	var sum float64
	for _, t := range times {
		sum += t
	}
	return fmt.Sprintf("%.3fs", sum/float64(len(times)))
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/statgrid_benchmark_%s.csv", timestamp)

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

	if err := writer.Write([]string{"roster", "cmd", "file_avg", "store_cold", "store_warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, result := range results {
		if err := writer.Write([]string{result.Roster, result.Command, result.FileTime, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(config BenchmarkConfig, results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, command := range config.Commands {
		fmt.Printf("%s:\n", command)
		for _, result := range results {
			if result.Command == command {
				fmt.Printf("  %-10s: File: %s, Cold: %s, Warm: %s\n", result.Roster, result.FileTime, result.ColdTime, result.WarmTime)
			}
		}
	}
}
