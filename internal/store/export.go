package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/huangsam/statgrid/internal/contract"
	"github.com/huangsam/statgrid/internal/parquet"
)

// ExportHistory writes the totals history to two Parquet files next to outputFile.
// It returns the paths written.
func ExportHistory(ctx context.Context, hs contract.HistoryStore, outputFile string) ([]string, error) {
	if outputFile == "" {
		return nil, errors.New("--output-file is required for export command")
	}
	if hs == nil {
		return nil, errors.New("history store is not available")
	}

	status, err := hs.GetStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get history status: %w", err)
	}
	if status.TotalRuns == 0 {
		return nil, errors.New("no totals history found to export")
	}
	contract.LogInfo("Exporting %d totals runs from %s backend...", status.TotalRuns, status.Backend)

	runs, err := hs.GetAllRuns(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve totals runs: %w", err)
	}
	values, err := hs.GetAllValues(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve totals values: %w", err)
	}

	runsFile := outputFile + ".totals_runs.parquet"
	if err := parquet.WriteFile(parquet.ConvertTotalsRunRecords(runs), runsFile); err != nil {
		return nil, fmt.Errorf("failed to write totals runs: %w", err)
	}
	contract.LogInfo("Exported %d totals runs to: %s", len(runs), runsFile)

	valuesFile := outputFile + ".totals_values.parquet"
	if err := parquet.WriteFile(parquet.ConvertTotalsValueRecords(values), valuesFile); err != nil {
		return nil, fmt.Errorf("failed to write totals values: %w", err)
	}
	contract.LogInfo("Exported %d totals values to: %s", len(values), valuesFile)

	return []string{runsFile, valuesFile}, nil
}
