/*
Package ingest - Batch Workbook Ingestion

==============================================================================
FILE: internal/ingest/batch.go
==============================================================================

DESCRIPTION:
    Bulk workbook ingestion. The extractor touches no shared state, so many
    workbooks can be parsed concurrently and their Snapshot outputs
    concatenated before Reconcile runs. This orchestrates that fan-out with
    a bounded worker pool, cancellable at file boundaries; a workbook whose
    parse has already started runs to completion.

==============================================================================
*/
package ingest

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dopazo/hhr-census/internal/extractor"
	"github.com/dopazo/hhr-census/internal/snapshot"
)

// FileInput is one workbook submitted to a batch run.
type FileInput struct {
	Filename string
	Data     []byte
}

// FileResult is the per-file outcome of a batch run: exactly one of
// Snapshots or Err is meaningful.
type FileResult struct {
	Filename  string
	Snapshots []snapshot.Snapshot
	Err       error
}

// BatchResult is the aggregate outcome of a batch ingestion run.
type BatchResult struct {
	RunID     string
	Results   []FileResult
	Snapshots []snapshot.Snapshot // concatenated across all successful files
}

// defaultConcurrency bounds how many workbooks are parsed in parallel.
const defaultConcurrency = 4

// Batch parses every file concurrently (bounded by concurrency; <= 0 uses
// the default) and concatenates their Snapshots. A per-file ParseError does
// not abort the batch; it is recorded on that file's FileResult and the
// remaining files continue. Cancelling ctx stops new files from being
// parsed (their FileResult carries ctx.Err()); in-flight files still complete.
func Batch(ctx context.Context, files []FileInput, concurrency int) (*BatchResult, error) {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	results := make([]FileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = FileResult{Filename: f.Filename, Err: err}
				return nil
			}
			snaps, err := extractor.ParseWorkbook(f.Data, f.Filename)
			results[i] = FileResult{Filename: f.Filename, Snapshots: snaps, Err: err}
			return nil
		})
	}

	// Errors are captured per-file above; g.Wait only surfaces an error
	// returned by a goroutine, which this loop body never produces.
	_ = g.Wait()

	out := &BatchResult{RunID: uuid.NewString(), Results: results}
	for _, r := range results {
		if r.Err == nil {
			out.Snapshots = append(out.Snapshots, r.Snapshots...)
		}
	}
	return out, nil
}
