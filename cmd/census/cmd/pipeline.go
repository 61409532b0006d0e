/*
FILE: cmd/census/cmd/pipeline.go

DESCRIPTION:
    Shared helpers every census subcommand uses: read workbook files off
    disk, run them through ingest.Batch + reconciler.Reconcile, and write a
    Report out in whichever format the user asked for.
==============================================================================
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dopazo/hhr-census/internal/event"
	"github.com/dopazo/hhr-census/internal/exporter"
	"github.com/dopazo/hhr-census/internal/ingest"
	"github.com/dopazo/hhr-census/internal/reconciler"
	"github.com/dopazo/hhr-census/internal/render"
	"github.com/dopazo/hhr-census/internal/report"
)

// loadEvents reads every file path, extracts its Snapshots concurrently via
// ingest.Batch, and reconciles the concatenated stream into Events. A
// per-file parse failure is reported to stderr but does not abort the run.
func loadEvents(ctx context.Context, paths []string) ([]event.Event, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no workbook files given")
	}

	files := make([]ingest.FileInput, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		files = append(files, ingest.FileInput{Filename: filepath.Base(p), Data: data})
	}

	batch, err := ingest.Batch(ctx, files, 0)
	if err != nil {
		return nil, err
	}
	for _, r := range batch.Results {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "warning: %s: %v\n", r.Filename, r.Err)
		}
	}

	return reconciler.Reconcile(batch.Snapshots), nil
}

// writeReport renders r per globalFlags.Format to globalFlags.Out, or
// stdout if Out is empty.
func writeReport(r *report.Report) error {
	var data []byte
	var err error

	switch globalFlags.Format {
	case render.FormatJSON:
		return writeViaRender(r, render.FormatJSON)
	case "xlsx":
		data, err = exporter.WriteXLSX(r)
	case "pdf":
		data, err = exporter.WritePDF(r)
	default:
		return writeViaRender(r, render.FormatTable)
	}
	if err != nil {
		return err
	}
	return writeBytes(data)
}

func writeViaRender(r *report.Report, format string) error {
	if globalFlags.Out == "" {
		return render.Report(os.Stdout, r, format)
	}
	f, err := os.Create(globalFlags.Out)
	if err != nil {
		return fmt.Errorf("create %s: %w", globalFlags.Out, err)
	}
	defer f.Close()
	return render.Report(f, r, format)
}

func writeBytes(data []byte) error {
	if globalFlags.Out == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(globalFlags.Out, data, 0o644)
}
