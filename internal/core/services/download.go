package services

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/gsearch/internal/core/domain"
	"github.com/custodia-labs/gsearch/internal/core/ports/driven"
	"github.com/custodia-labs/gsearch/internal/core/ports/driving"
	"github.com/custodia-labs/gsearch/internal/logger"
)

// Ensure BatchDownloader implements the interface.
var _ driving.DownloadService = (*BatchDownloader)(nil)

// BatchDownloader fetches each result's link and writes accepted content.
// A single item's failure is recorded in its outcome and never stops the batch.
type BatchDownloader struct {
	fetcher     driven.Fetcher
	store       driven.FileStore
	progress    driven.ProgressReporter
	concurrency int

	// mu serialises progress updates when downloads run in parallel.
	mu sync.Mutex
}

// NewBatchDownloader creates a batch downloader.
// A concurrency of 1 or less processes results sequentially.
func NewBatchDownloader(
	fetcher driven.Fetcher,
	store driven.FileStore,
	progress driven.ProgressReporter,
	concurrency int,
) *BatchDownloader {
	if concurrency < 1 {
		concurrency = 1
	}
	return &BatchDownloader{
		fetcher:     fetcher,
		store:       store,
		progress:    progress,
		concurrency: concurrency,
	}
}

// SetProgress replaces the progress reporter.
func (d *BatchDownloader) SetProgress(progress driven.ProgressReporter) {
	d.progress = progress
}

// DownloadAll processes results and returns one outcome per result, in input order.
func (d *BatchDownloader) DownloadAll(
	ctx context.Context,
	results []domain.SearchResult,
	outputDir string,
	unsafe bool,
) []domain.DownloadOutcome {
	logger.Section("Download")
	logger.Debug("Downloading %d results to %s (unsafe=%t, concurrency=%d)",
		len(results), outputDir, unsafe, d.concurrency)

	outcomes := make([]domain.DownloadOutcome, len(results))

	if d.progress != nil {
		d.progress.Start(len(results))
		defer d.progress.Finish()
	}

	if d.concurrency == 1 {
		for i := range results {
			outcomes[i] = d.downloadOne(ctx, i, results[i], outputDir, unsafe)
			d.advance(outcomes[i])
		}
	} else {
		var g errgroup.Group
		g.SetLimit(d.concurrency)
		for i := range results {
			g.Go(func() error {
				outcomes[i] = d.downloadOne(ctx, i, results[i], outputDir, unsafe)
				d.advance(outcomes[i])
				return nil
			})
		}
		_ = g.Wait() // workers never return errors
	}

	summary := domain.Summarise(outcomes)
	logger.Info("Download complete: %d saved, %d skipped, %d failed",
		summary.Accepted, summary.Rejected, summary.Failed)

	return outcomes
}

func (d *BatchDownloader) advance(outcome domain.DownloadOutcome) {
	if d.progress == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.progress.Advance(outcome)
}

// downloadOne never returns an error: every failure becomes a failed outcome.
func (d *BatchDownloader) downloadOne(
	ctx context.Context,
	index int,
	result domain.SearchResult,
	outputDir string,
	unsafe bool,
) domain.DownloadOutcome {
	outcome := domain.DownloadOutcome{Index: index, Result: result}

	logger.Debug("Fetching: %s", result.Link)
	resp, err := d.fetcher.Fetch(ctx, result.Link)
	if err != nil {
		return failed(outcome, fmt.Errorf("%w: %s: %w", domain.ErrDownloadItem, result.Link, err))
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return failed(outcome, fmt.Errorf("%w: %s: status %d", domain.ErrDownloadItem, result.Link, resp.StatusCode))
	}

	ext := domain.ExtensionFromContentType(resp.ContentType)
	outcome.Extension = ext

	if !domain.ShouldAccept(resp.ContentType, unsafe) {
		if !resp.HasContentType {
			return failed(outcome, fmt.Errorf("%w: %s: %w", domain.ErrDownloadItem, result.Link, domain.ErrMissingContentType))
		}
		outcome.Status = domain.DownloadRejected
		outcome.Reason = fmt.Sprintf("extension %q not allowed", ext)
		logger.Debug("Skipping %s: %s", result.Link, outcome.Reason)
		return outcome
	}

	path, err := d.store.Write(outputDir, result.Title, index, ext, resp.Body)
	if err != nil {
		return failed(outcome, fmt.Errorf("%w: %s: %w", domain.ErrDownloadItem, result.Link, err))
	}

	outcome.Status = domain.DownloadAccepted
	outcome.Path = path
	outcome.Bytes = len(resp.Body)
	logger.Debug("Saved %s (%d bytes)", path, outcome.Bytes)
	return outcome
}

func failed(outcome domain.DownloadOutcome, err error) domain.DownloadOutcome {
	logger.Warn("Failed to download %s: %v", outcome.Result.Link, err)
	outcome.Status = domain.DownloadFailed
	outcome.Err = err
	return outcome
}
