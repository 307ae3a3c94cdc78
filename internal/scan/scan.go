package scan

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charlievieth/fastwalk"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// Options configures a directory scan.
type Options struct {
	// Path is the directory to scan.
	Path string
	// Threads is the number of concurrent walkers (0 = fastwalk default).
	Threads int
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
}

// Result holds the outcome of a directory scan.
type Result struct {
	// Root is the scanned directory tree with cumulative sizes.
	Root *Node
	// FileCount is the number of regular files measured.
	FileCount int64
	// TotalBytes is the cumulative size of all measured files.
	TotalBytes int64
	// ErrorCount is the number of paths skipped due to errors.
	ErrorCount int64
	// Elapsed is the total time taken for the scan.
	Elapsed time.Duration
}

// startProgressReporter invokes hook(files, bytes) on each tick until ctx is done.
//
//nolint:varnamelen // c is idiomatic for collector
func startProgressReporter(ctx context.Context, c *collector, hook func(int64, int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(c.snapshot())
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Run scans the directory tree at opt.Path and returns per-directory sizes.
//
// Only regular files are measured, symlinks are never followed, and
// directories on a different filesystem than opt.Path are pruned. Sizes are
// allocated sizes where the platform exposes them, so the numbers match
// what the disk actually lost. Errors during the walk are counted and the
// affected paths skipped.
//
// The walk can be cancelled via ctx. Progress updates are sent to
// progressHook if provided.
func Run(ctx context.Context, opt Options, progressHook func(int64, int64)) (*Result, error) {
	if opt.Path == "" {
		opt.Path = "."
	}

	// Normalize to native format to handle both A/Path and A\Path inputs
	opt.Path = filepath.Clean(opt.Path)

	if statInfo, err := os.Stat(opt.Path); err != nil {
		return nil, fmt.Errorf("accessing path %q: %w", opt.Path, err)
	} else if !statInfo.IsDir() {
		return nil, fmt.Errorf("path %q is not a directory", opt.Path)
	}

	rootDevice, haveDevice := deviceID(opt.Path)

	collector := newCollector()

	// Create child context to ensure progress reporter cleanup
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgressReporter(ctx, collector, progressHook, opt.ProgressInterval)

	start := time.Now()

	conf := &fastwalk.Config{
		Follow:     false, // Don't follow symlinks
		NumWorkers: opt.Threads,
	}

	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(conf, opt.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			collector.addError()

			return nil // Skip inaccessible paths
		}

		// Check cancellation periodically
		select {
		case <-ctx.Done():
			return context.Canceled
		default:
		}

		if d.IsDir() {
			// Stay on the root's filesystem
			if haveDevice && path != opt.Path {
				if device, ok := deviceID(path); !ok || device != rootDevice {
					return filepath.SkipDir
				}
			}

			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		fileInfo, err := d.Info()
		if err != nil {
			collector.addError()

			return nil //nolint:nilerr // Intentionally skip errors during walk
		}

		collector.add(filepath.Dir(path), allocatedSize(fileInfo))

		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	files, bytes := collector.snapshot()

	return &Result{
		Root:       buildTree(opt.Path, collector.directBytes()),
		FileCount:  files,
		TotalBytes: bytes,
		ErrorCount: collector.errorCount,
		Elapsed:    time.Since(start),
	}, nil
}
