package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/idelchi/dirgrowth/internal/growth"
	"github.com/idelchi/dirgrowth/internal/scan"
)

// compare loads both reports to completion, then prints every directory
// that grew. Nothing is written unless both reports parse fully.
func compare(oldPath, newPath string, out io.Writer) error {
	older, err := growth.Load(oldPath)
	if err != nil {
		return err
	}

	newer, err := growth.Load(newPath)
	if err != nil {
		return err
	}

	return PrintGrowth(growth.Compare(older, newer), out)
}

func runScan(ctx context.Context, options scan.Options, minSize int64, collapse bool, out io.Writer) error {
	enableProgress := isatty.IsTerminal(os.Stderr.Fd())

	// Simple progress callback that prints directly to stderr
	var progressHook func(files, bytes int64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progressHook = func(files, bytes int64) {
			msg := fmt.Sprintf("Scanning… %d files, %s",
				files, humanize.IBytes(uint64(bytes))) //nolint:gosec // Bytes is always positive
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	result, err := scan.Run(ctx, options, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	return PrintReport(result, minSize, collapse, out)
}
