package cli

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/idelchi/dirgrowth/internal/scan"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// ErrUsage is returned when the compare command does not receive exactly
// two report paths.
var ErrUsage = errors.New("expected two file arguments: old new")

func (c CLI) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "dirgrowth <old-report> <new-report>",
		Short: "Report directories that grew between two size snapshots",
		Long: heredoc.Doc(`
			dirgrowth compares two directory-size reports and prints, for every
			directory in the new report, how much it grew. Directories that
			shrank, stayed the same, or only appear in the old report are
			omitted.

			A report holds one record per line: the directory path (which may
			contain spaces) followed by a numeric size. 'dirgrowth scan'
			produces reports in this format.

			Typical usage:

				dirgrowth scan /var > old.txt
				# ...some time later...
				dirgrowth scan /var > new.txt
				dirgrowth old.txt new.txt
		`),
		Version: c.version,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 {
				return ErrUsage
			}

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return compare(args[0], args[1], cmd.OutOrStdout())
		},
	}

	root.AddCommand(c.scanCommand())

	return root
}

func (c CLI) scanCommand() *cobra.Command {
	var (
		options    scan.Options
		minSizeStr string
		noElision  bool
	)

	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Measure directory sizes and write a report to stdout",
		Long: heredoc.Doc(`
			scan walks a directory tree and reports directories larger than a
			minimum size, one per line, as '<path> <size-in-GiB>'.

			The walk stays on the path's filesystem, so scanning '/' reports on
			the root filesystem only, and symlinks are never followed. Chains
			of directories that each hold a single reportable subdirectory are
			collapsed to their last link unless --no-elision is given.
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				options.Path = args[0]
			}

			// Parse minSize string to bytes
			minSize, err := humanize.ParseBytes(minSizeStr)
			if err != nil {
				return fmt.Errorf("invalid min-size: %w", err)
			}

			//nolint:gosec // Size conversion from humanize is safe
			return runScan(cmd.Context(), options, int64(minSize), !noElision, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVarP(&options.Threads, "threads", "t", 4,
		"Number of concurrent walkers (4 suits SSDs, 1 magnetic disks)")
	cmd.Flags().StringVar(&minSizeStr, "min-size", "1GiB", "Minimum reportable directory size (e.g. 512MiB)")
	cmd.Flags().BoolVar(&noElision, "no-elision", false, "Full display of single-child directory chains")

	return cmd
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute() error {
	return c.rootCommand().Execute()
}
