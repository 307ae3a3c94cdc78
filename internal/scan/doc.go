// Package scan walks a directory tree and measures per-directory disk usage.
//
// It uses fastwalk for parallel traversal, never follows symlinks, and does
// not cross filesystem boundaries, so scanning "/" reports on the root
// filesystem only. Results are aggregated bottom-up into a tree of
// directory nodes suitable for rendering as a size report.
package scan
