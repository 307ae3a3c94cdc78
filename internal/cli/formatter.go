package cli

import (
	"fmt"
	"io"
	"iter"
	"sort"
	"strconv"
	"strings"

	"github.com/idelchi/dirgrowth/internal/growth"
	"github.com/idelchi/dirgrowth/internal/scan"
)

const gib = 1 << 30

// formatAmount renders a value with two significant digits: scientific
// notation when the decimal exponent is at least 1 or below -4, fixed
// notation otherwise. Insignificant trailing zeros are trimmed, but whole
// numbers keep a ".0" (5 -> "5.0", 0.5 -> "0.5", 100 -> "1e+02").
func formatAmount(value float64) string {
	sci := strconv.FormatFloat(value, 'e', 1, 64)

	tail := strings.LastIndexByte(sci, 'e')
	exp, _ := strconv.Atoi(sci[tail+1:])

	if exp < -4 || exp >= 1 {
		return strings.TrimSuffix(sci[:tail], ".0") + sci[tail:]
	}

	fixed := strconv.FormatFloat(value, 'f', 1-exp, 64)
	point := strings.IndexByte(fixed, '.')

	if trimmed := strings.TrimRight(fixed, "0"); len(trimmed) > point+1 {
		return trimmed
	}

	return fixed[:point+2]
}

// PrintGrowth writes one "<dir> <amount>" line per growth entry.
func PrintGrowth(entries iter.Seq[growth.Entry], writer io.Writer) error {
	for entry := range entries {
		if _, err := fmt.Fprintf(writer, "%s %s\n", entry.Dir, formatAmount(entry.Amount)); err != nil {
			return err
		}
	}

	return nil
}

// PrintReport writes a scan result as a size report, one "<path> <GiB>"
// line per directory of at least minSize, largest children first. With
// collapse set, chains of directories that each hold a single reportable
// subdirectory are skipped down to their last link.
func PrintReport(result *scan.Result, minSize int64, collapse bool, writer io.Writer) error {
	return printNode(result.Root, minSize, collapse, writer)
}

func printNode(node *scan.Node, minSize int64, collapse bool, writer io.Writer) error {
	sort.Slice(node.Children, func(i, j int) bool {
		return node.Children[i].Size > node.Children[j].Size
	})

	if node.Size < minSize {
		return nil
	}

	if _, err := fmt.Fprintf(writer, "%s %.1f\n", node.Path, float64(node.Size)/gib); err != nil {
		return err
	}

	if collapse && len(node.Children) == 1 && node.Children[0].Size >= minSize {
		for len(node.Children) == 1 && node.Children[0].Size >= minSize {
			node = node.Children[0]
		}

		return printNode(node, minSize, collapse, writer)
	}

	for _, child := range node.Children {
		if err := printNode(child, minSize, collapse, writer); err != nil {
			return err
		}
	}

	return nil
}
