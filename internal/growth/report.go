package growth

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Report maps a directory path to its measured size.
//
// Looking up a path that was never recorded yields 0, which Compare relies
// on for directories that only appear in the newer snapshot.
type Report map[string]float64

// Parse reads a size report, one record per line.
//
// Fields are separated by arbitrary whitespace. The last field is the size;
// all preceding fields, rejoined with single spaces, form the path. Runs of
// whitespace inside a path therefore collapse to one space, which is lossy
// but inherent to the format. A line with a single field maps the empty
// path to that field's value.
func Parse(reader io.Reader) (Report, error) {
	report := make(Report)

	scanner := bufio.NewScanner(reader)

	line := 0
	for scanner.Scan() {
		line++

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			return nil, fmt.Errorf("line %d: empty record", line)
		}

		size, err := strconv.ParseFloat(fields[len(fields)-1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: parsing size %q: %w", line, fields[len(fields)-1], err)
		}

		report[strings.Join(fields[:len(fields)-1], " ")] = size
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}

	return report, nil
}

// Load parses the report at path. The file is fully consumed and closed
// before Load returns.
func Load(path string) (Report, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening report %q: %w", path, err)
	}
	defer file.Close()

	report, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing report %q: %w", path, err)
	}

	return report, nil
}
