package cli

import (
	"strings"
	"testing"

	"github.com/idelchi/dirgrowth/internal/growth"
	"github.com/idelchi/dirgrowth/internal/scan"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{5, "5.0"},
		{3, "3.0"},
		{2.5, "2.5"},
		{0.5, "0.5"},
		{0.25, "0.25"},
		{0.099, "0.099"},
		{0.999, "1.0"},
		{9.99, "1e+01"},
		{10, "1e+01"},
		{12.5, "1.2e+01"},
		{99, "9.9e+01"},
		{100, "1e+02"},
		{150, "1.5e+02"},
		{1234, "1.2e+03"},
		{0.000012, "1.2e-05"},
	}

	for _, tt := range tests {
		if got := formatAmount(tt.value); got != tt.want {
			t.Errorf("formatAmount(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestPrintGrowth(t *testing.T) {
	var buf strings.Builder

	entries := growth.Compare(growth.Report{"x": 10}, growth.Report{"x": 15})
	if err := PrintGrowth(entries, &buf); err != nil {
		t.Fatalf("PrintGrowth() error = %v", err)
	}

	if buf.String() != "x 5.0\n" {
		t.Errorf("PrintGrowth() = %q, want %q", buf.String(), "x 5.0\n")
	}
}

const testGiB = 1 << 30

func TestPrintReportSortsAndPrunes(t *testing.T) {
	result := &scan.Result{
		Root: &scan.Node{
			Path: "/data",
			Size: 7 * testGiB,
			Children: []*scan.Node{
				{Path: "/data/small", Size: testGiB / 2},
				{Path: "/data/big", Size: 4 * testGiB},
				{Path: "/data/mid", Size: 2 * testGiB},
			},
		},
	}

	var buf strings.Builder
	if err := PrintReport(result, testGiB, true, &buf); err != nil {
		t.Fatalf("PrintReport() error = %v", err)
	}

	want := "/data 7.0\n/data/big 4.0\n/data/mid 2.0\n"
	if buf.String() != want {
		t.Errorf("PrintReport() = %q, want %q", buf.String(), want)
	}
}

func TestPrintReportElidesSingleChildChains(t *testing.T) {
	leaf := &scan.Node{Path: "/a/b/c", Size: 2 * testGiB}
	chain := &scan.Node{
		Path: "/a",
		Size: 2 * testGiB,
		Children: []*scan.Node{
			{Path: "/a/b", Size: 2 * testGiB, Children: []*scan.Node{leaf}},
		},
	}

	var buf strings.Builder
	if err := PrintReport(&scan.Result{Root: chain}, testGiB, true, &buf); err != nil {
		t.Fatalf("PrintReport() error = %v", err)
	}

	want := "/a 2.0\n/a/b/c 2.0\n"
	if buf.String() != want {
		t.Errorf("collapsed PrintReport() = %q, want %q", buf.String(), want)
	}

	buf.Reset()
	if err := PrintReport(&scan.Result{Root: chain}, testGiB, false, &buf); err != nil {
		t.Fatalf("PrintReport() error = %v", err)
	}

	want = "/a 2.0\n/a/b 2.0\n/a/b/c 2.0\n"
	if buf.String() != want {
		t.Errorf("full PrintReport() = %q, want %q", buf.String(), want)
	}
}
