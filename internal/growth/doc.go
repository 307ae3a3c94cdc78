// Package growth parses directory-size reports and compares two snapshots.
//
// A report is a text file with one record per line: whitespace-separated
// path components followed by a floating-point size. Comparing an old and a
// new report yields the directories whose size grew, with the amount.
package growth
