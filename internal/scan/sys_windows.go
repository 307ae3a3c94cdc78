//go:build windows

package scan

import "os"

// deviceID reports no device information on Windows, disabling
// filesystem-boundary pruning there.
func deviceID(path string) (uint64, bool) {
	return 0, false
}

// allocatedSize falls back to the apparent size on Windows.
func allocatedSize(info os.FileInfo) int64 {
	return info.Size()
}
