//go:build !windows

package scan

import (
	"os"
	"syscall"
)

// deviceID returns the device number of the filesystem holding path.
func deviceID(path string) (uint64, bool) {
	info, err := os.Lstat(path)
	if err != nil {
		return 0, false
	}

	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, false
	}

	return uint64(stat.Dev), true
}

// allocatedSize returns the on-disk size of a file.
// POSIX st.Blocks is in 512-byte units regardless of the filesystem block size.
func allocatedSize(info os.FileInfo) int64 {
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		return int64(stat.Blocks) * 512
	}

	return info.Size()
}
