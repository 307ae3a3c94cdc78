package scan

import "sync"

// collector aggregates sizes from concurrent fastwalk callbacks using a mutex.
type collector struct {
	mu         sync.Mutex // Protect concurrent access
	dirBytes   map[string]int64
	fileCount  int64
	totalBytes int64
	errorCount int64
}

func newCollector() *collector {
	return &collector{
		dirBytes: make(map[string]int64),
	}
}

// addError increments the error counter. This operation is protected by a
// mutex since fastwalk calls the callback from multiple goroutines
// concurrently.
func (c *collector) addError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errorCount++
}

// add records a regular file of the given size inside dir.
func (c *collector) add(dir string, size int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.fileCount++
	c.totalBytes += size
	c.dirBytes[dir] += size
}

// snapshot returns the current file and byte counts for progress reporting.
func (c *collector) snapshot() (files, bytes int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.fileCount, c.totalBytes
}

// directBytes hands out the per-directory file totals. Only valid once the
// walk has completed.
func (c *collector) directBytes() map[string]int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.dirBytes
}
