package growth

import "iter"

// Entry is a directory whose size increased between two snapshots.
type Entry struct {
	// Dir is the directory path.
	Dir string
	// Amount is the size increase. Always strictly positive.
	Amount float64
}

// Compare yields one Entry per directory in newer whose size exceeds its
// size in older, with a missing older entry counting as 0. Directories with
// zero or negative growth, and directories present only in older, are never
// yielded. Iteration order follows newer's map order and is unspecified.
func Compare(older, newer Report) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for dir, size := range newer {
			amount := size - older[dir]
			if amount > 0 {
				if !yield(Entry{Dir: dir, Amount: amount}) {
					return
				}
			}
		}
	}
}
