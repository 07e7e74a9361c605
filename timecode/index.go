package timecode

import (
	"github.com/samber/mo"
)

// Index resolves the annotation applicable at a playback position: the entry
// with the greatest time not exceeding it.
//
// It keeps a reverse-ordered copy of the list, recomputed only when the list
// identity changes. Every lookup is a fresh scan of that copy, so scrubbing
// backward resolves the correct older entry — no cursor is carried between
// calls.
type Index struct {
	list     List
	reversed List
}

// NewIndex creates an index over the given ascending list.
func NewIndex(list List) *Index {
	idx := &Index{}
	idx.Set(list)
	return idx
}

// Set replaces the indexed list and rebuilds the reverse copy.
// Passing the same slice again is a cheap identity no-op.
func (idx *Index) Set(list List) {
	if len(list) != 0 && len(idx.list) == len(list) && &idx.list[0] == &list[0] {
		return
	}

	idx.list = list
	idx.reversed = make(List, len(list))
	for i, entry := range list {
		idx.reversed[len(list)-1-i] = entry
	}
}

// Len returns the number of indexed entries.
func (idx *Index) Len() int {
	return len(idx.list)
}

// At returns the entry with the greatest time <= currentTime, or None when the
// position precedes the first entry (or the list is empty).
func (idx *Index) At(currentTime float64) mo.Option[*Entry] {
	for _, entry := range idx.reversed {
		if entry.Seconds <= currentTime {
			return mo.Some(entry)
		}
	}
	return mo.None[*Entry]()
}
