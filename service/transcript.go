package service

import "github.com/tieubaoca/docchat/types"

type entryRecord struct {
	id    int
	entry types.Entry
}

// Transcript is the ordered conversation log. Entries are only ever appended,
// except for the single replace-in-place the upload cycle performs on its
// processing placeholder. Not safe for concurrent use on its own; the
// controller's lock covers it.
type Transcript struct {
	nextID   int
	items    []entryRecord
	onAppend func()
}

func NewTranscript() *Transcript {
	return &Transcript{nextID: 1}
}

// OnAppend registers a scroll-to-newest notification for the view layer.
func (t *Transcript) OnAppend(fn func()) {
	t.onAppend = fn
}

// Append adds an entry at the end and returns its stable ID.
func (t *Transcript) Append(entry types.Entry) int {
	id := t.nextID
	t.nextID++
	t.items = append(t.items, entryRecord{id: id, entry: entry})
	if t.onAppend != nil {
		t.onAppend()
	}
	return id
}

// Replace swaps the entry with the given ID in place, keeping its position.
// It reports whether the ID was found.
func (t *Transcript) Replace(id int, entry types.Entry) bool {
	for i := range t.items {
		if t.items[i].id == id {
			t.items[i].entry = entry
			return true
		}
	}
	return false
}

// Entries returns the log in insertion order.
func (t *Transcript) Entries() []types.Entry {
	out := make([]types.Entry, len(t.items))
	for i, rec := range t.items {
		out[i] = rec.entry
	}
	return out
}

func (t *Transcript) Len() int {
	return len(t.items)
}

// Reset drops every entry. Entry IDs keep counting up so a stale ID from
// before the reset can never match a new entry.
func (t *Transcript) Reset() {
	t.items = nil
}
