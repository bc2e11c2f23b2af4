package service

import (
	"testing"
	"time"

	"github.com/tieubaoca/docchat/types"
)

func TestTranscript_AppendKeepsOrder(t *testing.T) {
	tr := NewTranscript()
	first := tr.Append(types.User{Content: "one", Timestamp: time.Now()})
	second := tr.Append(types.User{Content: "two", Timestamp: time.Now()})

	if first >= second {
		t.Errorf("expected increasing IDs, got %d then %d", first, second)
	}
	entries := tr.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].(types.User).Content != "one" || entries[1].(types.User).Content != "two" {
		t.Errorf("entries out of order: %v", entries)
	}
}

func TestTranscript_ReplaceKeepsPosition(t *testing.T) {
	tr := NewTranscript()
	tr.Append(types.User{Content: "before"})
	id := tr.Append(types.System{Content: "placeholder", IsProcessing: true})
	tr.Append(types.User{Content: "after"})

	if !tr.Replace(id, types.System{Content: "final"}) {
		t.Fatal("expected Replace to find the entry")
	}

	entries := tr.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	sys, ok := entries[1].(types.System)
	if !ok {
		t.Fatalf("expected a System entry in the middle, got %T", entries[1])
	}
	if sys.Content != "final" || sys.IsProcessing {
		t.Errorf("replacement not applied: %+v", sys)
	}
}

func TestTranscript_ReplaceUnknownID(t *testing.T) {
	tr := NewTranscript()
	tr.Append(types.User{Content: "hi"})
	if tr.Replace(999, types.System{Content: "nope"}) {
		t.Error("expected Replace to report an unknown ID")
	}
}

func TestTranscript_ResetClearsButIDsKeepCounting(t *testing.T) {
	tr := NewTranscript()
	last := tr.Append(types.User{Content: "old"})
	tr.Reset()

	if tr.Len() != 0 {
		t.Fatalf("expected empty transcript after reset, got %d entries", tr.Len())
	}
	next := tr.Append(types.User{Content: "new"})
	if next <= last {
		t.Errorf("expected IDs to keep counting after reset, got %d after %d", next, last)
	}
	// A stale ID from before the reset must not touch the new log.
	if tr.Replace(last, types.System{Content: "stale"}) {
		t.Error("stale ID matched an entry after reset")
	}
}

func TestTranscript_AppendNotifies(t *testing.T) {
	tr := NewTranscript()
	notified := 0
	tr.OnAppend(func() { notified++ })

	tr.Append(types.User{Content: "a"})
	tr.Append(types.User{Content: "b"})
	if notified != 2 {
		t.Errorf("expected 2 notifications, got %d", notified)
	}
}
