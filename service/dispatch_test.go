package service

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/tieubaoca/docchat/types"
)

func chatOK(resp types.ChatResponse) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad body", http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(resp)
	}
}

// newReadyController returns a controller with a processed document, ready
// for questions.
func newReadyController(t *testing.T, chat http.HandlerFunc) *Controller {
	t.Helper()
	c := newTestController(t, uploadOK(types.UploadResponse{TotalPages: 1, ChunksCreated: 3}), chat)
	if err := c.Select(writeSourceFile(t, "contract.pdf", "%PDF")); err != nil {
		t.Fatalf("Select: %v", err)
	}
	waitForState(t, c, types.StateReady)
	return c
}

func TestAsk_RoundTrip(t *testing.T) {
	c := newReadyController(t, chatOK(types.ChatResponse{
		Response:  "The deadline is March 1st.",
		Citations: []types.Citation{{Page: 3}, {Page: 7}},
	}))

	if err := c.Ask("What is the deadline?"); err != nil {
		t.Fatalf("Ask: %v", err)
	}
	waitForIdleChat(t, c)

	entries := c.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries (system, user, bot), got %d", len(entries))
	}
	user, ok := entries[1].(types.User)
	if !ok {
		t.Fatalf("expected a User entry, got %T", entries[1])
	}
	if user.Content != "What is the deadline?" {
		t.Errorf("user entry = %q", user.Content)
	}
	bot, ok := entries[2].(types.Bot)
	if !ok {
		t.Fatalf("expected a Bot entry, got %T", entries[2])
	}
	if bot.Content != "The deadline is March 1st." {
		t.Errorf("bot entry = %q", bot.Content)
	}
	if len(bot.Citations) != 2 || bot.Citations[0].Page != 3 || bot.Citations[1].Page != 7 {
		t.Errorf("citations = %v", bot.Citations)
	}
}

func TestAsk_EmptyQuestionRejected(t *testing.T) {
	c := newReadyController(t, chatOK(types.ChatResponse{Response: "unused"}))

	for _, q := range []string{"", "   ", "\t\n"} {
		if err := c.Ask(q); err != ErrEmptyQuestion {
			t.Errorf("Ask(%q): expected ErrEmptyQuestion, got %v", q, err)
		}
	}
	if n := len(c.Entries()); n != 1 {
		t.Errorf("rejected asks mutated the transcript: %d entries", n)
	}
}

func TestAsk_NoDocument(t *testing.T) {
	c := newTestController(t, nil, nil)
	if err := c.Ask("hello?"); err != ErrNoDocument {
		t.Fatalf("expected ErrNoDocument, got %v", err)
	}
	if n := len(c.Entries()); n != 0 {
		t.Errorf("rejected ask mutated the transcript: %d entries", n)
	}
}

func TestAsk_BlockedAfterFailedUpload(t *testing.T) {
	c := newTestController(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}, chatOK(types.ChatResponse{Response: "unused"}))
	if err := c.Select(writeSourceFile(t, "bad.pdf", "%PDF")); err != nil {
		t.Fatalf("Select: %v", err)
	}
	waitForState(t, c, types.StateFailed)

	if err := c.Ask("still there?"); err != ErrNotReady {
		t.Fatalf("expected ErrNotReady, got %v", err)
	}
	if n := len(c.Entries()); n != 1 {
		t.Errorf("rejected ask mutated the transcript: %d entries", n)
	}
}

func TestAsk_SingleInFlight(t *testing.T) {
	release := make(chan struct{})
	c := newReadyController(t, func(w http.ResponseWriter, r *http.Request) {
		<-release
		json.NewEncoder(w).Encode(types.ChatResponse{Response: "done"})
	})

	if err := c.Ask("first"); err != nil {
		t.Fatalf("first Ask: %v", err)
	}
	if err := c.Ask("second"); err != ErrBusy {
		t.Fatalf("expected ErrBusy while in flight, got %v", err)
	}
	if err := c.Ask("third"); err != ErrBusy {
		t.Fatalf("expected ErrBusy while in flight, got %v", err)
	}

	close(release)
	waitForIdleChat(t, c)

	// Exactly one user/bot pair made it through.
	entries := c.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	// Resolved means the next question is accepted again.
	if err := c.Ask("fourth"); err != nil {
		t.Fatalf("Ask after resolution: %v", err)
	}
	waitForIdleChat(t, c)
}

func TestAsk_ServerErrorYieldsApology(t *testing.T) {
	c := newReadyController(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	})

	if err := c.Ask("What happened?"); err != nil {
		t.Fatalf("Ask: %v", err)
	}
	waitForIdleChat(t, c)

	entries := c.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if _, ok := entries[1].(types.User); !ok {
		t.Fatalf("expected a User entry, got %T", entries[1])
	}
	bot, ok := entries[2].(types.Bot)
	if !ok {
		t.Fatalf("expected a Bot entry, got %T", entries[2])
	}
	if bot.Content != chatApology {
		t.Errorf("expected the fixed apology, got %q", bot.Content)
	}
	if bot.Citations == nil || len(bot.Citations) != 0 {
		t.Errorf("expected an empty citation list, got %v", bot.Citations)
	}
}

func TestAsk_MissingCitationsDefaultEmpty(t *testing.T) {
	c := newReadyController(t, chatOK(types.ChatResponse{Response: "No citations here."}))

	if err := c.Ask("Anything?"); err != nil {
		t.Fatalf("Ask: %v", err)
	}
	waitForIdleChat(t, c)

	bot := c.Entries()[2].(types.Bot)
	if bot.Citations == nil {
		t.Error("expected a non-nil empty citation list")
	}
	if len(bot.Citations) != 0 {
		t.Errorf("expected no citations, got %v", bot.Citations)
	}
}

func TestAsk_StaleReplyDiscardedAfterReset(t *testing.T) {
	release := make(chan struct{})
	c := newReadyController(t, func(w http.ResponseWriter, r *http.Request) {
		<-release
		json.NewEncoder(w).Encode(types.ChatResponse{Response: "too late"})
	})

	if err := c.Ask("slow one"); err != nil {
		t.Fatalf("Ask: %v", err)
	}
	c.Reset()
	close(release)
	waitForIdleChat(t, c)
	time.Sleep(100 * time.Millisecond)

	if n := len(c.Entries()); n != 0 {
		t.Errorf("stale chat reply wrote into the cleared transcript: %d entries", n)
	}
}
