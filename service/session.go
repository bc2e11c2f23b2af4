package service

import (
	"errors"
	"fmt"
	"log"
	"mime"
	"path/filepath"
	"sync"
	"time"

	"github.com/tieubaoca/docchat/types"
)

const acceptedMimeType = "application/pdf"

var (
	ErrUnsupportedType = errors.New("only PDF documents are supported")
	ErrNoDocument      = errors.New("no document selected")
	ErrNotReady        = errors.New("document is not ready for questions")
	ErrEmptyQuestion   = errors.New("question is empty")
	ErrBusy            = errors.New("a question is already in flight")
)

// Event notifies the view layer that controller state changed.
type Event int

const (
	EventTranscriptChanged Event = iota
	EventStateChanged
)

// Controller owns the document session: the selected document, its lifecycle
// state, and the transcript. All mutation happens under one lock; the two
// network calls run in their own goroutines and re-acquire it on completion.
type Controller struct {
	mu         sync.Mutex
	client     *Client
	guard      *ResourceGuard
	transcript *Transcript

	doc   *types.Document
	state types.ProcessingState

	// generation is bumped on every select and reset. Network completions
	// carry the generation they started under and are discarded when the
	// session has moved on.
	generation   uint64
	processing   bool
	processingID int
	chatBusy     bool

	viewport Viewport
	events   chan Event
}

func NewController(client *Client, guard *ResourceGuard) *Controller {
	c := &Controller{
		client:     client,
		guard:      guard,
		transcript: NewTranscript(),
		state:      types.StateEmpty,
		events:     make(chan Event, 64),
	}
	c.transcript.OnAppend(func() { c.emit(EventTranscriptChanged) })
	return c
}

// Events delivers change notifications to the view layer. Notifications are
// dropped, not blocked on, when nobody is draining the channel.
func (c *Controller) Events() <-chan Event {
	return c.events
}

func (c *Controller) emit(ev Event) {
	select {
	case c.events <- ev:
	default:
	}
}

// Select validates the candidate file, stages a local copy, seeds the
// transcript with a processing placeholder and starts the upload. The type
// check happens before any mutation; a rejected candidate leaves the session
// untouched.
func (c *Controller) Select(path string) error {
	if mime.TypeByExtension(filepath.Ext(path)) != acceptedMimeType {
		return ErrUnsupportedType
	}

	c.mu.Lock()
	handle, err := c.guard.Materialize(path)
	if err != nil {
		// The previous handle is already gone, so the session cannot
		// keep pointing at its old document.
		c.clearLocked()
		c.mu.Unlock()
		c.emit(EventStateChanged)
		return fmt.Errorf("failed to stage document: %w", err)
	}

	name := filepath.Base(path)
	c.doc = &types.Document{
		Name:      name,
		MimeType:  acceptedMimeType,
		LocalPath: handle,
	}
	c.state = types.StateUploading
	c.generation++
	gen := c.generation
	c.transcript.Reset()
	c.processingID = c.transcript.Append(types.System{
		Content:      fmt.Sprintf("Processing %q…", name),
		IsProcessing: true,
		Timestamp:    time.Now(),
	})
	c.processing = true
	doc := *c.doc
	c.mu.Unlock()

	c.emit(EventStateChanged)
	go c.runUpload(gen, doc)
	return nil
}

// Reset releases the staged copy and returns the session to its initial
// state. It never fails.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.clearLocked()
	c.mu.Unlock()
	c.emit(EventStateChanged)
	c.emit(EventTranscriptChanged)
}

// clearLocked drops the document, transcript and upload flag. The chat
// in-flight flag is left alone: an old request may still be on the wire and
// only one may exist at a time, whatever the document state.
func (c *Controller) clearLocked() {
	c.guard.Release()
	c.doc = nil
	c.state = types.StateEmpty
	c.generation++
	c.processing = false
	c.transcript.Reset()
}

// Document returns a copy of the selected document, or nil.
func (c *Controller) Document() *types.Document {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.doc == nil {
		return nil
	}
	doc := *c.doc
	return &doc
}

func (c *Controller) State() types.ProcessingState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Entries returns the transcript in insertion order.
func (c *Controller) Entries() []types.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.transcript.Entries()
}

// Processing reports whether an upload cycle is in flight.
func (c *Controller) Processing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.processing
}

// ChatBusy reports whether a chat request is in flight.
func (c *Controller) ChatBusy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.chatBusy
}

func logDiscarded(op string) {
	log.Printf("discarding stale %s result: session has moved on", op)
}
