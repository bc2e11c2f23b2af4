package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/tieubaoca/docchat/types"
)

const chatApology = "Sorry, something went wrong while answering. Please try asking again."

// Ask dispatches one question to /api/chat. Preconditions are checked before
// any mutation; a rejected call leaves the session untouched. Only one
// question may be in flight at a time.
func (c *Controller) Ask(question string) error {
	c.mu.Lock()
	var err error
	switch {
	case strings.TrimSpace(question) == "":
		err = ErrEmptyQuestion
	case c.doc == nil:
		err = ErrNoDocument
	case c.state != types.StateReady:
		err = ErrNotReady
	case c.chatBusy:
		err = ErrBusy
	}
	if err != nil {
		c.mu.Unlock()
		return err
	}

	c.transcript.Append(types.User{
		Content:   question,
		Timestamp: time.Now(),
	})
	c.chatBusy = true
	gen := c.generation
	fileName := c.doc.Name
	c.mu.Unlock()

	go c.runChat(gen, fileName, question)
	return nil
}

// runChat resolves one chat request. Failures become the fixed apology entry;
// the raw error only goes to the log. The in-flight flag is cleared on every
// path out.
func (c *Controller) runChat(gen uint64, fileName, question string) {
	result, err := c.client.Chat(context.Background(), question, fileName)

	c.mu.Lock()
	defer func() {
		c.chatBusy = false
		c.mu.Unlock()
		c.emit(EventTranscriptChanged)
	}()

	if gen != c.generation {
		logDiscarded("chat")
		return
	}

	if err != nil {
		log.Printf("chat request failed: %v", err)
		c.transcript.Append(types.Bot{
			Content:   chatApology,
			Citations: []types.Citation{},
			Timestamp: time.Now(),
		})
		return
	}

	citations := result.Citations
	if citations == nil {
		citations = []types.Citation{}
	}
	c.transcript.Append(types.Bot{
		Content:   result.Response,
		Citations: citations,
		Timestamp: time.Now(),
	})
}
