package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/tieubaoca/docchat/types"
)

const uploadRemediation = "Try again with a smaller file, check that the service is reachable, or restart the session."

// runUpload drives one upload cycle against /api/upload and turns the outcome
// into the placeholder's final form. The in-flight flag is cleared on every
// path out, including a panic in response handling.
func (c *Controller) runUpload(gen uint64, doc types.Document) {
	result, err := c.client.Upload(context.Background(), doc.LocalPath, doc.Name)

	c.mu.Lock()
	defer func() {
		if gen == c.generation {
			c.processing = false
		}
		c.mu.Unlock()
		c.emit(EventStateChanged)
		c.emit(EventTranscriptChanged)
	}()

	if gen != c.generation {
		logDiscarded("upload")
		return
	}

	if err != nil {
		log.Printf("upload of %q failed: %v", doc.Name, err)
		c.transcript.Replace(c.processingID, types.System{
			Content:   fmt.Sprintf("Could not process %q: %v. %s", doc.Name, err, uploadRemediation),
			IsError:   true,
			Timestamp: time.Now(),
		})
		c.state = types.StateFailed
		return
	}

	c.transcript.Replace(c.processingID, types.System{
		Content:   uploadSummary(doc.Name, result),
		Timestamp: time.Now(),
	})
	c.state = types.StateReady
}

func uploadSummary(name string, result *types.UploadResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%q is ready: %d pages, %d chunks indexed", name, result.TotalPages, result.ChunksCreated)
	if result.SearchMethod != "" {
		fmt.Fprintf(&b, " (%s search)", result.SearchMethod)
	}
	b.WriteString(". Ask me anything about it.")
	if result.Warning != "" {
		fmt.Fprintf(&b, " Warning: %s", result.Warning)
	}
	return b.String()
}
