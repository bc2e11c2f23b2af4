package service

import (
	"fmt"

	pdflib "github.com/ledongthuc/pdf"
	"github.com/tieubaoca/docchat/types"
)

// Viewport is the document-rendering surface. Reveal brings the region around
// the given page into the user's view, best effort.
type Viewport interface {
	Reveal(page int)
}

// MountViewport attaches the rendering surface. A nil viewport unmounts it.
func (c *Controller) MountViewport(v Viewport) {
	c.mu.Lock()
	c.viewport = v
	c.mu.Unlock()
}

// FocusCitation scrolls the mounted viewport to the cited page. Without a
// mounted viewport the call is a no-op.
func (c *Controller) FocusCitation(citation types.Citation) {
	c.mu.Lock()
	v := c.viewport
	c.mu.Unlock()
	if v == nil {
		return
	}
	v.Reveal(citation.Page)
}

// ExtractPages returns the plain text of each page of the PDF at path, for
// the viewport pane. Pages that cannot be decoded come back empty rather
// than failing the whole document.
func ExtractPages(path string) ([]string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}
	defer f.Close()

	numPages := reader.NumPage()
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}
	return pages, nil
}
