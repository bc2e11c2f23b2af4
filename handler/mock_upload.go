package handler

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/docchat/service"
	"github.com/tieubaoca/docchat/types"
)

const maxUploadSize = 50 << 20

// MockUploadHandler fakes the document-processing endpoint for offline use.
type MockUploadHandler struct {
	workDir string
}

func NewMockUploadHandler(workDir string) *MockUploadHandler {
	return &MockUploadHandler{workDir: workDir}
}

func (h *MockUploadHandler) HandleUpload(c *gin.Context) {
	file, header, err := c.Request.FormFile("document")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.UploadResponse{Error: "missing document field"})
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, types.UploadResponse{Error: "file too large"})
		return
	}
	if strings.ToLower(filepath.Ext(header.Filename)) != ".pdf" {
		c.JSON(http.StatusBadRequest, types.UploadResponse{Error: "unsupported file type"})
		return
	}

	tmp, err := os.CreateTemp(h.workDir, "docchat-mock-*.pdf")
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.UploadResponse{Error: "failed to store upload"})
		return
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		c.JSON(http.StatusInternalServerError, types.UploadResponse{Error: "failed to store upload"})
		return
	}
	tmp.Close()

	resp := types.UploadResponse{
		TotalPages:   1,
		SearchMethod: "keyword",
	}
	pages, err := service.ExtractPages(tmpPath)
	if err == nil && len(pages) > 0 {
		resp.TotalPages = len(pages)
	} else {
		resp.Warning = "could not read page structure, assuming a single page"
	}
	resp.ChunksCreated = resp.TotalPages * 3

	c.JSON(http.StatusOK, resp)
}
