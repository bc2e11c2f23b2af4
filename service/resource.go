package service

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ResourceGuard owns the staged local copy of the selected document. At most
// one copy is alive at a time; materializing a new one releases the previous
// copy first, and Release is safe to call when nothing is held.
type ResourceGuard struct {
	stagingDir string
	path       string
}

func NewResourceGuard(stagingDir string) (*ResourceGuard, error) {
	if err := os.MkdirAll(stagingDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create staging directory: %w", err)
	}
	return &ResourceGuard{stagingDir: stagingDir}, nil
}

// Materialize copies the file at sourcePath into the staging directory under
// a timestamped name and holds the copy as the current handle. The previous
// handle, if any, is released before the copy is made.
func (g *ResourceGuard) Materialize(sourcePath string) (string, error) {
	g.Release()

	sourceFile, err := os.Open(sourcePath)
	if err != nil {
		return "", fmt.Errorf("failed to open source file: %w", err)
	}
	defer sourceFile.Close()

	originalName := filepath.Base(sourcePath)
	ext := filepath.Ext(originalName)
	baseFileName := strings.TrimSuffix(originalName, ext)
	destFileName := fmt.Sprintf("%s_%d%s", sanitizeFileName(baseFileName), time.Now().UnixNano(), ext)
	destPath := filepath.Join(g.stagingDir, destFileName)

	destFile, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("failed to create staged file: %w", err)
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		os.Remove(destPath)
		return "", fmt.Errorf("failed to copy file: %w", err)
	}

	g.path = destPath
	return destPath, nil
}

// Release removes the current staged copy. Calling it again before the next
// Materialize is a no-op.
func (g *ResourceGuard) Release() {
	if g.path == "" {
		return
	}
	if err := os.Remove(g.path); err != nil && !os.IsNotExist(err) {
		log.Println("failed to remove staged file:", err)
	}
	g.path = ""
}

// Path returns the current staged copy, or "" when nothing is held.
func (g *ResourceGuard) Path() string {
	return g.path
}

func sanitizeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.' {
			return r
		}
		return '_'
	}, name)
}
