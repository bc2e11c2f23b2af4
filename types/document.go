package types

// ProcessingState tracks the lifecycle of the selected document.
type ProcessingState string

const (
	StateEmpty     ProcessingState = "empty"
	StateUploading ProcessingState = "uploading"
	StateReady     ProcessingState = "ready"
	StateFailed    ProcessingState = "failed"
)

// Document is the single file currently selected for question answering.
// LocalPath points at the staged copy owned by the resource guard.
type Document struct {
	Name      string
	MimeType  string
	LocalPath string
}
