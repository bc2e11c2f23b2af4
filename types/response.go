package types

// UploadResponse is the body returned by /api/upload. On failure the server
// may answer with just the error field, or with a bare non-2xx status.
type UploadResponse struct {
	TotalPages    int    `json:"totalPages"`
	ChunksCreated int    `json:"chunksCreated"`
	SearchMethod  string `json:"searchMethod,omitempty"`
	Warning       string `json:"warning,omitempty"`
	Error         string `json:"error,omitempty"`
}

// ChatResponse is the body returned by /api/chat.
type ChatResponse struct {
	Response  string     `json:"response"`
	Citations []Citation `json:"citations,omitempty"`
}
