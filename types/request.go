package types

// ChatRequest is the body posted to /api/chat.
type ChatRequest struct {
	Message  string `json:"message"`
	FileName string `json:"fileName"`
}
