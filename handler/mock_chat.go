package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/docchat/types"
)

// MockChatHandler fakes the question-answering endpoint with a canned answer.
type MockChatHandler struct{}

func NewMockChatHandler() *MockChatHandler {
	return &MockChatHandler{}
}

func (h *MockChatHandler) HandleChat(c *gin.Context) {
	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty message"})
		return
	}

	c.JSON(http.StatusOK, types.ChatResponse{
		Response: fmt.Sprintf("This is a mock answer about %q. You asked: %s", req.FileName, req.Message),
		Citations: []types.Citation{
			{Page: 1},
		},
	})
}
