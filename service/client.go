package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"time"

	"github.com/tieubaoca/docchat/types"
)

// Client talks to the document-processing and question-answering endpoints.
type Client struct {
	baseURL string
	httpc   *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 5 * time.Minute},
	}
}

// Upload posts the staged document to /api/upload and returns the processing
// summary. A server-reported error payload is returned as an error.
func (c *Client) Upload(ctx context.Context, path, fileName string) (*types.UploadResponse, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open staged file: %w", err)
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("document", fileName)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to read staged file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var result types.UploadResponse
	if resp.StatusCode != http.StatusOK {
		// The failure body may carry {error}, or nothing usable at all.
		if json.Unmarshal(data, &result) == nil && result.Error != "" {
			return nil, errors.New(result.Error)
		}
		return nil, fmt.Errorf("upload failed with status %d", resp.StatusCode)
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode upload response: %w", err)
	}
	if result.Error != "" {
		return nil, errors.New(result.Error)
	}
	return &result, nil
}

// Chat posts a question about the named document to /api/chat.
func (c *Client) Chat(ctx context.Context, message, fileName string) (*types.ChatResponse, error) {
	payload, err := json.Marshal(types.ChatRequest{
		Message:  message,
		FileName: fileName,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("chat failed with status %d", resp.StatusCode)
	}

	var result types.ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode chat response: %w", err)
	}
	return &result, nil
}
