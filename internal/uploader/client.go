package uploader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// UploadTimeout bounds a single gateway call. Inline payloads can be large,
// so this is deliberately generous.
const UploadTimeout = 60 * time.Second

// Client talks to the image upload gateway. The gateway accepts either a
// remote URL or inline-encoded data in the "file" field and answers with a
// durable URL for the stored asset.
type Client struct {
	baseURL string
	folder  string
	client  *http.Client
}

// NewClient creates a gateway client rooted at baseURL. Uploads land in the
// given folder.
func NewClient(baseURL, folder string) *Client {
	return &Client{
		baseURL: baseURL,
		folder:  folder,
		client: &http.Client{
			Timeout: UploadTimeout,
		},
	}
}

type uploadRequest struct {
	File   string `json:"file"`
	Folder string `json:"folder"`
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
}

// Upload sends a single image to the gateway and returns its durable URL.
// Both source kinds are sent as-is; the gateway fetches remote URLs itself.
func (c *Client) Upload(ctx context.Context, src Source) (string, error) {
	body, err := json.Marshal(uploadRequest{File: src.Value, Folder: c.folder})
	if err != nil {
		return "", fmt.Errorf("marshal upload: %w", err)
	}

	reqURL := c.baseURL + "/image/upload"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("upload gateway returned status %d", resp.StatusCode)
	}

	var out uploadResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&out); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if out.SecureURL == "" {
		return "", fmt.Errorf("upload gateway returned no url")
	}

	return out.SecureURL, nil
}
