package githubfile

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"shared-task-tracker/internal/tasklist/repository"
)

// Client is the HTTP wrapper around the pieces of the GitHub REST API this
// source needs: raw file reads and contents-API conditional writes.
type Client struct {
	apiBaseURL string // e.g. "https://api.github.com"
	rawBaseURL string // e.g. "https://raw.githubusercontent.com"
	owner      string
	repo       string
	branch     string
	path       string
	httpClient *http.Client
}

// NewClient creates a GitHub file client for one file in one repository.
func NewClient(apiBaseURL, rawBaseURL, owner, repo, branch, path string) *Client {
	return &Client{
		apiBaseURL: apiBaseURL,
		rawBaseURL: rawBaseURL,
		owner:      owner,
		repo:       repo,
		branch:     branch,
		path:       path,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// GetRaw fetches the file's current content from the raw host. No
// authentication: the repository is public for reads.
func (c *Client) GetRaw(ctx context.Context) (string, error) {
	url := fmt.Sprintf("%s/%s/%s/%s/%s", c.rawBaseURL, c.owner, c.repo, c.branch, c.path)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build raw file request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to fetch raw file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("raw file fetch returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read raw file body: %w", err)
	}
	return string(body), nil
}

// GetSHA fetches the file's current content hash via the contents API. A
// missing file returns an empty sha, which the update call treats as a
// create.
func (c *Client) GetSHA(ctx context.Context, token string) (string, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/contents/%s?ref=%s", c.apiBaseURL, c.owner, c.repo, c.path, c.branch)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build contents request: %w", err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	httpReq.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to call contents API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("contents API returned status %d: %s", resp.StatusCode, string(raw))
	}

	var contents struct {
		SHA string `json:"sha"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&contents); err != nil {
		return "", fmt.Errorf("failed to decode contents response: %w", err)
	}
	return contents.SHA, nil
}

// PutFile creates or replaces the file via the contents API. The sha is the
// optimistic-concurrency precondition: when it no longer matches the remote
// file (someone else wrote first), GitHub rejects the update and the error
// is ErrSaveConflict — never a silent retry.
func (c *Client) PutFile(ctx context.Context, token, content, message, sha string) error {
	url := fmt.Sprintf("%s/repos/%s/%s/contents/%s", c.apiBaseURL, c.owner, c.repo, c.path)

	payload := map[string]string{
		"message": message,
		"content": base64.StdEncoding.EncodeToString([]byte(content)),
		"branch":  c.branch,
	}
	if sha != "" {
		payload["sha"] = sha
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal contents update: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build contents update request: %w", err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	httpReq.Header.Set("Accept", "application/vnd.github+json")
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call contents update API: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		return nil
	case resp.StatusCode == http.StatusConflict || resp.StatusCode == http.StatusUnprocessableEntity:
		return repository.ErrSaveConflict
	default:
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("contents update returned status %d: %s", resp.StatusCode, string(raw))
	}
}
