package emu

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 120 * time.Second

// Client interfaces with the EMu HTTP gateway. One client serves all modules;
// Module binds it to a single table.
//
// There is no retry here on purpose: the importer treats any transport error
// as fatal to the current run and relies on the next scheduled run to resume
// from the persisted checkpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new EMu gateway client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Module returns a Module bound to the named EMu table.
func (c *Client) Module(name string) Module {
	return &clientModule{client: c, name: name}
}

type clientModule struct {
	client *Client
	name   string
}

type searchRequest struct {
	Terms Terms   `json:"terms,omitempty"`
	Keys  []int64 `json:"keys,omitempty"`
}

type searchResponse struct {
	Hits int `json:"hits"`
}

type fetchRequest struct {
	Flag    string   `json:"flag"`
	Offset  int      `json:"offset"`
	Count   int      `json:"count"`
	Columns []string `json:"columns"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (m *clientModule) FindTerms(ctx context.Context, terms Terms) (int, error) {
	var resp searchResponse
	err := m.client.post(ctx, fmt.Sprintf("/modules/%s/search", m.name), searchRequest{Terms: terms}, &resp)
	if err != nil {
		return 0, fmt.Errorf("find terms on %s: %w", m.name, err)
	}
	return resp.Hits, nil
}

func (m *clientModule) FindKeys(ctx context.Context, keys []int64) (int, error) {
	var resp searchResponse
	err := m.client.post(ctx, fmt.Sprintf("/modules/%s/search", m.name), searchRequest{Keys: keys}, &resp)
	if err != nil {
		return 0, fmt.Errorf("find keys on %s: %w", m.name, err)
	}
	return resp.Hits, nil
}

func (m *clientModule) Fetch(ctx context.Context, flag string, offset, count int, columns []string) (*Results, error) {
	var resp Results
	req := fetchRequest{Flag: flag, Offset: offset, Count: count, Columns: columns}
	err := m.client.post(ctx, fmt.Sprintf("/modules/%s/fetch", m.name), req, &resp)
	if err != nil {
		return nil, fmt.Errorf("fetch from %s: %w", m.name, err)
	}
	return &resp, nil
}

func (m *clientModule) FetchResource(ctx context.Context, irn int64) (io.ReadCloser, error) {
	url := fmt.Sprintf("%s/modules/%s/resource/%d", m.client.baseURL, m.name, irn)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := m.client.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		defer resp.Body.Close()
		var errResp errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil &&
			errResp.Error == "MultimediaResolutionNotFound" {
			return nil, ErrResolutionNotFound
		}
		return nil, &ServerError{StatusCode: resp.StatusCode}
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &ServerError{StatusCode: resp.StatusCode}
	}

	return resp.Body, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		if len(body) > 0 {
			return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
		}
		return &ServerError{StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
