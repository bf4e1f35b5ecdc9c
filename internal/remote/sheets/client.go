// Package sheets talks to the hosted spreadsheet web API (an Apps Script
// style endpoint): one URL, action-dispatched JSON requests.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/subkh4n/SIPILPRO-sub001/internal/remote"
)

const defaultTimeout = 15 * time.Second

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func New(baseURL, token string) (*Client, error) {
	if baseURL == "" {
		return nil, remote.ErrNotConfigured
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("%w: invalid base URL: %v", remote.ErrNotConfigured, err)
	}

	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

// envelope is the wire format every response uses.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error,omitempty"`
}

type mutationRequest struct {
	Action string `json:"action"`
	Kind   string `json:"kind,omitempty"`
	ID     string `json:"id,omitempty"`
	Record any    `json:"record,omitempty"`
	Token  string `json:"token,omitempty"`
}

// FetchAll implements remote.Store.
func (c *Client) FetchAll(ctx context.Context) (remote.Snapshot, error) {
	var snap remote.Snapshot
	if err := c.call(ctx, mutationRequest{Action: "fetchAll"}, &snap); err != nil {
		return remote.Snapshot{}, &remote.Error{Op: "fetchAll", Err: err}
	}
	return snap, nil
}

// Create implements remote.Store. The sheet assigns the canonical id.
func (c *Client) Create(ctx context.Context, kind remote.Kind, record any) (string, error) {
	var created struct {
		ID string `json:"id"`
	}
	req := mutationRequest{Action: "create", Kind: string(kind), Record: record}
	if err := c.call(ctx, req, &created); err != nil {
		return "", &remote.Error{Op: "create", Kind: kind, Err: err}
	}
	return created.ID, nil
}

// Update implements remote.Store.
func (c *Client) Update(ctx context.Context, kind remote.Kind, id string, record any) error {
	req := mutationRequest{Action: "update", Kind: string(kind), ID: id, Record: record}
	if err := c.call(ctx, req, nil); err != nil {
		return &remote.Error{Op: "update", Kind: kind, Err: err}
	}
	return nil
}

// Delete implements remote.Store.
func (c *Client) Delete(ctx context.Context, kind remote.Kind, id string) error {
	req := mutationRequest{Action: "delete", Kind: string(kind), ID: id}
	if err := c.call(ctx, req, nil); err != nil {
		return &remote.Error{Op: "delete", Kind: kind, Err: err}
	}
	return nil
}

func (c *Client) call(ctx context.Context, req mutationRequest, out any) error {
	req.Token = c.token

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("transport: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if !env.Success {
		return fmt.Errorf("application error: %s", env.Error)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}
