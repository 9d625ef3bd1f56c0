// Package api is the REST client for the donation backend. Every
// request carries the bearer credential; every response body is JSON.
// Non-2xx responses carry a "message" field which is surfaced verbatim
// to the user, never rewritten.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"mealbridge/auth"
)

// RemoteError is a non-2xx response. Message is the server-provided
// text, shown to the user as-is.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

type Client struct {
	base string
	http *http.Client
	cred *auth.Credential
	log  *slog.Logger
}

func NewClient(base string, cred *auth.Credential, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		base: base,
		http: &http.Client{Timeout: timeout},
		cred: cred,
		log:  log,
	}
}

// do issues one request and decodes the JSON response into out (which
// may be nil when the body is irrelevant). Requests are non-cancellable
// once issued beyond ctx; a superseding call never aborts an in-flight
// one, because the server re-validates every mutation anyway.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token, err := c.cred.Token(); err == nil {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("reaching %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.remoteError(resp)
	}
	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", path, err)
	}
	return nil
}

func (c *Client) remoteError(resp *http.Response) error {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		c.log.Debug("Error response carried no JSON body", "status", resp.StatusCode)
	}
	return &RemoteError{StatusCode: resp.StatusCode, Message: envelope.Message}
}
