package console

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"
)

// Client wraps every outbound call with credential attachment, unauthorized
// teardown, and error normalization. Session teardown on a 401 is its only
// implicit side effect; all other effects are caller-driven.
type Client struct {
	base  string
	http  *http.Client
	store CredentialStore

	// onUnauthorized is invoked exactly once per 401 response, before
	// ErrUnauthorized is returned to the caller.
	onUnauthorized func()
}

// NewClient returns a Client for the API at base (e.g. "http://host:8080").
func NewClient(base string, store CredentialStore, onUnauthorized func()) *Client {
	return &Client{
		base:           base,
		http:           &http.Client{Timeout: 30 * time.Second},
		store:          store,
		onUnauthorized: onUnauthorized,
	}
}

// errorEnvelope matches the backend's error body. The legacy "message" key is
// accepted as a fallback.
type errorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Do performs one authenticated call. A nil out discards the payload; a 204
// yields no payload by contract. On 401 the persisted credential and session
// are torn down before ErrUnauthorized is returned; callers must not retry.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.store.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return ErrUnauthorized
	}

	if resp.StatusCode >= 400 {
		var envelope errorEnvelope
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		msg := envelope.Error
		if msg == "" {
			msg = envelope.Message
		}
		return &RequestError{StatusCode: resp.StatusCode, Message: msg}
	}

	if resp.StatusCode == http.StatusNoContent || out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
