// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package rag provides the HTTP client for the archive's question-answering
// backend.
package rag

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/AngelZurita28/cosmic-archive-proto/internal/model"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents an error from the archive client.
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	// ErrTypeNetwork is a transport-level failure: no connectivity, DNS,
	// or the transport's own timeout.
	ErrTypeNetwork
	// ErrTypeAPI means the backend was reachable but answered with a
	// non-success status. Message carries the server's text when the
	// response body had one.
	ErrTypeAPI
	// ErrTypeInvalidResponse means a success status with a body that did
	// not decode.
	ErrTypeInvalidResponse
)

// ErrUnreachable is the sentinel for transport failures.
var ErrUnreachable = &ClientError{Type: ErrTypeNetwork, Message: "archive backend is unreachable"}

// IsNetworkError reports whether err is a transport-level client failure.
func IsNetworkError(err error) bool {
	var ce *ClientError
	return errors.As(err, &ce) && ce.Type == ErrTypeNetwork
}

// IsAPIError reports whether err is a non-success response from the backend.
func IsAPIError(err error) bool {
	var ce *ClientError
	return errors.As(err, &ce) && ce.Type == ErrTypeAPI
}

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the archive client.
type ClientConfig struct {
	// BaseURL is the backend base URL (default: http://127.0.0.1:8000).
	// Note: Uses an explicit IPv4 address instead of localhost to avoid
	// IPv6 resolution issues on Windows.
	BaseURL string

	// HTTPClient overrides the transport, mainly for tests. When nil the
	// default client is used; no request timeout is configured since
	// retrieval-augmented answers can legitimately take a long time.
	HTTPClient *http.Client
}

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://127.0.0.1:8000"

// =============================================================================
// CLIENT
// =============================================================================

// Client handles communication with the archive backend.
//
// The Client is safe for concurrent use; the base URL may be swapped at
// runtime when the configuration file changes.
type Client struct {
	mu         sync.RWMutex
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new archive client.
func NewClient(config ClientConfig) *Client {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// BaseURL returns the current backend base URL.
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// SetBaseURL swaps the backend base URL. Requests already in flight keep
// the URL they were built with.
func (c *Client) SetBaseURL(baseURL string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseURL = strings.TrimRight(baseURL, "/")
}

// =============================================================================
// ASK
// =============================================================================

// Ask sends one question to the backend. History is the conversation as it
// stood before the question was appended; the question is its own field.
// Exactly one attempt is made per call.
func (c *Client) Ask(ctx context.Context, question string, history []model.Message, searchMode bool) (*AskResponse, error) {
	reqBody := AskRequest{
		Question:     question,
		History:      HistoryFromMessages(history),
		IsSearchMode: searchMode,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to marshal request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL()+"/rag/ask", bytes.NewReader(body))
	if err != nil {
		return nil, &ClientError{Type: ErrTypeNetwork, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeNetwork, Message: "archive backend is unreachable", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeAPIError(resp)
	}

	var result AskResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}

	return &result, nil
}

// =============================================================================
// FUN FACT
// =============================================================================

// FunFact fetches a short fact for the welcome view.
func (c *Client) FunFact(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL()+"/rag/funfact", nil)
	if err != nil {
		return "", &ClientError{Type: ErrTypeNetwork, Message: "failed to create request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &ClientError{Type: ErrTypeNetwork, Message: "archive backend is unreachable", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", decodeAPIError(resp)
	}

	var result FunFactResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}

	return result.FunFact, nil
}

// decodeAPIError builds an ErrTypeAPI error from a non-success response,
// using the server's own message verbatim when the body carried one.
func decodeAPIError(resp *http.Response) *ClientError {
	var serverErr apiError
	if err := json.NewDecoder(resp.Body).Decode(&serverErr); err == nil && serverErr.Message != "" {
		return &ClientError{Type: ErrTypeAPI, Message: serverErr.Message}
	}
	return &ClientError{Type: ErrTypeAPI, Message: "archive request failed: " + resp.Status}
}
