// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package rag provides the HTTP client for the archive's question-answering
// backend.
package rag

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AngelZurita28/cosmic-archive-proto/internal/model"
)

// =============================================================================
// ASK TESTS
// =============================================================================

func TestClient_Ask_Success(t *testing.T) {
	var gotReq AskRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rag/ask" {
			t.Errorf("path = %q, want /rag/ask", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decode request: %v", err)
		}

		json.NewEncoder(w).Encode(AskResponse{
			Answer: "Microgravity is near-weightlessness.",
			Articles: []model.Article{
				{Title: "Bone loss", Summary: "Mice in orbit", Link: "https://example.org/bone"},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL})

	history := []model.Message{
		model.NewUserMessage("earlier question"),
		model.NewAssistantMessage("earlier answer", nil, false),
	}

	resp, err := client.Ask(context.Background(), "What is microgravity?", history, true)
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}

	if resp.Answer != "Microgravity is near-weightlessness." {
		t.Errorf("Answer = %q", resp.Answer)
	}
	if len(resp.Articles) != 1 || resp.Articles[0].Title != "Bone loss" {
		t.Errorf("Articles = %+v", resp.Articles)
	}

	// The question travels in its own field and is not duplicated into
	// the history.
	if gotReq.Question != "What is microgravity?" {
		t.Errorf("Question = %q", gotReq.Question)
	}
	if !gotReq.IsSearchMode {
		t.Error("IsSearchMode should be true")
	}
	if len(gotReq.History) != 2 {
		t.Fatalf("len(History) = %d, want 2", len(gotReq.History))
	}
	if gotReq.History[0].Sender != "user" || gotReq.History[0].Text != "earlier question" {
		t.Errorf("History[0] = %+v", gotReq.History[0])
	}
	if gotReq.History[1].Sender != "assistant" {
		t.Errorf("History[1].Sender = %q", gotReq.History[1].Sender)
	}
}

func TestClient_Ask_APIErrorWithMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(map[string]string{"message": "the retriever is down"})
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL})

	_, err := client.Ask(context.Background(), "q", nil, false)
	if err == nil {
		t.Fatal("expected error for 502 response")
	}
	if !IsAPIError(err) {
		t.Errorf("expected API error, got %v", err)
	}
	// The server-provided message is used verbatim.
	if err.Error() != "the retriever is down" {
		t.Errorf("err = %q, want server message verbatim", err.Error())
	}
}

func TestClient_Ask_APIErrorWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL})

	_, err := client.Ask(context.Background(), "q", nil, false)
	if !IsAPIError(err) {
		t.Fatalf("expected API error, got %v", err)
	}
}

func TestClient_Ask_NetworkError(t *testing.T) {
	// A closed server yields a transport failure.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL})

	_, err := client.Ask(context.Background(), "q", nil, false)
	if !IsNetworkError(err) {
		t.Errorf("expected network error, got %v", err)
	}
}

func TestClient_Ask_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{truncated"))
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL})

	_, err := client.Ask(context.Background(), "q", nil, false)
	if err == nil {
		t.Fatal("expected decode error")
	}
	if IsNetworkError(err) || IsAPIError(err) {
		t.Errorf("malformed success body should not classify as network or API error: %v", err)
	}
}

// =============================================================================
// FUN FACT TESTS
// =============================================================================

func TestClient_FunFact(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rag/funfact" {
			t.Errorf("path = %q, want /rag/funfact", r.URL.Path)
		}
		json.NewEncoder(w).Encode(FunFactResponse{FunFact: "Astronauts grow up to 5 cm in space."})
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL})

	fact, err := client.FunFact(context.Background())
	if err != nil {
		t.Fatalf("FunFact failed: %v", err)
	}
	if fact != "Astronauts grow up to 5 cm in space." {
		t.Errorf("fact = %q", fact)
	}
}

// =============================================================================
// BASE URL TESTS
// =============================================================================

func TestClient_SetBaseURL(t *testing.T) {
	client := NewClient(ClientConfig{BaseURL: "http://old.example.org/"})
	if got := client.BaseURL(); got != "http://old.example.org" {
		t.Errorf("BaseURL = %q, want trailing slash trimmed", got)
	}

	client.SetBaseURL("http://new.example.org")
	if got := client.BaseURL(); got != "http://new.example.org" {
		t.Errorf("BaseURL after SetBaseURL = %q", got)
	}
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(ClientConfig{})
	if got := client.BaseURL(); got != DefaultBaseURL {
		t.Errorf("default BaseURL = %q, want %q", got, DefaultBaseURL)
	}
}
