// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AngelZurita28/cosmic-archive-proto/internal/model"
	"github.com/AngelZurita28/cosmic-archive-proto/internal/rag"
	"github.com/AngelZurita28/cosmic-archive-proto/internal/session"
)

// =============================================================================
// ASK COMMAND TESTS
// =============================================================================

func TestAskCmd_DeliversAnswerWithCapturedAsk(t *testing.T) {
	var gotReq rag.AskRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rag/ask" {
			t.Errorf("path = %q, want /rag/ask", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(rag.AskResponse{Answer: "Plants reorient via gravitropism."})
	}))
	defer srv.Close()

	client := rag.NewClient(rag.ClientConfig{BaseURL: srv.URL})

	ask := session.Ask{
		ConversationID: "conv-42",
		Question:       "How do plants sense up in orbit?",
		History: []model.Message{
			model.NewUserMessage("earlier question"),
			model.NewAssistantMessage("earlier answer", nil, false),
		},
		SearchMode: true,
	}

	msg := AskCmd(client, ask)()
	answer, ok := msg.(AnswerMsg)
	if !ok {
		t.Fatalf("msg = %T, want AnswerMsg", msg)
	}

	if answer.Err != nil {
		t.Fatalf("AnswerMsg.Err = %v", answer.Err)
	}
	if answer.Ask.ConversationID != "conv-42" {
		t.Errorf("Ask.ConversationID = %q, want conv-42", answer.Ask.ConversationID)
	}
	if answer.Resp == nil || answer.Resp.Answer != "Plants reorient via gravitropism." {
		t.Errorf("Resp = %+v", answer.Resp)
	}

	// The stored history goes over the wire converted exactly once: same
	// number of entries, role and text intact.
	if len(gotReq.History) != 2 {
		t.Fatalf("len(History) = %d, want 2", len(gotReq.History))
	}
	if gotReq.History[0].Sender != "user" || gotReq.History[0].Text != "earlier question" {
		t.Errorf("History[0] = %+v", gotReq.History[0])
	}
	if gotReq.History[1].Sender != "assistant" || gotReq.History[1].Text != "earlier answer" {
		t.Errorf("History[1] = %+v", gotReq.History[1])
	}
	if !gotReq.IsSearchMode {
		t.Error("IsSearchMode should be true")
	}
}

func TestAskCmd_CarriesErrorBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := rag.NewClient(rag.ClientConfig{BaseURL: srv.URL})
	ask := session.Ask{ConversationID: "conv-1", Question: "q"}

	msg := AskCmd(client, ask)()
	answer, ok := msg.(AnswerMsg)
	if !ok {
		t.Fatalf("msg = %T, want AnswerMsg", msg)
	}
	if !rag.IsNetworkError(answer.Err) {
		t.Errorf("expected network error, got %v", answer.Err)
	}
	if answer.Ask.ConversationID != "conv-1" {
		t.Errorf("Ask.ConversationID = %q", answer.Ask.ConversationID)
	}
}

// =============================================================================
// FUN FACT COMMAND TESTS
// =============================================================================

func TestFunFactCmd_DeliversFact(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rag/funfact" {
			t.Errorf("path = %q, want /rag/funfact", r.URL.Path)
		}
		json.NewEncoder(w).Encode(rag.FunFactResponse{FunFact: "Tardigrades survive vacuum."})
	}))
	defer srv.Close()

	client := rag.NewClient(rag.ClientConfig{BaseURL: srv.URL})

	msg := FunFactCmd(client)()
	fact, ok := msg.(FunFactMsg)
	if !ok {
		t.Fatalf("msg = %T, want FunFactMsg", msg)
	}
	if fact.Err != nil {
		t.Fatalf("FunFactMsg.Err = %v", fact.Err)
	}
	if fact.Fact != "Tardigrades survive vacuum." {
		t.Errorf("Fact = %q", fact.Fact)
	}
}

func TestFunFactCmd_ErrorLeavesFactEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := rag.NewClient(rag.ClientConfig{BaseURL: srv.URL})

	msg := FunFactCmd(client)()
	fact, ok := msg.(FunFactMsg)
	if !ok {
		t.Fatalf("msg = %T, want FunFactMsg", msg)
	}
	if fact.Err == nil {
		t.Fatal("expected error from 503 response")
	}
	if fact.Fact != "" {
		t.Errorf("Fact = %q, want empty on error", fact.Fact)
	}
}
