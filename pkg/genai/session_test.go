package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// scriptedServer returns canned generateContent responses in order and
// records every request body it sees.
type scriptedServer struct {
	responses []string
	requests  []map[string]any
	lock      sync.Mutex
}

func newScriptedClient(t *testing.T, s *scriptedServer) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req map[string]any
		_ = json.Unmarshal(body, &req)

		s.lock.Lock()
		s.requests = append(s.requests, req)
		if len(s.responses) == 0 {
			s.lock.Unlock()
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"error": {"message": "script exhausted"}}`)
			return
		}
		next := s.responses[0]
		s.responses = s.responses[1:]
		s.lock.Unlock()

		fmt.Fprint(w, next)
	}))
	t.Cleanup(srv.Close)

	c, err := New("test-key", WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func textResponse(text string) string {
	return fmt.Sprintf(`{"candidates": [{"content": {"parts": [{"text": %q}]}, "finishReason": "STOP"}]}`, text)
}

func callResponse(calls ...string) string {
	parts := ""
	for i, c := range calls {
		if i > 0 {
			parts += ","
		}
		parts += fmt.Sprintf(`{"functionCall": {"name": %q, "args": {}}}`, c)
	}
	return fmt.Sprintf(`{"candidates": [{"content": {"parts": [%s]}}]}`, parts)
}

func TestSendMessagePlainText(t *testing.T) {
	srv := &scriptedServer{responses: []string{textResponse("Bonjour!")}}
	c := newScriptedClient(t, srv)
	session := NewChatSession(c, ChatConfig{})

	reply := session.SendMessage(context.Background(), "hello")
	if reply != "Bonjour!" {
		t.Errorf("reply = %q", reply)
	}
	if len(session.History()) != 1 {
		t.Errorf("history length = %d, want 1", len(session.History()))
	}
}

func TestSendMessageToolRoundTrip(t *testing.T) {
	srv := &scriptedServer{responses: []string{
		callResponse("zoomInMap"),
		textResponse("Zoomed in to level 13."),
	}}
	c := newScriptedClient(t, srv)

	var executed []string
	session := NewChatSession(c, ChatConfig{
		Executor: func(ctx context.Context, name string, args map[string]any) string {
			executed = append(executed, name)
			return "Successfully executed zoomInMap. New zoom level: 13"
		},
	})

	reply := session.SendMessage(context.Background(), "zoom in")
	if reply != "Zoomed in to level 13." {
		t.Errorf("reply = %q", reply)
	}
	if len(executed) != 1 || executed[0] != "zoomInMap" {
		t.Errorf("executed = %v", executed)
	}

	// The second request must carry the tool result back.
	srv.lock.Lock()
	defer srv.lock.Unlock()
	if len(srv.requests) != 2 {
		t.Fatalf("requests = %d, want 2", len(srv.requests))
	}
	raw, _ := json.Marshal(srv.requests[1])
	if !json.Valid(raw) {
		t.Fatal("second request not valid JSON")
	}
	body := string(raw)
	for _, want := range []string{"functionResponse", "zoomInMap", "New zoom level: 13"} {
		if !strings.Contains(body, want) {
			t.Errorf("second request missing %q", want)
		}
	}
}

func TestSendMessageMultipleCallsInOrder(t *testing.T) {
	srv := &scriptedServer{responses: []string{
		callResponse("panToLocation", "zoomInMap"),
		textResponse("moved"),
		textResponse("and zoomed"),
	}}
	c := newScriptedClient(t, srv)

	var executed []string
	session := NewChatSession(c, ChatConfig{
		Executor: func(ctx context.Context, name string, args map[string]any) string {
			executed = append(executed, name)
			return "ok"
		},
	})

	reply := session.SendMessage(context.Background(), "go to Paris and zoom in")
	if reply != "and zoomed" {
		t.Errorf("reply = %q", reply)
	}
	if len(executed) != 2 || executed[0] != "panToLocation" || executed[1] != "zoomInMap" {
		t.Errorf("execution order = %v", executed)
	}
}

func TestSendMessageFallbackOnError(t *testing.T) {
	srv := &scriptedServer{responses: nil} // every request fails
	c := newScriptedClient(t, srv)
	session := NewChatSession(c, ChatConfig{})

	reply := session.SendMessage(context.Background(), "hello")
	if reply != FallbackReply {
		t.Errorf("reply = %q, want fallback", reply)
	}

	// The session must stay usable after a failure.
	srv.lock.Lock()
	srv.responses = []string{textResponse("recovered")}
	srv.lock.Unlock()
	if reply := session.SendMessage(context.Background(), "again"); reply != "recovered" {
		t.Errorf("reply after recovery = %q", reply)
	}
}

func TestSendMessageNoExecutor(t *testing.T) {
	srv := &scriptedServer{responses: []string{
		callResponse("zoomInMap"),
		textResponse("done"),
	}}
	c := newScriptedClient(t, srv)
	session := NewChatSession(c, ChatConfig{})

	if reply := session.SendMessage(context.Background(), "zoom"); reply != "done" {
		t.Errorf("reply = %q", reply)
	}
}

func TestReset(t *testing.T) {
	srv := &scriptedServer{responses: []string{textResponse("hi")}}
	c := newScriptedClient(t, srv)
	session := NewChatSession(c, ChatConfig{})

	session.SendMessage(context.Background(), "hello")
	session.Reset()
	if len(session.History()) != 0 {
		t.Error("history should be empty after reset")
	}
}
