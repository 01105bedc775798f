package web

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cartoscope/go-mapagent/pkg/agent"
)

func testCatalog() agent.Catalog {
	return agent.Catalog{
		{Name: "zoomInMap", Description: "Zoom the map in"},
		{Name: "panToLocation", Description: "Move the map to a named location"},
	}
}

func decodeBody(t *testing.T, body io.Reader, out any) {
	t.Helper()
	if err := json.NewDecoder(body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestStateEndpoint(t *testing.T) {
	s := NewServer(Config{Addr: ":0"})
	s.UpdateState(func(st *AgentState) {
		st.Zoom = 12
		st.MapType = "roadmap"
		st.ActiveMarkers = 3
	})

	resp, err := s.app.Test(httptest.NewRequest("GET", "/api/state", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var state AgentState
	decodeBody(t, resp.Body, &state)
	if state.Zoom != 12 || state.MapType != "roadmap" || state.ActiveMarkers != 3 {
		t.Errorf("state = %+v", state)
	}
}

func TestListTools(t *testing.T) {
	s := NewServer(Config{Addr: ":0", Catalog: testCatalog()})

	resp, err := s.app.Test(httptest.NewRequest("GET", "/api/tools", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}

	var tools []ToolInfo
	decodeBody(t, resp.Body, &tools)
	if len(tools) != 2 {
		t.Fatalf("got %d tools, want 2", len(tools))
	}
	if tools[0].Name != "zoomInMap" || tools[1].Name != "panToLocation" {
		t.Errorf("tools = %+v", tools)
	}
}

func TestTriggerTool(t *testing.T) {
	s := NewServer(Config{Addr: ":0", Catalog: testCatalog()})

	var gotName string
	var gotArgs map[string]any
	s.OnToolTrigger = func(name string, args map[string]any) string {
		gotName = name
		gotArgs = args
		return "Successfully executed zoomInMap. New zoom level: 13"
	}

	req := httptest.NewRequest("POST", "/api/tools/zoomInMap", strings.NewReader(`{"args":{"level":13}}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var body map[string]string
	decodeBody(t, resp.Body, &body)
	if body["tool"] != "zoomInMap" {
		t.Errorf("tool = %q", body["tool"])
	}
	if !strings.Contains(body["result"], "zoom level: 13") {
		t.Errorf("result = %q", body["result"])
	}
	if gotName != "zoomInMap" || gotArgs["level"] != float64(13) {
		t.Errorf("trigger got %q %v", gotName, gotArgs)
	}
}

func TestTriggerToolUnconfigured(t *testing.T) {
	s := NewServer(Config{Addr: ":0"})

	resp, err := s.app.Test(httptest.NewRequest("POST", "/api/tools/zoomInMap", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != 500 {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}
}

func TestMessageEndpoint(t *testing.T) {
	s := NewServer(Config{Addr: ":0"})
	s.OnMessage = func(text string) string {
		return "Moving the map to " + text
	}

	req := httptest.NewRequest("POST", "/api/message", strings.NewReader(`{"text":"Tokyo"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var body map[string]string
	decodeBody(t, resp.Body, &body)
	if body["reply"] != "Moving the map to Tokyo" {
		t.Errorf("reply = %q", body["reply"])
	}

	resp, err = s.app.Test(httptest.NewRequest("GET", "/api/transcript", nil))
	if err != nil {
		t.Fatalf("transcript request: %v", err)
	}
	var transcript []TranscriptEntry
	decodeBody(t, resp.Body, &transcript)
	if len(transcript) != 2 {
		t.Fatalf("transcript has %d entries, want 2", len(transcript))
	}
	if transcript[0].Role != "user" || transcript[1].Role != "agent" {
		t.Errorf("transcript roles = %q, %q", transcript[0].Role, transcript[1].Role)
	}

	state := AgentState{}
	resp, _ = s.app.Test(httptest.NewRequest("GET", "/api/state", nil))
	decodeBody(t, resp.Body, &state)
	if state.LastUserMessage != "Tokyo" {
		t.Errorf("last user message = %q", state.LastUserMessage)
	}
}

func TestMessageRequiresText(t *testing.T) {
	s := NewServer(Config{Addr: ":0"})
	s.OnMessage = func(string) string { return "ok" }

	req := httptest.NewRequest("POST", "/api/message", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}
