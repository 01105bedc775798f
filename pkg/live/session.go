// Package live manages the realtime duplex session with the model:
// a persistent WebSocket carrying microphone audio upstream and
// streamed speech plus tool calls downstream.
package live

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/cartoscope/go-mapagent/pkg/audioio"
)

const (
	defaultBaseURL = "wss://generativelanguage.googleapis.com/ws/google.ai.generativelanguage.v1beta.GenerativeService.BidiGenerateContent"
	defaultModel   = "models/gemini-2.0-flash-exp"

	inputMimeType = "audio/pcm;rate=16000"

	defaultGreeting = "Please say hello and tell me you can move the map, zoom, search for places and give directions."
)

// State is the connection state of a session.
type State int

const (
	StateIdle State = iota
	StateConnecting
	StateOpen
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	}
	return "unknown"
}

// ToolExecutor runs one tool call and returns its textual result.
type ToolExecutor interface {
	Execute(ctx context.Context, name string, args map[string]any) string
	Declarations() []map[string]any
}

// Config wires a Session.
type Config struct {
	// APIKey authenticates the WebSocket dial. Required.
	APIKey string

	// Model overrides the default live model name.
	Model string

	// BaseURL overrides the endpoint. Used in tests.
	BaseURL string

	// SystemPrompt, when set, is sent in the session setup.
	SystemPrompt string

	// Greeting is the scripted first prompt sent after setup; empty
	// selects the default. Set to "-" to skip the greeting entirely.
	Greeting string

	// Executor handles inbound tool calls. Required.
	Executor ToolExecutor

	Logger *slog.Logger
}

// Session is one duplex connection. Connect moves it idle to
// connecting to open; Close moves it to closed. There is no automatic
// reconnection: a closed session stays closed and a fresh one must be
// created to reconnect.
type Session struct {
	cfg    Config
	logger *slog.Logger

	ws   *websocket.Conn
	wsMu sync.Mutex

	mu         sync.RWMutex
	state      State
	generation int

	scheduler *audioio.Scheduler

	// Callbacks, set before Connect.
	onAudio        func(pcm []byte, start time.Time)
	onText         func(text string)
	onInterrupted  func()
	onTurnComplete func()
	onClose        func()
	onError        func(err error)
}

// NewSession creates an idle session.
func NewSession(cfg Config) (*Session, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("live: API key is required")
	}
	if cfg.Executor == nil {
		return nil, fmt.Errorf("live: tool executor is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		cfg:       cfg,
		logger:    logger.With("component", "live.session"),
		state:     StateIdle,
		scheduler: audioio.NewScheduler(),
	}, nil
}

// OnAudio sets the callback for scheduled playback chunks. The start
// time is when the chunk should begin playing.
func (s *Session) OnAudio(fn func(pcm []byte, start time.Time)) { s.onAudio = fn }

// OnText sets the callback for streamed text parts.
func (s *Session) OnText(fn func(text string)) { s.onText = fn }

// OnInterrupted sets the callback for model interruption, fired when
// the user talks over the response.
func (s *Session) OnInterrupted(fn func()) { s.onInterrupted = fn }

// OnTurnComplete sets the callback for end of a model turn.
func (s *Session) OnTurnComplete(fn func()) { s.onTurnComplete = fn }

// OnClose sets the callback fired once when the session closes.
func (s *Session) OnClose(fn func()) { s.onClose = fn }

// OnError sets the error callback for read-loop failures.
func (s *Session) OnError(fn func(err error)) { s.onError = fn }

// State returns the current connection state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Connect dials the endpoint, sends the session setup and the scripted
// greeting, and starts the read loop.
func (s *Session) Connect(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateIdle {
		state := s.state
		s.mu.Unlock()
		return fmt.Errorf("live: cannot connect from state %s", state)
	}
	s.state = StateConnecting
	generation := s.generation
	s.mu.Unlock()

	baseURL := s.cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	url := fmt.Sprintf("%s?key=%s", baseURL, s.cfg.APIKey)

	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	ws, _, err := dialer.DialContext(ctx, url, http.Header{})
	if err != nil {
		s.mu.Lock()
		s.state = StateClosed
		s.mu.Unlock()
		return fmt.Errorf("live: connect: %w", err)
	}

	s.mu.Lock()
	s.ws = ws
	s.state = StateOpen
	s.mu.Unlock()

	if err := s.sendSetup(); err != nil {
		s.Close()
		return fmt.Errorf("live: setup: %w", err)
	}
	if err := s.sendGreeting(); err != nil {
		s.Close()
		return fmt.Errorf("live: greeting: %w", err)
	}

	go s.readLoop(generation)

	s.logger.Info("live session open", "model", s.model())
	return nil
}

func (s *Session) model() string {
	if s.cfg.Model != "" {
		return s.cfg.Model
	}
	return defaultModel
}

func (s *Session) sendSetup() error {
	setup := map[string]any{
		"model": s.model(),
		"generationConfig": map[string]any{
			"responseModalities": []string{"AUDIO"},
		},
	}
	if decls := s.cfg.Executor.Declarations(); len(decls) > 0 {
		setup["tools"] = []map[string]any{
			{"functionDeclarations": decls},
		}
	}
	if s.cfg.SystemPrompt != "" {
		setup["systemInstruction"] = map[string]any{
			"parts": []map[string]any{{"text": s.cfg.SystemPrompt}},
		}
	}
	return s.sendJSON(map[string]any{"setup": setup})
}

func (s *Session) sendGreeting() error {
	greeting := s.cfg.Greeting
	if greeting == "-" {
		return nil
	}
	if greeting == "" {
		greeting = defaultGreeting
	}
	return s.sendJSON(map[string]any{
		"clientContent": map[string]any{
			"turns": []map[string]any{
				{
					"role":  "user",
					"parts": []map[string]any{{"text": greeting}},
				},
			},
			"turnComplete": true,
		},
	})
}

// SendAudio streams one frame of 16kHz mono PCM16 upstream.
func (s *Session) SendAudio(pcm []byte) error {
	if s.State() != StateOpen {
		return fmt.Errorf("live: session not open")
	}
	return s.sendJSON(map[string]any{
		"realtimeInput": map[string]any{
			"mediaChunks": []map[string]any{
				{
					"mimeType": inputMimeType,
					"data":     base64.StdEncoding.EncodeToString(pcm),
				},
			},
		},
	})
}

// SendText submits a user text turn over the open channel.
func (s *Session) SendText(text string) error {
	if s.State() != StateOpen {
		return fmt.Errorf("live: session not open")
	}
	return s.sendJSON(map[string]any{
		"clientContent": map[string]any{
			"turns": []map[string]any{
				{
					"role":  "user",
					"parts": []map[string]any{{"text": text}},
				},
			},
			"turnComplete": true,
		},
	})
}

// Close shuts the session down. Safe to call more than once; the
// OnClose callback fires exactly once. Bumping the generation makes
// any in-flight tool result a discarded no-op.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.state == StateClosed {
		s.mu.Unlock()
		return nil
	}
	s.state = StateClosed
	s.generation++
	ws := s.ws
	s.mu.Unlock()

	var err error
	if ws != nil {
		err = ws.Close()
	}
	s.scheduler.Reset()
	if s.onClose != nil {
		s.onClose()
	}
	s.logger.Info("live session closed")
	return err
}

// current reports whether the given generation is still the live one.
func (s *Session) current(generation int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state == StateOpen && s.generation == generation
}

func (s *Session) readLoop(generation int) {
	for {
		s.mu.RLock()
		ws := s.ws
		closed := s.state == StateClosed
		s.mu.RUnlock()
		if closed || ws == nil {
			return
		}

		_, message, err := ws.ReadMessage()
		if err != nil {
			if s.current(generation) {
				if s.onError != nil {
					s.onError(err)
				}
				s.Close()
			}
			return
		}

		var msg map[string]any
		if err := json.Unmarshal(message, &msg); err != nil {
			s.logger.Debug("discarding unparseable message", "error", err)
			continue
		}
		s.handleMessage(generation, msg)
	}
}

func (s *Session) handleMessage(generation int, msg map[string]any) {
	if _, ok := msg["setupComplete"]; ok {
		s.logger.Debug("live session ready")
		return
	}
	if content, ok := msg["serverContent"].(map[string]any); ok {
		s.handleServerContent(generation, content)
		return
	}
	if toolCall, ok := msg["toolCall"].(map[string]any); ok {
		s.handleToolCall(generation, toolCall)
		return
	}
	if _, ok := msg["toolCallCancellation"]; ok {
		s.logger.Debug("tool call cancelled by model")
		return
	}
}

func (s *Session) handleServerContent(generation int, content map[string]any) {
	if interrupted, ok := content["interrupted"].(bool); ok && interrupted {
		s.scheduler.Reset()
		if s.onInterrupted != nil {
			s.onInterrupted()
		}
		return
	}
	if turnComplete, ok := content["turnComplete"].(bool); ok && turnComplete {
		if s.onTurnComplete != nil {
			s.onTurnComplete()
		}
		return
	}

	modelTurn, ok := content["modelTurn"].(map[string]any)
	if !ok {
		return
	}
	parts, ok := modelTurn["parts"].([]any)
	if !ok {
		return
	}
	for _, raw := range parts {
		part, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if inline, ok := part["inlineData"].(map[string]any); ok {
			s.handleInlineAudio(generation, inline)
		}
		if text, ok := part["text"].(string); ok && text != "" {
			if s.current(generation) && s.onText != nil {
				s.onText(text)
			}
		}
	}
}

func (s *Session) handleInlineAudio(generation int, inline map[string]any) {
	mimeType, _ := inline["mimeType"].(string)
	if !strings.HasPrefix(mimeType, "audio/") {
		return
	}
	data, _ := inline["data"].(string)
	pcm, err := base64.StdEncoding.DecodeString(data)
	if err != nil || len(pcm) == 0 {
		return
	}
	if !s.current(generation) {
		return
	}
	chunk := audioio.ChunkFromBytes(pcm, audioio.PlaybackRate, 1)
	start := s.scheduler.Schedule(chunk)
	if s.onAudio != nil {
		s.onAudio(pcm, start)
	}
}

func (s *Session) handleToolCall(generation int, toolCall map[string]any) {
	functionCalls, ok := toolCall["functionCalls"].([]any)
	if !ok {
		return
	}

	var responses []map[string]any
	for _, raw := range functionCalls {
		call, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		name, _ := call["name"].(string)
		id, _ := call["id"].(string)
		args, _ := call["args"].(map[string]any)

		// A tool call that outlives the session is dropped; its side
		// effects on the map would otherwise apply after the user is
		// gone.
		if !s.current(generation) {
			return
		}
		result := s.cfg.Executor.Execute(context.Background(), name, args)
		responses = append(responses, map[string]any{
			"id":       id,
			"name":     name,
			"response": map[string]any{"result": result},
		})
	}
	if len(responses) == 0 {
		return
	}
	if !s.current(generation) {
		return
	}
	if err := s.sendJSON(map[string]any{
		"toolResponse": map[string]any{
			"functionResponses": responses,
		},
	}); err != nil && s.onError != nil {
		s.onError(err)
	}
}

func (s *Session) sendJSON(v any) error {
	s.mu.RLock()
	ws := s.ws
	s.mu.RUnlock()
	if ws == nil {
		return fmt.Errorf("live: not connected")
	}
	s.wsMu.Lock()
	defer s.wsMu.Unlock()
	return ws.WriteJSON(v)
}
