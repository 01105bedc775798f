// Package web serves the map agent dashboard: REST endpoints for
// state, transcript, and manual tool triggering, plus websocket feeds
// for panel events and audio.
package web

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/cartoscope/go-mapagent/pkg/agent"
	"github.com/cartoscope/go-mapagent/pkg/hub"
	"github.com/cartoscope/go-mapagent/pkg/maps"
)

// AgentState is the dashboard's view of the running agent.
type AgentState struct {
	LiveConnected     bool        `json:"live_connected"`
	Listening         bool        `json:"listening"`
	Speaking          bool        `json:"speaking"`
	MapCenter         maps.LatLng `json:"map_center"`
	Zoom              float64     `json:"zoom"`
	MapType           string      `json:"map_type"`
	StreetViewVisible bool        `json:"street_view_visible"`
	ActiveMarkers     int         `json:"active_markers"`
	LastUserMessage   string      `json:"last_user_message"`
	LastAgentMessage  string      `json:"last_agent_message"`
}

// TranscriptEntry is one line of the conversation feed.
type TranscriptEntry struct {
	Time    string `json:"time"`
	Role    string `json:"role"` // user, agent, tool
	Message string `json:"message"`
}

// Event is the envelope for every message on the events feed.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// Config wires a Server.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// StaticDir, when set, is served at the root path.
	StaticDir string

	// Catalog lists the tools exposed on the manual trigger endpoint.
	Catalog agent.Catalog

	Logger *slog.Logger
}

// Server is the dashboard server. It implements agent.Panels: panel
// updates from the executor become events on the websocket feed.
type Server struct {
	app     *fiber.App
	addr    string
	logger  *slog.Logger
	catalog agent.Catalog

	state   AgentState
	stateMu sync.RWMutex

	transcript   []TranscriptEntry
	transcriptMu sync.RWMutex

	eventHub *hub.Hub
	audioHub *hub.Hub

	// OnMessage handles a typed user message and returns the agent's
	// reply. Required for the message endpoint to work.
	OnMessage func(text string) string

	// OnToolTrigger runs a tool manually from the dashboard.
	OnToolTrigger func(name string, args map[string]any) string

	// OnMicFrame receives microphone PCM frames from audio clients.
	OnMicFrame func(pcm []byte)
}

// NewServer creates a dashboard server.
func NewServer(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		addr:       cfg.Addr,
		logger:     logger.With("component", "web"),
		catalog:    cfg.Catalog,
		transcript: make([]TranscriptEntry, 0, 100),
		eventHub:   hub.New("events", logger),
		audioHub:   hub.New("audio", logger),
	}

	app := fiber.New(fiber.Config{
		AppName:               "Map Agent Dashboard",
		DisableStartupMessage: true,
	})

	// CORS for local development
	app.Use(cors.New())

	if cfg.StaticDir != "" {
		app.Static("/", cfg.StaticDir)
	}

	api := app.Group("/api")
	api.Get("/state", s.handleState)
	api.Get("/tools", s.handleListTools)
	api.Post("/tools/:name", s.handleTriggerTool)
	api.Post("/message", s.handleMessage)
	api.Get("/transcript", s.handleTranscript)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/events", websocket.New(s.handleEventsWS))
	app.Get("/ws/audio", websocket.New(s.handleAudioWS))

	s.app = app
	return s
}

// Start runs the hubs and blocks serving HTTP.
func (s *Server) Start() error {
	go s.eventHub.Run()
	go s.audioHub.Run()
	s.logger.Info("dashboard listening", "addr", s.addr)
	return s.app.Listen(s.addr)
}

// StartAsync starts the server in a goroutine.
func (s *Server) StartAsync() {
	go func() {
		if err := s.Start(); err != nil {
			s.logger.Error("web server failed", "error", err)
		}
	}()
}

// Shutdown stops the server and disconnects all feed clients.
func (s *Server) Shutdown() error {
	s.eventHub.Stop()
	s.audioHub.Stop()
	return s.app.Shutdown()
}

// SetCatalog attaches the tool catalog. The executor is built after
// the server because the server is its panel surface, so the catalog
// arrives late.
func (s *Server) SetCatalog(c agent.Catalog) {
	s.catalog = c
}

// UpdateState applies a mutation to the agent state and broadcasts the
// result on the events feed.
func (s *Server) UpdateState(update func(*AgentState)) {
	s.stateMu.Lock()
	update(&s.state)
	state := s.state
	s.stateMu.Unlock()

	s.broadcastEvent("state", state)
}

// AddTranscript appends a conversation line and broadcasts it.
func (s *Server) AddTranscript(role, message string) {
	entry := TranscriptEntry{
		Time:    time.Now().Format("15:04:05"),
		Role:    role,
		Message: message,
	}

	s.transcriptMu.Lock()
	s.transcript = append(s.transcript, entry)
	if len(s.transcript) > 100 {
		s.transcript = s.transcript[1:]
	}
	s.transcriptMu.Unlock()

	s.broadcastEvent("transcript", entry)
}

// SendPlaybackAudio broadcasts one playback PCM chunk to audio clients.
func (s *Server) SendPlaybackAudio(pcm []byte) {
	s.audioHub.BroadcastBinary(pcm)
}

func (s *Server) broadcastEvent(eventType string, payload any) {
	if err := s.eventHub.BroadcastJSON(Event{Type: eventType, Payload: payload}); err != nil {
		s.logger.Error("event broadcast failed", "type", eventType, "error", err)
	}
}
