package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/cartoscope/go-mapagent/pkg/hub"
)

// ToolInfo describes one tool on the manual trigger endpoint.
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// handleState returns the agent's current state.
func (s *Server) handleState(c *fiber.Ctx) error {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return c.JSON(s.state)
}

// handleListTools returns the tool catalog.
func (s *Server) handleListTools(c *fiber.Ctx) error {
	tools := make([]ToolInfo, 0, len(s.catalog))
	for _, d := range s.catalog {
		tools = append(tools, ToolInfo{Name: d.Name, Description: d.Description})
	}
	return c.JSON(tools)
}

// TriggerToolRequest is the request body for triggering a tool.
type TriggerToolRequest struct {
	Args map[string]any `json:"args"`
}

// handleTriggerTool runs a tool manually.
func (s *Server) handleTriggerTool(c *fiber.Ctx) error {
	name := c.Params("name")

	var req TriggerToolRequest
	if err := c.BodyParser(&req); err != nil {
		req.Args = make(map[string]any)
	}

	if s.OnToolTrigger == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "tool trigger not configured",
		})
	}

	result := s.OnToolTrigger(name, req.Args)
	s.AddTranscript("tool", name+": "+result)

	return c.JSON(fiber.Map{
		"tool":   name,
		"result": result,
	})
}

// MessageRequest is the request body for a typed user message.
type MessageRequest struct {
	Text string `json:"text"`
}

// handleMessage submits a user message and returns the agent's reply.
func (s *Server) handleMessage(c *fiber.Ctx) error {
	var req MessageRequest
	if err := c.BodyParser(&req); err != nil || req.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "text is required",
		})
	}

	if s.OnMessage == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "message handler not configured",
		})
	}

	s.AddTranscript("user", req.Text)
	reply := s.OnMessage(req.Text)
	s.AddTranscript("agent", reply)

	s.UpdateState(func(st *AgentState) {
		st.LastUserMessage = req.Text
		st.LastAgentMessage = reply
	})

	return c.JSON(fiber.Map{"reply": reply})
}

// handleTranscript returns the recent conversation.
func (s *Server) handleTranscript(c *fiber.Ctx) error {
	s.transcriptMu.RLock()
	defer s.transcriptMu.RUnlock()
	return c.JSON(s.transcript)
}

// handleEventsWS serves the panel event feed.
func (s *Server) handleEventsWS(c *websocket.Conn) {
	// New clients get the current state before joining the feed.
	s.stateMu.RLock()
	c.WriteJSON(Event{Type: "state", Payload: s.state})
	s.stateMu.RUnlock()

	client := hub.NewClient(s.eventHub, c)
	client.Run()
}

// handleAudioWS serves the duplex audio feed: playback chunks go out,
// microphone frames come in.
func (s *Server) handleAudioWS(c *websocket.Conn) {
	client := hub.NewClient(s.audioHub, c)
	client.OnBinary = func(data []byte) {
		if s.OnMicFrame != nil {
			s.OnMicFrame(data)
		}
	}
	client.Run()
}
