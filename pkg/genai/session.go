package genai

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// FallbackReply is surfaced to the user when a conversation turn fails
// for any reason. The session always recovers to an interactive state.
const FallbackReply = "Sorry, I encountered an error processing your request."

// toolRoundLimit caps chained tool rounds within one user message so a
// misbehaving model cannot loop forever.
const toolRoundLimit = 8

// ToolExecutor runs one tool call and returns its textual result.
// Failures come back as descriptive strings, never as errors.
type ToolExecutor func(ctx context.Context, name string, args map[string]any) string

// ChatConfig configures a ChatSession.
type ChatConfig struct {
	// Tools are the function declarations advertised to the model.
	Tools []map[string]any

	// SystemPrompt steers the model for the whole session.
	SystemPrompt string

	// Executor runs tool calls the model emits.
	Executor ToolExecutor

	// Logger defaults to slog.Default.
	Logger *slog.Logger
}

// ChatSession is one ongoing conversation with the model. History is
// append-only for the life of the session; Reset starts over.
type ChatSession struct {
	client *Client
	logger *slog.Logger

	tools        []map[string]any
	systemPrompt string
	exec         ToolExecutor

	mu      sync.Mutex
	history []Content
}

// NewChatSession creates a session over the given client.
func NewChatSession(client *Client, cfg ChatConfig) *ChatSession {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ChatSession{
		client:       client,
		logger:       logger.With("component", "genai.session"),
		tools:        cfg.Tools,
		systemPrompt: cfg.SystemPrompt,
		exec:         cfg.Executor,
	}
}

// SendMessage submits user text and drives the tool loop to a final
// natural-language reply. Any failure along the way yields the
// generic fallback reply so the conversation stays usable.
func (s *ChatSession) SendMessage(ctx context.Context, text string) string {
	reply, err := s.send(ctx, text)
	if err != nil {
		s.logger.Error("conversation turn failed", "error", err)
		return FallbackReply
	}
	return reply
}

func (s *ChatSession) send(ctx context.Context, text string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, Content{
		Role:  "user",
		Parts: []Part{{Text: text}},
	})

	resp, err := s.roundTrip(ctx)
	if err != nil {
		return "", err
	}

	// Each tool call gets its own result round-trip, in the order the
	// model emitted them.
	for round := 0; resp.HasFunctionCalls(); round++ {
		if round >= toolRoundLimit {
			return "", fmt.Errorf("genai: tool round limit %d exceeded", toolRoundLimit)
		}

		calls := resp.FunctionCalls
		modelParts := make([]Part, len(calls))
		for i := range calls {
			call := calls[i]
			modelParts[i] = Part{FunctionCall: &call}
		}
		s.history = append(s.history, Content{Role: "model", Parts: modelParts})

		for _, call := range calls {
			result := s.execute(ctx, call)
			s.history = append(s.history, Content{
				Role: "user",
				Parts: []Part{{
					FunctionResponse: &FunctionResponse{
						Name: call.Name,
						Response: map[string]any{
							"name":    call.Name,
							"content": result,
						},
					},
				}},
			})

			resp, err = s.roundTrip(ctx)
			if err != nil {
				return "", err
			}
		}
	}

	return resp.Text, nil
}

func (s *ChatSession) execute(ctx context.Context, call FunctionCall) string {
	if s.exec == nil {
		return fmt.Sprintf("Error: Unknown tool command '%s'.", call.Name)
	}
	s.logger.Debug("executing tool call", "tool", call.Name)
	return s.exec(ctx, call.Name, call.Args)
}

func (s *ChatSession) roundTrip(ctx context.Context) (*GenerateResponse, error) {
	return s.client.Generate(ctx, &GenerateRequest{
		Contents:          s.history,
		Tools:             s.tools,
		SystemInstruction: s.systemPrompt,
	})
}

// History returns a copy of the conversation so far.
func (s *ChatSession) History() []Content {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Content, len(s.history))
	copy(out, s.history)
	return out
}

// Reset clears the conversation history.
func (s *ChatSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
}
