package mapagent

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/cartoscope/go-mapagent/internal/log"
	"github.com/cartoscope/go-mapagent/pkg/agent"
	"github.com/cartoscope/go-mapagent/pkg/audioio"
	"github.com/cartoscope/go-mapagent/pkg/genai"
	"github.com/cartoscope/go-mapagent/pkg/live"
	"github.com/cartoscope/go-mapagent/pkg/maps"
	"github.com/cartoscope/go-mapagent/pkg/maps/googlemaps"
	"github.com/cartoscope/go-mapagent/pkg/travel"
	"github.com/cartoscope/go-mapagent/pkg/weather"
	"github.com/cartoscope/go-mapagent/pkg/web"
)

const defaultSystemPrompt = "You are a map assistant. You control a live map through the tools " +
	"you are given: move and zoom the camera, show Street View, search for places, fetch " +
	"directions, report the weather, and build travel plans. Prefer calling a tool over " +
	"describing what you would do. Keep spoken answers short."

// App is the assembled application.
type App struct {
	config Config
	logger *slog.Logger

	mapState *maps.State
	weather  weather.Service
	planner  *travel.Planner
	executor *agent.Executor

	chatClient  *genai.Client
	chat        *genai.ChatSession
	liveSession *live.Session

	webServer *web.Server
	mic       *audioio.Chunker
}

// New creates the application from the given configuration.
func New(cfg Config) (*App, error) {
	cfg.LoadEnvConfig()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level := "info"
	if cfg.Debug {
		level = "debug"
	}
	log.Init(level)

	return &App{
		config: cfg,
		logger: log.Component("app"),
	}, nil
}

// Init builds and connects all components. Call after New, before Run.
func (a *App) Init() error {
	a.webServer = web.NewServer(web.Config{
		Addr:      a.config.Addr,
		StaticDir: a.config.StaticDir,
		Logger:    log.L(),
	})

	if err := a.initMapState(); err != nil {
		return fmt.Errorf("map services: %w", err)
	}
	if err := a.initModelClients(); err != nil {
		return fmt.Errorf("model clients: %w", err)
	}

	exec, err := agent.New(agent.Config{
		State:   a.mapState,
		Weather: a.weather,
		Planner: a.planner,
		Panels:  a.webServer,
		Logger:  log.L(),
	})
	if err != nil {
		return fmt.Errorf("executor: %w", err)
	}
	a.executor = exec
	a.webServer.SetCatalog(exec.Catalog())
	a.webServer.OnToolTrigger = func(name string, args map[string]any) string {
		result := exec.Execute(context.Background(), name, args)
		a.refreshMapState()
		return result
	}

	if a.chatClient != nil {
		a.chat = genai.NewChatSession(a.chatClient, genai.ChatConfig{
			Tools:        exec.Declarations(),
			SystemPrompt: a.systemPrompt(),
			Executor:     exec.Execute,
			Logger:       log.L(),
		})
		a.webServer.OnMessage = func(text string) string {
			reply := a.chat.SendMessage(context.Background(), text)
			a.refreshMapState()
			return reply
		}
	}

	if a.config.Voice && a.config.GeminiKey != "" {
		if err := a.initLiveSession(); err != nil {
			return fmt.Errorf("live session: %w", err)
		}
	}

	return nil
}

func (a *App) initMapState() error {
	if a.config.Mock {
		a.logger.Info("running with mock map services")
		a.mapState = maps.NewMockState()
		return nil
	}

	gm, err := googlemaps.New(a.config.MapsKey, googlemaps.WithLogger(log.L()))
	if err != nil {
		return err
	}
	a.mapState = &maps.State{
		Map:        maps.NewMapView(maps.DefaultViewConfig()),
		Panorama:   maps.NewPanorama(),
		Geocoder:   gm,
		Places:     gm,
		Directions: gm,
		Elevation:  gm,
	}

	if a.config.WeatherKey != "" {
		wc, err := weather.New(a.config.WeatherKey, weather.WithLogger(log.L()))
		if err != nil {
			return err
		}
		a.weather = wc
	}
	return nil
}

func (a *App) initModelClients() error {
	if a.config.GeminiKey == "" {
		return nil
	}

	opts := []genai.Option{genai.WithLogger(log.L())}
	if a.config.ChatModel != "" {
		opts = append(opts, genai.WithModel(a.config.ChatModel))
	}
	client, err := genai.New(a.config.GeminiKey, opts...)
	if err != nil {
		return err
	}

	planner, err := travel.NewPlanner(travel.PlannerConfig{
		Generator: travel.NewModelGenerator(client),
		Geocoder:  a.mapState.Geocoder,
		Places:    a.mapState.Places,
		Weather:   a.weather,
		Logger:    log.L(),
	})
	if err != nil {
		return err
	}
	a.planner = planner

	// The chat session itself is wired in Init once the executor
	// exists; its declarations become the session's tools.
	a.chatClient = client
	return nil
}

func (a *App) initLiveSession() error {
	session, err := live.NewSession(live.Config{
		APIKey:       a.config.GeminiKey,
		Model:        a.config.LiveModel,
		SystemPrompt: a.systemPrompt(),
		Executor:     a.executor,
		Logger:       log.L(),
	})
	if err != nil {
		return err
	}

	session.OnAudio(func(pcm []byte, _ time.Time) {
		a.webServer.SendPlaybackAudio(pcm)
	})
	session.OnText(func(text string) {
		a.webServer.AddTranscript("agent", text)
	})
	session.OnTurnComplete(func() {
		a.webServer.UpdateState(func(st *web.AgentState) { st.Speaking = false })
		a.refreshMapState()
	})
	session.OnInterrupted(func() {
		a.webServer.UpdateState(func(st *web.AgentState) { st.Speaking = false })
	})
	session.OnClose(func() {
		a.webServer.UpdateState(func(st *web.AgentState) {
			st.LiveConnected = false
			st.Listening = false
		})
	})
	session.OnError(func(err error) {
		a.logger.Error("live session error", "error", err)
	})

	a.liveSession = session

	mic, err := audioio.NewChunker(audioio.CaptureConfig())
	if err != nil {
		return err
	}
	a.mic = mic
	a.webServer.OnMicFrame = func(pcm []byte) {
		if _, err := mic.Write(pcm); err != nil && !errors.Is(err, io.EOF) {
			a.logger.Debug("mic frame dropped", "error", err)
		}
	}
	return nil
}

func (a *App) systemPrompt() string {
	if a.config.SystemPrompt != "" {
		return a.config.SystemPrompt
	}
	return defaultSystemPrompt
}

// Run starts the dashboard and the voice session and blocks until the
// context is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.webServer.StartAsync()

	if a.liveSession != nil {
		if err := a.liveSession.Connect(ctx); err != nil {
			return fmt.Errorf("live connect: %w", err)
		}
		a.webServer.UpdateState(func(st *web.AgentState) {
			st.LiveConnected = true
			st.Listening = true
		})
		go a.pumpMicrophone(ctx)
	}

	a.refreshMapState()
	a.logger.Info("map agent running", "addr", a.config.Addr, "voice", a.liveSession != nil)

	<-ctx.Done()
	return nil
}

// pumpMicrophone forwards fixed-size microphone frames from the
// browser feed into the live session.
func (a *App) pumpMicrophone(ctx context.Context) {
	for {
		frame, err := a.mic.ReadFrame()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				a.logger.Error("microphone pump stopped", "error", err)
			}
			return
		}
		if ctx.Err() != nil {
			return
		}
		if err := a.liveSession.SendAudio(frame.Bytes()); err != nil {
			a.logger.Debug("dropping mic frame", "error", err)
			return
		}
	}
}

// refreshMapState mirrors the current camera and overlay state to the
// dashboard.
func (a *App) refreshMapState() {
	a.webServer.UpdateState(func(st *web.AgentState) {
		st.MapCenter = a.mapState.Map.Center()
		st.Zoom = a.mapState.Map.Zoom()
		st.MapType = string(a.mapState.Map.MapType())
		st.StreetViewVisible = a.mapState.Panorama != nil && a.mapState.Panorama.Visible()
		st.ActiveMarkers = a.executor.ActiveMarkerCount()
	})
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() {
	if a.mic != nil {
		a.mic.CloseWrite()
	}
	if a.liveSession != nil {
		a.liveSession.Close()
	}
	if a.webServer != nil {
		if err := a.webServer.Shutdown(); err != nil {
			a.logger.Error("web shutdown failed", "error", err)
		}
	}
}
