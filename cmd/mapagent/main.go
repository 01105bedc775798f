// Map Agent - voice and chat controlled map assistant
// Drives a live map through model-issued tool calls: camera moves,
// Street View, place search, directions, weather, and travel plans.
package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/cartoscope/go-mapagent/pkg/mapagent"
)

func main() {
	// Load .env before anything reads the environment.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := parseFlags()

	app, err := mapagent.New(cfg)
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	if err := app.Init(); err != nil {
		log.Fatalf("initialization failed: %v", err)
	}
	defer app.Shutdown()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("runtime error: %v", err)
	}
}

// parseFlags parses command line flags and returns configuration.
func parseFlags() mapagent.Config {
	cfg := mapagent.DefaultConfig()

	debug := flag.Bool("debug", false, "Enable verbose debug logging")
	addr := flag.String("addr", cfg.Addr, "Dashboard listen address")
	static := flag.String("static", cfg.StaticDir, "Directory served at the dashboard root")
	mock := flag.Bool("mock", false, "Run against in-memory map services (no API keys)")
	voice := flag.Bool("voice", cfg.Voice, "Enable the live voice session")
	chatModel := flag.String("chat-model", "", "Model for the text chat session")
	liveModel := flag.String("live-model", "", "Model for the live voice session")
	flag.Parse()

	cfg.Debug = *debug
	cfg.Addr = *addr
	cfg.StaticDir = *static
	cfg.Mock = *mock
	cfg.Voice = *voice
	cfg.ChatModel = *chatModel
	cfg.LiveModel = *liveModel
	return cfg
}
