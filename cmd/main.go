package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mindclash/debate-arena/ai"
	"github.com/mindclash/debate-arena/api"
	"github.com/mindclash/debate-arena/communication"
	"github.com/mindclash/debate-arena/config"
	"github.com/mindclash/debate-arena/engine"
	"github.com/mindclash/debate-arena/storage"
)

func main() {
	apiPort := flag.Int("api-port", 0, "API server port (overrides API_PORT)")
	dataDir := flag.String("data-dir", "", "Data directory (overrides DEBATE_DATA_DIR)")
	natsURL := flag.String("nats", "", "NATS URL (overrides NATS_URL, empty disables)")
	inMemory := flag.Bool("in-memory", false, "Run with an in-memory store (no persistence)")
	flag.Parse()

	cfg := config.Load()
	if *apiPort != 0 {
		cfg.APIPort = *apiPort
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *natsURL != "" {
		cfg.NATSURL = *natsURL
	}

	storeCfg := storage.DefaultConfig(cfg.DataDir)
	if *inMemory {
		storeCfg = storage.InMemoryConfig()
	}
	store, err := storage.Open(storeCfg)
	if err != nil {
		log.Fatalf("Failed to open debate store: %v", err)
	}
	defer store.Close()

	var messenger *communication.Messenger
	if cfg.NATSURL != "" {
		messenger, err = communication.NewMessenger(cfg.NATSURL)
		if err != nil {
			log.Printf("Warning: NATS unavailable at %s, events stay local: %v", cfg.NATSURL, err)
		} else {
			defer messenger.Close()
			log.Printf("Connected to NATS at %s", cfg.NATSURL)
		}
	}

	gen := ai.NewArgumentGenerator(cfg.OpenAIKey, ai.LLMConfig{
		PrimaryModel:      cfg.PrimaryModel,
		BackupModel:       cfg.BackupModel,
		MaxTokens:         160,
		Temperature:       0.8,
		AttemptTimeout:    cfg.GenerationTimeout,
		MaxArgumentLength: cfg.MaxArgumentLength,
		SerpAPIKey:        cfg.SerpAPIKey,
	})

	eng := engine.New(store, gen, messenger, cfg)

	go func() {
		log.Printf("Debate arena listening on :%d", cfg.APIPort)
		if err := api.StartServer(eng, cfg.APIPort); err != nil {
			log.Fatalf("API server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down")
}
