package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	if os.Getenv("OPENAI_API_KEY") == "" {
		log.Println("Warning: OPENAI_API_KEY not set, argument generation will use fallback text")
	}
}

// Config holds the arena's runtime settings. Values come from the
// environment with the defaults below.
type Config struct {
	OpenAIKey  string
	SerpAPIKey string

	// Generation policy: primary model, then backup model, then static text.
	PrimaryModel      string
	BackupModel       string
	GenerationTimeout time.Duration // per model attempt
	RoundTimeout      time.Duration // whole round, all participants

	MaxRounds         int
	MaxArgumentLength int // in runes

	DataDir string
	NATSURL string
	APIPort int
}

// Load reads configuration from the environment.
func Load() Config {
	return Config{
		OpenAIKey:         os.Getenv("OPENAI_API_KEY"),
		SerpAPIKey:        os.Getenv("SERP_API_KEY"),
		PrimaryModel:      envStr("DEBATE_PRIMARY_MODEL", "gpt-4o-mini"),
		BackupModel:       envStr("DEBATE_BACKUP_MODEL", "gpt-3.5-turbo"),
		GenerationTimeout: envDuration("DEBATE_GENERATION_TIMEOUT", 30*time.Second),
		RoundTimeout:      envDuration("DEBATE_ROUND_TIMEOUT", 5*time.Minute),
		MaxRounds:         envInt("DEBATE_MAX_ROUNDS", 3),
		MaxArgumentLength: envInt("DEBATE_MAX_ARGUMENT_LENGTH", 500),
		DataDir:           envStr("DEBATE_DATA_DIR", "./data"),
		NATSURL:           envStr("NATS_URL", ""),
		APIPort:           envInt("API_PORT", 3000),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}
