package config

import "os"

// Placeholder values shipped in .env.example files. A key equal to one of
// these counts as unset so we never send them upstream.
const (
	hfTokenPlaceholder = "your_hugging_face_token_here"
	groqKeyPlaceholder = "your_groq_api_key_here"
)

// Config holds everything the process reads from its environment. It is
// built once in main and handed to constructors; nothing else reads
// os.Getenv.
type Config struct {
	AppEnv string
	Port   string

	HuggingFaceToken string
	GroqAPIKey       string
	DemoMode         bool

	ValkeyAddress  string
	ValkeyPassword string
	ValkeyTLS      bool

	AWSRegion     string
	AWSEndpoint   string
	DiaryTable    string
	KafkaBrokers  string
	EntriesTopic  string
}

func FromEnv() Config {
	cfg := Config{
		AppEnv:           getEnv("APP_ENV", "dev"),
		Port:             getEnv("PORT", "3001"),
		HuggingFaceToken: os.Getenv("HUGGING_FACE_API_KEY"),
		GroqAPIKey:       os.Getenv("GROQ_API_KEY"),
		DemoMode:         os.Getenv("DEMO_MODE") == "true",
		ValkeyAddress:    os.Getenv("VALKEY_INIT_ADDRESS"),
		ValkeyPassword:   os.Getenv("VALKEY_PASSWORD"),
		ValkeyTLS:        os.Getenv("VALKEY_TLS") == "true",
		AWSRegion:        getEnv("AWS_REGION", "us-west-2"),
		AWSEndpoint:      os.Getenv("AWS_ENDPOINT"),
		DiaryTable:       os.Getenv("DIARY_TABLE"),
		KafkaBrokers:     os.Getenv("KAFKA_BOOTSTRAP_SERVERS"),
		EntriesTopic:     getEnv("KAFKA_ENTRIES_TOPIC", "maumlog.entries.analyzed"),
	}

	if cfg.HuggingFaceToken == hfTokenPlaceholder {
		cfg.HuggingFaceToken = ""
	}
	if cfg.GroqAPIKey == groqKeyPlaceholder {
		cfg.GroqAPIKey = ""
	}

	return cfg
}

// HuggingFaceConfigured reports whether the remote sentiment model can be
// called at all; without a token the classifier goes straight to the
// keyword heuristic.
func (c Config) HuggingFaceConfigured() bool { return c.HuggingFaceToken != "" }

func (c Config) GroqConfigured() bool { return c.GroqAPIKey != "" }

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
