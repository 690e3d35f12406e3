package config

import "os"

type Config struct {
	// DatabaseURL selects the postgres store when set; empty keeps games in
	// process memory.
	DatabaseURL  string
	ServerPort   string
	QuestionsDir string
}

func Load() *Config {
	return &Config{
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		QuestionsDir: getEnv("QUESTIONS_DIR", "questions"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
