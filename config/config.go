package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv      string `env:"APP_ENV" envDefault:"development"`
	BotToken    string `env:"BOT_TOKEN,required"`
	SupabaseURL string `env:"SUPABASE_URL,required"`
	SupabaseKey string `env:"SUPABASE_KEY,required"`

	// AdminID is the single identity allowed to run admin commands.
	AdminID int64 `env:"ADMIN_ID"`

	// ModChannelID receives a mirrored copy of all in-session traffic.
	ModChannelID int64 `env:"MOD_CHANNEL_ID,required"`

	DefaultLang string `env:"DEFAULT_LANG" envDefault:"en"`
	LocalesDir  string `env:"LOCALES_DIR" envDefault:"./locales"`

	// Debate feature. Disabled when the API key is empty.
	GroqAPIKey        string `env:"GROQ_API_KEY"`
	GroqCoderModel    string `env:"GROQ_CODER_MODEL" envDefault:"deepseek-coder-33b"`
	GroqReviewerModel string `env:"GROQ_REVIEWER_MODEL" envDefault:"gemma-7b-it"`
	DebateRounds      int    `env:"DEBATE_ROUNDS" envDefault:"3"`
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
