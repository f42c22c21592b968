package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the bot's runtime settings, read from the environment
type Config struct {
	Addr        string `env:"ADDR" envDefault:":8080"`
	BotUsername string `env:"BOT_USERNAME,required,notEmpty"`
	PublicURL   string `env:"PUBLIC_URL" envDefault:"http://localhost:8080"`
	AssetsDir   string `env:"ASSETS_DIR" envDefault:"assets"`

	DefaultPlayers int `env:"DEFAULT_PLAYERS" envDefault:"11"`
	DefaultMafia   int `env:"DEFAULT_MAFIA" envDefault:"3"`

	DispatchWorkers int           `env:"DISPATCH_WORKERS" envDefault:"16"`
	OutboxBuffer    int           `env:"OUTBOX_BUFFER" envDefault:"10"`
	SendTimeout     time.Duration `env:"SEND_TIMEOUT" envDefault:"1s"`

	Debug bool `env:"DEBUG"`
}

// Load parses the environment into a Config
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// JoinLink returns the deep link that makes the bot run "/start join_<id>"
func (c Config) JoinLink(gameID string) string {
	return fmt.Sprintf("https://t.me/%s?start=join_%s", c.BotUsername, gameID)
}
