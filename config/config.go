package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	ListenAddr string `env:"GAME_LISTEN_ADDR" envDefault:":8765"`
	ServerURL  string `env:"GAME_SERVER_URL" envDefault:"ws://localhost:8765/connect"`
	LogJSON    bool   `env:"GAME_LOG_JSON" envDefault:"false"`
	NatsURL    string `env:"GAME_NATS_URL" envDefault:""`

	TickRate        int           `env:"GAME_TICK_RATE" envDefault:"20"`
	IncomingLatency time.Duration `env:"GAME_INCOMING_LATENCY" envDefault:"100ms"`
	OutgoingLatency time.Duration `env:"GAME_OUTGOING_LATENCY" envDefault:"100ms"`

	MapWidth     float64 `env:"GAME_MAP_WIDTH" envDefault:"800"`
	MapHeight    float64 `env:"GAME_MAP_HEIGHT" envDefault:"600"`
	PlayerSpeed  float64 `env:"GAME_PLAYER_SPEED" envDefault:"10"` // pixels per tick
	PlayerRadius float64 `env:"GAME_PLAYER_RADIUS" envDefault:"20"`
	CoinRadius   float64 `env:"GAME_COIN_RADIUS" envDefault:"15"`
	MaxCoins     int     `env:"GAME_MAX_COINS" envDefault:"5"`

	CoinSpawnInterval time.Duration `env:"GAME_COIN_SPAWN_INTERVAL" envDefault:"2s"`

	InterpDuration    time.Duration `env:"GAME_INTERP_DURATION" envDefault:"100ms"`
	CorrectionGain    float64       `env:"GAME_CORRECTION_GAIN" envDefault:"0.15"`
	InputSendInterval time.Duration `env:"GAME_INPUT_SEND_INTERVAL" envDefault:"100ms"`
}

func Init() Config {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, reading config from the environment")
	}

	conf, err := env.ParseAs[Config]()
	if err != nil {
		log.WithError(err).Fatal("Failed to parse config")
	}

	if conf.LogJSON {
		log.SetFormatter(&log.JSONFormatter{})
	}

	return conf
}
