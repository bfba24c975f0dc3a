package app

import (
	"github.com/rs/zerolog"

	"stackmeter/internal/domain"
	"stackmeter/internal/logging"
	"stackmeter/internal/services/exchange"
	"stackmeter/internal/store"
)

// App bundles the store, services and logger shared by CLI commands.
type App struct {
	Config   Config
	Store    domain.BlobStore
	Exchange *exchange.Service
	Log      zerolog.Logger
}

// New constructs the dependency graph from cfg.
func New(cfg Config) (*App, error) {
	log := logging.New("stackmeter", logging.ProfileRuntime, cfg.LogLevel)
	return NewWithLogger(cfg, log, store.DefaultScryptParams())
}

// NewWithLogger is New with an explicit logger and key-derivation cost.
func NewWithLogger(cfg Config, log zerolog.Logger, params store.ScryptParams) (*App, error) {
	bs, err := OpenStore(cfg, params)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("data_dir", cfg.DataPath()).Bool("encrypt", cfg.Encrypt).Msg("store opened")
	return &App{
		Config:   cfg,
		Store:    bs,
		Exchange: exchange.New(bs, log),
		Log:      log,
	}, nil
}
