package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/tesh254/labnote/internal/api"
	"github.com/tesh254/labnote/internal/canvas"
	"github.com/tesh254/labnote/internal/config"
	"github.com/tesh254/labnote/internal/markdown"
	"github.com/tesh254/labnote/internal/storage"
)

// session is what most commands need: the resolved config, the note store
// and the API on top of them. Close it when done.
type session struct {
	cfg     *config.Config
	storage *storage.Storage
	api     *api.API
}

func openSession(opts ...markdown.Option) (*session, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, err
	}

	st, err := storage.NewStorage(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	client := canvas.NewClient(cfg.BaseURL, cfg.Token, cfg.Timeout)
	renderer := markdown.New(append([]markdown.Option{markdown.WithLogger(slog.Default())}, opts...)...)

	return &session{
		cfg:     cfg,
		storage: st,
		api:     api.NewAPI(st, client, renderer, cfg.Name, cfg.LabGroup),
	}, nil
}

func (s *session) Close() {
	s.storage.Close()
}

// openStorage opens only the note store, for commands that never talk to Canvas.
func openStorage() (*storage.Storage, error) {
	st, err := storage.NewStorage(viper.GetString("db"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	return st, nil
}
