package app

import (
	"context"
	"log"

	"flowradar/internal/archive"
	"flowradar/internal/gateway/config"
	"flowradar/internal/gateway/handler"
	"flowradar/internal/gateway/server"
	"flowradar/internal/llm"
	"flowradar/internal/radarstore"
)

// App wires configuration, the radar store, the optional archive, and the
// HTTP server.
type App struct {
	cfg    *config.Config
	store  *radarstore.Store
	server *server.Server
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	factory := &llm.Factory{
		GeminiAPIKey: cfg.LLM.GeminiAPIKey,
		GroqAPIKey:   cfg.LLM.GroqAPIKey,
		Gemini:       llm.GeminiOptions{RPS: cfg.LLM.RPS, Burst: cfg.LLM.Burst},
	}
	retry := llm.Retry(cfg.LLM.RetryAttempts, 0)
	newClient := func(ctx context.Context, model string) (llm.LLMClient, error) {
		cli, err := factory.NewClient(ctx, model)
		if err != nil {
			return nil, err
		}
		return retry(cli), nil
	}

	store := radarstore.NewFromEnv()

	var archiveStore *archive.S3Store
	if cfg.Archive.Enabled {
		archiveStore, err = archive.NewS3Store(archive.S3Config{
			Endpoint:  cfg.Archive.Endpoint,
			Region:    cfg.Archive.Region,
			AccessKey: cfg.Archive.AccessKey,
			SecretKey: cfg.Archive.SecretKey,
			Bucket:    cfg.Archive.Bucket,
			UseSSL:    cfg.Archive.UseSSL,
		})
		if err != nil {
			// The archive is operational history, not part of the
			// request path; run without it.
			log.Printf("archive disabled: %v", err)
			archiveStore = nil
		}
	}

	h := handler.New(newClient, cfg.LLM.DefaultModel, store, archiveStore)
	return &App{
		cfg:    cfg,
		store:  store,
		server: server.New(cfg.Port, server.NewMux(h)),
	}, nil
}

// DefaultModel reports the model id used when a request names none.
func (a *App) DefaultModel() string {
	return a.cfg.LLM.DefaultModel
}

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	err := a.server.Shutdown(ctx)
	if cerr := a.store.Close(); err == nil {
		err = cerr
	}
	return err
}
