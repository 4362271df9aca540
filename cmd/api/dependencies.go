package api

import (
	"log/slog"

	"github.com/anvh/quickspend/internal/domain/parse"
	"github.com/anvh/quickspend/internal/domain/parse/handler"
	"github.com/anvh/quickspend/internal/domain/parse/service"
	"github.com/anvh/quickspend/pkg/config"
)

// Dependencies holds all application dependencies.
type Dependencies struct {
	Config *config.Config
	Logger *slog.Logger

	Parser       *parse.Parser
	ParseService *service.ParseService

	ParseHandler *handler.ParseHandler
}

// InitDependencies wires the parser, service, and handlers together. The
// remote normalizer is an external collaborator and is left unset here;
// deployments that have one inject it before building the service.
func InitDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	deps.Parser = parse.NewParser()
	deps.ParseService = service.NewParseService(deps.Parser, nil, logger)
	deps.ParseHandler = handler.NewParseHandler(deps.ParseService, cfg.Parser, logger)

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

// Cleanup releases held resources. The extractor holds none beyond its
// static rule tables; this exists for symmetry with main's defer.
func (d *Dependencies) Cleanup() {
	d.Logger.Info("cleanup completed")
}
