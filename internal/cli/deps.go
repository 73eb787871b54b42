package cli

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"notary-profile/internal/adapter/repository"
	"notary-profile/internal/config"
	"notary-profile/internal/logging"
	"notary-profile/internal/metrics"
	"notary-profile/internal/usecase"
	"notary-profile/pkg/directory"
	"notary-profile/pkg/infrastructure"
)

// app is the wired object graph shared by every command.
type app struct {
	cfg       config.Config
	logger    *slog.Logger
	registry  *prometheus.Registry
	processor *usecase.Processor
	exporter  *usecase.Exporter
}

func loadApp(opts *rootOptions) (*app, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.username != "" {
		cfg.Directory.Username = opts.username
	}
	if opts.endpoint != "" {
		cfg.Directory.URL = opts.endpoint
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.New(cfg.Logging)
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGoCollector(), prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	client := directory.NewClient(cfg.Directory.URL)
	proc := usecase.NewProcessor(client, repository.NewStateRepo(), cfg.Directory.Username,
		usecase.WithLogger(logger),
		usecase.WithMetrics(metrics.New(reg)),
		usecase.WithSampleOnEmpty(cfg.ShowSampleOnEmpty),
	)

	return &app{
		cfg:       cfg,
		logger:    logger,
		registry:  reg,
		processor: proc,
		exporter:  usecase.NewExporter(infrastructure.NewChromedpRenderer(cfg.ChromePath), logger),
	}, nil
}
