package usecase

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"notary-profile/internal/domain"
	"notary-profile/internal/metrics"
	"notary-profile/internal/model"
)

//go:generate mockgen -source=processor.go -destination=mocks/mocks.go -package=mocks Fetcher,StateRepo

// Fetcher performs one directory lookup. pkg/directory.Client satisfies it.
type Fetcher interface {
	FetchWithID(ctx context.Context, cycleID uuid.UUID, identifier string) (model.RawDirectoryResponse, error)
}

// StateRepo holds the most recent view state. Save reports whether s was
// applied; a state older than the applied one is rejected without error.
type StateRepo interface {
	Save(ctx context.Context, s domain.ViewState) (bool, error)
	Current(ctx context.Context) (domain.ViewState, error)
}

type Processor struct {
	fetcher    Fetcher
	repo       StateRepo
	identifier string
	showSample bool
	logger     *slog.Logger
	metrics    *metrics.Metrics
	now        func() time.Time
	seq        atomic.Uint64
}

type ProcessorOption func(*Processor)

func WithLogger(l *slog.Logger) ProcessorOption {
	return func(p *Processor) {
		if l != nil {
			p.logger = l
		}
	}
}

func WithMetrics(m *metrics.Metrics) ProcessorOption {
	return func(p *Processor) { p.metrics = m }
}

// WithSampleOnEmpty attaches SampleProfile to the empty state.
func WithSampleOnEmpty(on bool) ProcessorOption {
	return func(p *Processor) { p.showSample = on }
}

func NewProcessor(f Fetcher, repo StateRepo, identifier string, opts ...ProcessorOption) *Processor {
	p := &Processor{
		fetcher:    f,
		repo:       repo,
		identifier: identifier,
		logger:     slog.Default(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Current returns the applied view state, or a loading state before the
// first cycle has stored anything.
func (p *Processor) Current(ctx context.Context) (domain.ViewState, error) {
	return p.repo.Current(ctx)
}

// Refresh runs one fetch cycle: it stores loading, fetches exactly once,
// classifies the outcome as error, empty or loaded and stores that. The
// returned state is the one produced by this cycle even when a newer
// cycle has already been applied; the repo is the source of truth.
func (p *Processor) Refresh(ctx context.Context) (domain.ViewState, error) {
	seq := p.seq.Add(1)
	cycle := uuid.New()
	log := p.logger.With("seq", seq, "cycle_id", cycle.String(), "identifier", p.identifier)

	loading := domain.ViewState{Seq: seq, CycleID: cycle, Status: domain.StatusLoading, UpdatedAt: p.now()}
	if _, err := p.repo.Save(ctx, loading); err != nil {
		return loading, err
	}

	log.Info("fetch.start")
	start := p.now()
	raw, fetchErr := p.fetcher.FetchWithID(ctx, cycle, p.identifier)
	elapsed := p.now().Sub(start)

	next := domain.ViewState{Seq: seq, CycleID: cycle, UpdatedAt: p.now()}
	var outcome string
	switch {
	case fetchErr != nil:
		outcome = metrics.OutcomeError
		next.Status = domain.StatusError
		next.Message = fetchErr.Error()
		log.Warn("fetch.failed", "error", fetchErr, "duration", elapsed)
	case raw.IsEmpty():
		outcome = metrics.OutcomeEmpty
		next.Status = domain.StatusEmpty
		if p.showSample {
			sample := SampleProfile()
			next.Profile = &sample
		}
		log.Info("fetch.ok", "status", next.Status, "duration", elapsed)
	default:
		outcome = metrics.OutcomeLoaded
		profile := Normalize(raw)
		next.Status = domain.StatusLoaded
		next.Profile = &profile
		log.Info("fetch.ok", "status", next.Status, "name", profile.Name, "duration", elapsed)
	}

	applied, err := p.repo.Save(ctx, next)
	if err != nil {
		return next, err
	}
	if !applied {
		p.metrics.IncrementStale()
		log.Info("state.stale", "status", next.Status)
		return next, nil
	}
	p.metrics.ObserveFetch(outcome, elapsed)
	return next, nil
}
