package workers

import (
	"context"

	"github.com/ah01567/Bookini/config"
	"github.com/ah01567/Bookini/infras/otel"
	"github.com/ah01567/Bookini/internal/domains/publication/service"
	"github.com/ah01567/Bookini/shared/constant"

	"github.com/robfig/cron/v3"

	"github.com/rs/zerolog/log"
)

const defaultReaperSchedule = "*/5 * * * *"

// Reaper periodically marks abandoned publish jobs as failed so their
// properties stop looking like uploads in progress.
type Reaper struct {
	publication service.Publication
	cfg         *config.Config
	otel        otel.Otel
	cron        *cron.Cron
}

func NewReaper(publication service.Publication, cfg *config.Config, otel otel.Otel) *Reaper {
	return &Reaper{
		publication: publication,
		cfg:         cfg,
		otel:        otel,
		cron:        cron.New(),
	}
}

func (r *Reaper) Start() error {
	schedule := r.cfg.Publication.ReaperSchedule
	if schedule == constant.Empty {
		schedule = defaultReaperSchedule
	}

	if _, err := r.cron.AddFunc(schedule, r.run); err != nil {
		log.Error().Err(err).Str("schedule", schedule).Msg("invalid reaper schedule")

		return err
	}

	r.cron.Start()

	log.Info().Str("schedule", schedule).Msg("publish job reaper started")

	return nil
}

func (r *Reaper) Stop() {
	if r.cron != nil {
		<-r.cron.Stop().Done()
	}
}

func (r *Reaper) run() {
	ctx, scope := r.otel.NewScope(context.Background(), constant.OtelWorkerScopeName, constant.OtelWorkerScopeName+".ReapStalled")
	defer scope.End()

	reaped, err := r.publication.ReapStalled(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reap stalled publish jobs")

		return
	}

	if reaped > 0 {
		log.Info().Int("reaped", reaped).Msg("marked stalled publish jobs as failed")
	}
}
