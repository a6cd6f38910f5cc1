package app

import (
	"context"
	"log/slog"

	"github.com/mnemo-chat/mnemo/internal/config"
	"github.com/mnemo-chat/mnemo/internal/core"
	"github.com/mnemo-chat/mnemo/internal/cron"
	"github.com/mnemo-chat/mnemo/internal/memory"
	"github.com/mnemo-chat/mnemo/modules/memory/file"
)

// cronModule wraps a *cron.Scheduler to satisfy core.Module, core.Starter,
// and core.Stopper, so the scheduler participates in the App lifecycle.
type cronModule struct {
	scheduler *cron.Scheduler
}

func (m *cronModule) ModuleInfo() core.ModuleInfo {
	return core.ModuleInfo{ID: "maintenance"}
}

func (m *cronModule) Start() error {
	return m.scheduler.Start()
}

func (m *cronModule) Stop(ctx context.Context) error {
	return m.scheduler.Stop(ctx)
}

// wireMaintenance creates the scheduler and registers the background jobs
// against the loaded memory module. Must be called after LoadModules and
// before Start. Without a memory module there is nothing to maintain.
func wireMaintenance(
	app *core.App,
	appCtx *core.AppContext,
	cfg *config.Config,
	logger *slog.Logger,
) error {
	mod, ok := app.Module("memory.file")
	if !ok {
		logger.Info("maintenance: memory.file not loaded, skipping scheduler")
		return nil
	}
	fileMod, ok := mod.(*file.Module)
	if !ok {
		return nil
	}

	var cache *memory.Cache
	if svc, ok := appCtx.Service("memory.cache"); ok {
		cache, _ = svc.(*memory.Cache)
	}

	var pruneSpec, warmSpec string
	if cfg.Maintenance != nil {
		pruneSpec = cfg.Maintenance.BackupPrune
		warmSpec = cfg.Maintenance.CacheWarm
	}

	scheduler := cron.NewScheduler(logger)
	if err := scheduler.RegisterJob(&cron.BackupPruneJob{
		StorePath:    fileMod.DataPath(),
		Retention:    fileMod.BackupRetention(),
		Logger:       logger,
		ScheduleExpr: pruneSpec,
	}); err != nil {
		return err
	}
	if cache != nil {
		if err := scheduler.RegisterJob(&cron.CacheWarmJob{
			Cache:        cache,
			Logger:       logger,
			ScheduleExpr: warmSpec,
		}); err != nil {
			return err
		}
	}

	app.AppendModule("maintenance", &cronModule{scheduler: scheduler})
	logger.Info("maintenance: scheduler wired")
	return nil
}
