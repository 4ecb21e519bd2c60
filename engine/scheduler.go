package engine

import (
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Logger is global since we will need it everywhere
var Logger *slog.Logger

// InitializeSchedules starts the cron jobs (currently just registry pruning).
// Only registry rows are pruned, staged PDFs and images stay on disk.
func (serverHandler *ServerHandler) InitializeSchedules() (*cron.Cron, error) {
	c := cron.New()
	var pruneJob cron.Job
	pruneJob = cron.FuncJob(serverHandler.pruneJobHistory)
	pruneJob = cron.NewChain(cron.SkipIfStillRunning(cron.DefaultLogger)).Then(pruneJob) //ensure we don't kick off another if old one is still running

	interval := serverHandler.ServerConfig.JobPruneInterval
	if interval <= 0 {
		interval = 60
	}
	if _, err := c.AddJob(fmt.Sprintf("@every %dm", interval), pruneJob); err != nil {
		return nil, fmt.Errorf("failed to schedule registry pruning: %w", err)
	}
	Logger.Info("Adding registry prune scheduler", "interval_minutes", interval, "history", serverHandler.ServerConfig.JobHistory)
	c.Start()
	return c, nil
}

func (serverHandler *ServerHandler) pruneJobHistory() {
	defer func() {
		if r := recover(); r != nil {
			Logger.Error("Panic recovered in registry prune job", "panic", r)
		}
	}()

	deleted, err := serverHandler.DB.DeleteOldJobs(serverHandler.ServerConfig.JobHistory)
	if err != nil {
		Logger.Error("Failed to prune conversion registry", "error", err)
		return
	}
	Logger.Info("Pruned conversion registry", "deleted", deleted)
}
