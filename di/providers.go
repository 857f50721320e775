package di

import (
	"agency/config"
	"agency/infras/otel"
	"agency/shared/task"
	"time"
)

func provideRunner(cfg *config.Config, otl otel.Otel) task.Runner {
	return task.NewRunner(otl, time.Duration(cfg.App.Tasks.TimeoutSeconds)*time.Second)
}
