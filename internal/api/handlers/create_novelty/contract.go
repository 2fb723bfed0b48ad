package create_novelty

import (
	"context"

	noveltyModels "github.com/m04kA/NLS-ScheduleService/internal/service/novelties/models"
)

type NoveltiesService interface {
	Create(ctx context.Context, req *noveltyModels.CreateNoveltyRequest) (*noveltyModels.NoveltyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
