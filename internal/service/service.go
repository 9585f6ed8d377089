package service

import (
	"context"

	"github.com/patrickayoup/gobunpro/internal/client"
	"github.com/patrickayoup/gobunpro/internal/models"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mock/service_mock.go

type BunproAPII interface {
	StudyQueue(ctx context.Context, opts ...client.CallOption) (models.UserInformation, models.StudyQueue, error)
	RecentItems(ctx context.Context, opts ...client.CallOption) (models.UserInformation, []models.GrammarPoint, error)
}

type Service struct {
	*StudyS
}

func InitServices(api BunproAPII, log *zap.Logger) *Service {
	return &Service{
		StudyS: NewStudyService(api, log),
	}
}
