package visits

import (
	"context"
	"medintake-service/internal/app/models"
	"medintake-service/internal/pkg/dto/requests"
)

type VisitRepository interface {
	CreateVisit(ctx context.Context, visit *models.Visit) (string, error)
	FindByID(ctx context.Context, visitID string) (*models.Visit, error)
	FindAll(ctx context.Context, query *requests.ListVisitsQuery) ([]models.Visit, int, error)
	UpdateVisit(ctx context.Context, visitID string, visit *models.Visit) error
	DeleteVisit(ctx context.Context, visitID string) error
}

type VisitUsecase interface {
	CreateVisit(ctx context.Context, request *requests.CreateVisitRequest) (*models.Visit, error)
	GetVisitByID(ctx context.Context, visitID string) (*models.Visit, error)
	ListVisits(ctx context.Context, query *requests.ListVisitsQuery) ([]models.Visit, int, error)
	UpdateVisit(ctx context.Context, visitID string, request *requests.UpdateVisitRequest) (*models.Visit, error)
	DeleteVisit(ctx context.Context, visitID string) error
}
