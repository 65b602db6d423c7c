package learningplan_repository

import (
	"context"

	"skillshare-backend/internal/model"
)

//go:generate mockery --name Repository --dir . --output ../../../mocks/learningplan --outpkg mocks --filename LearningPlanRepository.go
type Repository interface {
	Create(ctx context.Context, plan *model.LearningPlan) (*model.LearningPlan, error)
	GetAll(ctx context.Context) ([]*model.LearningPlan, error)
	GetByID(ctx context.Context, id string) (*model.LearningPlan, error)
}
