package learningplan_service

import (
	"context"

	"skillshare-backend/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/learningplan --outpkg mocks --filename LearningPlanService.go
type Service interface {
	Create(ctx context.Context, plan *model.LearningPlan) (*model.LearningPlan, error)
	List(ctx context.Context) ([]*model.LearningPlan, error)
	GetByID(ctx context.Context, id string) (*model.LearningPlan, error)
}
