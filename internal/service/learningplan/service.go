package learningplan_service

import (
	"context"
	"errors"
	"log/slog"

	"skillshare-backend/internal/custom_errors"
	"skillshare-backend/internal/logger"
	"skillshare-backend/internal/metrics"
	"skillshare-backend/internal/model"
	learningplan_repository "skillshare-backend/internal/repository/learningplan"
)

type LearningPlanService struct {
	planRepo learningplan_repository.Repository
	log      *logger.Logger
	metrics  metrics.Provider
}

func NewLearningPlanService(
	planRepo learningplan_repository.Repository,
	log *logger.Logger,
	metrics metrics.Provider,
) *LearningPlanService {
	return &LearningPlanService{
		planRepo: planRepo,
		log:      log,
		metrics:  metrics,
	}
}

func (s *LearningPlanService) Create(ctx context.Context, plan *model.LearningPlan) (*model.LearningPlan, error) {
	created, err := s.planRepo.Create(ctx, plan)
	if err != nil {
		s.log.Error("Failed to create learning plan", slog.String("error", err.Error()))
		s.metrics.IncrementLearningPlanOperations("create", false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	s.metrics.IncrementLearningPlanOperations("create", true)
	return created, nil
}

func (s *LearningPlanService) List(ctx context.Context) ([]*model.LearningPlan, error) {
	plans, err := s.planRepo.GetAll(ctx)
	if err != nil {
		s.log.Error("Failed to list learning plans", slog.String("error", err.Error()))
		s.metrics.IncrementLearningPlanOperations("list", false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	s.metrics.IncrementLearningPlanOperations("list", true)
	return plans, nil
}

func (s *LearningPlanService) GetByID(ctx context.Context, id string) (*model.LearningPlan, error) {
	plan, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrLearningPlanNotFound) {
			s.log.Debug("Learning plan not found", slog.String("id", id))
			s.metrics.IncrementLearningPlanOperations("get_by_id", false)
			return nil, custom_errors.ErrLearningPlanNotFound
		}
		s.log.Error("Failed to get learning plan",
			slog.String("id", id),
			slog.String("error", err.Error()))
		s.metrics.IncrementLearningPlanOperations("get_by_id", false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	s.metrics.IncrementLearningPlanOperations("get_by_id", true)
	return plan, nil
}
