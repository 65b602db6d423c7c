package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"skillshare-backend/internal/custom_errors"
	"skillshare-backend/internal/logger"
	"skillshare-backend/internal/model"
)

type LearningPlanRepository struct {
	log   *logger.Logger
	mu    sync.RWMutex
	plans map[string]*model.LearningPlan
}

func NewLearningPlanRepository(log *logger.Logger) *LearningPlanRepository {
	return &LearningPlanRepository{
		log:   log,
		plans: make(map[string]*model.LearningPlan),
	}
}

func (r *LearningPlanRepository) Create(ctx context.Context, plan *model.LearningPlan) (*model.LearningPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	newPlan := *plan
	newPlan.ID = uuid.NewString()
	r.plans[newPlan.ID] = &newPlan

	result := newPlan
	return &result, nil
}

func (r *LearningPlanRepository) GetAll(ctx context.Context) ([]*model.LearningPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*model.LearningPlan
	for _, plan := range r.plans {
		planCopy := *plan
		result = append(result, &planCopy)
	}
	return result, nil
}

func (r *LearningPlanRepository) GetByID(ctx context.Context, id string) (*model.LearningPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plan, exists := r.plans[id]
	if !exists {
		r.log.Debug("Learning plan not found by id", slog.String("id", id))
		return nil, custom_errors.ErrLearningPlanNotFound
	}

	result := *plan
	return &result, nil
}
