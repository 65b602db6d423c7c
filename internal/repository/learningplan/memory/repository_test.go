package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillshare-backend/internal/custom_errors"
	"skillshare-backend/internal/logger"
	"skillshare-backend/internal/model"
)

func TestLearningPlanRepository_CreateAndGetByID(t *testing.T) {
	repo := NewLearningPlanRepository(logger.New("test"))
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.LearningPlan{
		Title:  "Backend in 12 weeks",
		Goal:   "Ship a production service",
		Skills: []string{"go", "sql"},
		Steps: []model.LearningPlanStep{
			{Topic: "HTTP basics", Resources: "net/http docs", Timeline: "week 1"},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestLearningPlanRepository_GetByID_NotFound(t *testing.T) {
	repo := NewLearningPlanRepository(logger.New("test"))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, custom_errors.ErrLearningPlanNotFound)
}

func TestLearningPlanRepository_GetAll(t *testing.T) {
	repo := NewLearningPlanRepository(logger.New("test"))
	ctx := context.Background()

	plans, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, plans)

	_, err = repo.Create(ctx, &model.LearningPlan{Title: "first"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &model.LearningPlan{Title: "second"})
	require.NoError(t, err)

	plans, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, plans, 2)
}
