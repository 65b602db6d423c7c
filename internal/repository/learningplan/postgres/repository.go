package learningplan_repository_postgres

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"skillshare-backend/internal/custom_errors"
	"skillshare-backend/internal/logger"
	"skillshare-backend/internal/metrics"
	"skillshare-backend/internal/model"
	"skillshare-backend/internal/repository/postgres/db"
)

type LearningPlanRepository struct {
	db      db.PgDB
	log     *logger.Logger
	metrics metrics.Provider
}

func NewLearningPlanRepository(db db.PgDB, log *logger.Logger, metrics metrics.Provider) *LearningPlanRepository {
	return &LearningPlanRepository{db: db, log: log, metrics: metrics}
}

func (r *LearningPlanRepository) Create(ctx context.Context, plan *model.LearningPlan) (*model.LearningPlan, error) {
	args := pgx.NamedArgs{
		"title":  plan.Title,
		"goal":   plan.Goal,
		"skills": plan.Skills,
		"image":  plan.Image,
		"steps":  plan.Steps,
	}

	query := `
		INSERT INTO learning_plans (title, goal, skills, image, steps)
		VALUES (@title, @goal, @skills, @image, @steps)
		RETURNING id, title, goal, skills, image, steps`

	var created model.LearningPlan
	err := r.db.QueryRow(ctx, query, args).Scan(
		&created.ID,
		&created.Title,
		&created.Goal,
		&created.Skills,
		&created.Image,
		&created.Steps,
	)
	if err != nil {
		r.log.Error("Error creating learning plan", slog.String("error", err.Error()))
		r.metrics.IncrementDatabaseQueries("learning_plan_create", false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.metrics.IncrementDatabaseQueries("learning_plan_create", true)
	return &created, nil
}

func (r *LearningPlanRepository) GetAll(ctx context.Context) ([]*model.LearningPlan, error) {
	query := `SELECT id, title, goal, skills, image, steps FROM learning_plans`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Error listing learning plans", slog.String("error", err.Error()))
		r.metrics.IncrementDatabaseQueries("learning_plan_get_all", false)
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var plans []*model.LearningPlan
	for rows.Next() {
		var plan model.LearningPlan
		err := rows.Scan(
			&plan.ID,
			&plan.Title,
			&plan.Goal,
			&plan.Skills,
			&plan.Image,
			&plan.Steps,
		)
		if err != nil {
			r.log.Error("Error scanning learning plan row", slog.String("error", err.Error()))
			r.metrics.IncrementDatabaseQueries("learning_plan_get_all", false)
			return nil, custom_errors.ErrDatabaseScan
		}
		plans = append(plans, &plan)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Error iterating learning plan rows", slog.String("error", err.Error()))
		r.metrics.IncrementDatabaseQueries("learning_plan_get_all", false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.metrics.IncrementDatabaseQueries("learning_plan_get_all", true)
	return plans, nil
}

func (r *LearningPlanRepository) GetByID(ctx context.Context, id string) (*model.LearningPlan, error) {
	args := pgx.NamedArgs{"id": id}
	query := `SELECT id, title, goal, skills, image, steps FROM learning_plans WHERE id = @id`

	plan := &model.LearningPlan{}
	err := r.db.QueryRow(ctx, query, args).Scan(
		&plan.ID,
		&plan.Title,
		&plan.Goal,
		&plan.Skills,
		&plan.Image,
		&plan.Steps,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.log.Debug("Learning plan not found by id", slog.String("id", id))
			return nil, custom_errors.ErrLearningPlanNotFound
		}
		r.log.Error("Error getting learning plan by id", slog.String("id", id), slog.String("error", err.Error()))
		r.metrics.IncrementDatabaseQueries("learning_plan_get_by_id", false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.metrics.IncrementDatabaseQueries("learning_plan_get_by_id", true)
	return plan, nil
}
