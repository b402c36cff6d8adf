package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"streakhub/infras/otel"
	"streakhub/infras/postgres"
	"streakhub/internal/domains/goal/model"
	"streakhub/shared/constant"
	gDto "streakhub/shared/dto"
	gRepo "streakhub/shared/repository"

	"github.com/rs/zerolog/log"
)

type Goal interface {
	Insert(ctx context.Context, model model.Goal) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Goal, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Goal, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error

	GetProgress(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.GoalProgress, error)
	GetAllProgress(ctx context.Context, filter gDto.FilterGroup) ([]model.GoalProgress, error)

	// Complete records a progress row and applies the streak update to the
	// goal in one transaction. The UNIQUE(goal_id, completed_date) index
	// rejects a second completion for the same day; the caller maps that to
	// a conflict.
	Complete(ctx context.Context, progress model.GoalProgress, goalUpdate map[string]any, goalFilter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Goal]
	progress gRepo.Repository[model.GoalProgress]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Goal {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Goal](model.EntityName, model.TableName, model.FieldID, db, otel),
		progress:   gRepo.NewRepository[model.GoalProgress](model.ProgressEntityName, model.ProgressTableName, model.ProgressFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetProgress(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.GoalProgress, error) {
	return repo.progress.GetAll(ctx, params, filter)
}

// GetAllProgress fetches progress rows without pagination. The reminder job
// and the streak calculator consume whole ranges.
func (repo *repositoryImpl) GetAllProgress(ctx context.Context, filter gDto.FilterGroup) ([]model.GoalProgress, error) {
	params := gDto.QueryParams{
		Limit:   0,
		SortBy:  model.ProgressFieldCompletedDate,
		SortDir: gDto.SortDirDesc,
	}

	return repo.progress.GetAll(ctx, params, filter)
}

func (repo *repositoryImpl) Complete(ctx context.Context, progress model.GoalProgress, goalUpdate map[string]any, goalFilter gDto.FilterGroup) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Complete")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Error().Err(rollbackErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = repo.progress.InsertTx(ctx, tx, progress); err != nil {
		return fmt.Errorf("failed to insert goal progress: %w", err)
	}

	if err = repo.UpdateTx(ctx, tx, goalUpdate, goalFilter); err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit transaction")

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
