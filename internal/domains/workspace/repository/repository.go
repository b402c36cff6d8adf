package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"streakhub/infras/otel"
	"streakhub/infras/postgres"
	"streakhub/internal/domains/workspace/model"
	"streakhub/shared/constant"
	gDto "streakhub/shared/dto"
	gRepo "streakhub/shared/repository"

	"github.com/rs/zerolog/log"
)

type Workspace interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Workspace, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Workspace, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)

	// Create inserts the workspace and its owner membership in one
	// transaction so a workspace can never exist without an owner member.
	Create(ctx context.Context, workspace model.Workspace, owner model.WorkspaceMember) error

	InsertMember(ctx context.Context, member model.WorkspaceMember) error
	GetMembers(ctx context.Context, filter gDto.FilterGroup) ([]model.WorkspaceMember, error)
	MemberExists(ctx context.Context, filter gDto.FilterGroup) (bool, error)

	InsertGoal(ctx context.Context, link model.WorkspaceGoal) error
	GetGoals(ctx context.Context, filter gDto.FilterGroup) ([]model.WorkspaceGoal, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Workspace]
	members gRepo.Repository[model.WorkspaceMember]
	goals   gRepo.Repository[model.WorkspaceGoal]
	db      *postgres.Connection
	otel    otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Workspace {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Workspace](model.EntityName, model.TableName, model.FieldID, db, otel),
		members:    gRepo.NewRepository[model.WorkspaceMember](model.MemberEntityName, model.MemberTableName, model.MemberFieldID, db, otel),
		goals:      gRepo.NewRepository[model.WorkspaceGoal](model.GoalEntityName, model.GoalTableName, model.GoalFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) Create(ctx context.Context, workspace model.Workspace, owner model.WorkspaceMember) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".CreateWorkspace")
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

	if err = repo.InsertTx(ctx, tx, workspace); err != nil {
		return fmt.Errorf("failed to insert workspace: %w", err)
	}

	if err = repo.members.InsertTx(ctx, tx, owner); err != nil {
		return fmt.Errorf("failed to insert owner membership: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit transaction")

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) InsertMember(ctx context.Context, member model.WorkspaceMember) error {
	return repo.members.Insert(ctx, member)
}

func (repo *repositoryImpl) GetMembers(ctx context.Context, filter gDto.FilterGroup) ([]model.WorkspaceMember, error) {
	params := gDto.QueryParams{
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirAsc,
	}

	return repo.members.GetAll(ctx, params, filter)
}

func (repo *repositoryImpl) MemberExists(ctx context.Context, filter gDto.FilterGroup) (bool, error) {
	return repo.members.Exist(ctx, filter)
}

func (repo *repositoryImpl) InsertGoal(ctx context.Context, link model.WorkspaceGoal) error {
	return repo.goals.Insert(ctx, link)
}

func (repo *repositoryImpl) GetGoals(ctx context.Context, filter gDto.FilterGroup) ([]model.WorkspaceGoal, error) {
	params := gDto.QueryParams{
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirAsc,
	}

	return repo.goals.GetAll(ctx, params, filter)
}
