package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/ah01567/Bookini/infras/otel"
	"github.com/ah01567/Bookini/infras/postgres"
	"github.com/ah01567/Bookini/internal/domains/publication/model"
	gDto "github.com/ah01567/Bookini/shared/dto"
	gRepo "github.com/ah01567/Bookini/shared/repository"
)

type PublishJob interface {
	Insert(ctx context.Context, model model.PublishJob) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.PublishJob, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.PublishJob, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.PublishJob]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) PublishJob {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.PublishJob](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
