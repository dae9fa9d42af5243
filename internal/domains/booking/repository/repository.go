package repository

import (
	"context"
	"slices"

	"eventrix/config"
	"eventrix/infras/otel"
	"eventrix/infras/postgres"
	"eventrix/internal/domains/booking/model"
	"eventrix/shared/constant"
	gDto "eventrix/shared/dto"
	gRepo "eventrix/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(cfg *config.Config, db *postgres.Connection, otel otel.Otel) Booking {
	if cfg.DB.Driver == constant.StoreDriverMemory {
		return gRepo.NewMemory[model.Booking](model.EntityName, model.FieldID)
	}

	repo := gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel)

	// id is BIGSERIAL, the database assigns it.
	repo.InsertColumns = slices.DeleteFunc(repo.InsertColumns, func(col string) bool {
		return col == model.FieldID
	})

	return &repositoryImpl{
		Repository: repo,
		db:         db,
		otel:       otel,
	}
}
