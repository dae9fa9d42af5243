package repository

import (
	"context"

	"eventrix/config"
	"eventrix/infras/otel"
	"eventrix/infras/postgres"
	"eventrix/internal/domains/account/model"
	"eventrix/shared/constant"
	gDto "eventrix/shared/dto"
	gRepo "eventrix/shared/repository"
)

type Account interface {
	Insert(ctx context.Context, model model.Account) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Account, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Account]
	db   *postgres.Connection
	otel otel.Otel
}

func New(cfg *config.Config, db *postgres.Connection, otel otel.Otel) Account {
	if cfg.DB.Driver == constant.StoreDriverMemory {
		return gRepo.NewMemory[model.Account](model.EntityName, model.FieldID)
	}

	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Account](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
