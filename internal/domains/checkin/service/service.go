package service

import (
	"context"
	"fmt"

	"eventrix/config"
	"eventrix/infras/otel"
	"eventrix/internal/domains/checkin/model"
	"eventrix/internal/domains/checkin/model/dto"
	"eventrix/internal/domains/checkin/repository"
	"eventrix/shared"
	"eventrix/shared/cache"
	"eventrix/shared/constant"
	gDto "eventrix/shared/dto"
	"eventrix/shared/failure"

	"github.com/rs/zerolog/log"
)

type CheckIn interface {
	Create(ctx context.Context, req dto.CreateCheckInRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCheckInsResponse, error)
	Get(ctx context.Context, id int64) (dto.CheckInResponse, error)
	Update(ctx context.Context, req dto.UpdateCheckInRequest, id int64) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo  repository.CheckIn
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.CheckIn, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) CheckIn {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Create records an attendance entry. User and event references are not
// enforced; the views resolve dangling ids to "N/A".
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCheckInRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	account, _ := ctx.Value(constant.ContextKeyAccountEmail).(string)

	if err = s.repo.Insert(ctx, req.ToModel(account)); err != nil {
		log.Error().Err(err).Msg("failed to create checkin")

		return fmt.Errorf("failed to create checkin: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCheckInsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count checkins")

		return res, fmt.Errorf("failed to count checkins: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get checkins")

		return res, fmt.Errorf("failed to get checkins: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.CheckInResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkin, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get checkin")

		return res, fmt.Errorf("failed to get checkin: %w", err)
	}

	if checkin.ID == 0 {
		return res, failure.NotFound("checkin not found") // nolint:wrapcheck
	}

	res.FromModel(checkin)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCheckInRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateCheckInRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	account, _ := ctx.Value(constant.ContextKeyAccountEmail).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if checkin exists")

		return fmt.Errorf("failed to check if checkin exists: %w", err)
	}

	if !exist {
		return failure.NotFound("checkin not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, account)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update checkin")

		return fmt.Errorf("failed to update checkin: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if checkin exists")

		return fmt.Errorf("failed to check if checkin exists: %w", err)
	}

	if !exist {
		return failure.NotFound("checkin not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete checkin")

		return fmt.Errorf("failed to delete checkin: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, constant.CacheViewPrefix)
	}()
}
