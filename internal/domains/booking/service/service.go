package service

import (
	"context"
	"fmt"

	"eventrix/config"
	"eventrix/infras/otel"
	"eventrix/internal/domains/booking/model"
	"eventrix/internal/domains/booking/model/dto"
	"eventrix/internal/domains/booking/repository"
	equipmentModel "eventrix/internal/domains/equipment/model"
	equipmentDto "eventrix/internal/domains/equipment/model/dto"
	equipmentRepo "eventrix/internal/domains/equipment/repository"
	"eventrix/shared"
	"eventrix/shared/cache"
	"eventrix/shared/constant"
	gDto "eventrix/shared/dto"
	"eventrix/shared/failure"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id int64) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id int64) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo          repository.Booking
	equipmentRepo equipmentRepo.Equipment
	cfg           *config.Config
	cache         cache.RedisCache
	otel          otel.Otel
}

func New(repo repository.Booking, equipmentRepo equipmentRepo.Equipment, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:          repo,
		equipmentRepo: equipmentRepo,
		cfg:           cfg,
		cache:         cache,
		otel:          otel,
	}
}

// Create books equipment for an event. The equipment must exist and flips to
// Borrowed as a side effect; event and assignee references are not enforced,
// dangling ids render as "N/A" in the views.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	account, _ := ctx.Value(constant.ContextKeyAccountEmail).(string)

	equipmentFilter := shared.FilterByID(req.EquipID, equipmentModel.FieldID, equipmentModel.TableName)

	exist, err := s.equipmentRepo.Exist(ctx, equipmentFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if equipment exists")

		return fmt.Errorf("failed to check if equipment exists: %w", err)
	}

	if !exist {
		return failure.NotFound("equipment not found") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(account)); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return fmt.Errorf("failed to create booking: %w", err)
	}

	statusReq := equipmentDto.UpdateEquipmentStatusRequest{Status: constant.EquipmentStatusBorrowed}

	if err = s.equipmentRepo.Update(ctx, shared.TransformFields(statusReq, account), equipmentFilter); err != nil {
		log.Error().Err(err).Msg("failed to mark equipment as borrowed")

		return fmt.Errorf("failed to mark equipment as borrowed: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateBookingRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	account, _ := ctx.Value(constant.ContextKeyAccountEmail).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, account)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

// Delete removes the booking record without touching the equipment status;
// returns go through the equipment return action instead.
func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		// Booking mutations may flip equipment status, so both caches go.
		shared.InvalidateCaches(c, s.cache, "equipment:")
		shared.InvalidateCaches(c, s.cache, constant.CacheViewPrefix)
	}()
}
