package service

import (
	"context"
	"fmt"
	"strconv"

	"eventrix/config"
	"eventrix/infras/otel"
	bookingModel "eventrix/internal/domains/booking/model"
	bookingDto "eventrix/internal/domains/booking/model/dto"
	bookingRepo "eventrix/internal/domains/booking/repository"
	"eventrix/internal/domains/equipment/model"
	"eventrix/internal/domains/equipment/model/dto"
	"eventrix/internal/domains/equipment/repository"
	"eventrix/shared"
	"eventrix/shared/cache"
	"eventrix/shared/constant"
	gDto "eventrix/shared/dto"
	"eventrix/shared/failure"
	"eventrix/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetEquipment    = "equipment:get"
	cacheGetAllEquipment = "equipment:gets"
	cacheCountEquipment  = "equipment:count"
)

type Equipment interface {
	Create(ctx context.Context, req dto.CreateEquipmentRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetEquipmentsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int64) (dto.EquipmentResponse, error)
	Update(ctx context.Context, req dto.UpdateEquipmentRequest, id int64) error
	Delete(ctx context.Context, id int64) error
	Return(ctx context.Context, id int64) error
	MarkDamaged(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo        repository.Equipment
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(repo repository.Equipment, bookingRepo bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Equipment {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateEquipmentRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	account, _ := ctx.Value(constant.ContextKeyAccountEmail).(string)

	if err = s.repo.Insert(ctx, req.ToModel(account)); err != nil {
		log.Error().Err(err).Msg("failed to create equipment")

		return fmt.Errorf("failed to create equipment: %w", err)
	}

	s.invalidate(ctx, 0)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetEquipmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllEquipment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for equipments")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count equipments")

		return res, fmt.Errorf("failed to count equipments: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get equipments")

		return res, fmt.Errorf("failed to get equipments: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save equipments to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountEquipment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count equipments")

		return res, fmt.Errorf("failed to count equipments: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save equipment count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.EquipmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetEquipment, strconv.FormatInt(id, 10))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for equipment")

		return res, nil
	}

	equipment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get equipment")

		return res, fmt.Errorf("failed to get equipment: %w", err)
	}

	if equipment.ID == 0 {
		return res, failure.NotFound("equipment not found") // nolint:wrapcheck
	}

	res.FromModel(equipment)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save equipment to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateEquipmentRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateEquipmentRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	account, _ := ctx.Value(constant.ContextKeyAccountEmail).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if equipment exists")

		return fmt.Errorf("failed to check if equipment exists: %w", err)
	}

	if !exist {
		return failure.NotFound("equipment not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, account)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update equipment")

		return fmt.Errorf("failed to update equipment: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if equipment exists")

		return fmt.Errorf("failed to check if equipment exists: %w", err)
	}

	if !exist {
		return failure.NotFound("equipment not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete equipment")

		return fmt.Errorf("failed to delete equipment: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// Return closes the open booking for the equipment (the one whose return_date
// is still null) by stamping today's date, then reverts the equipment status
// to Available. A missing open booking is not an error: the status still
// reverts so the item becomes bookable again.
func (s *serviceImpl) Return(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Return")
	defer scope.End()
	defer scope.TraceIfError(err)

	account, _ := ctx.Value(constant.ContextKeyAccountEmail).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if equipment exists")

		return fmt.Errorf("failed to check if equipment exists: %w", err)
	}

	if !exist {
		return failure.NotFound("equipment not found") // nolint:wrapcheck
	}

	openBookingFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldEquipID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				Field:    bookingModel.FieldReturnDate,
				Operator: gDto.FilterIsNull,
				Table:    bookingModel.TableName,
			},
		},
	}

	openExist, err := s.bookingRepo.Exist(ctx, openBookingFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check open booking")

		return fmt.Errorf("failed to check open booking: %w", err)
	}

	if openExist {
		closeReq := bookingDto.CloseBookingRequest{ReturnDate: timezone.Format(timezone.Now(), constant.DateOnlyFormat)}

		if err = s.bookingRepo.Update(ctx, shared.TransformFields(closeReq, account), openBookingFilter); err != nil {
			log.Error().Err(err).Msg("failed to close booking")

			return fmt.Errorf("failed to close booking: %w", err)
		}
	}

	return s.setStatus(ctx, id, constant.EquipmentStatusAvailable, account, filter)
}

// MarkDamaged flips the status to Damaged regardless of the current state.
func (s *serviceImpl) MarkDamaged(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkDamaged")
	defer scope.End()
	defer scope.TraceIfError(err)

	account, _ := ctx.Value(constant.ContextKeyAccountEmail).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if equipment exists")

		return fmt.Errorf("failed to check if equipment exists: %w", err)
	}

	if !exist {
		return failure.NotFound("equipment not found") // nolint:wrapcheck
	}

	return s.setStatus(ctx, id, constant.EquipmentStatusDamaged, account, filter)
}

func (s *serviceImpl) setStatus(ctx context.Context, id int64, status, account string, filter gDto.FilterGroup) error {
	statusReq := dto.UpdateEquipmentStatusRequest{Status: status}

	if err := s.repo.Update(ctx, shared.TransformFields(statusReq, account), filter); err != nil {
		log.Error().Err(err).Msg("failed to update equipment status")

		return fmt.Errorf("failed to update equipment status: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id int64) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != 0 {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetEquipment, strconv.FormatInt(id, 10))); err != nil {
				log.Error().Err(err).Msg("failed to delete equipment cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllEquipment)
		shared.InvalidateCaches(c, s.cache, cacheCountEquipment)
		shared.InvalidateCaches(c, s.cache, constant.CacheViewPrefix)
	}()
}
