package service

import (
	"context"
	"fmt"

	"eventrix/config"
	"eventrix/infras/otel"
	bookingRepo "eventrix/internal/domains/booking/repository"
	checkinRepo "eventrix/internal/domains/checkin/repository"
	equipmentRepo "eventrix/internal/domains/equipment/repository"
	eventRepo "eventrix/internal/domains/event/repository"
	userRepo "eventrix/internal/domains/user/repository"
	"eventrix/internal/domains/view/builder"
	"eventrix/internal/domains/view/model"
	"eventrix/shared"
	"eventrix/shared/cache"
	"eventrix/shared/constant"
	gDto "eventrix/shared/dto"

	"github.com/rs/zerolog/log"
)

// View serves the three enriched projections. The builder recomputes from a
// full snapshot on every miss; the Redis entries are a transparent cache that
// mutating services blow away under the "view" prefix, never an incremental
// structure.
type View interface {
	FullEvents(ctx context.Context) ([]model.FullEvent, error)
	FullUsers(ctx context.Context) ([]model.FullUser, error)
	FullEquipment(ctx context.Context) ([]model.FullEquipment, error)
}

type serviceImpl struct {
	users     userRepo.User
	events    eventRepo.Event
	equipment equipmentRepo.Equipment
	bookings  bookingRepo.Booking
	checkins  checkinRepo.CheckIn
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	users userRepo.User,
	events eventRepo.Event,
	equipment equipmentRepo.Equipment,
	bookings bookingRepo.Booking,
	checkins checkinRepo.CheckIn,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) View {
	return &serviceImpl{
		users:     users,
		events:    events,
		equipment: equipment,
		bookings:  bookings,
		checkins:  checkins,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) FullEvents(ctx context.Context) (res []model.FullEvent, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FullEvents")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(constant.CacheViewPrefix, "events")

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for event view")

		return res, nil
	}

	snapshot, err := s.loadCollections(ctx)
	if err != nil {
		return nil, err
	}

	res = builder.FullEvents(snapshot.Events, snapshot.Users, snapshot.CheckIns, snapshot.Bookings, snapshot.Equipment)

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) FullUsers(ctx context.Context) (res []model.FullUser, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FullUsers")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(constant.CacheViewPrefix, "users")

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for user view")

		return res, nil
	}

	snapshot, err := s.loadCollections(ctx)
	if err != nil {
		return nil, err
	}

	res = builder.FullUsers(snapshot.Users, snapshot.Events, snapshot.CheckIns, snapshot.Bookings, snapshot.Equipment)

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) FullEquipment(ctx context.Context) (res []model.FullEquipment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FullEquipment")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(constant.CacheViewPrefix, "equipment")

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for equipment view")

		return res, nil
	}

	snapshot, err := s.loadCollections(ctx)
	if err != nil {
		return nil, err
	}

	res = builder.FullEquipment(snapshot.Equipment, snapshot.Bookings, snapshot.Events, snapshot.Users)

	s.save(ctx, cacheKey, res)

	return res, nil
}

// loadCollections pulls the whole of all five tables; the builder wants a
// complete snapshot, not a page.
func (s *serviceImpl) loadCollections(ctx context.Context) (snapshot model.Collections, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelBuilderScopeName, constant.OtelBuilderScopeName+".loadCollections")
	defer scope.End()
	defer scope.TraceIfError(err)

	all := gDto.QueryParams{}
	none := gDto.FilterGroup{}

	if snapshot.Users, err = s.users.GetAll(ctx, all, none); err != nil {
		return snapshot, fmt.Errorf("failed to load users: %w", err)
	}

	if snapshot.Events, err = s.events.GetAll(ctx, all, none); err != nil {
		return snapshot, fmt.Errorf("failed to load events: %w", err)
	}

	if snapshot.Equipment, err = s.equipment.GetAll(ctx, all, none); err != nil {
		return snapshot, fmt.Errorf("failed to load equipment: %w", err)
	}

	if snapshot.Bookings, err = s.bookings.GetAll(ctx, all, none); err != nil {
		return snapshot, fmt.Errorf("failed to load bookings: %w", err)
	}

	if snapshot.CheckIns, err = s.checkins.GetAll(ctx, all, none); err != nil {
		return snapshot, fmt.Errorf("failed to load checkins: %w", err)
	}

	return snapshot, nil
}

func (s *serviceImpl) save(ctx context.Context, cacheKey string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", cacheKey).Msg("failed to save view to cache")
		}
	}()
}
