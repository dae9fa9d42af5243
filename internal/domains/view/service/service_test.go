package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"eventrix/config"
	"eventrix/infras/otel/mocks"
	bookingMocks "eventrix/internal/domains/booking/mocks"
	bookingModel "eventrix/internal/domains/booking/model"
	checkinMocks "eventrix/internal/domains/checkin/mocks"
	checkinModel "eventrix/internal/domains/checkin/model"
	equipmentMocks "eventrix/internal/domains/equipment/mocks"
	equipmentModel "eventrix/internal/domains/equipment/model"
	eventMocks "eventrix/internal/domains/event/mocks"
	eventModel "eventrix/internal/domains/event/model"
	userMocks "eventrix/internal/domains/user/mocks"
	userModel "eventrix/internal/domains/user/model"
	"eventrix/internal/domains/view/model"
	"eventrix/internal/domains/view/service"
	cacheMocks "eventrix/shared/cache/mocks"
)

type viewFixture struct {
	users     *userMocks.MockUser
	events    *eventMocks.MockEvent
	equipment *equipmentMocks.MockEquipment
	bookings  *bookingMocks.MockBooking
	checkins  *checkinMocks.MockCheckIn
	cache     *cacheMocks.MockRedisCache
	svc       service.View
}

func newViewFixture(ctrl *gomock.Controller) *viewFixture {
	f := &viewFixture{
		users:     userMocks.NewMockUser(ctrl),
		events:    eventMocks.NewMockEvent(ctrl),
		equipment: equipmentMocks.NewMockEquipment(ctrl),
		bookings:  bookingMocks.NewMockBooking(ctrl),
		checkins:  checkinMocks.NewMockCheckIn(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.users, f.events, f.equipment, f.bookings, f.checkins, cfg, f.cache, mocks.NewOtel())

	return f
}

func (f *viewFixture) expectSnapshot() {
	f.users.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]userModel.User{{ID: 1, Name: "Alice", Role: "Organizer"}}, nil)

	f.events.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]eventModel.Event{{ID: 10, Name: "Conf", Date: "2024-05-30", OrganizerID: 1}}, nil)

	f.equipment.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]equipmentModel.Equipment{{ID: 20, Name: "Projector"}}, nil)

	f.bookings.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]bookingModel.Booking{{ID: 200, EventID: 10, EquipID: 20, AssignedTo: 1, BorrowDate: "2024-05-29"}}, nil)

	f.checkins.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]checkinModel.CheckIn{{ID: 100, UserID: 1, EventID: 10, CheckinTime: "2024-05-30T09:00:00Z"}}, nil)
}

func TestViewService_FullEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("cache miss rebuilds from snapshot", func(t *testing.T) {
		f := newViewFixture(ctrl)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		f.expectSnapshot()

		f.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := f.svc.FullEvents(context.Background())
		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, "Alice", res[0].OrganizerName)
		assert.Equal(t, 1, res[0].AttendeeCount)
	})

	t.Run("cache hit skips the repositories", func(t *testing.T) {
		f := newViewFixture(ctrl)

		cached := []model.FullEvent{{OrganizerName: "Cached"}}

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*value.(*[]model.FullEvent) = cached

				return nil
			})

		// No repository expectations: a hit must not touch the store.
		res, err := f.svc.FullEvents(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, cached, res)
	})

	t.Run("snapshot load error propagates", func(t *testing.T) {
		f := newViewFixture(ctrl)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		f.users.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := f.svc.FullEvents(context.Background())
		assert.Error(t, err)
	})
}

func TestViewService_FullUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newViewFixture(ctrl)

	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	f.expectSnapshot()

	f.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := f.svc.FullUsers(context.Background())
	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, 1, res[0].OrganizedCount)
	assert.Equal(t, 1, res[0].AttendedCount)
	assert.Len(t, res[0].BookingDetails, 1)
}

func TestViewService_FullEquipment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newViewFixture(ctrl)

	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	f.expectSnapshot()

	f.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := f.svc.FullEquipment(context.Background())
	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Len(t, res[0].BookingHistory, 1)
	assert.Equal(t, "Conf", res[0].BookingHistory[0].EventName)
}
