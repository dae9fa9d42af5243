package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	bookingModel "eventrix/internal/domains/booking/model"
	checkinModel "eventrix/internal/domains/checkin/model"
	equipmentModel "eventrix/internal/domains/equipment/model"
	eventModel "eventrix/internal/domains/event/model"
	userModel "eventrix/internal/domains/user/model"
	"eventrix/internal/domains/view/builder"
	"eventrix/shared/constant"
)

func TestFullEvents_Enrichment(t *testing.T) {
	users := []userModel.User{
		{ID: 1, Name: "Alice", Role: constant.UserRoleOrganizer},
	}
	events := []eventModel.Event{
		{ID: 10, Name: "Conf", Date: "2024-06-01", OrganizerID: 1},
	}
	checkins := []checkinModel.CheckIn{
		{ID: 100, UserID: 1, EventID: 10, CheckinTime: "2024-06-01T09:00:00Z"},
	}
	equipment := []equipmentModel.Equipment{
		{ID: 20, Name: "Projector"},
	}
	bookings := []bookingModel.Booking{
		{ID: 200, EventID: 10, EquipID: 20, AssignedTo: 1, BorrowDate: "2024-05-30"},
	}

	full := builder.FullEvents(events, users, checkins, bookings, equipment)

	assert.Len(t, full, 1)
	assert.Equal(t, "Alice", full[0].OrganizerName)
	assert.Equal(t, 1, full[0].AttendeeCount)

	assert.Len(t, full[0].CheckIns, 1)
	assert.Equal(t, "Alice", full[0].CheckIns[0].UserName)
	assert.Equal(t, constant.UserRoleOrganizer, full[0].CheckIns[0].UserRole)

	assert.Len(t, full[0].Bookings, 1)
	assert.Equal(t, "Projector", full[0].Bookings[0].EquipName)
	assert.Equal(t, "Alice", full[0].Bookings[0].UserName)
}

func TestFullEvents_DanglingReferences(t *testing.T) {
	events := []eventModel.Event{
		{ID: 10, Name: "Orphaned", Date: "2024-06-01", OrganizerID: 99},
	}
	checkins := []checkinModel.CheckIn{
		{ID: 100, UserID: 42, EventID: 10, CheckinTime: "2024-06-01T09:00:00Z"},
	}
	bookings := []bookingModel.Booking{
		{ID: 200, EventID: 10, EquipID: 77, AssignedTo: 42, BorrowDate: "2024-05-30"},
	}

	full := builder.FullEvents(events, nil, checkins, bookings, nil)

	assert.Len(t, full, 1)
	assert.Equal(t, constant.SentinelNA, full[0].OrganizerName)
	assert.Equal(t, constant.SentinelNA, full[0].CheckIns[0].UserName)
	assert.Equal(t, constant.UserRoleParticipant, full[0].CheckIns[0].UserRole)
	assert.Equal(t, constant.SentinelNA, full[0].Bookings[0].EquipName)
	assert.Equal(t, constant.SentinelNA, full[0].Bookings[0].UserName)
}

func TestFullEvents_SortedByDateDescending(t *testing.T) {
	events := []eventModel.Event{
		{ID: 1, Name: "Old", Date: "2024-01-01"},
		{ID: 2, Name: "New", Date: "2024-09-01"},
		{ID: 3, Name: "Mid", Date: "2024-07-01T10:00:00Z"},
	}

	full := builder.FullEvents(events, nil, nil, nil, nil)

	assert.Len(t, full, 3)
	assert.Equal(t, "New", full[0].Name)
	assert.Equal(t, "Mid", full[1].Name)
	assert.Equal(t, "Old", full[2].Name)
}

func TestFullEvents_UnparseableDatesKeepInputOrder(t *testing.T) {
	events := []eventModel.Event{
		{ID: 1, Name: "First", Date: "not-a-date"},
		{ID: 2, Name: "Second", Date: "also-not-a-date"},
	}

	full := builder.FullEvents(events, nil, nil, nil, nil)

	// The sort is stable, so equal (zero) dates preserve input order.
	assert.Equal(t, "First", full[0].Name)
	assert.Equal(t, "Second", full[1].Name)
}

func TestFullEvents_EmptyInput(t *testing.T) {
	full := builder.FullEvents(nil, nil, nil, nil, nil)

	assert.NotNil(t, full)
	assert.Empty(t, full)
}

func TestFullUsers_OrganizedAndAttended(t *testing.T) {
	users := []userModel.User{
		{ID: 1, Name: "Alice", Role: constant.UserRoleOrganizer},
	}
	events := []eventModel.Event{
		{ID: 10, Name: "Conf", Date: "2024-06-01", OrganizerID: 1},
	}
	checkins := []checkinModel.CheckIn{
		{ID: 100, UserID: 1, EventID: 10, CheckinTime: "2024-06-01T09:00:00Z"},
	}

	full := builder.FullUsers(users, events, checkins, nil, nil)

	assert.Len(t, full, 1)
	assert.Len(t, full[0].OrganizedEvents, 1)
	assert.Equal(t, "Conf", full[0].OrganizedEvents[0].Name)
	assert.Len(t, full[0].AttendedEvents, 1)
	assert.Equal(t, "Conf", full[0].AttendedEvents[0].Name)
	assert.Equal(t, 1, full[0].OrganizedCount)
	assert.Equal(t, 1, full[0].AttendedCount)
}

func TestFullUsers_RepeatCheckInsCountOnce(t *testing.T) {
	users := []userModel.User{
		{ID: 1, Name: "Bob"},
	}
	events := []eventModel.Event{
		{ID: 10, Name: "Conf", Date: "2024-06-01", OrganizerID: 2},
	}
	checkins := []checkinModel.CheckIn{
		{ID: 100, UserID: 1, EventID: 10, CheckinTime: "2024-06-01T09:00:00Z"},
		{ID: 101, UserID: 1, EventID: 10, CheckinTime: "2024-06-01T13:00:00Z"},
	}

	full := builder.FullUsers(users, events, checkins, nil, nil)

	assert.Len(t, full[0].AttendedEvents, 1)
	assert.Equal(t, 1, full[0].AttendedCount)
	assert.Equal(t, 0, full[0].OrganizedCount)
}

func TestFullUsers_BookingDetails(t *testing.T) {
	users := []userModel.User{
		{ID: 1, Name: "Bob"},
	}
	events := []eventModel.Event{
		{ID: 10, Name: "Conf", Date: "2024-06-01"},
	}
	equipment := []equipmentModel.Equipment{
		{ID: 20, Name: "Projector"},
	}
	bookings := []bookingModel.Booking{
		{ID: 200, EventID: 10, EquipID: 20, AssignedTo: 1, BorrowDate: "2024-05-30"},
		{ID: 201, EventID: 10, EquipID: 20, AssignedTo: 2, BorrowDate: "2024-05-30"},
	}

	full := builder.FullUsers(users, events, nil, bookings, equipment)

	assert.Len(t, full[0].BookingDetails, 1)
	assert.Equal(t, int64(200), full[0].BookingDetails[0].ID)
	assert.Equal(t, "Projector", full[0].BookingDetails[0].EquipName)
	assert.Equal(t, "Conf", full[0].BookingDetails[0].EventName)
}

func TestFullUsers_PreservesInputOrder(t *testing.T) {
	users := []userModel.User{
		{ID: 3, Name: "Carol"},
		{ID: 1, Name: "Alice"},
		{ID: 2, Name: "Bob"},
	}

	full := builder.FullUsers(users, nil, nil, nil, nil)

	assert.Len(t, full, 3)
	assert.Equal(t, "Carol", full[0].Name)
	assert.Equal(t, "Alice", full[1].Name)
	assert.Equal(t, "Bob", full[2].Name)
}

func TestFullEquipment_BookingHistorySortedByBorrowDateDescending(t *testing.T) {
	equipment := []equipmentModel.Equipment{
		{ID: 20, Name: "Projector"},
	}
	events := []eventModel.Event{
		{ID: 10, Name: "Conf"},
	}
	users := []userModel.User{
		{ID: 1, Name: "Alice"},
	}
	bookings := []bookingModel.Booking{
		{ID: 200, EventID: 10, EquipID: 20, AssignedTo: 1, BorrowDate: "2024-07-01"},
		{ID: 201, EventID: 10, EquipID: 20, AssignedTo: 1, BorrowDate: "2024-09-01"},
		{ID: 202, EventID: 99, EquipID: 21, AssignedTo: 1, BorrowDate: "2024-08-01"},
	}

	full := builder.FullEquipment(equipment, bookings, events, users)

	assert.Len(t, full, 1)
	assert.Len(t, full[0].BookingHistory, 2)
	assert.Equal(t, "2024-09-01", full[0].BookingHistory[0].BorrowDate)
	assert.Equal(t, "2024-07-01", full[0].BookingHistory[1].BorrowDate)
	assert.Equal(t, "Conf", full[0].BookingHistory[0].EventName)
	assert.Equal(t, "Alice", full[0].BookingHistory[0].UserName)
}

func TestFullEquipment_DanglingEventAndUser(t *testing.T) {
	equipment := []equipmentModel.Equipment{
		{ID: 20, Name: "Projector"},
	}
	bookings := []bookingModel.Booking{
		{ID: 200, EventID: 99, EquipID: 20, AssignedTo: 42, BorrowDate: "2024-07-01"},
	}

	full := builder.FullEquipment(equipment, bookings, nil, nil)

	assert.Len(t, full[0].BookingHistory, 1)
	assert.Equal(t, constant.SentinelNA, full[0].BookingHistory[0].EventName)
	assert.Equal(t, constant.SentinelNA, full[0].BookingHistory[0].UserName)
}

func TestFullEquipment_NoBookings(t *testing.T) {
	equipment := []equipmentModel.Equipment{
		{ID: 20, Name: "Projector"},
	}

	full := builder.FullEquipment(equipment, nil, nil, nil)

	assert.Len(t, full, 1)
	assert.NotNil(t, full[0].BookingHistory)
	assert.Empty(t, full[0].BookingHistory)
}
