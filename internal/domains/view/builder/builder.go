// Package builder computes the enriched view projections from a snapshot of
// the five entity collections. Every function here is total and pure: no
// error returns, no input mutation, and any foreign key that fails to resolve
// degrades to the "N/A" sentinel (or the default role) instead of failing.
package builder

import (
	"slices"
	"time"

	bookingModel "eventrix/internal/domains/booking/model"
	checkinModel "eventrix/internal/domains/checkin/model"
	equipmentModel "eventrix/internal/domains/equipment/model"
	eventModel "eventrix/internal/domains/event/model"
	userModel "eventrix/internal/domains/user/model"
	"eventrix/internal/domains/view/model"
	"eventrix/shared/constant"
)

// FullEvents enriches every event with its organizer name, check-ins,
// bookings, and attendee count, sorted by event date descending (stable).
func FullEvents(events []eventModel.Event, users []userModel.User, checkins []checkinModel.CheckIn, bookings []bookingModel.Booking, equipment []equipmentModel.Equipment) []model.FullEvent {
	usersByID := indexUsers(users)
	equipmentByID := indexEquipment(equipment)

	full := make([]model.FullEvent, 0, len(events))

	for _, event := range events {
		enriched := model.FullEvent{
			Event:         event,
			OrganizerName: userName(usersByID, event.OrganizerID),
			CheckIns:      []model.FullCheckIn{},
			Bookings:      []model.FullBooking{},
		}

		for _, checkin := range checkins {
			if checkin.EventID != event.ID {
				continue
			}

			enriched.CheckIns = append(enriched.CheckIns, model.FullCheckIn{
				CheckIn:  checkin,
				UserName: userName(usersByID, checkin.UserID),
				UserRole: userRole(usersByID, checkin.UserID),
			})
		}

		for _, booking := range bookings {
			if booking.EventID != event.ID {
				continue
			}

			enriched.Bookings = append(enriched.Bookings, model.FullBooking{
				Booking:   booking,
				EquipName: equipmentName(equipmentByID, booking.EquipID),
				UserName:  userName(usersByID, booking.AssignedTo),
			})
		}

		enriched.AttendeeCount = len(enriched.CheckIns)

		full = append(full, enriched)
	}

	slices.SortStableFunc(full, func(a, b model.FullEvent) int {
		return parseWhen(b.Date).Compare(parseWhen(a.Date))
	})

	return full
}

// FullUsers enriches every user with the events they organized, the events
// they attended (one entry per event regardless of repeat check-ins), and
// their bookings annotated with equipment and event names. Input user order is
// preserved.
func FullUsers(users []userModel.User, events []eventModel.Event, checkins []checkinModel.CheckIn, bookings []bookingModel.Booking, equipment []equipmentModel.Equipment) []model.FullUser {
	eventsByID := indexEvents(events)
	equipmentByID := indexEquipment(equipment)

	full := make([]model.FullUser, 0, len(users))

	for _, user := range users {
		enriched := model.FullUser{
			User:            user,
			OrganizedEvents: []eventModel.Event{},
			AttendedEvents:  []eventModel.Event{},
			BookingDetails:  []model.BookingDetail{},
		}

		attended := map[int64]bool{}

		for _, checkin := range checkins {
			if checkin.UserID == user.ID {
				attended[checkin.EventID] = true
			}
		}

		for _, event := range events {
			if event.OrganizerID == user.ID {
				enriched.OrganizedEvents = append(enriched.OrganizedEvents, event)
			}

			if attended[event.ID] {
				enriched.AttendedEvents = append(enriched.AttendedEvents, event)
			}
		}

		for _, booking := range bookings {
			if booking.AssignedTo != user.ID {
				continue
			}

			enriched.BookingDetails = append(enriched.BookingDetails, model.BookingDetail{
				Booking:   booking,
				EquipName: equipmentName(equipmentByID, booking.EquipID),
				EventName: eventName(eventsByID, booking.EventID),
			})
		}

		enriched.OrganizedCount = len(enriched.OrganizedEvents)
		enriched.AttendedCount = len(enriched.AttendedEvents)

		full = append(full, enriched)
	}

	return full
}

// FullEquipment enriches every equipment item with its booking history,
// annotated with event and borrower names and sorted by borrow date
// descending.
func FullEquipment(equipment []equipmentModel.Equipment, bookings []bookingModel.Booking, events []eventModel.Event, users []userModel.User) []model.FullEquipment {
	usersByID := indexUsers(users)
	eventsByID := indexEvents(events)

	full := make([]model.FullEquipment, 0, len(equipment))

	for _, item := range equipment {
		enriched := model.FullEquipment{
			Equipment:      item,
			BookingHistory: []model.EquipmentBooking{},
		}

		for _, booking := range bookings {
			if booking.EquipID != item.ID {
				continue
			}

			enriched.BookingHistory = append(enriched.BookingHistory, model.EquipmentBooking{
				Booking:   booking,
				EventName: eventName(eventsByID, booking.EventID),
				UserName:  userName(usersByID, booking.AssignedTo),
			})
		}

		slices.SortStableFunc(enriched.BookingHistory, func(a, b model.EquipmentBooking) int {
			return parseWhen(b.BorrowDate).Compare(parseWhen(a.BorrowDate))
		})

		full = append(full, enriched)
	}

	return full
}

func indexUsers(users []userModel.User) map[int64]userModel.User {
	byID := make(map[int64]userModel.User, len(users))
	for _, user := range users {
		byID[user.ID] = user
	}

	return byID
}

func indexEvents(events []eventModel.Event) map[int64]eventModel.Event {
	byID := make(map[int64]eventModel.Event, len(events))
	for _, event := range events {
		byID[event.ID] = event
	}

	return byID
}

func indexEquipment(equipment []equipmentModel.Equipment) map[int64]equipmentModel.Equipment {
	byID := make(map[int64]equipmentModel.Equipment, len(equipment))
	for _, item := range equipment {
		byID[item.ID] = item
	}

	return byID
}

func userName(users map[int64]userModel.User, id int64) string {
	if user, ok := users[id]; ok {
		return user.Name
	}

	return constant.SentinelNA
}

func userRole(users map[int64]userModel.User, id int64) string {
	if user, ok := users[id]; ok && user.Role != constant.Empty {
		return user.Role
	}

	return constant.UserRoleParticipant
}

func eventName(events map[int64]eventModel.Event, id int64) string {
	if event, ok := events[id]; ok {
		return event.Name
	}

	return constant.SentinelNA
}

func equipmentName(equipment map[int64]equipmentModel.Equipment, id int64) string {
	if item, ok := equipment[id]; ok {
		return item.Name
	}

	return constant.SentinelNA
}

// parseWhen turns a stored date string into a comparable time. Both RFC3339
// and bare dates occur in the data; anything unparseable compares as the zero
// time so ordering still works.
func parseWhen(value string) time.Time {
	if when, err := time.Parse(constant.DateFormat, value); err == nil {
		return when
	}

	if when, err := time.Parse(constant.DateOnlyFormat, value); err == nil {
		return when
	}

	return time.Time{}
}
