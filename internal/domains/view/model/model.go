package model

import (
	bookingModel "eventrix/internal/domains/booking/model"
	checkinModel "eventrix/internal/domains/checkin/model"
	equipmentModel "eventrix/internal/domains/equipment/model"
	eventModel "eventrix/internal/domains/event/model"
	userModel "eventrix/internal/domains/user/model"
)

// The view models are read-only projections: normalized records joined by
// foreign key into display-ready form, with every dangling reference resolved
// to the "N/A" sentinel instead of an error. They are recomputed wholesale
// from the current store snapshot and never persisted.

// FullCheckIn annotates a check-in with the attendee's name and role.
type FullCheckIn struct {
	checkinModel.CheckIn
	UserName string `json:"user_name"`
	UserRole string `json:"user_role"`
}

// FullBooking annotates a booking with equipment and assignee names, as shown
// under an event.
type FullBooking struct {
	bookingModel.Booking
	EquipName string `json:"equip_name"`
	UserName  string `json:"user_name"`
}

// BookingDetail annotates a booking with equipment and event names, as shown
// under a user.
type BookingDetail struct {
	bookingModel.Booking
	EquipName string `json:"equip_name"`
	EventName string `json:"event_name"`
}

// EquipmentBooking annotates a booking with event and borrower names, as shown
// in an equipment item's history.
type EquipmentBooking struct {
	bookingModel.Booking
	EventName string `json:"event_name"`
	UserName  string `json:"user_name"`
}

type FullEvent struct {
	eventModel.Event
	OrganizerName string        `json:"organizer_name"`
	CheckIns      []FullCheckIn `json:"checkins"`
	Bookings      []FullBooking `json:"bookings"`
	AttendeeCount int           `json:"attendee_count"`
}

type FullUser struct {
	userModel.User
	OrganizedEvents []eventModel.Event `json:"organizedEvents"`
	AttendedEvents  []eventModel.Event `json:"attendedEvents"`
	BookingDetails  []BookingDetail    `json:"bookingDetails"`
	OrganizedCount  int                `json:"organized_count"`
	AttendedCount   int                `json:"attended_count"`
}

type FullEquipment struct {
	equipmentModel.Equipment
	BookingHistory []EquipmentBooking `json:"bookingHistory"`
}

// Collections is the store snapshot the builder consumes.
type Collections struct {
	Users     []userModel.User
	Events    []eventModel.Event
	Equipment []equipmentModel.Equipment
	Bookings  []bookingModel.Booking
	CheckIns  []checkinModel.CheckIn
}
