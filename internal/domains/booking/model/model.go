package model

import "eventrix/shared/model"

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID         = "id"
	FieldEventID    = "event_id"
	FieldEquipID    = "equip_id"
	FieldAssignedTo = "assigned_to"
	FieldBorrowDate = "borrow_date"
	FieldReturnDate = "return_date"
	FieldRemarks    = "remarks"
)

// A nil ReturnDate marks the booking as still open.
type Booking struct {
	ID         int64   `db:"id" json:"booking_id"`
	EventID    int64   `db:"event_id" json:"event_id"`
	EquipID    int64   `db:"equip_id" json:"equip_id"`
	AssignedTo int64   `db:"assigned_to" json:"assigned_to"`
	BorrowDate string  `db:"borrow_date" json:"borrow_date"`
	ReturnDate *string `db:"return_date" json:"return_date"`
	Remarks    string  `db:"remarks" json:"remarks"`
	model.Metadata
}
