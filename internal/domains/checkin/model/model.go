package model

import "eventrix/shared/model"

const (
	TableName  = "checkins"
	EntityName = "checkin"

	FieldID           = "id"
	FieldUserID       = "user_id"
	FieldEventID      = "event_id"
	FieldCheckinTime  = "checkin_time"
	FieldCheckoutTime = "checkout_time"
	FieldStatus       = "status"
)

type CheckIn struct {
	ID           int64   `db:"id" json:"checkin_id"`
	UserID       int64   `db:"user_id" json:"user_id"`
	EventID      int64   `db:"event_id" json:"event_id"`
	CheckinTime  string  `db:"checkin_time" json:"checkin_time"`
	CheckoutTime *string `db:"checkout_time" json:"checkout_time"`
	Status       string  `db:"status" json:"status"`
	model.Metadata
}
