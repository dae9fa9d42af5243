package model

import "eventrix/shared/model"

const (
	TableName  = "events"
	EntityName = "event"

	FieldID          = "id"
	FieldName        = "name"
	FieldDate        = "date"
	FieldVenue       = "venue"
	FieldDescription = "description"
	FieldOrganizerID = "organizer_id"
	FieldStatus      = "status"
)

// Date is kept as the string the client supplied (RFC3339 or YYYY-MM-DD);
// ordering parses it at read time.
type Event struct {
	ID          int64  `db:"id" json:"event_id"`
	Name        string `db:"name" json:"event_name"`
	Date        string `db:"date" json:"event_date"`
	Venue       string `db:"venue" json:"venue"`
	Description string `db:"description" json:"description"`
	OrganizerID int64  `db:"organizer_id" json:"organizer_id"`
	Status      string `db:"status" json:"status"`
	model.Metadata
}
