package dto

import (
	"eventrix/internal/domains/event/model"
	"eventrix/shared"
	gDto "eventrix/shared/dto"
	gModel "eventrix/shared/model"
	"eventrix/shared/timezone"
)

type CreateEventRequest struct {
	Name        string `json:"event_name" validate:"required,max=255"`
	Date        string `json:"event_date" validate:"required,timestamp"`
	Venue       string `json:"venue" validate:"omitempty,max=255"`
	Description string `json:"description" validate:"omitempty,max=1024"`
	OrganizerID int64  `json:"organizer_id" validate:"required,gt=0"`
	Status      string `json:"status" validate:"omitempty,max=64"`
}

func (c *CreateEventRequest) ToModel(user string) model.Event {
	return model.Event{
		Name:        c.Name,
		Date:        c.Date,
		Venue:       c.Venue,
		Description: c.Description,
		OrganizerID: c.OrganizerID,
		Status:      c.Status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateEventRequest struct {
	Name        string `db:"name" json:"event_name" validate:"omitempty,max=255"`
	Date        string `db:"date" json:"event_date" validate:"omitempty,timestamp"`
	Venue       string `db:"venue" json:"venue" validate:"omitempty,max=255"`
	Description string `db:"description" json:"description" validate:"omitempty,max=1024"`
	OrganizerID int64  `db:"organizer_id" json:"organizer_id" validate:"omitempty,gt=0"`
	Status      string `db:"status" json:"status" validate:"omitempty,max=64"`
}

type EventResponse struct {
	ID          int64  `json:"event_id"`
	Name        string `json:"event_name"`
	Date        string `json:"event_date"`
	Venue       string `json:"venue"`
	Description string `json:"description"`
	OrganizerID int64  `json:"organizer_id"`
	Status      string `json:"status"`
	gDto.Metadata
}

func (r *EventResponse) FromModel(model model.Event) {
	r.ID = model.ID
	r.Name = model.Name
	r.Date = model.Date
	r.Venue = model.Venue
	r.Description = model.Description
	r.OrganizerID = model.OrganizerID
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetEventsResponse struct {
	Events    []EventResponse `json:"events"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetEventsResponse) FromModels(models []model.Event, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Events = make([]EventResponse, len(models))
	for i, mod := range models {
		r.Events[i].FromModel(mod)
	}
}
