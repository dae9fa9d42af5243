package dto_test

import (
	"testing"

	"eventrix/internal/domains/event/model"
	"eventrix/internal/domains/event/model/dto"
	gModel "eventrix/shared/model"
	"eventrix/shared/timezone"
)

func TestCreateEventRequest_ToModel(t *testing.T) {
	req := dto.CreateEventRequest{
		Name:        "Tech Conference",
		Date:        "2024-05-30",
		Venue:       "Main Hall",
		Description: "Annual tech event",
		OrganizerID: 1,
		Status:      "Upcoming",
	}

	event := req.ToModel("admin@example.com")

	if event.Name != req.Name || event.Date != req.Date || event.Venue != req.Venue {
		t.Errorf("unexpected model fields: %+v", event)
	}

	if event.OrganizerID != 1 {
		t.Errorf("expected organizer id 1, got %d", event.OrganizerID)
	}

	if event.CreatedBy != "admin@example.com" || event.ModifiedBy != "admin@example.com" {
		t.Errorf("expected audit fields to carry the actor, got %+v", event.Metadata)
	}

	if event.CreatedAt.IsZero() || event.ModifiedAt.IsZero() {
		t.Error("expected audit timestamps to be set")
	}
}

func TestEventResponse_FromModel(t *testing.T) {
	event := model.Event{
		ID:          10,
		Name:        "Tech Conference",
		Date:        "2024-05-30",
		Venue:       "Main Hall",
		Description: "Annual tech event",
		OrganizerID: 1,
		Status:      "Upcoming",
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "admin@example.com",
			ModifiedBy: "admin@example.com",
		},
	}

	res := dto.EventResponse{}
	res.FromModel(event)

	if res.ID != event.ID || res.Name != event.Name || res.Date != event.Date {
		t.Errorf("unexpected response fields: %+v", res)
	}

	if res.CreatedBy != "admin@example.com" {
		t.Errorf("expected created_by to carry over, got %s", res.CreatedBy)
	}
}

func TestGetEventsResponse_FromModels(t *testing.T) {
	models := []model.Event{
		{ID: 10, Name: "Tech Conference"},
		{ID: 11, Name: "Career Fair"},
	}

	res := dto.GetEventsResponse{}
	res.FromModels(models, 25, 10)

	if len(res.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(res.Events))
	}

	if res.TotalData != 25 {
		t.Errorf("expected total data 25, got %d", res.TotalData)
	}

	if res.TotalPage != 3 {
		t.Errorf("expected 3 pages, got %d", res.TotalPage)
	}
}
