package dto

import (
	"eventrix/internal/domains/checkin/model"
	"eventrix/shared"
	"eventrix/shared/constant"
	gDto "eventrix/shared/dto"
	gModel "eventrix/shared/model"
	"eventrix/shared/timezone"
)

type CreateCheckInRequest struct {
	UserID       int64  `json:"user_id" validate:"required,gt=0"`
	EventID      int64  `json:"event_id" validate:"required,gt=0"`
	CheckinTime  string `json:"checkin_time" validate:"required,timestamp"`
	CheckoutTime string `json:"checkout_time" validate:"omitempty,timestamp"`
	Status       string `json:"status" validate:"omitempty,oneof=Present Absent"`
}

func (c *CreateCheckInRequest) ToModel(user string) model.CheckIn {
	var checkoutTime *string
	if c.CheckoutTime != "" {
		checkoutTime = &c.CheckoutTime
	}

	status := c.Status
	if status == constant.Empty {
		status = constant.CheckInStatusPresent
	}

	return model.CheckIn{
		UserID:       c.UserID,
		EventID:      c.EventID,
		CheckinTime:  c.CheckinTime,
		CheckoutTime: checkoutTime,
		Status:       status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCheckInRequest struct {
	UserID       int64  `db:"user_id" json:"user_id" validate:"omitempty,gt=0"`
	EventID      int64  `db:"event_id" json:"event_id" validate:"omitempty,gt=0"`
	CheckinTime  string `db:"checkin_time" json:"checkin_time" validate:"omitempty,timestamp"`
	CheckoutTime string `db:"checkout_time" json:"checkout_time" validate:"omitempty,timestamp"`
	Status       string `db:"status" json:"status" validate:"omitempty,oneof=Present Absent"`
}

type CheckInResponse struct {
	ID           int64   `json:"checkin_id"`
	UserID       int64   `json:"user_id"`
	EventID      int64   `json:"event_id"`
	CheckinTime  string  `json:"checkin_time"`
	CheckoutTime *string `json:"checkout_time"`
	Status       string  `json:"status"`
	gDto.Metadata
}

func (r *CheckInResponse) FromModel(model model.CheckIn) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.EventID = model.EventID
	r.CheckinTime = model.CheckinTime
	r.CheckoutTime = model.CheckoutTime
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetCheckInsResponse struct {
	CheckIns  []CheckInResponse `json:"checkins"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetCheckInsResponse) FromModels(models []model.CheckIn, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.CheckIns = make([]CheckInResponse, len(models))
	for i, mod := range models {
		r.CheckIns[i].FromModel(mod)
	}
}
