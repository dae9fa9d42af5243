package dto

import (
	"eventrix/internal/domains/booking/model"
	"eventrix/shared"
	gDto "eventrix/shared/dto"
	gModel "eventrix/shared/model"
	"eventrix/shared/timezone"
)

type CreateBookingRequest struct {
	EventID    int64  `json:"event_id" validate:"required,gt=0"`
	EquipID    int64  `json:"equip_id" validate:"required,gt=0"`
	AssignedTo int64  `json:"assigned_to" validate:"required,gt=0"`
	BorrowDate string `json:"borrow_date" validate:"required,dateonly"`
	ReturnDate string `json:"return_date" validate:"omitempty,dateonly"`
	Remarks    string `json:"remarks" validate:"omitempty,max=1024"`
}

func (c *CreateBookingRequest) ToModel(user string) model.Booking {
	var returnDate *string
	if c.ReturnDate != "" {
		returnDate = &c.ReturnDate
	}

	return model.Booking{
		EventID:    c.EventID,
		EquipID:    c.EquipID,
		AssignedTo: c.AssignedTo,
		BorrowDate: c.BorrowDate,
		ReturnDate: returnDate,
		Remarks:    c.Remarks,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBookingRequest struct {
	EventID    int64  `db:"event_id" json:"event_id" validate:"omitempty,gt=0"`
	EquipID    int64  `db:"equip_id" json:"equip_id" validate:"omitempty,gt=0"`
	AssignedTo int64  `db:"assigned_to" json:"assigned_to" validate:"omitempty,gt=0"`
	BorrowDate string `db:"borrow_date" json:"borrow_date" validate:"omitempty,dateonly"`
	ReturnDate string `db:"return_date" json:"return_date" validate:"omitempty,dateonly"`
	Remarks    string `db:"remarks" json:"remarks" validate:"omitempty,max=1024"`
}

// CloseBookingRequest stamps the return date when equipment comes back.
type CloseBookingRequest struct {
	ReturnDate string `db:"return_date"`
}

type BookingResponse struct {
	ID         int64   `json:"booking_id"`
	EventID    int64   `json:"event_id"`
	EquipID    int64   `json:"equip_id"`
	AssignedTo int64   `json:"assigned_to"`
	BorrowDate string  `json:"borrow_date"`
	ReturnDate *string `json:"return_date"`
	Remarks    string  `json:"remarks"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.EventID = model.EventID
	r.EquipID = model.EquipID
	r.AssignedTo = model.AssignedTo
	r.BorrowDate = model.BorrowDate
	r.ReturnDate = model.ReturnDate
	r.Remarks = model.Remarks
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
