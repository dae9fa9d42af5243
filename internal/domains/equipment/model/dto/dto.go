package dto

import (
	"eventrix/internal/domains/equipment/model"
	"eventrix/shared"
	"eventrix/shared/constant"
	gDto "eventrix/shared/dto"
	gModel "eventrix/shared/model"
	"eventrix/shared/timezone"
)

type CreateEquipmentRequest struct {
	Name         string `json:"equip_name" validate:"required,max=255"`
	Category     string `json:"category" validate:"omitempty,max=255"`
	Status       string `json:"status" validate:"omitempty,oneof=Available Borrowed Damaged"`
	Location     string `json:"location" validate:"omitempty,max=255"`
	PurchaseDate string `json:"purchase_date" validate:"omitempty,dateonly"`
}

func (c *CreateEquipmentRequest) ToModel(user string) model.Equipment {
	status := c.Status
	if status == constant.Empty {
		status = constant.EquipmentStatusAvailable
	}

	return model.Equipment{
		Name:         c.Name,
		Category:     c.Category,
		Status:       status,
		Location:     c.Location,
		PurchaseDate: c.PurchaseDate,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateEquipmentRequest struct {
	Name         string `db:"name" json:"equip_name" validate:"omitempty,max=255"`
	Category     string `db:"category" json:"category" validate:"omitempty,max=255"`
	Status       string `db:"status" json:"status" validate:"omitempty,oneof=Available Borrowed Damaged"`
	Location     string `db:"location" json:"location" validate:"omitempty,max=255"`
	PurchaseDate string `db:"purchase_date" json:"purchase_date" validate:"omitempty,dateonly"`
}

// UpdateEquipmentStatusRequest carries the status transitions driven by the
// booking lifecycle (borrow, return, mark damaged).
type UpdateEquipmentStatusRequest struct {
	Status string `db:"status"`
}

type EquipmentResponse struct {
	ID           int64  `json:"equip_id"`
	Name         string `json:"equip_name"`
	Category     string `json:"category"`
	Status       string `json:"status"`
	Location     string `json:"location"`
	PurchaseDate string `json:"purchase_date"`
	gDto.Metadata
}

func (r *EquipmentResponse) FromModel(model model.Equipment) {
	r.ID = model.ID
	r.Name = model.Name
	r.Category = model.Category
	r.Status = model.Status
	r.Location = model.Location
	r.PurchaseDate = model.PurchaseDate
	r.Metadata.FromModel(model.Metadata)
}

type GetEquipmentsResponse struct {
	Equipments []EquipmentResponse `json:"equipments"`
	TotalPage  int                 `json:"total_page"`
	TotalData  int                 `json:"total_data"`
}

func (r *GetEquipmentsResponse) FromModels(models []model.Equipment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Equipments = make([]EquipmentResponse, len(models))
	for i, mod := range models {
		r.Equipments[i].FromModel(mod)
	}
}
