package dto

import (
	"eventrix/internal/domains/user/model"
	"eventrix/shared"
	gDto "eventrix/shared/dto"
	gModel "eventrix/shared/model"
	"eventrix/shared/timezone"
)

type CreateUserRequest struct {
	ID         int64  `json:"user_id" validate:"required,gt=0"`
	Name       string `json:"name" validate:"required,max=255"`
	Email      string `json:"email" validate:"required,email,max=255"`
	Phone      string `json:"phone" validate:"omitempty,max=32"`
	Role       string `json:"role" validate:"required,oneof=Organizer Volunteer Participant"`
	RollNumber string `json:"roll_number" validate:"omitempty,max=64"`
}

func (c *CreateUserRequest) ToModel(user string) model.User {
	return model.User{
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Role:       c.Role,
		RollNumber: c.RollNumber,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateUserRequest struct {
	Name       string `db:"name" json:"name" validate:"omitempty,max=255"`
	Email      string `db:"email" json:"email" validate:"omitempty,email,max=255"`
	Phone      string `db:"phone" json:"phone" validate:"omitempty,max=32"`
	Role       string `db:"role" json:"role" validate:"omitempty,oneof=Organizer Volunteer Participant"`
	RollNumber string `db:"roll_number" json:"roll_number" validate:"omitempty,max=64"`
}

type UserResponse struct {
	ID         int64  `json:"user_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	RollNumber string `json:"roll_number"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Role = model.Role
	r.RollNumber = model.RollNumber
	r.Metadata.FromModel(model.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}

type ImportUsersResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
