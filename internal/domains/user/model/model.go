package model

import "eventrix/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID         = "id"
	FieldName       = "name"
	FieldEmail      = "email"
	FieldPhone      = "phone"
	FieldRole       = "role"
	FieldRollNumber = "roll_number"
)

type User struct {
	ID         int64  `db:"id" json:"user_id"`
	Name       string `db:"name" json:"name"`
	Email      string `db:"email" json:"email"`
	Phone      string `db:"phone" json:"phone"`
	Role       string `db:"role" json:"role"`
	RollNumber string `db:"roll_number" json:"roll_number"`
	model.Metadata
}
