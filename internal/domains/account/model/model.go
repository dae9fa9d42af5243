package model

import (
	"time"

	"eventrix/shared/model"
)

const (
	TableName  = "accounts"
	EntityName = "account"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldRole      = "role"
	FieldActive    = "active"
	FieldLastLogin = "last_login"
)

// Account is an operator credential, not a managed participant; those live in
// the users table.
type Account struct {
	ID        string     `db:"id" json:"id"`
	Email     string     `db:"email" json:"email"`
	Password  string     `db:"password" json:"-"`
	Role      string     `db:"role" json:"role"`
	Active    bool       `db:"active" json:"active"`
	LastLogin *time.Time `db:"last_login" json:"last_login"`
	model.Metadata
}
