package model

import "eventrix/shared/model"

const (
	TableName  = "equipment"
	EntityName = "equipment"

	FieldID           = "id"
	FieldName         = "name"
	FieldCategory     = "category"
	FieldStatus       = "status"
	FieldLocation     = "location"
	FieldPurchaseDate = "purchase_date"
)

type Equipment struct {
	ID           int64  `db:"id" json:"equip_id"`
	Name         string `db:"name" json:"equip_name"`
	Category     string `db:"category" json:"category"`
	Status       string `db:"status" json:"status"`
	Location     string `db:"location" json:"location"`
	PurchaseDate string `db:"purchase_date" json:"purchase_date"`
	model.Metadata
}
