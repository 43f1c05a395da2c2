package model

import "hotel/shared/constant"

const (
	CollectionName = constant.CollectionGuests
	EntityName     = "guest"

	FieldID      = "_id"
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldStreet  = "street"
	FieldCity    = "city"
	FieldCountry = "country"
)

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type Guest struct {
	ID      string  `json:"_id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address Address `json:"address"`
}

func (g Guest) GetID() string {
	return g.ID
}

func (g Guest) FieldValue(field string) string {
	switch field {
	case FieldID:
		return g.ID
	case FieldName:
		return g.Name
	case FieldEmail:
		return g.Email
	case FieldPhone:
		return g.Phone
	case FieldStreet:
		return g.Address.Street
	case FieldCity:
		return g.Address.City
	case FieldCountry:
		return g.Address.Country
	default:
		return ""
	}
}
