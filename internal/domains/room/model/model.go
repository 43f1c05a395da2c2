package model

import (
	"strconv"
	"strings"

	"hotel/shared/constant"
)

const (
	CollectionName = constant.CollectionRooms
	EntityName     = "room"

	FieldID       = "_id"
	FieldNumber   = "number"
	FieldType     = "type"
	FieldPrice    = "price"
	FieldCapacity = "capacity"
	FieldStatus   = "status"
	FieldAmenity  = "amenities"
)

const (
	TypeSingle = "single"
	TypeDouble = "double"
	TypeSuite  = "suite"
	TypeDeluxe = "deluxe"
)

const (
	StatusAvailable   = "available"
	StatusOccupied    = "occupied"
	StatusMaintenance = "maintenance"
	StatusCleaning    = "cleaning"
)

type Room struct {
	ID        string   `json:"_id"`
	Number    string   `json:"number"`
	Type      string   `json:"type"`
	Price     float64  `json:"price"`
	Capacity  int      `json:"capacity"`
	Status    string   `json:"status"`
	Amenities []string `json:"amenities"`
}

func (r Room) GetID() string {
	return r.ID
}

func (r Room) FieldValue(field string) string {
	switch field {
	case FieldID:
		return r.ID
	case FieldNumber:
		return r.Number
	case FieldType:
		return r.Type
	case FieldPrice:
		return strconv.FormatFloat(r.Price, 'f', -1, 64)
	case FieldCapacity:
		return strconv.Itoa(r.Capacity)
	case FieldStatus:
		return r.Status
	case FieldAmenity:
		return strings.Join(r.Amenities, constant.Comma+" ")
	default:
		return ""
	}
}

func (r Room) IsAvailable() bool {
	return r.Status == StatusAvailable
}
