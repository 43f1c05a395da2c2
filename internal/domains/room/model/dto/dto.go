package dto

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"hotel/internal/domains/room/model"
	"hotel/shared"
	gDto "hotel/shared/dto"

	"github.com/google/uuid"
)

// AmenitiesFromString splits a comma separated amenity list such as "WiFi, TV".
func AmenitiesFromString(value string) []string {
	return shared.SplitAndTrim(value)
}

// Amenities decodes either a JSON array or a comma separated string.
type Amenities []string

func (a *Amenities) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*a = list

		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("amenities must be a list or a comma separated string: %w", err)
	}

	*a = AmenitiesFromString(text)

	return nil
}

type CreateRoomRequest struct {
	Number    string    `json:"number"    validate:"notblank,max=20"`
	Type      string    `json:"type"      validate:"required,oneof=single double suite deluxe"`
	Price     *float64  `json:"price"     validate:"required,gte=0"`
	Capacity  *int      `json:"capacity"  validate:"required,gte=1"`
	Status    string    `json:"status"    validate:"omitempty,oneof=available occupied maintenance cleaning"`
	Amenities Amenities `json:"amenities" validate:"omitempty,dive,notblank"`
}

// MissingRequired reports whether number or type is blank, or price or capacity is absent.
func (c *CreateRoomRequest) MissingRequired() bool {
	return strings.TrimSpace(c.Number) == "" || strings.TrimSpace(c.Type) == "" || c.Price == nil || c.Capacity == nil
}

func (c *CreateRoomRequest) ToModel() (model.Room, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return model.Room{}, err //nolint:wrapcheck
	}

	status := c.Status
	if status == "" {
		status = model.StatusAvailable
	}

	room := model.Room{
		ID:        id.String(),
		Number:    strings.TrimSpace(c.Number),
		Type:      c.Type,
		Status:    status,
		Amenities: trimAmenities(c.Amenities),
	}

	if c.Price != nil {
		room.Price = *c.Price
	}

	if c.Capacity != nil {
		room.Capacity = *c.Capacity
	}

	return room, nil
}

func trimAmenities(amenities []string) []string {
	res := make([]string, 0, len(amenities))
	for _, amenity := range amenities {
		res = append(res, strings.TrimSpace(amenity))
	}

	return res
}

// UpdateRoomRequest is a partial update. Nil fields keep their stored value;
// a non-nil Amenities replaces the whole list.
type UpdateRoomRequest struct {
	Number    *string    `json:"number"    validate:"omitempty,max=20"`
	Type      *string    `json:"type"      validate:"omitempty,oneof=single double suite deluxe"`
	Price     *float64   `json:"price"     validate:"omitempty,gte=0"`
	Capacity  *int       `json:"capacity"  validate:"omitempty,gte=1"`
	Status    *string    `json:"status"    validate:"omitempty,oneof=available occupied maintenance cleaning"`
	Amenities *Amenities `json:"amenities" validate:"omitempty"`
}

func (u *UpdateRoomRequest) IsEmpty() bool {
	return u.Number == nil && u.Type == nil && u.Price == nil &&
		u.Capacity == nil && u.Status == nil && u.Amenities == nil
}

// MissingRequired reports whether the request blanks out number or type.
func (u *UpdateRoomRequest) MissingRequired() bool {
	return (u.Number != nil && strings.TrimSpace(*u.Number) == "") ||
		(u.Type != nil && strings.TrimSpace(*u.Type) == "")
}

func (u *UpdateRoomRequest) ApplyTo(room *model.Room) {
	if u.Number != nil {
		room.Number = strings.TrimSpace(*u.Number)
	}

	if u.Type != nil {
		room.Type = *u.Type
	}

	if u.Price != nil {
		room.Price = *u.Price
	}

	if u.Capacity != nil {
		room.Capacity = *u.Capacity
	}

	if u.Status != nil {
		room.Status = *u.Status
	}

	if u.Amenities != nil {
		room.Amenities = trimAmenities(*u.Amenities)
	}
}

type RoomResponse struct {
	ID        string   `json:"id"`
	Number    string   `json:"number"`
	Type      string   `json:"type"`
	Price     float64  `json:"price"`
	Capacity  int      `json:"capacity"`
	Status    string   `json:"status"`
	Amenities []string `json:"amenities"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.Type = model.Type
	r.Price = model.Price
	r.Capacity = model.Capacity
	r.Status = model.Status
	r.Amenities = slices.Clone(model.Amenities)

	if r.Amenities == nil {
		r.Amenities = []string{}
	}
}

func NewRoomResponse(model model.Room) RoomResponse {
	var res RoomResponse
	res.FromModel(model)

	return res
}

type GetRoomsResponse = gDto.Page[RoomResponse]

// Query narrows a room listing. Search matches number or type.
type Query struct {
	Status string
	Type   string
}
