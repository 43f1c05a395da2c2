package dto

import (
	"strings"

	"hotel/internal/domains/guest/model"
	gDto "hotel/shared/dto"

	"github.com/google/uuid"
)

type AddressRequest struct {
	Street  string `json:"street"  validate:"omitempty,max=200"`
	City    string `json:"city"    validate:"omitempty,max=100"`
	Country string `json:"country" validate:"omitempty,max=100"`
}

type CreateGuestRequest struct {
	Name    string         `json:"name"    validate:"notblank,max=100"`
	Email   string         `json:"email"   validate:"notblank,email,max=254"`
	Phone   string         `json:"phone"   validate:"notblank,max=50"`
	Address AddressRequest `json:"address"`
}

// MissingRequired reports whether name, email or phone is blank.
func (c *CreateGuestRequest) MissingRequired() bool {
	return strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Email) == "" || strings.TrimSpace(c.Phone) == ""
}

func (c *CreateGuestRequest) ToModel() (model.Guest, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return model.Guest{}, err //nolint:wrapcheck
	}

	return model.Guest{
		ID:    id.String(),
		Name:  strings.TrimSpace(c.Name),
		Email: strings.TrimSpace(c.Email),
		Phone: strings.TrimSpace(c.Phone),
		Address: model.Address{
			Street:  strings.TrimSpace(c.Address.Street),
			City:    strings.TrimSpace(c.Address.City),
			Country: strings.TrimSpace(c.Address.Country),
		},
	}, nil
}

type UpdateAddressRequest struct {
	Street  *string `json:"street"  validate:"omitempty,max=200"`
	City    *string `json:"city"    validate:"omitempty,max=100"`
	Country *string `json:"country" validate:"omitempty,max=100"`
}

// UpdateGuestRequest is a partial update. Nil fields keep their stored value
// and address members merge individually.
type UpdateGuestRequest struct {
	Name    *string               `json:"name"    validate:"omitempty,max=100"`
	Email   *string               `json:"email"   validate:"omitempty,email,max=254"`
	Phone   *string               `json:"phone"   validate:"omitempty,max=50"`
	Address *UpdateAddressRequest `json:"address"`
}

func (u *UpdateGuestRequest) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.Phone == nil &&
		(u.Address == nil || (u.Address.Street == nil && u.Address.City == nil && u.Address.Country == nil))
}

// MissingRequired reports whether the request blanks out name, email or phone.
func (u *UpdateGuestRequest) MissingRequired() bool {
	return blank(u.Name) || blank(u.Email) || blank(u.Phone)
}

func blank(value *string) bool {
	return value != nil && strings.TrimSpace(*value) == ""
}

func assign(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

func (u *UpdateGuestRequest) ApplyTo(guest *model.Guest) {
	assign(&guest.Name, u.Name)
	assign(&guest.Email, u.Email)
	assign(&guest.Phone, u.Phone)

	if u.Address != nil {
		assign(&guest.Address.Street, u.Address.Street)
		assign(&guest.Address.City, u.Address.City)
		assign(&guest.Address.Country, u.Address.Country)
	}
}

type AddressResponse struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type GuestResponse struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Phone   string          `json:"phone"`
	Address AddressResponse `json:"address"`
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Address = AddressResponse(model.Address)
}

func NewGuestResponse(model model.Guest) GuestResponse {
	var res GuestResponse
	res.FromModel(model)

	return res
}

type GetGuestsResponse = gDto.Page[GuestResponse]

// Query narrows a guest listing. Search matches name, email or phone.
type Query struct {
	Country string
}
