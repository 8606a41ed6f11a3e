package inspection

import "inspectbook/internal/domain"

// CreateInspectionRequest is the submitted form. bhk applies to apartments
// and villas, rooms to offices; both always arrive (the form keeps defaults
// for the hidden field) and both must stay >= 1.
type CreateInspectionRequest struct {
	FullName     string `json:"fullName" binding:"required" validate:"required"`
	Phone        string `json:"phone" binding:"required" validate:"required"`
	Email        string `json:"email" binding:"required,email" validate:"required,email"`
	PropertyType string `json:"propertyType" binding:"required,oneof=apartment villa office" validate:"required,oneof=apartment villa office"`
	ServiceType  string `json:"serviceType" binding:"required,oneof=basic detailed premium" validate:"required,oneof=basic detailed premium"`
	BHK          int    `json:"bhk" binding:"required,min=1" validate:"required,min=1"`
	Rooms        int    `json:"rooms" binding:"required,min=1" validate:"required,min=1"`
	Toilets      int    `json:"toilets" binding:"required,min=1" validate:"required,min=1"`
}

func (r CreateInspectionRequest) draft() domain.OrderDraft {
	return domain.OrderDraft{
		FullName:     r.FullName,
		Phone:        r.Phone,
		Email:        r.Email,
		PropertyType: domain.PropertyType(r.PropertyType),
		ServiceType:  domain.ServiceType(r.ServiceType),
		BHK:          r.BHK,
		Rooms:        r.Rooms,
		Toilets:      r.Toilets,
	}
}

// PrefillResponse seeds the inspection form: last order's fields when there
// is history, otherwise the stored profile contacts, otherwise defaults.
type PrefillResponse struct {
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	PropertyType string `json:"propertyType"`
	ServiceType  string `json:"serviceType"`
	BHK          int    `json:"bhk"`
	Rooms        int    `json:"rooms"`
	Toilets      int    `json:"toilets"`
}

func defaultPrefill() PrefillResponse {
	return PrefillResponse{
		PropertyType: string(domain.PropertyApartment),
		ServiceType:  string(domain.ServiceBasic),
		BHK:          1,
		Rooms:        1,
		Toilets:      1,
	}
}
