package domain

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderScheduled OrderStatus = "scheduled"
)

func (s OrderStatus) Valid() bool {
	return s == OrderPending || s == OrderPaid || s == OrderScheduled
}

type PropertyType string

const (
	PropertyApartment PropertyType = "apartment"
	PropertyVilla     PropertyType = "villa"
	PropertyOffice    PropertyType = "office"
)

type ServiceType string

const (
	ServiceBasic    ServiceType = "basic"
	ServiceDetailed ServiceType = "detailed"
	ServicePremium  ServiceType = "premium"
)

// Order is a single inspection-service request. ID, OrderNumber and CreatedAt
// are assigned at creation and never change afterwards.
type Order struct {
	ID           string       `json:"id"`
	OrderNumber  int          `json:"orderNumber"`
	FullName     string       `json:"fullName"`
	Phone        string       `json:"phone"`
	Email        string       `json:"email"`
	PropertyType PropertyType `json:"propertyType"`
	ServiceType  ServiceType  `json:"serviceType"`
	BHK          int          `json:"bhk"`
	Rooms        int          `json:"rooms"`
	Toilets      int          `json:"toilets"`
	IsPaid       bool         `json:"isPaid"`
	Status       OrderStatus  `json:"status"`
	CreatedAt    string       `json:"createdAt"`
}

// OrderDraft carries the submitted form fields for a new order. Identity and
// lifecycle fields are filled in by the state manager.
type OrderDraft struct {
	FullName     string
	Phone        string
	Email        string
	PropertyType PropertyType
	ServiceType  ServiceType
	BHK          int
	Rooms        int
	Toilets      int
}

// OrderUpdate is a partial patch for an existing order. Nil fields are left
// untouched. It deliberately has no ID, OrderNumber or CreatedAt: those are
// immutable by construction.
type OrderUpdate struct {
	FullName     *string
	Phone        *string
	Email        *string
	PropertyType *PropertyType
	ServiceType  *ServiceType
	BHK          *int
	Rooms        *int
	Toilets      *int
	IsPaid       *bool
	Status       *OrderStatus
}

// Apply merges the patch into the order.
func (u OrderUpdate) Apply(o *Order) {
	if u.FullName != nil {
		o.FullName = *u.FullName
	}
	if u.Phone != nil {
		o.Phone = *u.Phone
	}
	if u.Email != nil {
		o.Email = *u.Email
	}
	if u.PropertyType != nil {
		o.PropertyType = *u.PropertyType
	}
	if u.ServiceType != nil {
		o.ServiceType = *u.ServiceType
	}
	if u.BHK != nil {
		o.BHK = *u.BHK
	}
	if u.Rooms != nil {
		o.Rooms = *u.Rooms
	}
	if u.Toilets != nil {
		o.Toilets = *u.Toilets
	}
	if u.IsPaid != nil {
		o.IsPaid = *u.IsPaid
	}
	if u.Status != nil {
		o.Status = *u.Status
	}
}
