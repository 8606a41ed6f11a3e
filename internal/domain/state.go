package domain

// User is the logged-in identity. The app is single-user: at most one User
// exists at a time and it is cleared on logout.
type User struct {
	PhoneOrEmail string `json:"phoneOrEmail"`
	LoginTime    string `json:"loginTime"`
}

// Profile holds the last-submitted contact info. It is overwritten wholesale
// on every inspection submission.
type Profile struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

// AppState is the single persisted aggregate. The JSON field names match the
// snapshot layout stored on device and must not change.
type AppState struct {
	User            *User    `json:"user"`
	IsAuthenticated bool     `json:"isAuthenticated"`
	CRN             string   `json:"crnId,omitempty"`
	Profile         *Profile `json:"profile"`
	Orders          []Order  `json:"orders"`
	OrderCounter    int      `json:"orderCounter"`
}

// EmptyState is the zero session: no user, no orders, counter at 1.
func EmptyState() AppState {
	return AppState{
		Orders:       []Order{},
		OrderCounter: 1,
	}
}

// Clone returns a deep copy. Orders is copied so callers can never alias the
// manager's internal slice.
func (s *AppState) Clone() *AppState {
	out := *s
	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	if s.Profile != nil {
		p := *s.Profile
		out.Profile = &p
	}
	out.Orders = make([]Order, len(s.Orders))
	copy(out.Orders, s.Orders)
	return &out
}
