package session

// Package session contains domain-level types for the operator session.
// It is pure and free of transport/storage concerns.

// Plan is the subscription tier attached to a session. It is always derived
// from the backend's isPremium flag, never sourced independently.
type Plan string

const (
	PlanBasic   Plan = "basic"
	PlanPremium Plan = "premium"
)

// Valid reports whether p is a known plan tier.
func (p Plan) Valid() bool { return p == PlanBasic || p == PlanPremium }

// PlanFromPremium maps the backend's isPremium flag to a plan tier.
func PlanFromPremium(isPremium bool) Plan {
	if isPremium {
		return PlanPremium
	}
	return PlanBasic
}

// IsPremium is the inverse of PlanFromPremium, used when persisting.
func (p Plan) IsPremium() bool { return p == PlanPremium }

// User is the in-memory session identity. A signed-in user always carries a
// UserID; Token is empty only for the legacy mock sign-in path. Raw keeps the
// backend's original user payload for display-only fields not modeled here.
type User struct {
	UserID   string
	Email    string
	Username string
	RoleID   *int
	Token    string
	Plan     Plan
	Raw      map[string]any
}

// Clone returns a copy safe to hand outside the store. Raw is shared; it is
// treated as an opaque read-only payload.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	cp := *u
	if u.RoleID != nil {
		role := *u.RoleID
		cp.RoleID = &role
	}
	return &cp
}

// Record is the durable storage representation of a session. The JSON shape
// matches the record the browser client historically wrote, so persisted
// sessions survive a swap between frontends.
type Record struct {
	Token *string    `json:"token"`
	User  RecordUser `json:"user"`
}

// RecordUser is the persisted user block inside a Record. Plan is stored as
// the isPremium flag it is derived from.
type RecordUser struct {
	UserID    string         `json:"userId"`
	Email     *string        `json:"email"`
	Username  *string        `json:"username"`
	RoleID    *int           `json:"roleId"`
	IsPremium bool           `json:"isPremium"`
	Raw       map[string]any `json:"raw"`
}

// ToRecord converts the in-memory user to its persisted shape.
func (u *User) ToRecord() Record {
	rec := Record{
		User: RecordUser{
			UserID:    u.UserID,
			Email:     optString(u.Email),
			Username:  optString(u.Username),
			RoleID:    u.RoleID,
			IsPremium: u.Plan.IsPremium(),
			Raw:       u.Raw,
		},
	}
	if u.Token != "" {
		token := u.Token
		rec.Token = &token
	}
	return rec
}

// ToUser restores the in-memory shape from a persisted record. It returns
// false when the record is not restorable: a session without both a token and
// a user id is treated as absent, matching the hydrate contract.
func (r Record) ToUser() (*User, bool) {
	if r.Token == nil || *r.Token == "" || r.User.UserID == "" {
		return nil, false
	}
	return &User{
		UserID:   r.User.UserID,
		Email:    strOrEmpty(r.User.Email),
		Username: strOrEmpty(r.User.Username),
		RoleID:   r.User.RoleID,
		Token:    *r.Token,
		Plan:     PlanFromPremium(r.User.IsPremium),
		Raw:      r.User.Raw,
	}, true
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
