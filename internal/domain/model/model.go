package model

// Package model holds the typed shapes of the HomeTrack backend resources the
// dashboard manages. The backend owns the wire schemas; these structs mirror
// the fields the admin screens actually consume and tolerate extra fields.

// User is a HomeTrack account as returned by the user listing endpoint.
type User struct {
	UserID          string `json:"userId"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	RoleID          int    `json:"roleId"`
	RoleName        string `json:"roleName"`
	PictureProfile  string `json:"pictureProfile"`
	DateOfBirth     string `json:"dateOfBirth"`
	Phone           string `json:"phone"`
	Status          bool   `json:"status"`
	IsPremium       bool   `json:"isPremium"`
	IsEmailVerified bool   `json:"isEmailVerified"`
}

// Order is a billing order/invoice row. Timestamps stay in the backend's
// string form; consumers parse them as needed.
type Order struct {
	ID             string  `json:"id"`
	OrderCode      int64   `json:"orderCode"`
	UserID         string  `json:"userId"`
	SubscriptionID *string `json:"subscriptionId"`
	PlanPriceID    string  `json:"planPriceId"`
	AmountVnd      int64   `json:"amountVnd"`
	Status         int     `json:"status"`
	ReturnURL      string  `json:"returnUrl"`
	CancelURL      string  `json:"cancelUrl"`
	CreatedAt      string  `json:"createdAt"`
	PaidAt         *string `json:"paidAt"`
}

// Paid reports whether the order has been settled.
func (o Order) Paid() bool { return o.PaidAt != nil && *o.PaidAt != "" }

// OrderDetail is an order joined with its owning user, the record handed to
// the external invoice-PDF collaborator.
type OrderDetail struct {
	Order
	User *User `json:"user"`
}

// Plan is a subscription plan definition.
type Plan struct {
	PlanID      string  `json:"planId"`
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IsActive    bool    `json:"isActive"`
}

// PlanRequest is the create/update body for a plan.
type PlanRequest struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IsActive    bool    `json:"isActive"`
}

// PlanPrice is a priced billing period of a plan.
type PlanPrice struct {
	ID             string `json:"id"`
	PlanID         string `json:"planId"`
	Period         int    `json:"period"`
	DurationInDays int    `json:"durationInDays"`
	AmountVnd      int64  `json:"amountVnd"`
	IsActive       bool   `json:"isActive"`
}

// PlanPriceRequest is the create/update body for a plan price.
type PlanPriceRequest struct {
	PlanID         string `json:"planId"`
	Period         int    `json:"period"`
	DurationInDays int    `json:"durationInDays"`
	AmountVnd      int64  `json:"amountVnd"`
	IsActive       bool   `json:"isActive"`
}

// RoomItem is a room-item sprite placed in a house room.
type RoomItem struct {
	RoomItemID string `json:"roomItemId"`
	Item       string `json:"item"`
	SubName    string `json:"subName"`
	RoomType   string `json:"roomType"`
	SpriteURL  string `json:"spriteUrl"`
}

// RoomItemRequest is the create/update body for a room item.
type RoomItemRequest struct {
	Item      string `json:"item"`
	SubName   string `json:"subName"`
	RoomType  string `json:"roomType"`
	SpriteURL string `json:"spriteUrl"`
}

// House is a managed house. Houses are gateway-local records: the backend
// exposes no house endpoint, so the dashboard keeps them in its own store.
type House struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Type    string `json:"type"`
	Owner   string `json:"owner"`
	Status  string `json:"status"`
}

// House status values.
const (
	HouseAvailable = "Available"
	HouseRented    = "Rented"
)

// HouseRequest is the create/update body for a house.
type HouseRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Type    string `json:"type"`
	Owner   string `json:"owner"`
	Status  string `json:"status"`
}

// MetricsSummary is the pre-aggregated dashboard payload consumed by the
// chart layer.
type MetricsSummary struct {
	Users          UserStats      `json:"users"`
	Orders         OrderStats     `json:"orders"`
	Subscriptions  SubStats       `json:"subscriptions"`
	RoomItems      RoomItemStats  `json:"roomItems"`
	MonthlyRevenue []MonthlyPoint `json:"monthlyRevenue"`
}

// UserStats summarizes the user base.
type UserStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Premium  int `json:"premium"`
	Verified int `json:"verified"`
}

// OrderStats summarizes billing orders.
type OrderStats struct {
	Total            int   `json:"total"`
	Paid             int   `json:"paid"`
	TotalRevenueVnd  int64 `json:"totalRevenueVnd"`
	OrdersThisMonth  int   `json:"ordersThisMonth"`
	RevenueThisMonth int64 `json:"revenueThisMonthVnd"`
}

// SubStats summarizes plan prices ("subscriptions" on the dashboard).
type SubStats struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

// RoomItemStats summarizes the sprite catalog.
type RoomItemStats struct {
	Total int `json:"total"`
}

// MonthlyPoint is one month of the revenue series, labeled YYYY-MM.
type MonthlyPoint struct {
	Month      string `json:"month"`
	Orders     int    `json:"orders"`
	RevenueVnd int64  `json:"revenueVnd"`
}
