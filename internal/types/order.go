package types

import "time"

type Status string

const (
	PendingStatus   Status = "pending"
	PreparingStatus Status = "preparing"
	ShippingStatus  Status = "shipping"
	CompletedStatus Status = "completed"
	CancelledStatus Status = "cancelled"
)

// Actor is the role requesting a status change.
type Actor string

const (
	AdminActor Actor = "admin"
	OwnerActor Actor = "owner"
)

// Audience is the viewer display metadata is rendered for.
type Audience string

const (
	AdminAudience    Audience = "admin"
	CustomerAudience Audience = "customer"
)

type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type OrderRecord struct {
	ID         string      `db:"id" json:"id"`
	Status     Status      `db:"status" json:"status"`
	CreatedAt  time.Time   `db:"created_at" json:"created_at"`
	Owner      int         `db:"user_id" json:"owner"`
	Items      []OrderItem `db:"items" json:"items"`
	TotalPrice float64     `db:"total_price" json:"total_price"`
}

type User struct {
	ID       int    `db:"id"`
	Username string `db:"username"`
	IsAdmin  bool   `db:"is_admin"`
}
