// Package records is the data-access layer: typed entities stored as JSON
// documents in the record store, with the denormalized index lists that
// back every one-to-many view (parent's children, nursery's children,
// a child's diary updates, payment histories).
package records

import (
	"errors"
	"time"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

const (
	UserTypeParent  = "parent"
	UserTypeNursery = "nursery"
)

const (
	ChildStatusPending  = "pending"
	ChildStatusApproved = "approved"
	ChildStatusRejected = "rejected"
)

// PaymentStatusCompleted is the only payment status the system writes.
// Payments are ledger entries, not a processing pipeline.
const PaymentStatusCompleted = "completed"

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	UserType  string    `json:"userType"`
	CreatedAt time.Time `json:"createdAt"`
}

// Profile is a user with the owned nursery embedded for nursery accounts.
type Profile struct {
	User
	Nursery *Nursery `json:"nursery,omitempty"`
}

// Nursery ids carry their store key ("nursery:<uuid>"), matching the flat
// keyspace layout.
type Nursery struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"ownerId"`
	Name            string    `json:"name"`
	Location        string    `json:"location"`
	Description     string    `json:"description,omitempty"`
	Price           float64   `json:"price"`
	AvailablePlaces int       `json:"availablePlaces"`
	Rating          float64   `json:"rating"`
	RatingCount     int       `json:"ratingCount"`
	ImageURL        string    `json:"imageUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// NurseryPatch carries the fields a PUT may change. Nil means "leave as is".
type NurseryPatch struct {
	Name            *string  `json:"name"`
	Location        *string  `json:"location"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price"`
	AvailablePlaces *int     `json:"availablePlaces"`
	ImageURL        *string  `json:"imageUrl"`
}

type Child struct {
	ID        string    `json:"id"`
	ParentID  string    `json:"parentId"`
	NurseryID string    `json:"nurseryId"`
	Name      string    `json:"name"`
	Age       string    `json:"age"`
	Notes     string    `json:"notes,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// ChildWithParent is the nursery-side view of a registration.
type ChildWithParent struct {
	Child
	ParentInfo *User `json:"parentInfo,omitempty"`
}

type ChildUpdate struct {
	ID        string    `json:"id"`
	ChildID   string    `json:"childId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Type      string    `json:"type,omitempty"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

type Program struct {
	NurseryID  string    `json:"nurseryId"`
	Schedule   string    `json:"schedule"`
	Activities string    `json:"activities"`
	UpdatedBy  string    `json:"updatedBy"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type Payment struct {
	ID          string    `json:"id"`
	ParentID    string    `json:"parentId"`
	NurseryID   string    `json:"nurseryId"`
	ChildID     string    `json:"childId,omitempty"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type PaymentWithParent struct {
	Payment
	ParentInfo *User `json:"parentInfo,omitempty"`
}
