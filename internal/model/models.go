// models.go
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles y estados de cuenta
const (
	RoleUser    = "user"
	RoleManager = "manager"
	RoleAdmin   = "admin"

	StatusActive    = "active"
	StatusSuspended = "suspended"
)

// Estados de orden
const (
	OrderPending  = "pending"
	OrderApproved = "approved"
	OrderRejected = "rejected"

	PaymentUnpaid = "unpaid"
	PaymentPaid   = "paid"
)

type User struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email           string             `bson:"email" json:"email"`
	Name            string             `bson:"name,omitempty" json:"name,omitempty"`
	DisplayName     string             `bson:"displayName,omitempty" json:"displayName,omitempty"`
	PhotoURL        string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Role            string             `bson:"role" json:"role"`
	Status          string             `bson:"status" json:"status"`
	SuspendReason   string             `bson:"suspendReason,omitempty" json:"suspendReason,omitempty"`
	SuspendFeedback string             `bson:"suspendFeedback,omitempty" json:"suspendFeedback,omitempty"`
	SuspendedAt     *time.Time         `bson:"suspendedAt,omitempty" json:"suspendedAt,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	ImageURL    string             `bson:"imageURL,omitempty" json:"imageURL,omitempty"`
	CreatedBy   string             `bson:"createdBy" json:"createdBy"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type OrderItem struct {
	ProductID    string  `bson:"productId" json:"productId"`
	ProductTitle string  `bson:"productTitle" json:"productTitle"`
	Quantity     int     `bson:"quantity" json:"quantity"`
	UnitPrice    float64 `bson:"unitPrice" json:"unitPrice"`
}

// TrackingUpdate es un registro de historial: solo se agrega, nunca se borra.
type TrackingUpdate struct {
	Event     string    `bson:"event" json:"event"`
	Note      string    `bson:"note,omitempty" json:"note,omitempty"`
	UpdatedBy string    `bson:"updatedBy,omitempty" json:"updatedBy,omitempty"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email           string             `bson:"email" json:"email"`
	Items           []OrderItem        `bson:"items" json:"items"`
	TotalPrice      float64            `bson:"totalPrice" json:"totalPrice"`
	TrackingID      string             `bson:"trackingId" json:"trackingId"`
	Status          string             `bson:"status" json:"status"`
	PaymentStatus   string             `bson:"paymentStatus" json:"paymentStatus"`
	TransactionID   string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	PaidAt          *time.Time         `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
	ApprovedAt      *time.Time         `bson:"approvedAt,omitempty" json:"approvedAt,omitempty"`
	TrackingUpdates []TrackingUpdate   `bson:"trackingUpdates,omitempty" json:"trackingUpdates,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Payment es el registro de auditoría: uno por transactionId, inmutable.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	OrderID       string             `bson:"orderId" json:"orderId"`
	Amount        float64            `bson:"amount" json:"amount"`
	Currency      string             `bson:"currency" json:"currency"`
	CustomerEmail string             `bson:"customerEmail" json:"customerEmail"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	PaymentStatus string             `bson:"paymentStatus" json:"paymentStatus"`
	PaidAt        time.Time          `bson:"paidAt" json:"paidAt"`
}
