// dto.go
package dto

// RegisterUserRequest para POST /users. El rol lo fija el servidor, nunca el cliente.
type RegisterUserRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
}

type UpdateUserRoleRequest struct {
	Role            string `json:"role" binding:"omitempty,oneof=user manager admin"`
	Status          string `json:"status" binding:"omitempty,oneof=active suspended"`
	SuspendReason   string `json:"suspendReason"`
	SuspendFeedback string `json:"suspendFeedback"`
}

type UserRoleResponse struct {
	Role            string `json:"role"`
	Status          string `json:"status"`
	SuspendReason   string `json:"suspendReason,omitempty"`
	SuspendFeedback string `json:"suspendFeedback,omitempty"`
}

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	ImageURL    string  `json:"imageURL"`
}

// UpdateProductRequest: solo los campos presentes se aplican al documento.
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	ImageURL    *string  `json:"imageURL"`
}

type Pagination struct {
	CurrentPage   int   `json:"currentPage"`
	Limit         int   `json:"limit"`
	TotalProducts int64 `json:"totalProducts"`
	TotalPages    int   `json:"totalPages"`
}

type OrderItemDTO struct {
	ProductID    string  `json:"productId"`
	ProductTitle string  `json:"productTitle"`
	Quantity     int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice    float64 `json:"unitPrice"`
}

type CreateOrderRequest struct {
	Email      string         `json:"email" binding:"required,email"`
	Items      []OrderItemDTO `json:"items" binding:"required,min=1,dive"`
	TotalPrice float64        `json:"totalPrice" binding:"required,gt=0"`
}

type UpdateOrderStatusRequest struct {
	Status     string `json:"status" binding:"required,oneof=pending approved rejected"`
	ApprovedAt string `json:"approvedAt"`
}

type TrackingUpdateRequest struct {
	Event string `json:"event" binding:"required"`
	Note  string `json:"note"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus" binding:"required,oneof=unpaid paid"`
	TransactionID string `json:"transactionId" binding:"required"`
}

type CheckoutSessionRequest struct {
	Cost        float64 `json:"cost" binding:"required,gt=0"`
	SenderEmail string  `json:"senderEmail" binding:"required,email"`
	ParcelID    string  `json:"parcelId" binding:"required"`
	ParcelName  string  `json:"parcelName"`
}

type CheckoutSessionResponse struct {
	URL string `json:"url"`
	ID  string `json:"id"`
}
