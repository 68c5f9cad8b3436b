// Package policy concentra todos los chequeos de autorización en una sola
// función pura, en vez de repetirlos en cada handler.
package policy

import (
	"strings"

	"garments-order-tracker/internal/model"
)

type Action string

const (
	CreateProduct     Action = "createProduct"
	UpdateProduct     Action = "updateProduct"
	DeleteProduct     Action = "deleteProduct"
	CreateOrder       Action = "createOrder"
	ViewOrders        Action = "viewOrders"
	ViewOwnOrders     Action = "viewOwnOrders"
	UpdateOrder       Action = "updateOrder"
	UpdateOrderStatus Action = "updateOrderStatus"
)

// Códigos de denegación que viajan al cliente
const (
	CodeNoUser    = "NO_USER"
	CodeSuspended = "SUSPENDED"
	CodeForbidden = "FORBIDDEN"
)

// Denial implementa error para que los servicios lo propaguen tal cual.
type Denial struct {
	Code            string `json:"code"`
	Message         string `json:"message"`
	SuspendReason   string `json:"suspendReason,omitempty"`
	SuspendFeedback string `json:"suspendFeedback,omitempty"`
}

func (d *Denial) Error() string { return d.Message }

// Input es el actor ya resuelto: el email autenticado del token más el
// documento de la cuenta (nil si el lookup no encontró nada).
type Input struct {
	Email   string
	Account *model.User
}

var mutations = map[Action]bool{
	CreateProduct:     true,
	UpdateProduct:     true,
	DeleteProduct:     true,
	CreateOrder:       true,
	UpdateOrder:       true,
	UpdateOrderStatus: true,
}

var managerOnly = map[Action]bool{
	CreateProduct:     true,
	UpdateProduct:     true,
	DeleteProduct:     true,
	UpdateOrderStatus: true,
}

// Decide evalúa las reglas en orden; la primera que matchea gana.
// ownerEmail es el email dueño del recurso (o el filtro pedido, para ViewOrders).
// Sin efectos secundarios: se testea sola.
func Decide(in Input, action Action, ownerEmail string) error {
	if in.Account == nil {
		return &Denial{Code: CodeNoUser, Message: "no account found for this user"}
	}

	acct := in.Account

	if acct.Status == model.StatusSuspended && mutations[action] {
		return &Denial{
			Code:            CodeSuspended,
			Message:         "account suspended",
			SuspendReason:   acct.SuspendReason,
			SuspendFeedback: acct.SuspendFeedback,
		}
	}

	isManager := acct.Role == model.RoleManager || acct.Role == model.RoleAdmin

	if managerOnly[action] && !isManager {
		return &Denial{Code: CodeForbidden, Message: "manager or admin role required"}
	}

	switch action {
	case CreateOrder:
		if !strings.EqualFold(ownerEmail, in.Email) {
			return &Denial{Code: CodeForbidden, Message: "order email must match the authenticated user"}
		}
	case ViewOrders:
		// manager/admin consultan cualquier filtro; un user común solo lo suyo
		if !isManager && !strings.EqualFold(ownerEmail, in.Email) {
			return &Denial{Code: CodeForbidden, Message: "you can only view your own orders"}
		}
	}

	return nil
}
