package service

import (
	"context"
	"fmt"
	"time"

	"garments-order-tracker/internal/dto"
	"garments-order-tracker/internal/model"
	"garments-order-tracker/internal/policy"
	"garments-order-tracker/internal/tracking"

	"go.mongodb.org/mongo-driver/bson"
)

type OrderRepository interface {
	Insert(ctx context.Context, o *model.Order) (string, error)
	FindByID(ctx context.Context, id string) (*model.Order, error)
	FindByTrackingID(ctx context.Context, trackingID string) (*model.Order, error)
	FindByFilter(ctx context.Context, email, status string) ([]*model.Order, error)
	UpdateFields(ctx context.Context, id string, set bson.M) (int64, error)
	AppendTracking(ctx context.Context, id string, tu model.TrackingUpdate) (int64, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
}

// EventPublisher anuncia eventos de dominio (Rabbit). Puede ser nil: el
// servicio HTTP funciona igual sin broker.
type EventPublisher interface {
	Publish(exchange string, message any)
}

type OrderService struct {
	orders OrderRepository
	events EventPublisher
}

func NewOrderService(orders OrderRepository, events EventPublisher) *OrderService {
	return &OrderService{orders: orders, events: events}
}

// Create arranca toda orden en pending/unpaid, con trackingId generado acá.
// La política exige que el email del body sea el del token.
func (s *OrderService) Create(ctx context.Context, actor policy.Input, req dto.CreateOrderRequest) (*model.Order, error) {
	if err := policy.Decide(actor, policy.CreateOrder, req.Email); err != nil {
		return nil, err
	}

	items := make([]model.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, model.OrderItem{
			ProductID:    it.ProductID,
			ProductTitle: it.ProductTitle,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
		})
	}

	order := &model.Order{
		Email:         req.Email,
		Items:         items,
		TotalPrice:    req.TotalPrice,
		TrackingID:    tracking.NewID(),
		Status:        model.OrderPending,
		PaymentStatus: model.PaymentUnpaid,
		CreatedAt:     time.Now().UTC(),
	}

	id, err := s.orders.Insert(ctx, order)
	if err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.Publish("order_placed", map[string]any{
			"orderId":    id,
			"email":      order.Email,
			"trackingId": order.TrackingID,
			"totalPrice": order.TotalPrice,
		})
	}

	return order, nil
}

// List: manager/admin con cualquier filtro, user común solo con su propio email.
func (s *OrderService) List(ctx context.Context, actor policy.Input, email, status string) ([]*model.Order, error) {
	if err := policy.Decide(actor, policy.ViewOrders, email); err != nil {
		return nil, err
	}
	return s.orders.FindByFilter(ctx, email, status)
}

func (s *OrderService) GetByID(ctx context.Context, id string) (*model.Order, error) {
	return s.orders.FindByID(ctx, id)
}

func (s *OrderService) GetByTrackingID(ctx context.Context, trackingID string) (*model.Order, error) {
	return s.orders.FindByTrackingID(ctx, trackingID)
}

// Campos que el PATCH genérico no puede pisar.
var protectedOrderFields = map[string]bool{
	"_id":           true,
	"email":         true,
	"paymentStatus": true,
	"transactionId": true,
	"trackingId":    true,
	"createdAt":     true,
}

func (s *OrderService) UpdateFields(ctx context.Context, actor policy.Input, id string, fields map[string]any) (int64, error) {
	if err := policy.Decide(actor, policy.UpdateOrder, ""); err != nil {
		return 0, err
	}

	set := bson.M{}
	for k, v := range fields {
		if !protectedOrderFields[k] {
			set[k] = v
		}
	}
	if len(set) == 0 {
		return 0, fmt.Errorf("%w: no fields to update", ErrValidation)
	}

	return s.orders.UpdateFields(ctx, id, set)
}

// SetStatus: solo manager/admin. El eje de pago no se toca acá.
func (s *OrderService) SetStatus(ctx context.Context, actor policy.Input, id string, req dto.UpdateOrderStatusRequest) (int64, error) {
	if err := policy.Decide(actor, policy.UpdateOrderStatus, ""); err != nil {
		return 0, err
	}

	set := bson.M{"status": req.Status}
	if req.ApprovedAt != "" {
		approvedAt, err := time.Parse(time.RFC3339, req.ApprovedAt)
		if err != nil {
			return 0, fmt.Errorf("%w: approvedAt must be RFC3339", ErrValidation)
		}
		set["approvedAt"] = approvedAt.UTC()
	} else if req.Status == model.OrderApproved {
		set["approvedAt"] = time.Now().UTC()
	}

	return s.orders.UpdateFields(ctx, id, set)
}

// AppendTracking agrega un evento al historial; nunca se reordena ni se borra.
func (s *OrderService) AppendTracking(ctx context.Context, actor policy.Input, id string, req dto.TrackingUpdateRequest) (int64, error) {
	if err := policy.Decide(actor, policy.UpdateOrder, ""); err != nil {
		return 0, err
	}

	tu := model.TrackingUpdate{
		Event:     req.Event,
		Note:      req.Note,
		UpdatedBy: actor.Email,
		Timestamp: time.Now().UTC(),
	}
	return s.orders.AppendTracking(ctx, id, tu)
}

func (s *OrderService) SetPaymentStatus(ctx context.Context, actor policy.Input, id string, req dto.UpdatePaymentStatusRequest) (int64, error) {
	if err := policy.Decide(actor, policy.UpdateOrder, ""); err != nil {
		return 0, err
	}

	set := bson.M{
		"paymentStatus": req.PaymentStatus,
		"transactionId": req.TransactionID,
		"paidAt":        time.Now().UTC(),
	}
	return s.orders.UpdateFields(ctx, id, set)
}

func (s *OrderService) Delete(ctx context.Context, actor policy.Input, id string) (int64, error) {
	if err := policy.Decide(actor, policy.UpdateOrder, ""); err != nil {
		return 0, err
	}
	return s.orders.DeleteByID(ctx, id)
}
