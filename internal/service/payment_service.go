package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"garments-order-tracker/internal/dto"
	"garments-order-tracker/internal/model"
	"garments-order-tracker/internal/repository"
	"garments-order-tracker/internal/stripe"

	"go.mongodb.org/mongo-driver/bson"
)

type PaymentRepository interface {
	FindByTransactionID(ctx context.Context, transactionID string) (*model.Payment, error)
	Insert(ctx context.Context, p *model.Payment) (string, error)
}

// ProviderClient es el proveedor de pagos (lo implementa el cliente de stripe).
type ProviderClient interface {
	CreateSession(ctx context.Context, p stripe.CreateSessionParams) (*stripe.CheckoutSession, error)
	RetrieveSession(ctx context.Context, sessionID string) (*stripe.CheckoutSession, error)
}

// SessionTruth es la foto verificada de la sesión, leída del proveedor.
// Jamás se arma con datos que manda el navegador.
type SessionTruth struct {
	TransactionID string
	PaymentStatus string
	AmountTotal   int64
	Currency      string
	CustomerEmail string
	OrderID       string
}

type ReconcileOutcome string

const (
	ReconcileProcessed        ReconcileOutcome = "processed"
	ReconcileAlreadyProcessed ReconcileOutcome = "already_processed"
	ReconcileNotCompleted     ReconcileOutcome = "not_completed"
)

type ReconcileResult struct {
	Outcome       ReconcileOutcome
	OrderID       string
	TransactionID string
	PaymentID     string
}

type PaymentService struct {
	orders     OrderRepository
	payments   PaymentRepository
	provider   ProviderClient
	siteDomain string
	events     EventPublisher
}

func NewPaymentService(orders OrderRepository, payments PaymentRepository, provider ProviderClient, siteDomain string, events EventPublisher) *PaymentService {
	return &PaymentService{
		orders:     orders,
		payments:   payments,
		provider:   provider,
		siteDomain: siteDomain,
		events:     events,
	}
}

// CreateCheckoutSession abre la sesión en el proveedor y devuelve la URL de pago.
func (s *PaymentService) CreateCheckoutSession(ctx context.Context, req dto.CheckoutSessionRequest) (*dto.CheckoutSessionResponse, error) {
	// A la unidad mínima de la moneda: siempre ×100
	amount := int64(math.Round(req.Cost * 100))
	if amount <= 0 {
		return nil, fmt.Errorf("%w: invalid cost value", ErrValidation)
	}

	name := req.ParcelName
	if name == "" {
		name = "Order"
	}

	session, err := s.provider.CreateSession(ctx, stripe.CreateSessionParams{
		AmountCents:   amount,
		Currency:      "usd",
		ProductName:   "Please pay for: " + name,
		OrderID:       req.ParcelID,
		CustomerEmail: req.SenderEmail,
		SuccessURL:    s.siteDomain + "/dashboard/payment-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:     s.siteDomain + "/dashboard/payment-cancelled",
	})
	if err != nil {
		return nil, err
	}

	return &dto.CheckoutSessionResponse{URL: session.URL, ID: session.ID}, nil
}

// ConfirmSuccess busca la verdad de la sesión en el proveedor y reconcilia.
func (s *PaymentService) ConfirmSuccess(ctx context.Context, sessionID string) (*ReconcileResult, error) {
	session, err := s.provider.RetrieveSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return s.Reconcile(ctx, SessionTruth{
		TransactionID: session.PaymentIntent,
		PaymentStatus: session.PaymentStatus,
		AmountTotal:   session.AmountTotal,
		Currency:      session.Currency,
		CustomerEmail: session.CustomerEmail,
		OrderID:       session.Metadata.OrderID,
	})
}

// Reconcile registra el pago una sola vez por transactionId.
//  1. Si ya hay un pago con ese transactionId, corta sin escribir nada:
//     el proveedor puede reenviar la misma confirmación.
//  2. Sesión no pagada: tampoco escribe nada.
//  3. Verifica que la orden exista ANTES de insertar el pago, para no dejar
//     un pago huérfano si la orden no está. Después actualiza la orden y
//     recién entonces inserta el registro de pago.
func (s *PaymentService) Reconcile(ctx context.Context, truth SessionTruth) (*ReconcileResult, error) {
	existing, err := s.payments.FindByTransactionID(ctx, truth.TransactionID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return &ReconcileResult{
			Outcome:       ReconcileAlreadyProcessed,
			OrderID:       existing.OrderID,
			TransactionID: truth.TransactionID,
		}, nil
	}

	if truth.PaymentStatus != model.PaymentPaid {
		return &ReconcileResult{Outcome: ReconcileNotCompleted}, nil
	}

	if _, err := s.orders.FindByID(ctx, truth.OrderID); err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrInvalidID) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	set := bson.M{
		"paymentStatus": model.PaymentPaid,
		"transactionId": truth.TransactionID,
		"paidAt":        now,
	}
	if _, err := s.orders.UpdateFields(ctx, truth.OrderID, set); err != nil {
		return nil, err
	}

	payment := &model.Payment{
		OrderID:       truth.OrderID,
		Amount:        float64(truth.AmountTotal) / 100,
		Currency:      truth.Currency,
		CustomerEmail: truth.CustomerEmail,
		TransactionID: truth.TransactionID,
		PaymentStatus: truth.PaymentStatus,
		PaidAt:        now,
	}
	paymentID, err := s.payments.Insert(ctx, payment)
	if err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.Publish("payment_recorded", map[string]any{
			"orderId":       truth.OrderID,
			"transactionId": truth.TransactionID,
			"amount":        payment.Amount,
			"currency":      payment.Currency,
		})
	}

	return &ReconcileResult{
		Outcome:       ReconcileProcessed,
		OrderID:       truth.OrderID,
		TransactionID: truth.TransactionID,
		PaymentID:     paymentID,
	}, nil
}
