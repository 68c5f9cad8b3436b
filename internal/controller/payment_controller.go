package controller

import (
	"net/http"

	"garments-order-tracker/internal/dto"
	"garments-order-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	Payments *service.PaymentService
}

func NewPaymentController(payments *service.PaymentService) *PaymentController {
	return &PaymentController{Payments: payments}
}

// POST /payment-checkout-session
func (ctl *PaymentController) CreateCheckoutSession(c *gin.Context) {
	var req dto.CheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: cost and senderEmail"})
		return
	}

	session, err := ctl.Payments.CreateCheckoutSession(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// PATCH /payment-success?session_id=...
// La verdad de la sesión se consulta al proveedor, nunca al query string.
func (ctl *PaymentController) PaymentSuccess(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing session_id"})
		return
	}

	result, err := ctl.Payments.ConfirmSuccess(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	switch result.Outcome {
	case service.ReconcileAlreadyProcessed:
		c.JSON(http.StatusOK, gin.H{
			"success":       true,
			"message":       "Payment already processed",
			"transactionId": result.TransactionID,
			"orderId":       result.OrderID,
		})
	case service.ReconcileProcessed:
		c.JSON(http.StatusOK, gin.H{
			"success":       true,
			"message":       "Payment processed successfully",
			"orderId":       result.OrderID,
			"transactionId": result.TransactionID,
			"paymentId":     result.PaymentID,
		})
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Payment not completed",
		})
	}
}
