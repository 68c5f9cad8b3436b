package controller

import (
	"errors"
	"net/http"

	"garments-order-tracker/internal/dto"
	"garments-order-tracker/internal/model"
	"garments-order-tracker/internal/repository"
	"garments-order-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders *service.OrderService
	Users  *service.UserService
}

func NewOrderController(orders *service.OrderService, users *service.UserService) *OrderController {
	return &OrderController{Orders: orders, Users: users}
}

// POST /orders — el email del body tiene que ser el del token
func (ctl *OrderController) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	actor, ok := resolveActor(c, ctl.Users)
	if !ok {
		return
	}

	order, err := ctl.Orders.Create(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"orderId": order.ID.Hex(),
		"order":   order,
	})
}

// GET /orders?email=&status=
func (ctl *OrderController) List(c *gin.Context) {
	actor, ok := resolveActor(c, ctl.Users)
	if !ok {
		return
	}

	orders, err := ctl.Orders.List(c.Request.Context(), actor, c.Query("email"), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	if orders == nil {
		orders = []*model.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

// GET /orders/:email — endpoint legacy, mismas reglas que /orders
func (ctl *OrderController) ListByEmail(c *gin.Context) {
	actor, ok := resolveActor(c, ctl.Users)
	if !ok {
		return
	}

	orders, err := ctl.Orders.List(c.Request.Context(), actor, c.Param("email"), "")
	if err != nil {
		respondError(c, err)
		return
	}
	if orders == nil {
		orders = []*model.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

// GET /orders/id/:id — público; si no está, objeto vacío
func (ctl *OrderController) GetByID(c *gin.Context) {
	order, err := ctl.Orders.GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// GET /orders/track/:trackingId
func (ctl *OrderController) GetByTrackingID(c *gin.Context) {
	order, err := ctl.Orders.GetByTrackingID(c.Request.Context(), c.Param("trackingId"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// PATCH /orders/:id — update genérico de campos sueltos
func (ctl *OrderController) Update(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	actor, ok := resolveActor(c, ctl.Users)
	if !ok {
		return
	}

	matched, err := ctl.Orders.UpdateFields(c.Request.Context(), actor, c.Param("id"), fields)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"matchedCount": matched})
}

// PATCH /orders/:id/status — manager/admin
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	actor, ok := resolveActor(c, ctl.Users)
	if !ok {
		return
	}

	matched, err := ctl.Orders.SetStatus(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"matchedCount": matched})
}

// PATCH /orders/:id/tracking — append-only
func (ctl *OrderController) AppendTracking(c *gin.Context) {
	var req dto.TrackingUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	actor, ok := resolveActor(c, ctl.Users)
	if !ok {
		return
	}

	matched, err := ctl.Orders.AppendTracking(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"matchedCount": matched})
}

// PATCH /orders/:id/payment-status
func (ctl *OrderController) UpdatePaymentStatus(c *gin.Context) {
	var req dto.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	actor, ok := resolveActor(c, ctl.Users)
	if !ok {
		return
	}

	matched, err := ctl.Orders.SetPaymentStatus(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"matchedCount": matched})
}

// DELETE /orders/:id
func (ctl *OrderController) Delete(c *gin.Context) {
	actor, ok := resolveActor(c, ctl.Users)
	if !ok {
		return
	}

	deleted, err := ctl.Orders.Delete(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
