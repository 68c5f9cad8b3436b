package controller

import (
	"errors"
	"log"
	"net/http"

	"garments-order-tracker/internal/policy"
	"garments-order-tracker/internal/repository"
	"garments-order-tracker/internal/service"
	"garments-order-tracker/internal/stripe"

	"github.com/gin-gonic/gin"
)

// respondError traduce los errores de negocio a HTTP en un solo lugar,
// para que todos los handlers respondan igual.
func respondError(c *gin.Context, err error) {
	var denial *policy.Denial
	if errors.As(err, &denial) {
		body := gin.H{"code": denial.Code, "message": denial.Message}
		if denial.SuspendReason != "" {
			body["suspendReason"] = denial.SuspendReason
		}
		if denial.SuspendFeedback != "" {
			body["suspendFeedback"] = denial.SuspendFeedback
		}
		c.JSON(http.StatusForbidden, body)
		return
	}

	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, repository.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
	case errors.Is(err, service.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "order not found"})
	case errors.Is(err, stripe.ErrUpstream):
		// detalle seguro: sin cuerpo ni claves del proveedor
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		log.Println("unexpected error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
	}
}

// resolveActor arma el actor para la política desde el email que dejó el
// middleware de auth. Falso => la respuesta ya fue escrita.
func resolveActor(c *gin.Context, users *service.UserService) (policy.Input, bool) {
	email := c.GetString("userEmail")
	actor, err := users.ResolveActor(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return policy.Input{}, false
	}
	return actor, true
}
