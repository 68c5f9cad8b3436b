package controller

import (
	"net/http"

	"garments-order-tracker/internal/dto"
	"garments-order-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Users *service.UserService
}

func NewUserController(users *service.UserService) *UserController {
	return &UserController{Users: users}
}

// POST /users — registrar-o-nada
func (ctl *UserController) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	id, created, err := ctl.Users.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "user exists"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insertedId": id})
}

// GET /users/:email/role
func (ctl *UserController) GetRole(c *gin.Context) {
	role, err := ctl.Users.GetRole(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, role)
}

// GET /users — listado admin con search/role/status
func (ctl *UserController) List(c *gin.Context) {
	users, err := ctl.Users.List(
		c.Request.Context(),
		c.Query("search"),
		c.Query("role"),
		c.Query("status"),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// PATCH /users/:id/role
func (ctl *UserController) UpdateRole(c *gin.Context) {
	var req dto.UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	modified, err := ctl.Users.UpdateRole(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"modifiedCount": modified})
}
