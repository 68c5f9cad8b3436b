package controller

import (
	"net/http"
	"strconv"

	"garments-order-tracker/internal/dto"
	"garments-order-tracker/internal/model"
	"garments-order-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	Products *service.ProductService
	Users    *service.UserService
}

func NewProductController(products *service.ProductService, users *service.UserService) *ProductController {
	return &ProductController{Products: products, Users: users}
}

// GET /products — público, paginado
func (ctl *ProductController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	products, pagination, err := ctl.Products.List(c.Request.Context(), c.Query("createdBy"), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	if products == nil {
		products = []*model.Product{}
	}

	c.JSON(http.StatusOK, gin.H{
		"products":   products,
		"pagination": pagination,
	})
}

// POST /products — manager/admin activo
func (ctl *ProductController) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	actor, ok := resolveActor(c, ctl.Users)
	if !ok {
		return
	}

	product, err := ctl.Products.Create(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// PATCH /products/:id
func (ctl *ProductController) Update(c *gin.Context) {
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	actor, ok := resolveActor(c, ctl.Users)
	if !ok {
		return
	}

	modified, err := ctl.Products.Update(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"modifiedCount": modified})
}

// DELETE /products/:id
func (ctl *ProductController) Delete(c *gin.Context) {
	actor, ok := resolveActor(c, ctl.Users)
	if !ok {
		return
	}

	deleted, err := ctl.Products.Delete(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
