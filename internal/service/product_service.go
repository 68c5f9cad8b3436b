package service

import (
	"context"
	"fmt"
	"time"

	"garments-order-tracker/internal/dto"
	"garments-order-tracker/internal/model"
	"garments-order-tracker/internal/policy"

	"go.mongodb.org/mongo-driver/bson"
)

type ProductRepository interface {
	Insert(ctx context.Context, p *model.Product) (string, error)
	FindPage(ctx context.Context, createdBy string, page, limit int) ([]*model.Product, int64, error)
	UpdateByID(ctx context.Context, id string, set bson.M) (int64, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
}

type ProductService struct {
	products ProductRepository
}

func NewProductService(products ProductRepository) *ProductService {
	return &ProductService{products: products}
}

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

func (s *ProductService) Create(ctx context.Context, actor policy.Input, req dto.CreateProductRequest) (*model.Product, error) {
	if err := policy.Decide(actor, policy.CreateProduct, ""); err != nil {
		return nil, err
	}

	product := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		CreatedBy:   actor.Email, // siempre del token, nunca del body
		CreatedAt:   time.Now().UTC(),
	}

	if _, err := s.products.Insert(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// List es público y pagina: count total + página pedida.
func (s *ProductService) List(ctx context.Context, createdBy string, page, limit int) ([]*model.Product, *dto.Pagination, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	products, total, err := s.products.FindPage(ctx, createdBy, page, limit)
	if err != nil {
		return nil, nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	pagination := &dto.Pagination{
		CurrentPage:   page,
		Limit:         limit,
		TotalProducts: total,
		TotalPages:    totalPages,
	}
	return products, pagination, nil
}

func (s *ProductService) Update(ctx context.Context, actor policy.Input, id string, req dto.UpdateProductRequest) (int64, error) {
	if err := policy.Decide(actor, policy.UpdateProduct, ""); err != nil {
		return 0, err
	}

	set := bson.M{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.Category != nil {
		set["category"] = *req.Category
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return 0, fmt.Errorf("%w: price must be positive", ErrValidation)
		}
		set["price"] = *req.Price
	}
	if req.ImageURL != nil {
		set["imageURL"] = *req.ImageURL
	}

	if len(set) == 0 {
		return 0, fmt.Errorf("%w: no fields to update", ErrValidation)
	}

	return s.products.UpdateByID(ctx, id, set)
}

func (s *ProductService) Delete(ctx context.Context, actor policy.Input, id string) (int64, error) {
	if err := policy.Decide(actor, policy.DeleteProduct, ""); err != nil {
		return 0, err
	}
	return s.products.DeleteByID(ctx, id)
}
