package dto

import (
	"time"

	"adira_backend/internal/models"
)

// CreateProductRequest - создание товара (только staff)
type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	IsActive    *bool   `json:"is_active"`
	OnSale      bool    `json:"on_sale"`
}

// UpdateProductRequest - частичное обновление товара (только staff)
type UpdateProductRequest struct {
	Name        *string  `json:"name" validate:"omitempty,max=200"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
	IsActive    *bool    `json:"is_active"`
	OnSale      *bool    `json:"on_sale"`
}

// ToModel строит модель товара; is_active по умолчанию true
func (r *CreateProductRequest) ToModel() *models.Product {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	return &models.Product{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
		IsActive:    isActive,
		OnSale:      r.OnSale,
	}
}

// ApplyTo накладывает заполненные поля запроса на модель
func (r *UpdateProductRequest) ApplyTo(p *models.Product) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.Stock != nil {
		p.Stock = *r.Stock
	}
	if r.IsActive != nil {
		p.IsActive = *r.IsActive
	}
	if r.OnSale != nil {
		p.OnSale = *r.OnSale
	}
}

// ProductResponse - представление товара; tax считается от цены
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	IsActive    bool      `json:"is_active"`
	OnSale      bool      `json:"on_sale"`
	Tax         float64   `json:"tax"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewProductResponse строит ProductResponse из модели
func NewProductResponse(p *models.Product) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		IsActive:    p.IsActive,
		OnSale:      p.OnSale,
		Tax:         p.Tax(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
