package services

import (
	"adira_backend/internal/repositories"
	"adira_backend/internal/services/dto"
	"adira_backend/pkg/apperrors"
)

type ProductService interface {
	List() ([]dto.ProductResponse, error)
	Get(id string) (*dto.ProductResponse, error)
	Create(req *dto.CreateProductRequest) (*dto.ProductResponse, error)
	Update(id string, req *dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(id string) error
}

// ProductServiceImpl работает поверх репозитория каталога.
// Право на запись проверяется на уровне маршрутов (RequireStaff),
// сюда попадают уже авторизованные запросы.
type ProductServiceImpl struct {
	productRepo repositories.ProductRepository
}

func NewProductService(productRepo repositories.ProductRepository) ProductService {
	return &ProductServiceImpl{productRepo: productRepo}
}

// List - каталог товаров, новые первыми
func (s *ProductServiceImpl) List() ([]dto.ProductResponse, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, *dto.NewProductResponse(&products[i]))
	}
	return responses, nil
}

// Get - один товар по id
func (s *ProductServiceImpl) Get(id string) (*dto.ProductResponse, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProductNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProductResponse(product), nil
}

// Create - создание товара
func (s *ProductServiceImpl) Create(req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product := req.ToModel()
	if err := s.productRepo.Create(product); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProductResponse(product), nil
}

// Update - частичное обновление товара
func (s *ProductServiceImpl) Update(id string, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProductNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	req.ApplyTo(product)

	if err := s.productRepo.Update(product); err != nil {
		if apperrors.Is(err, repositories.ErrProductNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProductResponse(product), nil
}

// Delete - удаление товара
func (s *ProductServiceImpl) Delete(id string) error {
	if err := s.productRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrProductNotFound) {
			return apperrors.ErrProductNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
