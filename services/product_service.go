package services

import (
	"context"

	"verduleria/models"
	"verduleria/repositories"
)

type ProductService struct {
	productRepo *repositories.ProductRepository
}

func NewProductService() *ProductService {
	return &ProductService{
		productRepo: repositories.NewProductRepository(),
	}
}

func (s *ProductService) GetAllProducts(ctx context.Context, search, category string) ([]models.Product, error) {
	return s.productRepo.GetAllProducts(ctx, search, category)
}

func (s *ProductService) GetCategories(ctx context.Context) ([]string, error) {
	return s.productRepo.GetCategories(ctx)
}

func (s *ProductService) GetProductByID(ctx context.Context, id int) (*models.Product, error) {
	return s.productRepo.GetProductByID(ctx, id)
}

func (s *ProductService) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	if (req.PromoQty == nil) != (req.PromoPrice == nil) {
		return nil, models.ErrInvalidQuantity
	}
	if req.PromoQty != nil && req.PromoQty.Sign() <= 0 {
		return nil, models.ErrInvalidQuantity
	}

	product := &models.Product{
		Name:       req.Name,
		Category:   req.Category,
		Unit:       req.Unit,
		Price:      req.Price,
		PromoQty:   req.PromoQty,
		PromoPrice: req.PromoPrice,
		Image:      req.Image,
	}

	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id int, req models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Category != "" {
		product.Category = req.Category
	}
	if req.Unit != "" {
		product.Unit = req.Unit
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.PromoQty != nil || req.PromoPrice != nil {
		if (req.PromoQty == nil) != (req.PromoPrice == nil) {
			return nil, models.ErrInvalidQuantity
		}
		product.PromoQty = req.PromoQty
		product.PromoPrice = req.PromoPrice
	}
	if req.Image != "" {
		product.Image = req.Image
	}

	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id int) error {
	return s.productRepo.DeleteProduct(ctx, id)
}
