package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"store_service/internal/domain"
)

type ProductUseCase interface {
	AddProduct(ctx context.Context, storeID int, in *domain.NewProduct) (*domain.Product, error)
	ListProducts(ctx context.Context, storeID int) ([]domain.Product, error)
	DeleteProduct(ctx context.Context, storeID, productID int) error
}

type productUseCase struct {
	productRepo domain.ProductRepository
	storeRepo   domain.StoreRepository
	log         *logrus.Logger
}

func NewProductUseCase(pRepo domain.ProductRepository, sRepo domain.StoreRepository, logger *logrus.Logger) ProductUseCase {
	return &productUseCase{
		productRepo: pRepo,
		storeRepo:   sRepo,
		log:         logger,
	}
}

func (uc *productUseCase) AddProduct(ctx context.Context, storeID int, in *domain.NewProduct) (*domain.Product, error) {
	if storeID <= 0 {
		uc.log.Warnf("Use Case: Attempted to add product with invalid store ID: %d", storeID)
		return nil, domain.NewValidationError(errors.New("invalid store ID"))
	}
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Price <= 0 {
		uc.log.Warnf("Use Case: Product for store %d rejected - name and positive price are required", storeID)
		return nil, domain.NewValidationError(errors.New("name and price are required"))
	}

	if _, err := uc.storeRepo.GetStoreByID(ctx, storeID); err != nil {
		uc.log.Warnf("Use Case: Store ID %d not found during product creation: %v", storeID, err)
		return nil, err
	}

	stock := true
	if in.Stock != nil {
		stock = *in.Stock
	}

	product, err := uc.productRepo.CreateProduct(ctx, &domain.Product{
		StoreID: storeID,
		Name:    name,
		Price:   float64(in.Price),
		Stock:   stock,
	})
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create product '%s': %v", name, err)
		return nil, err
	}
	uc.log.Infof("Use Case: Product '%s' created with ID %d for store %d", product.Name, product.ID, storeID)
	return product, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, storeID int) ([]domain.Product, error) {
	if storeID <= 0 {
		return nil, domain.NewValidationError(errors.New("invalid store ID"))
	}
	if _, err := uc.storeRepo.GetStoreByID(ctx, storeID); err != nil {
		uc.log.Warnf("Use Case: Store ID %d not found: %v", storeID, err)
		return nil, err
	}
	products, err := uc.productRepo.ListProductsByStore(ctx, storeID)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products for store %d: %v", storeID, err)
		return nil, err
	}
	return products, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, storeID, productID int) error {
	if storeID <= 0 || productID <= 0 {
		uc.log.Warnf("Use Case: Attempted delete with invalid IDs (store %d, product %d)", storeID, productID)
		return domain.NewValidationError(errors.New("invalid store or product ID for delete"))
	}
	if err := uc.productRepo.DeleteProduct(ctx, storeID, productID); err != nil {
		uc.log.Warnf("Use Case: Repository failed to delete product ID %d: %v", productID, err)
		return err
	}
	uc.log.Infof("Use Case: Product %d deleted from store %d", productID, storeID)
	return nil
}
