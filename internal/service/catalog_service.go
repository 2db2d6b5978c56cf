package service

import (
	"context"
	"fmt"

	"github.com/IEVN1001-20001021/api-paso/internal/domain"
	"github.com/IEVN1001-20001021/api-paso/internal/repository/repoargs"
	"github.com/IEVN1001-20001021/api-paso/pkg/uow"
)

// CatalogService is the read-mostly shop and product catalog.
type CatalogService struct {
	uow         uow.UOW
	shopRepo    ShopRepository
	productRepo ProductRepository
}

func NewCatalogService(u uow.UOW) (*CatalogService, error) {
	shopRepo, shopRepoErr := uow.GetRepositoryAs[ShopRepository](u, uow.RepositoryName(repoargs.ShopRepoName))
	if shopRepoErr != nil {
		return nil, shopRepoErr
	}
	productRepo, productRepoErr := uow.GetRepositoryAs[ProductRepository](u, uow.RepositoryName(repoargs.ProductRepoName))
	if productRepoErr != nil {
		return nil, productRepoErr
	}
	return &CatalogService{
		uow:         u,
		shopRepo:    shopRepo,
		productRepo: productRepo,
	}, nil
}

func (s *CatalogService) SearchShops(ctx context.Context, filter repoargs.ShopFilter) ([]domain.Shop, error) {
	shops, err := s.shopRepo.GetFiltered(ctx, filter)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return shops, nil
}

func (s *CatalogService) AllShops(ctx context.Context) ([]domain.Shop, error) {
	shops, err := s.shopRepo.GetAll(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return shops, nil
}

func (s *CatalogService) ShopDetail(ctx context.Context, shopID int64) (*domain.Shop, error) {
	shop, err := s.shopRepo.FindByID(ctx, shopID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return shop, nil
}

func (s *CatalogService) AddShop(ctx context.Context, args repoargs.CreateShop) (*domain.Shop, error) {
	shop, err := s.shopRepo.CreateShop(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("adding shop: %w", err)
	}
	return shop, nil
}

func (s *CatalogService) Products(ctx context.Context, shopID int64) ([]domain.Product, error) {
	products, err := s.productRepo.GetByShopID(ctx, shopID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return products, nil
}

func (s *CatalogService) Product(ctx context.Context, productID int64) (*domain.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return product, nil
}

func (s *CatalogService) AddProduct(ctx context.Context, args repoargs.CreateProduct) (*domain.Product, error) {
	product, err := s.productRepo.CreateProduct(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("adding product: %w", err)
	}
	return product, nil
}
