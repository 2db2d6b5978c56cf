package pgrepo

import (
	"context"

	"github.com/IEVN1001-20001021/api-paso/internal/domain"
	"github.com/IEVN1001-20001021/api-paso/internal/repository/repoargs"
	"github.com/IEVN1001-20001021/api-paso/pkg/uow"
)

type ProductRepository struct {
	db uow.DBTX
}

func NewProductRepository(db uow.DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `id, created_at, shop_id, name, description, quantity, unit,
	store_price, public_price, image_url`

func (p *ProductRepository) CreateProduct(ctx context.Context, args repoargs.CreateProduct) (*domain.Product, error) {
	row := p.db.QueryRow(ctx, `
		INSERT INTO products (shop_id, name, description, quantity, unit, store_price, public_price, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+productColumns,
		args.ShopID, args.Name, args.Description, args.Quantity, args.Unit,
		args.StorePrice, args.PublicPrice, args.ImageURL,
	)
	product, err := scanProduct(row)
	if err != nil {
		return nil, convertErr(err, "creating product %s for shop %d", args.Name, args.ShopID)
	}
	return product, nil
}

func (p *ProductRepository) GetByShopID(ctx context.Context, shopID int64) ([]domain.Product, error) {
	rows, err := p.db.Query(ctx, `SELECT `+productColumns+` FROM products WHERE shop_id = $1`, shopID)
	if err != nil {
		return nil, convertErr(err, "getting products by shop %d", shopID)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		product, scanErr := scanProduct(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "getting products by shop %d", shopID)
		}
		products = append(products, *product)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting products by shop %d", shopID)
	}
	return products, nil
}

func (p *ProductRepository) FindByID(ctx context.Context, productID int64) (*domain.Product, error) {
	row := p.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, productID)
	product, err := scanProduct(row)
	if err != nil {
		return nil, convertErr(err, "finding product %d", productID)
	}
	return product, nil
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var product domain.Product
	err := row.Scan(
		&product.ID, &product.CreatedAt, &product.ShopID, &product.Name, &product.Description,
		&product.Quantity, &product.Unit, &product.StorePrice, &product.PublicPrice, &product.ImageURL,
	)
	if err != nil {
		return nil, err
	}
	return &product, nil
}
