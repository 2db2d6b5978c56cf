package pgrepo

import (
	"context"
	"fmt"

	"github.com/IEVN1001-20001021/api-paso/internal/domain"
	"github.com/IEVN1001-20001021/api-paso/internal/repository/repoargs"
	"github.com/IEVN1001-20001021/api-paso/pkg/uow"
	"github.com/jackc/pgx/v5"
)

type ShopRepository struct {
	db uow.DBTX
}

func NewShopRepository(db uow.DBTX) *ShopRepository {
	return &ShopRepository{db: db}
}

const shopColumns = `id, name, address, state, city, schedule, phone, email, logo_url, rating`

func (s *ShopRepository) CreateShop(ctx context.Context, args repoargs.CreateShop) (*domain.Shop, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO shops (name, address, state, city, schedule, phone, email, logo_url, rating)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0)
		RETURNING `+shopColumns,
		args.Name, args.Address, args.State, args.City, args.Schedule, args.Phone, args.Email, args.LogoURL,
	)
	shop, err := scanShop(row)
	if err != nil {
		return nil, convertErr(err, "creating shop %s", args.Name)
	}
	return shop, nil
}

// GetFiltered matches shop names against the search substring
// case-insensitively and applies the optional city and rating constraints
// conjunctively. An empty filter returns every shop.
func (s *ShopRepository) GetFiltered(ctx context.Context, filter repoargs.ShopFilter) ([]domain.Shop, error) {
	query := `SELECT ` + shopColumns + ` FROM shops WHERE name ILIKE $1`
	params := []any{"%" + filter.Search + "%"}

	if filter.City != "" {
		params = append(params, filter.City)
		query += fmt.Sprintf(" AND city = $%d", len(params))
	}
	if filter.MinRating != nil {
		params = append(params, *filter.MinRating)
		query += fmt.Sprintf(" AND rating >= $%d", len(params))
	}

	rows, err := s.db.Query(ctx, query, params...)
	if err != nil {
		return nil, convertErr(err, "getting filtered shops")
	}
	shops, scanErr := collectShops(rows)
	if scanErr != nil {
		return nil, convertErr(scanErr, "getting filtered shops")
	}
	return shops, nil
}

func (s *ShopRepository) GetAll(ctx context.Context) ([]domain.Shop, error) {
	rows, err := s.db.Query(ctx, `SELECT `+shopColumns+` FROM shops`)
	if err != nil {
		return nil, convertErr(err, "getting all shops")
	}
	shops, scanErr := collectShops(rows)
	if scanErr != nil {
		return nil, convertErr(scanErr, "getting all shops")
	}
	return shops, nil
}

func (s *ShopRepository) FindByID(ctx context.Context, shopID int64) (*domain.Shop, error) {
	row := s.db.QueryRow(ctx, `SELECT `+shopColumns+` FROM shops WHERE id = $1`, shopID)
	shop, err := scanShop(row)
	if err != nil {
		return nil, convertErr(err, "finding shop %d", shopID)
	}
	return shop, nil
}

func scanShop(row rowScanner) (*domain.Shop, error) {
	var shop domain.Shop
	err := row.Scan(
		&shop.ID, &shop.Name, &shop.Address, &shop.State, &shop.City,
		&shop.Schedule, &shop.Phone, &shop.Email, &shop.LogoURL, &shop.Rating,
	)
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

func collectShops(rows pgx.Rows) ([]domain.Shop, error) {
	defer rows.Close()
	shops := make([]domain.Shop, 0)
	for rows.Next() {
		shop, err := scanShop(rows)
		if err != nil {
			return nil, err
		}
		shops = append(shops, *shop)
	}
	return shops, rows.Err()
}
