package service

import (
	"context"

	"github.com/IEVN1001-20001021/api-paso/internal/domain"
	"github.com/IEVN1001-20001021/api-paso/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hash string) bool
}

type UserRepository interface {
	CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByID(ctx context.Context, id int64) (*domain.User, error)
}

type ProfileRepository interface {
	CreateProfile(ctx context.Context, args repoargs.CreateProfile) (*domain.Profile, error)
	FindByUserID(ctx context.Context, userID int64) (*domain.Profile, error)
	FindByUserIDForUpdate(ctx context.Context, userID int64) (*domain.Profile, error)
	UpdateImageURL(ctx context.Context, userID int64, imageURL string) error
	IncrementTrips(ctx context.Context, userID int64) error
	UpdateRating(ctx context.Context, args repoargs.RatingUpdate) error
}

type TripRepository interface {
	CreateTrip(ctx context.Context, args repoargs.CreateTrip) (*domain.Trip, error)
	GetRecent(ctx context.Context, limit uint) ([]domain.Trip, error)
	GetFiltered(ctx context.Context, filter repoargs.TripFilter) ([]domain.Trip, error)
	FindDetail(ctx context.Context, tripID int64) (*repoargs.TripDetail, error)
	GetOwnerID(ctx context.Context, tripID int64) (int64, error)
	CountByUserID(ctx context.Context, userID int64) (int, error)
}

type CardRepository interface {
	CreateCard(ctx context.Context, args repoargs.CreateCard) (*domain.Card, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Card, error)
	GetActiveByUserID(ctx context.Context, userID int64) ([]domain.Card, error)
	FindActiveByIDAndUserID(ctx context.Context, cardID, userID int64) (*domain.Card, error)
	Deactivate(ctx context.Context, cardID int64) error
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status domain.OrderStatusType) error
	MarkDelivered(ctx context.Context, orderID int64) error
	DismissNotification(ctx context.Context, orderID int64) error
	GetPendingByTripOwner(ctx context.Context, ownerID int64) ([]domain.Order, error)
	GetByStatusAndUser(ctx context.Context, status domain.OrderStatusType, userID int64) ([]domain.Order, error)
	GetInProgressByUser(ctx context.Context, userID int64) ([]domain.Order, error)
	GetInProgressByTripOwner(ctx context.Context, ownerID int64) ([]domain.Order, error)
	CountProcessingByCardID(ctx context.Context, cardID int64) (int, error)
	CountByUserID(ctx context.Context, userID int64) (int, error)
}

type ShopRepository interface {
	CreateShop(ctx context.Context, args repoargs.CreateShop) (*domain.Shop, error)
	GetFiltered(ctx context.Context, filter repoargs.ShopFilter) ([]domain.Shop, error)
	GetAll(ctx context.Context) ([]domain.Shop, error)
	FindByID(ctx context.Context, shopID int64) (*domain.Shop, error)
}

type ProductRepository interface {
	CreateProduct(ctx context.Context, args repoargs.CreateProduct) (*domain.Product, error)
	GetByShopID(ctx context.Context, shopID int64) ([]domain.Product, error)
	FindByID(ctx context.Context, productID int64) (*domain.Product, error)
}
