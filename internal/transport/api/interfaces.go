package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/IEVN1001-20001021/api-paso/internal/domain"
	"github.com/IEVN1001-20001021/api-paso/internal/repository/repoargs"
	"github.com/IEVN1001-20001021/api-paso/internal/service"
)

type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
	FindUserByID(ctx context.Context, id int64) (*domain.User, error)
}

type ProfileServicer interface {
	Show(ctx context.Context, userID int64) (*service.ProfileView, error)
	UpdateImage(ctx context.Context, userID int64, imageURL string) error
}

type TripServicer interface {
	Create(ctx context.Context, args repoargs.CreateTrip) (*domain.Trip, error)
	Recent(ctx context.Context, limit uint) ([]domain.Trip, error)
	Filtered(ctx context.Context, filter repoargs.TripFilter) ([]domain.Trip, error)
	Detail(ctx context.Context, tripID int64) (*repoargs.TripDetail, error)
	OwnerID(ctx context.Context, tripID int64) (int64, error)
	RateDriver(ctx context.Context, tripID int64, rating float64) error
}

type CardServicer interface {
	Add(ctx context.Context, userID int64, args service.AddCardArgs) (*domain.Card, error)
	List(ctx context.Context, userID int64) ([]domain.Card, error)
	Deactivate(ctx context.Context, userID, cardID int64) error
}

type OrderServicer interface {
	Create(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status domain.OrderStatusType) error
	MarkDelivered(ctx context.Context, orderID, actingUserID int64) error
	DismissNotification(ctx context.Context, orderID int64) error
	PendingForTripOwner(ctx context.Context, ownerID int64) ([]domain.Order, error)
	AcceptedForUser(ctx context.Context, userID int64) ([]domain.Order, error)
	RejectedForUser(ctx context.Context, userID int64) ([]domain.Order, error)
	InProgressForUser(ctx context.Context, userID int64) ([]domain.Order, error)
	InProgressForTripOwner(ctx context.Context, ownerID int64) ([]domain.Order, error)
}

type CatalogServicer interface {
	SearchShops(ctx context.Context, filter repoargs.ShopFilter) ([]domain.Shop, error)
	AllShops(ctx context.Context) ([]domain.Shop, error)
	ShopDetail(ctx context.Context, shopID int64) (*domain.Shop, error)
	AddShop(ctx context.Context, args repoargs.CreateShop) (*domain.Shop, error)
	Products(ctx context.Context, shopID int64) ([]domain.Product, error)
	Product(ctx context.Context, productID int64) (*domain.Product, error)
	AddProduct(ctx context.Context, args repoargs.CreateProduct) (*domain.Product, error)
}
