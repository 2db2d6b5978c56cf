package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID                int64
	CreatedAt         time.Time
	Username          string
	Email             string
	EncryptedPassword string
	Surname1          string
	Surname2          string
	BirthDate         time.Time
	Age               int
	Sex               string
}

type Profile struct {
	ID          int64
	UserID      int64
	Username    string
	Bio         string
	Trips       int
	Orders      int
	Rating      float64
	RatingCount int
	ImageURL    string
}

type Trip struct {
	ID             int64
	CreatedAt      time.Time
	UserID         int64
	DepartureCity  string
	Destination    string
	ArrivalDate    time.Time
	ReturnDate     time.Time
	ColdContainers int
	HotContainers  int
	Comments       string
}

type Card struct {
	ID           int64
	UserID       int64
	HolderName   string
	MaskedNumber string
	ExpiryDate   string
	Network      CardNetwork
	Status       CardStatusType
}

type Order struct {
	ID           int64
	CreatedAt    time.Time
	UserID       int64
	StoreID      int64
	TripID       int64
	CardID       int64
	Details      string
	Total        decimal.Decimal
	Status       OrderStatusType
	Delivered    bool
	Notification NotificationType
}

type Shop struct {
	ID       int64
	Name     string
	Address  string
	State    string
	City     string
	Schedule string
	Phone    string
	Email    string
	LogoURL  string
	Rating   float64
}

type Product struct {
	ID          int64
	CreatedAt   time.Time
	ShopID      int64
	Name        string
	Description string
	Quantity    int
	Unit        string
	StorePrice  decimal.Decimal
	PublicPrice decimal.Decimal
	ImageURL    string
}
