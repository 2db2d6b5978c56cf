package repoargs

import (
	"github.com/IEVN1001-20001021/api-paso/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateOrder struct {
	UserID  int64
	StoreID int64
	TripID  int64
	CardID  int64
	Details string
	Total   decimal.Decimal
	Status  domain.OrderStatusType
}
