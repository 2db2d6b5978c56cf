package repoargs

import "github.com/IEVN1001-20001021/api-paso/internal/domain"

type CreateCard struct {
	UserID       int64
	HolderName   string
	MaskedNumber string
	ExpiryDate   string
	Network      domain.CardNetwork
}
