package repoargs

import "github.com/shopspring/decimal"

type CreateShop struct {
	Name     string
	Address  string
	State    string
	City     string
	Schedule string
	Phone    string
	Email    string
	LogoURL  string
}

// ShopFilter matches name substrings case-insensitively; City and MinRating
// only constrain when set.
type ShopFilter struct {
	Search    string
	City      string
	MinRating *float64
}

type CreateProduct struct {
	ShopID      int64
	Name        string
	Description string
	Quantity    int
	Unit        string
	StorePrice  decimal.Decimal
	PublicPrice decimal.Decimal
	ImageURL    string
}
