package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/IEVN1001-20001021/api-paso/internal/domain"
	"github.com/IEVN1001-20001021/api-paso/internal/repository/repoargs"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CatalogHandler struct {
	catalogService CatalogServicer
}

func NewCatalogHandler(catalogService CatalogServicer) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

type ShopResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"nombre"`
	Address  string  `json:"direccion"`
	State    string  `json:"estado"`
	City     string  `json:"ciudad"`
	Schedule string  `json:"horarios"`
	Phone    string  `json:"telefono"`
	Email    string  `json:"email"`
	LogoURL  string  `json:"logo_url"`
	Rating   float64 `json:"promedio_calificacion"`
}

func shopResponse(shop domain.Shop) ShopResponse {
	return ShopResponse{
		ID:       shop.ID,
		Name:     shop.Name,
		Address:  shop.Address,
		State:    shop.State,
		City:     shop.City,
		Schedule: shop.Schedule,
		Phone:    shop.Phone,
		Email:    shop.Email,
		LogoURL:  shop.LogoURL,
		Rating:   shop.Rating,
	}
}

func shopResponses(shops []domain.Shop) []ShopResponse {
	response := make([]ShopResponse, len(shops))
	for i, shop := range shops {
		response[i] = shopResponse(shop)
	}
	return response
}

// Search GET ShopsSearchRoute. Name substring match plus optional city and
// minimum rating filters.
func (h *CatalogHandler) Search(c *gin.Context) {
	filter := repoargs.ShopFilter{
		Search: c.Query("search"),
		City:   c.Query("city"),
	}
	if ratingStr := c.Query("rating"); ratingStr != "" {
		rating, parseErr := strconv.ParseFloat(ratingStr, 64)
		if parseErr != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Calificación inválida."})
			return
		}
		filter.MinRating = &rating
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	shops, err := h.catalogService.SearchShops(ctx, filter)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, shopResponses(shops))
}

// Index GET ShopsRoute. Unfiltered listing.
func (h *CatalogHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	shops, err := h.catalogService.AllShops(ctx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, shopResponses(shops))
}

// Detail GET ShopDetailsRoute. Takes the shop id as the store_id query param.
func (h *CatalogHandler) Detail(c *gin.Context) {
	storeIDStr := c.Query("store_id")
	if storeIDStr == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "ID de tienda no proporcionado."})
		return
	}
	storeID, parseErr := strconv.ParseInt(storeIDStr, 10, 64)
	if parseErr != nil || storeID <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "ID de tienda inválido."})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	shop, err := h.catalogService.ShopDetail(ctx, storeID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Tienda no encontrada."})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, shopResponse(*shop))
}

type ShopCreateParams struct {
	Name     string `binding:"required,max=100" json:"name"`
	Address  string `binding:"required,max=255" json:"address"`
	State    string `binding:"required,max=100" json:"state"`
	City     string `binding:"required,max=100" json:"city"`
	Schedule string `binding:"required,max=255" json:"schedule"`
	Phone    string `binding:"required,max=20"  json:"phone"`
	Email    string `binding:"required,email"   json:"email"`
	LogoURL  string `binding:"required,url"     json:"logo_url"`
}

// CreateShop POST ShopAddRoute.
func (h *CatalogHandler) CreateShop(c *gin.Context) {
	var params ShopCreateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	_, createErr := h.catalogService.AddShop(ctx, repoargs.CreateShop{
		Name:     params.Name,
		Address:  params.Address,
		State:    params.State,
		City:     params.City,
		Schedule: params.Schedule,
		Phone:    params.Phone,
		Email:    params.Email,
		LogoURL:  params.LogoURL,
	})
	if createErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, createErr).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Tienda registrada exitosamente"})
}

type ProductResponse struct {
	ID          int64   `json:"id"`
	ShopID      int64   `json:"tienda_id"`
	Name        string  `json:"nombre"`
	Description string  `json:"descripcion"`
	Quantity    int     `json:"cantidad"`
	Unit        string  `json:"unidad_medida"`
	StorePrice  float64 `json:"precio_tienda"`
	PublicPrice float64 `json:"precio_publico"`
	ImageURL    string  `json:"imagen"`
}

// Products GET ProductsRoute. Products of the shop given as store_id.
func (h *CatalogHandler) Products(c *gin.Context) {
	storeIDStr := c.Query("store_id")
	if storeIDStr == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "ID de tienda no proporcionado."})
		return
	}
	storeID, parseErr := strconv.ParseInt(storeIDStr, 10, 64)
	if parseErr != nil || storeID <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "ID de tienda inválido."})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	products, err := h.catalogService.Products(ctx, storeID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]ProductResponse, len(products))
	for i, product := range products {
		response[i] = ProductResponse{
			ID:          product.ID,
			ShopID:      product.ShopID,
			Name:        product.Name,
			Description: product.Description,
			Quantity:    product.Quantity,
			Unit:        product.Unit,
			StorePrice:  product.StorePrice.InexactFloat64(),
			PublicPrice: product.PublicPrice.InexactFloat64(),
			ImageURL:    product.ImageURL,
		}
	}

	c.JSON(http.StatusOK, response)
}

// ShowProduct GET ProductRoute. Id and name only, enough to label an order
// line.
func (h *CatalogHandler) ShowProduct(c *gin.Context) {
	productID, ok := parseIDParam(c, "productID")
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Identificador de producto inválido."})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	product, err := h.catalogService.Product(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Producto no encontrado"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": product.ID, "nombre": product.Name})
}

type ProductCreateParams struct {
	ShopID      int64           `binding:"required"         json:"shop"`
	Name        string          `binding:"required,max=100" json:"name"`
	Description string          `json:"description"`
	Quantity    int             `binding:"required,min=1"   json:"quantity"`
	Unit        string          `binding:"required,max=30"  json:"unit"`
	StorePrice  decimal.Decimal `binding:"required"         json:"storePrice"`
	PublicPrice decimal.Decimal `binding:"required"         json:"publicPrice"`
	ImageURL    string          `binding:"required,url"     json:"image"`
}

// CreateProduct POST ProductAddRoute. Description is the only optional field.
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var params ProductCreateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.Error(bindErr).SetType(gin.ErrorTypeBind)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Todos los campos son requeridos"})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	_, createErr := h.catalogService.AddProduct(ctx, repoargs.CreateProduct{
		ShopID:      params.ShopID,
		Name:        params.Name,
		Description: params.Description,
		Quantity:    params.Quantity,
		Unit:        params.Unit,
		StorePrice:  params.StorePrice,
		PublicPrice: params.PublicPrice,
		ImageURL:    params.ImageURL,
	})
	if createErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, createErr).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Producto agregado exitosamente"})
}
