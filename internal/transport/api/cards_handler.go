package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/IEVN1001-20001021/api-paso/internal/domain"
	"github.com/IEVN1001-20001021/api-paso/internal/service"
	"github.com/gin-gonic/gin"
)

type CardsHandler struct {
	cardService CardServicer
}

func NewCardsHandler(cardService CardServicer) *CardsHandler {
	return &CardsHandler{
		cardService: cardService,
	}
}

type CardAddParams struct {
	HolderName string `binding:"required,max=100"       json:"cardName"`
	Number     string `binding:"required,min=12,max=19" json:"cardNumber"`
	ExpiryDate string `binding:"required,max=10"        json:"expiryDate"`
}

// Add POST CardsAddRoute. The card number is masked before it reaches the
// store; the full number is never persisted.
func (h *CardsHandler) Add(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params CardAddParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	_, addErr := h.cardService.Add(ctx, currentUserID, service.AddCardArgs{
		HolderName: params.HolderName,
		Number:     params.Number,
		ExpiryDate: params.ExpiryDate,
	})
	if addErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, addErr).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Tarjeta añadida exitosamente."})
}

type CardResponse struct {
	ID           int64  `json:"id"`
	HolderName   string `json:"nombre_en_tarjeta"`
	MaskedNumber string `json:"numero_enmascarado"`
	ExpiryDate   string `json:"fecha_expiracion"`
	Network      string `json:"tipo_tarjeta"`
	Status       string `json:"estado"`
}

// Index GET CardsRoute. Lists the caller's cards in every status; the profile
// view is the one that filters to active cards.
func (h *CardsHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	cards, err := h.cardService.List(ctx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]CardResponse, len(cards))
	for i, card := range cards {
		response[i] = CardResponse{
			ID:           card.ID,
			HolderName:   card.HolderName,
			MaskedNumber: card.MaskedNumber,
			ExpiryDate:   card.ExpiryDate,
			Network:      string(card.Network),
			Status:       string(card.Status),
		}
	}

	c.JSON(http.StatusOK, response)
}

// Deactivate PUT CardDeactivateRoute. A card referenced by an order still in
// process cannot be deactivated.
func (h *CardsHandler) Deactivate(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	cardID, ok := parseIDParam(c, "cardID")
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Identificador de tarjeta inválido."})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.cardService.Deactivate(ctx, currentUserID, cardID); err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatusJSON(http.StatusNotFound,
				gin.H{"error": "Tarjeta no encontrada, ya está inactiva o no pertenece al usuario."})
		case errors.Is(err, domain.ErrCardInUse):
			c.AbortWithStatusJSON(http.StatusBadRequest,
				gin.H{"error": "La tarjeta está asociada a un pedido en proceso y no se puede desactivar."})
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).
				SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tarjeta desactivada exitosamente."})
}
