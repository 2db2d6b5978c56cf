package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/IEVN1001-20001021/api-paso/internal/domain"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService ProfileServicer
}

func NewProfileHandler(profileService ProfileServicer) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

type ProfileCardResponse struct {
	ID           int64  `json:"id"`
	HolderName   string `json:"nombre_en_tarjeta"`
	MaskedNumber string `json:"numero_enmascarado"`
	ExpiryDate   string `json:"fecha_expiracion"`
	Network      string `json:"tipo_tarjeta"`
}

type ProfileResponse struct {
	UserID     int64                 `json:"user_id"`
	Username   string                `json:"username"`
	Bio        string                `json:"bio"`
	TripCount  int                   `json:"travelCount"`
	OrderCount int                   `json:"orderCount"`
	ImageURL   string                `json:"image_url"`
	Cards      []ProfileCardResponse `json:"cards"`
}

// Show GET ProfileRoute. Trip and order counts are computed live from the
// trips and orders tables; only active cards are listed.
func (h *ProfileHandler) Show(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	view, err := h.profileService.Show(ctx, currentUserID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Perfil no encontrado."})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	cards := make([]ProfileCardResponse, len(view.Cards))
	for i, card := range view.Cards {
		cards[i] = ProfileCardResponse{
			ID:           card.ID,
			HolderName:   card.HolderName,
			MaskedNumber: card.MaskedNumber,
			ExpiryDate:   card.ExpiryDate,
			Network:      string(card.Network),
		}
	}

	c.JSON(http.StatusOK, ProfileResponse{
		UserID:     currentUserID,
		Username:   view.Profile.Username,
		Bio:        view.Profile.Bio,
		TripCount:  view.TripCount,
		OrderCount: view.OrderCount,
		ImageURL:   view.Profile.ImageURL,
		Cards:      cards,
	})
}

type UpdateImageParams struct {
	ImageURL string `binding:"required,url" json:"imageUrl"`
}

// UpdateImage PUT ProfileImageRoute.
func (h *ProfileHandler) UpdateImage(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params UpdateImageParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Falta la URL de la nueva imagen."})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.profileService.UpdateImage(ctx, currentUserID, params.ImageURL); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Perfil no encontrado."})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Imagen actualizada exitosamente."})
}
