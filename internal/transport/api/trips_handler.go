package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/IEVN1001-20001021/api-paso/internal/domain"
	"github.com/IEVN1001-20001021/api-paso/internal/repository/repoargs"
	"github.com/gin-gonic/gin"
)

type TripsHandler struct {
	tripService TripServicer
}

func NewTripsHandler(tripService TripServicer) *TripsHandler {
	return &TripsHandler{
		tripService: tripService,
	}
}

type TripCreateParams struct {
	DepartureCity  string `binding:"required,max=100" json:"departureCity"`
	Destination    string `binding:"required,max=100" json:"destination"`
	ArrivalDate    string `binding:"required"         json:"arrivalDate"`
	ReturnDate     string `binding:"required"         json:"returnDate"`
	ColdContainers *int   `binding:"required,min=0"   json:"coldContainers"`
	HotContainers  *int   `binding:"required,min=0"   json:"hotContainers"`
	Comments       string `json:"comments"`
}

// Create POST TripRegisterRoute. The trip is always owned by the token
// holder.
func (h *TripsHandler) Create(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params TripCreateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	arrivalDate, arrivalErr := time.Parse(dateLayout, params.ArrivalDate)
	returnDate, returnErr := time.Parse(dateLayout, params.ReturnDate)
	if arrivalErr != nil || returnErr != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Fechas de viaje inválidas."})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	_, createErr := h.tripService.Create(ctx, repoargs.CreateTrip{
		UserID:         currentUserID,
		DepartureCity:  params.DepartureCity,
		Destination:    params.Destination,
		ArrivalDate:    arrivalDate,
		ReturnDate:     returnDate,
		ColdContainers: *params.ColdContainers,
		HotContainers:  *params.HotContainers,
		Comments:       params.Comments,
	})
	if createErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, createErr).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Viaje registrado exitosamente."})
}

type TripResponse struct {
	ID            int64  `json:"id"`
	DepartureCity string `json:"ciudad_salida"`
	Destination   string `json:"ciudad_destino"`
	ArrivalDate   string `json:"fecha_salida"`
	ReturnDate    string `json:"fecha_regreso"`
}

func tripResponses(trips []domain.Trip) []TripResponse {
	response := make([]TripResponse, len(trips))
	for i, trip := range trips {
		response[i] = TripResponse{
			ID:            trip.ID,
			DepartureCity: trip.DepartureCity,
			Destination:   trip.Destination,
			ArrivalDate:   trip.ArrivalDate.Format(dateLayout),
			ReturnDate:    trip.ReturnDate.Format(dateLayout),
		}
	}
	return response
}

// Recent GET TripsRecentRoute. Latest trips by arrival date.
func (h *TripsHandler) Recent(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	trips, err := h.tripService.Recent(ctx, 0)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trips": tripResponses(trips)})
}

// Index GET TripsRoute. Optional destination and arrival_date query filters,
// combined conjunctively.
func (h *TripsHandler) Index(c *gin.Context) {
	filter := repoargs.TripFilter{
		Destination: c.Query("destination"),
	}
	if arrivalStr := c.Query("arrival_date"); arrivalStr != "" {
		arrivalDate, parseErr := time.Parse(dateLayout, arrivalStr)
		if parseErr != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Fecha de llegada inválida."})
			return
		}
		filter.ArrivalDate = &arrivalDate
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	trips, err := h.tripService.Filtered(ctx, filter)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trips": tripResponses(trips)})
}

type TripDriverResponse struct {
	Name        string  `json:"nombre"`
	Trips       int     `json:"viajes_realizados"`
	Rating      float64 `json:"calificacion"`
	RatingCount int     `json:"cantidad_calificaciones"`
	ImageURL    string  `json:"imagen"`
}

type TripDetailResponse struct {
	ID             int64              `json:"id"`
	DepartureCity  string             `json:"ciudad_salida"`
	Destination    string             `json:"ciudad_destino"`
	ArrivalDate    string             `json:"fecha_salida"`
	ReturnDate     string             `json:"fecha_regreso"`
	Comments       string             `json:"comentarios"`
	HotContainers  any                `json:"contenedor_caliente"`
	ColdContainers any                `json:"contenedor_frio"`
	Driver         TripDriverResponse `json:"conductor"`
}

// containerValue keeps the historical wire quirk: a zero count is rendered as
// a placeholder string instead of a number.
func containerValue(count int) any {
	if count == 0 {
		return "No disponible"
	}
	return count
}

// Detail GET TripDetailRoute. Trip joined with its driver profile.
func (h *TripsHandler) Detail(c *gin.Context) {
	tripID, ok := parseIDParam(c, "tripID")
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Identificador de viaje inválido."})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	detail, err := h.tripService.Detail(ctx, tripID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Viaje no encontrado."})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	comments := detail.Comments
	if comments == "" {
		comments = "No hay comentarios disponibles."
	}

	c.JSON(http.StatusOK, TripDetailResponse{
		ID:             detail.ID,
		DepartureCity:  detail.DepartureCity,
		Destination:    detail.Destination,
		ArrivalDate:    detail.ArrivalDate.Format(dateLayout),
		ReturnDate:     detail.ReturnDate.Format(dateLayout),
		Comments:       comments,
		HotContainers:  containerValue(detail.HotContainers),
		ColdContainers: containerValue(detail.ColdContainers),
		Driver: TripDriverResponse{
			Name:        detail.DriverName,
			Trips:       detail.DriverTrips,
			Rating:      detail.DriverRating,
			RatingCount: detail.DriverRatings,
			ImageURL:    detail.DriverImageURL,
		},
	})
}

// Owner GET TripOwnerRoute.
func (h *TripsHandler) Owner(c *gin.Context) {
	tripID, ok := parseIDParam(c, "tripID")
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Identificador de viaje inválido."})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	ownerID, err := h.tripService.OwnerID(ctx, tripID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Viaje no encontrado"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"usuario_id": ownerID})
}

type RateDriverParams struct {
	TripID int64   `binding:"required"               json:"tripId"`
	Rating float64 `binding:"required,min=1,max=5"   json:"rating"`
}

// RateDriver POST RateDriverRoute. Folds one rating into the driver's running
// average.
func (h *TripsHandler) RateDriver(c *gin.Context) {
	var params RateDriverParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.tripService.RateDriver(ctx, params.TripID, params.Rating); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Viaje no encontrado."})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Calificación actualizada correctamente."})
}
