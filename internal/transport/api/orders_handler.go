package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/IEVN1001-20001021/api-paso/internal/domain"
	"github.com/IEVN1001-20001021/api-paso/internal/repository/repoargs"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type OrdersHandler struct {
	orderService OrderServicer
}

func NewOrdersHandler(orderService OrderServicer) *OrdersHandler {
	return &OrdersHandler{
		orderService: orderService,
	}
}

type OrderCreateParams struct {
	UserID  int64           `binding:"required" json:"userId"`
	StoreID int64           `binding:"required" json:"storeId"`
	TripID  int64           `binding:"required" json:"tripId"`
	CardID  int64           `binding:"required" json:"cardId"`
	Total   decimal.Decimal `binding:"required" json:"total"`
	Details string          `binding:"required" json:"details"`
	State   string          `binding:"required" json:"state"`
}

// Create POST OrderSendRoute.
func (h *OrdersHandler) Create(c *gin.Context) {
	var params OrderCreateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	_, createErr := h.orderService.Create(ctx, repoargs.CreateOrder{
		UserID:  params.UserID,
		StoreID: params.StoreID,
		TripID:  params.TripID,
		CardID:  params.CardID,
		Details: params.Details,
		Total:   params.Total,
		Status:  domain.OrderStatusType(params.State),
	})
	if createErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, createErr).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Pedido enviado exitosamente."})
}

type OrderResponse struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"usuario_id"`
	StoreID      int64     `json:"tienda_id"`
	TripID       int64     `json:"viaje_id"`
	CardID       int64     `json:"tarjeta_id"`
	Details      string    `json:"detalles"`
	Total        float64   `json:"total"`
	Status       string    `json:"estado"`
	Delivered    bool      `json:"entregado"`
	Notification string    `json:"notification"`
	CreatedAt    time.Time `json:"fecha_pedido"`
}

func orderResponses(orders []domain.Order) []OrderResponse {
	response := make([]OrderResponse, len(orders))
	for i, order := range orders {
		response[i] = OrderResponse{
			ID:           order.ID,
			UserID:       order.UserID,
			StoreID:      order.StoreID,
			TripID:       order.TripID,
			CardID:       order.CardID,
			Details:      order.Details,
			Total:        order.Total.InexactFloat64(),
			Status:       string(order.Status),
			Delivered:    order.Delivered,
			Notification: string(order.Notification),
			CreatedAt:    order.CreatedAt,
		}
	}
	return response
}

func (h *OrdersHandler) listOrders(
	c *gin.Context,
	fetch func(ctx context.Context, userID int64) ([]domain.Order, error),
) {
	currentUserID := getUserIDFromContext(c)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	orders, err := fetch(ctx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orderResponses(orders)})
}

// Pending GET OrdersPendingRoute. Processing orders on the caller's trips
// whose notification is still active; the caller here is the driver.
func (h *OrdersHandler) Pending(c *gin.Context) {
	h.listOrders(c, h.orderService.PendingForTripOwner)
}

// Accepted GET OrdersAcceptedRoute. Accepted orders placed by the caller.
func (h *OrdersHandler) Accepted(c *gin.Context) {
	h.listOrders(c, h.orderService.AcceptedForUser)
}

// Rejected GET OrdersRejectedRoute. Rejected orders placed by the caller.
func (h *OrdersHandler) Rejected(c *gin.Context) {
	h.listOrders(c, h.orderService.RejectedForUser)
}

// InProgress GET OrdersInProgressRoute. Accepted undelivered orders placed by
// the caller.
func (h *OrdersHandler) InProgress(c *gin.Context) {
	h.listOrders(c, h.orderService.InProgressForUser)
}

// TripsInProgress GET TripsInProgressRoute. Accepted undelivered orders on
// the caller's trips; the driver-side twin of InProgress.
func (h *OrdersHandler) TripsInProgress(c *gin.Context) {
	h.listOrders(c, h.orderService.InProgressForTripOwner)
}

type OrderStateParams struct {
	State string `binding:"required" json:"state"`
}

// UpdateState PUT OrderStateRoute. The state is overwritten as sent; clients
// drive the processing/accepted/rejected transitions.
func (h *OrdersHandler) UpdateState(c *gin.Context) {
	orderID, ok := parseIDParam(c, "orderID")
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Identificador de pedido inválido."})
		return
	}

	var params OrderStateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.orderService.UpdateStatus(ctx, orderID, domain.OrderStatusType(params.State)); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "No se encontró el pedido"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Estado actualizado correctamente"})
}

// MarkDelivered PUT OrderDeliveredRoute. Flips the delivered flag and bumps
// the caller's trips counter in one transaction.
func (h *OrdersHandler) MarkDelivered(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	orderID, ok := parseIDParam(c, "orderID")
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Identificador de pedido inválido."})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.orderService.MarkDelivered(ctx, orderID, currentUserID); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound,
				gin.H{"error": "No se encontró el pedido o ya estaba marcado como entregado"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pedido marcado como entregado con éxito"})
}

// DismissNotification PUT NotificationDismissRoute.
func (h *OrdersHandler) DismissNotification(c *gin.Context) {
	orderID, ok := parseIDParam(c, "orderID")
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Identificador de pedido inválido."})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.orderService.DismissNotification(ctx, orderID); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound,
				gin.H{"error": "No se encontró el pedido o ya estaba desactivado"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notificación descartada con éxito"})
}
