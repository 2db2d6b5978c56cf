package pgrepo

import (
	"context"

	"github.com/IEVN1001-20001021/api-paso/internal/domain"
	"github.com/IEVN1001-20001021/api-paso/internal/repository/repoargs"
	"github.com/IEVN1001-20001021/api-paso/pkg/uow"
	"github.com/jackc/pgx/v5"
)

type OrderRepository struct {
	db uow.DBTX
}

func NewOrderRepository(db uow.DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

const orderColumns = `id, created_at, user_id, store_id, trip_id, card_id,
	details, total, status, delivered, notification`

func (o *OrderRepository) CreateOrder(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error) {
	row := o.db.QueryRow(ctx, `
		INSERT INTO orders (user_id, store_id, trip_id, card_id, details, total, status, delivered, notification)
		VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE, $8)
		RETURNING `+orderColumns,
		args.UserID, args.StoreID, args.TripID, args.CardID, args.Details, args.Total,
		args.Status, domain.NotificationActive,
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "creating order for user %d", args.UserID)
	}
	return order, nil
}

// UpdateStatus overwrites the order state. There is no transition table: any
// state can replace any other.
func (o *OrderRepository) UpdateStatus(ctx context.Context, orderID int64, status domain.OrderStatusType) error {
	tag, err := o.db.Exec(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, status, orderID)
	if err != nil {
		return convertErr(err, "updating status of order %d", orderID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "updating status of order %d", orderID)
	}
	return nil
}

// MarkDelivered flips the delivered flag. An already delivered or missing
// order matches no rows and surfaces as domain.ErrRecordNotFound.
func (o *OrderRepository) MarkDelivered(ctx context.Context, orderID int64) error {
	tag, err := o.db.Exec(ctx, `
		UPDATE orders SET delivered = TRUE WHERE id = $1 AND delivered = FALSE`, orderID)
	if err != nil {
		return convertErr(err, "marking order %d delivered", orderID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "marking order %d delivered", orderID)
	}
	return nil
}

// DismissNotification behaves like MarkDelivered: dismissing twice is a
// not-found condition.
func (o *OrderRepository) DismissNotification(ctx context.Context, orderID int64) error {
	tag, err := o.db.Exec(ctx, `
		UPDATE orders SET notification = $1 WHERE id = $2 AND notification = $3`,
		domain.NotificationDismissed, orderID, domain.NotificationActive)
	if err != nil {
		return convertErr(err, "dismissing notification of order %d", orderID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "dismissing notification of order %d", orderID)
	}
	return nil
}

// GetPendingByTripOwner lists processing orders with an active notification
// placed against trips owned by ownerID.
func (o *OrderRepository) GetPendingByTripOwner(ctx context.Context, ownerID int64) ([]domain.Order, error) {
	return o.queryOrders(ctx, `
		SELECT `+orderPrefixedColumns+`
		FROM orders o
		INNER JOIN trips t ON o.trip_id = t.id
		WHERE o.status = $1 AND o.notification = $2 AND t.user_id = $3`,
		domain.OrderStatusProcessing, domain.NotificationActive, ownerID)
}

// GetByStatusAndUser lists orders in the given state with an active
// notification, scoped to the orderer.
func (o *OrderRepository) GetByStatusAndUser(
	ctx context.Context,
	status domain.OrderStatusType,
	userID int64,
) ([]domain.Order, error) {
	return o.queryOrders(ctx, `
		SELECT `+orderPrefixedColumns+`
		FROM orders o
		WHERE o.status = $1 AND o.notification = $2 AND o.user_id = $3`,
		status, domain.NotificationActive, userID)
}

// GetInProgressByUser lists accepted, undelivered orders placed by the user.
func (o *OrderRepository) GetInProgressByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	return o.queryOrders(ctx, `
		SELECT `+orderPrefixedColumns+`
		FROM orders o
		WHERE o.delivered = FALSE AND o.status = $1 AND o.user_id = $2`,
		domain.OrderStatusAccepted, userID)
}

// GetInProgressByTripOwner lists accepted, undelivered orders against trips
// owned by ownerID.
func (o *OrderRepository) GetInProgressByTripOwner(ctx context.Context, ownerID int64) ([]domain.Order, error) {
	return o.queryOrders(ctx, `
		SELECT `+orderPrefixedColumns+`
		FROM orders o
		INNER JOIN trips t ON o.trip_id = t.id
		WHERE o.delivered = FALSE AND o.status = $1 AND t.user_id = $2`,
		domain.OrderStatusAccepted, ownerID)
}

// CountProcessingByCardID backs the card deactivation guard.
func (o *OrderRepository) CountProcessingByCardID(ctx context.Context, cardID int64) (int, error) {
	var count int
	err := o.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM orders WHERE card_id = $1 AND status = $2`,
		cardID, domain.OrderStatusProcessing).Scan(&count)
	if err != nil {
		return 0, convertErr(err, "counting processing orders by card %d", cardID)
	}
	return count, nil
}

func (o *OrderRepository) CountByUserID(ctx context.Context, userID int64) (int, error) {
	var count int
	err := o.db.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, convertErr(err, "counting orders by user %d", userID)
	}
	return count, nil
}

const orderPrefixedColumns = `o.id, o.created_at, o.user_id, o.store_id, o.trip_id, o.card_id,
	o.details, o.total, o.status, o.delivered, o.notification`

func (o *OrderRepository) queryOrders(ctx context.Context, query string, params ...any) ([]domain.Order, error) {
	rows, err := o.db.Query(ctx, query, params...)
	if err != nil {
		return nil, convertErr(err, "querying orders")
	}
	orders, scanErr := collectOrders(rows)
	if scanErr != nil {
		return nil, convertErr(scanErr, "querying orders")
	}
	return orders, nil
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var order domain.Order
	err := row.Scan(
		&order.ID, &order.CreatedAt, &order.UserID, &order.StoreID, &order.TripID, &order.CardID,
		&order.Details, &order.Total, &order.Status, &order.Delivered, &order.Notification,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func collectOrders(rows pgx.Rows) ([]domain.Order, error) {
	defer rows.Close()
	orders := make([]domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}
