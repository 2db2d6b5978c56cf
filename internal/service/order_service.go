package service

import (
	"context"
	"fmt"

	"github.com/IEVN1001-20001021/api-paso/internal/domain"
	"github.com/IEVN1001-20001021/api-paso/internal/repository/repoargs"
	"github.com/IEVN1001-20001021/api-paso/pkg/uow"
)

type OrderService struct {
	uow       uow.UOW
	orderRepo OrderRepository
}

func NewOrderService(u uow.UOW) (*OrderService, error) {
	orderRepo, err := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if err != nil {
		return nil, err
	}
	return &OrderService{
		uow:       u,
		orderRepo: orderRepo,
	}, nil
}

func (o *OrderService) Create(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error) {
	order, err := o.orderRepo.CreateOrder(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("creating order: %w", err)
	}
	return order, nil
}

// UpdateStatus overwrites the order state without a transition guard; the
// clients drive Processing to Aceptado/Rechazado themselves.
func (o *OrderService) UpdateStatus(ctx context.Context, orderID int64, status domain.OrderStatusType) error {
	if err := o.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}
	return nil
}

// MarkDelivered flips the delivered flag and increments the trips counter on
// the acting user's profile, both inside one transaction. Returns
// domain.ErrRecordNotFound for a missing or already delivered order.
func (o *OrderService) MarkDelivered(ctx context.Context, orderID, actingUserID int64) error {
	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		orderRepo, orderRepoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if orderRepoErr != nil {
			return orderRepoErr //nolint:wrapcheck
		}
		profileRepo, profileRepoErr := uow.GetAs[ProfileRepository](tx, uow.RepositoryName(repoargs.ProfileRepoName))
		if profileRepoErr != nil {
			return profileRepoErr //nolint:wrapcheck
		}

		if err := orderRepo.MarkDelivered(c, orderID); err != nil {
			return err //nolint:wrapcheck
		}
		return profileRepo.IncrementTrips(c, actingUserID) //nolint:wrapcheck
	})

	if txErr != nil {
		return fmt.Errorf("marking order %d delivered: %w", orderID, txErr)
	}
	return nil
}

// DismissNotification returns domain.ErrRecordNotFound when the order is
// absent or its notification is already dismissed.
func (o *OrderService) DismissNotification(ctx context.Context, orderID int64) error {
	if err := o.orderRepo.DismissNotification(ctx, orderID); err != nil {
		return fmt.Errorf("dismissing order notification: %w", err)
	}
	return nil
}

// PendingForTripOwner lists processing orders awaiting a decision from the
// driver who owns the trip.
func (o *OrderService) PendingForTripOwner(ctx context.Context, ownerID int64) ([]domain.Order, error) {
	orders, err := o.orderRepo.GetPendingByTripOwner(ctx, ownerID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return orders, nil
}

func (o *OrderService) AcceptedForUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	orders, err := o.orderRepo.GetByStatusAndUser(ctx, domain.OrderStatusAccepted, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return orders, nil
}

func (o *OrderService) RejectedForUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	orders, err := o.orderRepo.GetByStatusAndUser(ctx, domain.OrderStatusRejected, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return orders, nil
}

func (o *OrderService) InProgressForUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	orders, err := o.orderRepo.GetInProgressByUser(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return orders, nil
}

func (o *OrderService) InProgressForTripOwner(ctx context.Context, ownerID int64) ([]domain.Order, error) {
	orders, err := o.orderRepo.GetInProgressByTripOwner(ctx, ownerID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return orders, nil
}
