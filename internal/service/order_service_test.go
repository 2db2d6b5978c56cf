package service

import (
	"context"
	"testing"

	"github.com/IEVN1001-20001021/api-paso/internal/domain"
	"github.com/IEVN1001-20001021/api-paso/internal/repository/repoargs"
	"github.com/IEVN1001-20001021/api-paso/internal/service/mocks"
	"github.com/IEVN1001-20001021/api-paso/pkg/uow"
	uowmocks "github.com/IEVN1001-20001021/api-paso/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type OrderServiceTestSuite struct {
	suite.Suite
	mockUOW         *uowmocks.MockUOW
	mockTX          *uowmocks.MockTX
	mockOrderRepo   *mocks.MockOrderRepository
	mockProfileRepo *mocks.MockProfileRepository
	orderService    *OrderService
}

func TestOrderServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}

func (s *OrderServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockTX = uowmocks.NewMockTX(mockCtrl)
	s.mockOrderRepo = mocks.NewMockOrderRepository(mockCtrl)
	s.mockProfileRepo = mocks.NewMockProfileRepository(mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.OrderRepoName)).
		Return(s.mockOrderRepo, nil).AnyTimes()

	orderService, servErr := NewOrderService(s.mockUOW)
	s.Require().NoError(servErr)
	s.orderService = orderService
}

func (s *OrderServiceTestSuite) expectTx() {
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.OrderRepoName)).
		Return(s.mockOrderRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.ProfileRepoName)).
		Return(s.mockProfileRepo, nil).AnyTimes()

	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()
}

func (s *OrderServiceTestSuite) TestCreate() {
	args := repoargs.CreateOrder{
		UserID:  1,
		StoreID: 2,
		TripID:  3,
		CardID:  4,
		Details: "2x arrachera",
		Total:   decimal.NewFromFloat(350.50),
		Status:  domain.OrderStatusProcessing,
	}
	created := domain.Order{ID: 9, UserID: 1, Status: domain.OrderStatusProcessing}

	s.mockOrderRepo.EXPECT().
		CreateOrder(gomock.Any(), gomock.Eq(args)).
		Return(&created, nil)

	order, err := s.orderService.Create(s.T().Context(), args)
	s.Require().NoError(err)
	s.Equal(&created, order)
}

func (s *OrderServiceTestSuite) TestMarkDelivered() {
	const orderID int64 = 9
	const actingUserID int64 = 5

	s.expectTx()

	s.mockOrderRepo.EXPECT().
		MarkDelivered(gomock.Any(), orderID).
		Return(nil)
	s.mockProfileRepo.EXPECT().
		IncrementTrips(gomock.Any(), actingUserID).
		Return(nil)

	err := s.orderService.MarkDelivered(s.T().Context(), orderID, actingUserID)
	s.Require().NoError(err)
}

func (s *OrderServiceTestSuite) TestMarkDeliveredAlreadyDelivered() {
	const orderID int64 = 9

	s.expectTx()

	s.mockOrderRepo.EXPECT().
		MarkDelivered(gomock.Any(), orderID).
		Return(domain.ErrRecordNotFound)

	err := s.orderService.MarkDelivered(s.T().Context(), orderID, 5)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *OrderServiceTestSuite) TestStatusListings() {
	const userID int64 = 5
	accepted := []domain.Order{{ID: 1, Status: domain.OrderStatusAccepted}}
	rejected := []domain.Order{{ID: 2, Status: domain.OrderStatusRejected}}

	s.mockOrderRepo.EXPECT().
		GetByStatusAndUser(gomock.Any(), domain.OrderStatusAccepted, userID).
		Return(accepted, nil)
	s.mockOrderRepo.EXPECT().
		GetByStatusAndUser(gomock.Any(), domain.OrderStatusRejected, userID).
		Return(rejected, nil)

	gotAccepted, err := s.orderService.AcceptedForUser(s.T().Context(), userID)
	s.Require().NoError(err)
	s.Equal(accepted, gotAccepted)

	gotRejected, err := s.orderService.RejectedForUser(s.T().Context(), userID)
	s.Require().NoError(err)
	s.Equal(rejected, gotRejected)
}

func (s *OrderServiceTestSuite) TestDismissNotification() {
	s.mockOrderRepo.EXPECT().
		DismissNotification(gomock.Any(), int64(1)).
		Return(nil)
	s.mockOrderRepo.EXPECT().
		DismissNotification(gomock.Any(), int64(2)).
		Return(domain.ErrRecordNotFound)

	s.Require().NoError(s.orderService.DismissNotification(s.T().Context(), 1))
	s.Require().ErrorIs(s.orderService.DismissNotification(s.T().Context(), 2), domain.ErrRecordNotFound)
}
