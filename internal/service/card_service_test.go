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
	"github.com/stretchr/testify/suite"
)

type CardServiceTestSuite struct {
	suite.Suite
	mockUOW       *uowmocks.MockUOW
	mockTX        *uowmocks.MockTX
	mockCardRepo  *mocks.MockCardRepository
	mockOrderRepo *mocks.MockOrderRepository
	cardService   *CardService
}

func TestCardServiceSuite(t *testing.T) {
	suite.Run(t, new(CardServiceTestSuite))
}

func (s *CardServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockTX = uowmocks.NewMockTX(mockCtrl)
	s.mockCardRepo = mocks.NewMockCardRepository(mockCtrl)
	s.mockOrderRepo = mocks.NewMockOrderRepository(mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.CardRepoName)).
		Return(s.mockCardRepo, nil).AnyTimes()

	cardService, servErr := NewCardService(s.mockUOW)
	s.Require().NoError(servErr)
	s.cardService = cardService
}

func (s *CardServiceTestSuite) expectTx() {
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.CardRepoName)).
		Return(s.mockCardRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.OrderRepoName)).
		Return(s.mockOrderRepo, nil).AnyTimes()

	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()
}

func (s *CardServiceTestSuite) TestAddMasksNumber() {
	const userID int64 = 3

	args := AddCardArgs{
		HolderName: "JUAN PEREZ",
		Number:     "4111111111111111",
		ExpiryDate: "12/27",
	}

	s.mockCardRepo.EXPECT().
		CreateCard(gomock.Any(), gomock.Eq(repoargs.CreateCard{
			UserID:       userID,
			HolderName:   args.HolderName,
			MaskedNumber: "**** **** **** 1111",
			ExpiryDate:   args.ExpiryDate,
			Network:      domain.CardNetworkVisa,
		})).
		Return(&domain.Card{ID: 1, UserID: userID}, nil)

	card, err := s.cardService.Add(s.T().Context(), userID, args)
	s.Require().NoError(err)
	s.NotNil(card)
}

func (s *CardServiceTestSuite) TestDeactivate() {
	const userID int64 = 3

	s.expectTx()

	// Active card without processing orders deactivates.
	s.mockCardRepo.EXPECT().
		FindActiveByIDAndUserID(gomock.Any(), int64(1), userID).
		Return(&domain.Card{ID: 1, UserID: userID, Status: domain.CardStatusActive}, nil)
	s.mockOrderRepo.EXPECT().
		CountProcessingByCardID(gomock.Any(), int64(1)).
		Return(0, nil)
	s.mockCardRepo.EXPECT().
		Deactivate(gomock.Any(), int64(1)).
		Return(nil)

	// Card referenced by a processing order is kept active.
	s.mockCardRepo.EXPECT().
		FindActiveByIDAndUserID(gomock.Any(), int64(2), userID).
		Return(&domain.Card{ID: 2, UserID: userID, Status: domain.CardStatusActive}, nil)
	s.mockOrderRepo.EXPECT().
		CountProcessingByCardID(gomock.Any(), int64(2)).
		Return(1, nil)

	// Unknown, inactive or foreign card.
	s.mockCardRepo.EXPECT().
		FindActiveByIDAndUserID(gomock.Any(), int64(3), userID).
		Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name    string
		cardID  int64
		wantErr error
	}{
		{name: "ok", cardID: 1},
		{name: "in use", cardID: 2, wantErr: domain.ErrCardInUse},
		{name: "not found", cardID: 3, wantErr: domain.ErrRecordNotFound},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			err := s.cardService.Deactivate(s.T().Context(), userID, t.cardID)
			s.Require().ErrorIs(err, t.wantErr)
		})
	}
}

func (s *CardServiceTestSuite) TestMaskCardNumber() {
	cases := []struct {
		name   string
		number string
		want   string
	}{
		{name: "full pan", number: "4111111111111111", want: "**** **** **** 1111"},
		{name: "short value", number: "123", want: "**** **** **** 123"},
		{name: "exactly four", number: "1234", want: "**** **** **** 1234"},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.Equal(t.want, MaskCardNumber(t.number))
		})
	}
}

func (s *CardServiceTestSuite) TestCardNetworkFor() {
	cases := []struct {
		name   string
		number string
		want   domain.CardNetwork
	}{
		{name: "visa", number: "4111111111111111", want: domain.CardNetworkVisa},
		{name: "mastercard", number: "5555555555554444", want: domain.CardNetworkMasterCard},
		{name: "unknown", number: "371449635398431", want: domain.CardNetworkUnknown},
		{name: "empty", number: "", want: domain.CardNetworkUnknown},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.Equal(t.want, CardNetworkFor(t.number))
		})
	}
}
