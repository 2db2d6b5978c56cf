package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/IEVN1001-20001021/api-paso/internal/domain"
	"github.com/IEVN1001-20001021/api-paso/internal/logger"
	"github.com/IEVN1001-20001021/api-paso/internal/repository/repoargs"
	"github.com/IEVN1001-20001021/api-paso/internal/service/tokens"
	"github.com/IEVN1001-20001021/api-paso/internal/transport/api/mocks"
	"github.com/IEVN1001-20001021/api-paso/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type OrdersHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockOrderService *mocks.MockOrderServicer
	jwtSecret        []byte
	jwtToken         string
}

func TestOrdersHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrdersHandlerTestSuite))
}

func (s *OrdersHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())

	s.mockOrderService = mocks.NewMockOrderServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	jwtToken, jwtErr := tokens.GenerateUserJWT(1, time.Hour, s.jwtSecret)
	s.Require().NoError(jwtErr)
	s.jwtToken = jwtToken

	s.router = New(RouterArgs{
		Logger:       logger.New(os.Stdout),
		OrderService: s.mockOrderService,
		JWTSecretKey: s.jwtSecret,
	})
}

func (s *OrdersHandlerTestSuite) authHeader() func(*testutils.RequestOptions) {
	return testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", s.jwtToken))
}

func (s *OrdersHandlerTestSuite) TestCreate() {
	wantArgs := repoargs.CreateOrder{
		UserID:  5,
		StoreID: 2,
		TripID:  3,
		CardID:  4,
		Details: "2x Cajeta de Celaya",
		Total:   decimal.NewFromFloat(350.50),
		Status:  domain.OrderStatusProcessing,
	}

	s.mockOrderService.EXPECT().
		Create(gomock.Any(), gomock.Eq(wantArgs)).
		Return(&domain.Order{ID: 1}, nil)

	body, marshalErr := json.Marshal(map[string]any{
		"userId":  5,
		"storeId": 2,
		"tripId":  3,
		"cardId":  4,
		"total":   350.50,
		"details": "2x Cajeta de Celaya",
		"state":   "En Proceso",
	})
	s.Require().NoError(marshalErr)

	cases := []struct {
		name       string
		body       []byte
		authorized bool
		wantStatus int
	}{
		{name: "ok", body: body, authorized: true, wantStatus: http.StatusCreated},
		{name: "missing fields", body: []byte(`{"userId":5}`), authorized: true, wantStatus: http.StatusBadRequest},
		{name: "no token", body: body, wantStatus: http.StatusForbidden},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			var reqOpts []func(*testutils.RequestOptions)
			reqOpts = append(reqOpts, testutils.WithHeader("Content-Type", "application/json"))
			if t.authorized {
				reqOpts = append(reqOpts, s.authHeader())
			}

			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    OrderSendRoute,
				Body:   bytes.NewReader(t.body),
			}, reqOpts...)
			s.Require().NoError(err)

			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *OrdersHandlerTestSuite) TestPending() {
	orders := []domain.Order{
		{
			ID:           1,
			CreatedAt:    time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC),
			UserID:       5,
			StoreID:      2,
			TripID:       3,
			CardID:       4,
			Details:      "2x Cajeta de Celaya",
			Total:        decimal.NewFromFloat(350.50),
			Status:       domain.OrderStatusProcessing,
			Notification: domain.NotificationActive,
		},
	}

	s.mockOrderService.EXPECT().
		PendingForTripOwner(gomock.Any(), int64(1)).
		Return(orders, nil)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    OrdersPendingRoute,
	}, s.authHeader())
	s.Require().NoError(err)

	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	s.Equal(http.StatusOK, res.StatusCode)

	var payload struct {
		Orders []OrderResponse `json:"orders"`
	}
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&payload))
	s.Require().Len(payload.Orders, 1)
	s.Equal(int64(5), payload.Orders[0].UserID)
	s.Equal("En Proceso", payload.Orders[0].Status)
	s.InDelta(350.50, payload.Orders[0].Total, 0.001)
}

func (s *OrdersHandlerTestSuite) TestUserListings() {
	s.mockOrderService.EXPECT().
		AcceptedForUser(gomock.Any(), int64(1)).
		Return([]domain.Order{{ID: 1, Status: domain.OrderStatusAccepted}}, nil)
	s.mockOrderService.EXPECT().
		RejectedForUser(gomock.Any(), int64(1)).
		Return([]domain.Order{{ID: 2, Status: domain.OrderStatusRejected}}, nil)
	s.mockOrderService.EXPECT().
		InProgressForUser(gomock.Any(), int64(1)).
		Return([]domain.Order{}, nil)
	s.mockOrderService.EXPECT().
		InProgressForTripOwner(gomock.Any(), int64(1)).
		Return([]domain.Order{{ID: 3, Status: domain.OrderStatusAccepted}}, nil)

	cases := []struct {
		name       string
		url        string
		wantOrders int
	}{
		{name: "accepted", url: OrdersAcceptedRoute, wantOrders: 1},
		{name: "rejected", url: OrdersRejectedRoute, wantOrders: 1},
		{name: "in progress", url: OrdersInProgressRoute, wantOrders: 0},
		{name: "trips in progress", url: TripsInProgressRoute, wantOrders: 1},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    t.url,
			}, s.authHeader())
			s.Require().NoError(err)

			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(http.StatusOK, res.StatusCode)

			var payload struct {
				Orders []OrderResponse `json:"orders"`
			}
			s.Require().NoError(json.NewDecoder(res.Body).Decode(&payload))
			s.Len(payload.Orders, t.wantOrders)
		})
	}
}

func (s *OrdersHandlerTestSuite) TestUpdateState() {
	s.mockOrderService.EXPECT().
		UpdateStatus(gomock.Any(), int64(1), domain.OrderStatusAccepted).
		Return(nil)
	s.mockOrderService.EXPECT().
		UpdateStatus(gomock.Any(), int64(404), domain.OrderStatusAccepted).
		Return(fmt.Errorf("updating status of order 404: %w", domain.ErrRecordNotFound))

	body := []byte(`{"state":"Aceptado"}`)

	cases := []struct {
		name       string
		url        string
		body       []byte
		wantStatus int
	}{
		{name: "ok", url: "/pedidos/1/estado", body: body, wantStatus: http.StatusOK},
		{name: "not found", url: "/pedidos/404/estado", body: body, wantStatus: http.StatusNotFound},
		{name: "missing state", url: "/pedidos/1/estado", body: []byte(`{}`), wantStatus: http.StatusBadRequest},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPut,
				URL:    t.url,
				Body:   bytes.NewReader(t.body),
			}, s.authHeader(), testutils.WithHeader("Content-Type", "application/json"))
			s.Require().NoError(err)

			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *OrdersHandlerTestSuite) TestMarkDelivered() {
	// The acting user from the token is the one whose trip counter grows.
	s.mockOrderService.EXPECT().
		MarkDelivered(gomock.Any(), int64(1), int64(1)).
		Return(nil)
	s.mockOrderService.EXPECT().
		MarkDelivered(gomock.Any(), int64(404), int64(1)).
		Return(fmt.Errorf("marking order 404 delivered: %w", domain.ErrRecordNotFound))

	cases := []struct {
		name       string
		url        string
		wantStatus int
	}{
		{name: "ok", url: "/pedidos/1/entregado", wantStatus: http.StatusOK},
		{name: "not found", url: "/pedidos/404/entregado", wantStatus: http.StatusNotFound},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPut,
				URL:    t.url,
			}, s.authHeader())
			s.Require().NoError(err)

			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *OrdersHandlerTestSuite) TestDismissNotification() {
	s.mockOrderService.EXPECT().
		DismissNotification(gomock.Any(), int64(1)).
		Return(nil)
	s.mockOrderService.EXPECT().
		DismissNotification(gomock.Any(), int64(404)).
		Return(fmt.Errorf("dismissing notification of order 404: %w", domain.ErrRecordNotFound))

	cases := []struct {
		name       string
		url        string
		wantStatus int
	}{
		{name: "ok", url: "/notificaciones/descartar/1", wantStatus: http.StatusOK},
		{name: "already dismissed", url: "/notificaciones/descartar/404", wantStatus: http.StatusNotFound},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPut,
				URL:    t.url,
			}, s.authHeader())
			s.Require().NoError(err)

			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}
