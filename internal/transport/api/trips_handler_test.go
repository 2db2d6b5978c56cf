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
	"github.com/stretchr/testify/suite"
)

type TripsHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockTripService *mocks.MockTripServicer
	jwtSecret       []byte
	jwtToken        string
}

func TestTripsHandlerSuite(t *testing.T) {
	suite.Run(t, new(TripsHandlerTestSuite))
}

func (s *TripsHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())

	s.mockTripService = mocks.NewMockTripServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	jwtToken, jwtErr := tokens.GenerateUserJWT(1, time.Hour, s.jwtSecret)
	s.Require().NoError(jwtErr)
	s.jwtToken = jwtToken

	s.router = New(RouterArgs{
		Logger:       logger.New(os.Stdout),
		TripService:  s.mockTripService,
		JWTSecretKey: s.jwtSecret,
	})
}

func (s *TripsHandlerTestSuite) authHeader() func(*testutils.RequestOptions) {
	return testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", s.jwtToken))
}

func (s *TripsHandlerTestSuite) TestCreate() {
	wantArgs := repoargs.CreateTrip{
		UserID:         1,
		DepartureCity:  "Monterrey",
		Destination:    "Saltillo",
		ArrivalDate:    time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		ReturnDate:     time.Date(2025, 8, 3, 0, 0, 0, 0, time.UTC),
		ColdContainers: 2,
		HotContainers:  0,
		Comments:       "salida temprano",
	}

	s.mockTripService.EXPECT().
		Create(gomock.Any(), gomock.Eq(wantArgs)).
		Return(&domain.Trip{ID: 1}, nil)

	body, marshalErr := json.Marshal(map[string]any{
		"departureCity":  "Monterrey",
		"destination":    "Saltillo",
		"arrivalDate":    "2025-08-01",
		"returnDate":     "2025-08-03",
		"coldContainers": 2,
		"hotContainers":  0,
		"comments":       "salida temprano",
	})
	s.Require().NoError(marshalErr)

	cases := []struct {
		name       string
		body       []byte
		authorized bool
		wantStatus int
	}{
		{name: "ok", body: body, authorized: true, wantStatus: http.StatusCreated},
		{name: "missing fields", body: []byte(`{"destination":"Saltillo"}`), authorized: true, wantStatus: http.StatusBadRequest},
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
				URL:    TripRegisterRoute,
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

func (s *TripsHandlerTestSuite) TestRecent() {
	trips := []domain.Trip{
		{
			ID:            1,
			DepartureCity: "Monterrey",
			Destination:   "Saltillo",
			ArrivalDate:   time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
			ReturnDate:    time.Date(2025, 8, 3, 0, 0, 0, 0, time.UTC),
		},
	}

	s.mockTripService.EXPECT().
		Recent(gomock.Any(), uint(0)).
		Return(trips, nil)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    TripsRecentRoute,
	})
	s.Require().NoError(err)

	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	s.Equal(http.StatusOK, res.StatusCode)

	var payload struct {
		Trips []TripResponse `json:"trips"`
	}
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&payload))
	s.Require().Len(payload.Trips, 1)
	s.Equal("2025-08-01", payload.Trips[0].ArrivalDate)
	s.Equal("Saltillo", payload.Trips[0].Destination)
}

func (s *TripsHandlerTestSuite) TestIndex() {
	arrivalDate := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	s.mockTripService.EXPECT().
		Filtered(gomock.Any(), gomock.Eq(repoargs.TripFilter{
			Destination: "Saltillo",
			ArrivalDate: &arrivalDate,
		})).
		Return([]domain.Trip{{ID: 1, Destination: "Saltillo", ArrivalDate: arrivalDate}}, nil)
	s.mockTripService.EXPECT().
		Filtered(gomock.Any(), gomock.Eq(repoargs.TripFilter{})).
		Return([]domain.Trip{}, nil)

	cases := []struct {
		name       string
		url        string
		wantStatus int
	}{
		{name: "destination and date", url: "/viajes?destination=Saltillo&arrival_date=2025-08-01", wantStatus: http.StatusOK},
		{name: "no filters", url: "/viajes", wantStatus: http.StatusOK},
		{name: "bad date", url: "/viajes?arrival_date=01/08/2025", wantStatus: http.StatusBadRequest},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    t.url,
			})
			s.Require().NoError(err)

			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *TripsHandlerTestSuite) TestDetail() {
	detail := repoargs.TripDetail{
		ID:             5,
		DepartureCity:  "Monterrey",
		Destination:    "Saltillo",
		ArrivalDate:    time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		ReturnDate:     time.Date(2025, 8, 3, 0, 0, 0, 0, time.UTC),
		ColdContainers: 0,
		HotContainers:  3,
		Comments:       "",
		DriverName:     "maria",
		DriverTrips:    12,
		DriverRating:   4.5,
		DriverRatings:  8,
		DriverImageURL: "https://example.com/maria.png",
	}

	s.mockTripService.EXPECT().
		Detail(gomock.Any(), int64(5)).
		Return(&detail, nil)
	s.mockTripService.EXPECT().
		Detail(gomock.Any(), int64(404)).
		Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name       string
		url        string
		wantStatus int
	}{
		{name: "ok", url: "/viaje/detalle/5", wantStatus: http.StatusOK},
		{name: "not found", url: "/viaje/detalle/404", wantStatus: http.StatusNotFound},
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

			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusOK {
				var payload map[string]any
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&payload))
				// zero cold containers and empty comments render placeholders
				s.Equal("No disponible", payload["contenedor_frio"])
				s.Equal(float64(3), payload["contenedor_caliente"])
				s.Equal("No hay comentarios disponibles.", payload["comentarios"])
			}
		})
	}
}

func (s *TripsHandlerTestSuite) TestRateDriver() {
	s.mockTripService.EXPECT().
		RateDriver(gomock.Any(), int64(5), 4.0).
		Return(nil)
	s.mockTripService.EXPECT().
		RateDriver(gomock.Any(), int64(404), 4.0).
		Return(fmt.Errorf("rating driver of trip 404: %w", domain.ErrRecordNotFound))

	cases := []struct {
		name       string
		tripID     int64
		rating     float64
		wantStatus int
	}{
		{name: "ok", tripID: 5, rating: 4.0, wantStatus: http.StatusOK},
		{name: "trip not found", tripID: 404, rating: 4.0, wantStatus: http.StatusNotFound},
		{name: "rating over bounds", tripID: 5, rating: 6.0, wantStatus: http.StatusBadRequest},
		{name: "rating under bounds", tripID: 5, rating: 0.5, wantStatus: http.StatusBadRequest},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			body, marshalErr := json.Marshal(map[string]any{
				"tripId": t.tripID,
				"rating": t.rating,
			})
			s.Require().NoError(marshalErr)

			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RateDriverRoute,
				Body:   bytes.NewReader(body),
			}, s.authHeader(), testutils.WithHeader("Content-Type", "application/json"))
			s.Require().NoError(err)

			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}
