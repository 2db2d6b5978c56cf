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
	"github.com/IEVN1001-20001021/api-paso/internal/service"
	"github.com/IEVN1001-20001021/api-paso/internal/service/tokens"
	"github.com/IEVN1001-20001021/api-paso/internal/transport/api/mocks"
	"github.com/IEVN1001-20001021/api-paso/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockUserService *mocks.MockUserServicer
	jwtSecret       []byte
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())

	s.mockUserService = mocks.NewMockUserServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	s.router = New(RouterArgs{
		Logger:       logger.New(os.Stdout),
		UserService:  s.mockUserService,
		JWTSecretKey: s.jwtSecret,
	})
}

func (s *AuthHandlerTestSuite) TestRegister() {
	birthDate := time.Date(1990, 5, 10, 0, 0, 0, 0, time.UTC)

	okArgs := service.RegisterUserArgs{
		Username:  "juan23",
		Email:     "juan@example.com",
		Password:  "secreto123",
		Surname1:  "Pérez",
		Surname2:  "Gómez",
		BirthDate: birthDate,
		Sex:       "M",
	}

	s.mockUserService.EXPECT().
		Register(gomock.Any(), gomock.Eq(okArgs)).
		Return(&domain.User{ID: 1, Username: okArgs.Username}, nil)

	underageArgs := okArgs
	underageArgs.Email = "young@example.com"
	s.mockUserService.EXPECT().
		Register(gomock.Any(), gomock.Eq(underageArgs)).
		Return(nil, domain.ErrUnderage)

	duplicateArgs := okArgs
	duplicateArgs.Email = "taken@example.com"
	s.mockUserService.EXPECT().
		Register(gomock.Any(), gomock.Eq(duplicateArgs)).
		Return(nil, domain.ErrDuplicateKey)

	makeBody := func(email, birthDateStr string) []byte {
		body, err := json.Marshal(map[string]string{
			"usuario":          "juan23",
			"correo":           email,
			"contraseña":       "secreto123",
			"APaterno":         "Pérez",
			"AMaterno":         "Gómez",
			"fecha_nacimiento": birthDateStr,
			"sexo":             "M",
		})
		s.Require().NoError(err)
		return body
	}

	cases := []struct {
		name       string
		body       []byte
		wantStatus int
	}{
		{name: "ok", body: makeBody("juan@example.com", "1990-05-10"), wantStatus: http.StatusCreated},
		{name: "underage", body: makeBody("young@example.com", "1990-05-10"), wantStatus: http.StatusBadRequest},
		{name: "duplicate email", body: makeBody("taken@example.com", "1990-05-10"), wantStatus: http.StatusBadRequest},
		{name: "bad birth date", body: makeBody("juan@example.com", "10/05/1990"), wantStatus: http.StatusBadRequest},
		{name: "missing fields", body: []byte(`{"usuario":"juan23"}`), wantStatus: http.StatusBadRequest},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RegisterRoute,
				Body:   bytes.NewReader(t.body),
			}, testutils.WithHeader("Content-Type", "application/json"))
			s.Require().NoError(err)

			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *AuthHandlerTestSuite) TestLogin() {
	okArgs := service.LoginUserArgs{Email: "juan@example.com", Password: "secreto123"}
	wrongArgs := service.LoginUserArgs{Email: "juan@example.com", Password: "nope123"}

	s.mockUserService.EXPECT().
		Login(gomock.Any(), gomock.Eq(okArgs)).
		Return(&domain.User{ID: 1}, "signed-token", nil)
	s.mockUserService.EXPECT().
		Login(gomock.Any(), gomock.Eq(wrongArgs)).
		Return(nil, "", domain.ErrPasswordMissMatch)

	cases := []struct {
		name       string
		password   string
		wantStatus int
		wantToken  string
	}{
		{name: "ok", password: okArgs.Password, wantStatus: http.StatusOK, wantToken: "signed-token"},
		{name: "wrong credentials", password: wrongArgs.Password, wantStatus: http.StatusForbidden},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			body, marshalErr := json.Marshal(map[string]string{
				"email":    "juan@example.com",
				"password": t.password,
			})
			s.Require().NoError(marshalErr)

			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    LoginRoute,
				Body:   bytes.NewReader(body),
			}, testutils.WithHeader("Content-Type", "application/json"))
			s.Require().NoError(err)

			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantToken != "" {
				var payload map[string]any
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&payload))
				s.Equal(t.wantToken, payload["token"])
			}
		})
	}
}

func (s *AuthHandlerTestSuite) TestShowUser() {
	jwtToken, jwtErr := tokens.GenerateUserJWT(1, time.Hour, s.jwtSecret)
	s.Require().NoError(jwtErr)

	s.mockUserService.EXPECT().
		FindUserByID(gomock.Any(), int64(7)).
		Return(&domain.User{ID: 7, Username: "maria"}, nil)
	s.mockUserService.EXPECT().
		FindUserByID(gomock.Any(), int64(404)).
		Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name       string
		url        string
		jwtToken   string
		wantStatus int
	}{
		{name: "ok", url: "/usuario/7", jwtToken: jwtToken, wantStatus: http.StatusOK},
		{name: "not found", url: "/usuario/404", jwtToken: jwtToken, wantStatus: http.StatusNotFound},
		{name: "no token", url: "/usuario/7", wantStatus: http.StatusForbidden},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			var reqOpts []func(*testutils.RequestOptions)
			if t.jwtToken != "" {
				reqOpts = append(reqOpts, testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", t.jwtToken)))
			}

			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    t.url,
			}, reqOpts...)
			s.Require().NoError(err)

			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}
